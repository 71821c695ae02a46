package glm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMat3_TranslateThenScale(t *testing.T) {
	tr := TranslationMat3[float32](2, 3).Scale(2, 4)

	// scale is applied to the point first, then the translation
	assert.Equal(t, Vec2f{4, 7}, tr.Transform2(Vec2f{1, 1}))
}

func TestMat3_IdentityIsNeutral(t *testing.T) {
	m := TranslationMat3[float32](5, -1)
	assert.Equal(t, m, m.Mul(IdentityMat3[float32]()))
	assert.Equal(t, m, IdentityMat3[float32]().Mul(m))
}

func TestMat3_IsZero(t *testing.T) {
	assert.True(t, Mat3f{}.IsZero())
	assert.False(t, IdentityMat3[float32]().IsZero())
}

func TestVec2_Arithmetic(t *testing.T) {
	a := Vec2f{3, 4}
	b := Vec2f{1, 2}

	assert.Equal(t, Vec2f{4, 6}, a.Add(b))
	assert.Equal(t, Vec2f{2, 2}, a.Sub(b))
	assert.Equal(t, Vec2f{3, 2}, a.Div(b))
	assert.InDelta(t, 5.0, a.Length(), 1e-6)
	assert.InDelta(t, 1.0, a.Normalize().Length(), 1e-6)
}
