package orion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandle(t *testing.T) {
	assert.NotPanics(t, func() { Handle(nil, "setup") })

	assert.PanicsWithValue(t, "open window 2: no display", func() {
		Handle(errors.New("no display"), "open window %d", 2)
	})
}
