//go:build !js

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/kframe/glimpse"
)

var glfwToKey = map[glfw.Key]glimpse.Key{
	glfw.KeyEscape:       glimpse.KeyEscape,
	glfw.Key1:            glimpse.KeyNum1,
	glfw.Key2:            glimpse.KeyNum2,
	glfw.Key3:            glimpse.KeyNum3,
	glfw.Key4:            glimpse.KeyNum4,
	glfw.Key5:            glimpse.KeyNum5,
	glfw.Key6:            glimpse.KeyNum6,
	glfw.Key7:            glimpse.KeyNum7,
	glfw.Key8:            glimpse.KeyNum8,
	glfw.Key9:            glimpse.KeyNum9,
	glfw.Key0:            glimpse.KeyNum0,
	glfw.KeyMinus:        glimpse.KeyMinus,
	glfw.KeyEqual:        glimpse.KeyEqual,
	glfw.KeyBackspace:    glimpse.KeyBackspace,
	glfw.KeyTab:          glimpse.KeyTab,
	glfw.KeyQ:            glimpse.KeyQ,
	glfw.KeyW:            glimpse.KeyW,
	glfw.KeyE:            glimpse.KeyE,
	glfw.KeyR:            glimpse.KeyR,
	glfw.KeyT:            glimpse.KeyT,
	glfw.KeyY:            glimpse.KeyY,
	glfw.KeyU:            glimpse.KeyU,
	glfw.KeyI:            glimpse.KeyI,
	glfw.KeyO:            glimpse.KeyO,
	glfw.KeyP:            glimpse.KeyP,
	glfw.KeyLeftBracket:  glimpse.KeyLeftBracket,
	glfw.KeyRightBracket: glimpse.KeyRightBracket,
	glfw.KeyEnter:        glimpse.KeyEnter,
	glfw.KeyLeftControl:  glimpse.KeyLeftControl,
	glfw.KeyA:            glimpse.KeyA,
	glfw.KeyS:            glimpse.KeyS,
	glfw.KeyD:            glimpse.KeyD,
	glfw.KeyF:            glimpse.KeyF,
	glfw.KeyG:            glimpse.KeyG,
	glfw.KeyH:            glimpse.KeyH,
	glfw.KeyJ:            glimpse.KeyJ,
	glfw.KeyK:            glimpse.KeyK,
	glfw.KeyL:            glimpse.KeyL,
	glfw.KeySemicolon:    glimpse.KeySemicolon,
	glfw.KeyApostrophe:   glimpse.KeyApostrophe,
	glfw.KeyGraveAccent:  glimpse.KeyGraveAccent,
	glfw.KeyLeftShift:    glimpse.KeyLeftShift,
	glfw.KeyBackslash:    glimpse.KeyBackslash,
	glfw.KeyZ:            glimpse.KeyZ,
	glfw.KeyX:            glimpse.KeyX,
	glfw.KeyC:            glimpse.KeyC,
	glfw.KeyV:            glimpse.KeyV,
	glfw.KeyB:            glimpse.KeyB,
	glfw.KeyN:            glimpse.KeyN,
	glfw.KeyM:            glimpse.KeyM,
	glfw.KeyComma:        glimpse.KeyComma,
	glfw.KeyPeriod:       glimpse.KeyPeriod,
	glfw.KeySlash:        glimpse.KeySlash,
	glfw.KeyRightShift:   glimpse.KeyRightShift,
	glfw.KeyKPMultiply:   glimpse.KeyKPMultiply,
	glfw.KeyLeftAlt:      glimpse.KeyLeftAlt,
	glfw.KeySpace:        glimpse.KeySpace,
	glfw.KeyCapsLock:     glimpse.KeyCapsLock,
	glfw.KeyF1:           glimpse.KeyF1,
	glfw.KeyF2:           glimpse.KeyF2,
	glfw.KeyF3:           glimpse.KeyF3,
	glfw.KeyF4:           glimpse.KeyF4,
	glfw.KeyF5:           glimpse.KeyF5,
	glfw.KeyF6:           glimpse.KeyF6,
	glfw.KeyF7:           glimpse.KeyF7,
	glfw.KeyF8:           glimpse.KeyF8,
	glfw.KeyF9:           glimpse.KeyF9,
	glfw.KeyF10:          glimpse.KeyF10,
	glfw.KeyNumLock:      glimpse.KeyNumLock,
	glfw.KeyScrollLock:   glimpse.KeyScrollLock,
	glfw.KeyKP7:          glimpse.KeyKP7,
	glfw.KeyKP8:          glimpse.KeyKP8,
	glfw.KeyKP9:          glimpse.KeyKP9,
	glfw.KeyKPSubtract:   glimpse.KeyKPSubtract,
	glfw.KeyKP4:          glimpse.KeyKP4,
	glfw.KeyKP5:          glimpse.KeyKP5,
	glfw.KeyKP6:          glimpse.KeyKP6,
	glfw.KeyKPAdd:        glimpse.KeyKPAdd,
	glfw.KeyKP1:          glimpse.KeyKP1,
	glfw.KeyKP2:          glimpse.KeyKP2,
	glfw.KeyKP3:          glimpse.KeyKP3,
	glfw.KeyKP0:          glimpse.KeyKP0,
	glfw.KeyKPDecimal:    glimpse.KeyKPDecimal,
	glfw.KeyF11:          glimpse.KeyF11,
	glfw.KeyF12:          glimpse.KeyF12,
	glfw.KeyKPEnter:      glimpse.KeyKPEnter,
	glfw.KeyRightControl: glimpse.KeyRightControl,
	glfw.KeyKPDivide:     glimpse.KeyKPDivide,
	glfw.KeyPrintScreen:  glimpse.KeyPrintScreen,
	glfw.KeyRightAlt:     glimpse.KeyRightAlt,
	glfw.KeyHome:         glimpse.KeyHome,
	glfw.KeyUp:           glimpse.KeyUp,
	glfw.KeyPageUp:       glimpse.KeyPageUp,
	glfw.KeyLeft:         glimpse.KeyLeft,
	glfw.KeyRight:        glimpse.KeyRight,
	glfw.KeyEnd:          glimpse.KeyEnd,
	glfw.KeyDown:         glimpse.KeyDown,
	glfw.KeyPageDown:     glimpse.KeyPageDown,
	glfw.KeyInsert:       glimpse.KeyInsert,
	glfw.KeyDelete:       glimpse.KeyDelete,
	glfw.KeyPause:        glimpse.KeyPause,
	glfw.KeyLeftSuper:    glimpse.KeyLeftSuper,
	glfw.KeyRightSuper:   glimpse.KeyRightSuper,
	glfw.KeyMenu:         glimpse.KeyMenu,
}
