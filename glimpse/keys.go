package glimpse

import "strconv"

// Key identifies a physical key. The values follow the Linux input event
// codes, so KeyA is 30 on every platform.
type Key uint32

const (
	KeyUnknown      Key = 0
	KeyEscape       Key = 1
	KeyNum1         Key = 2
	KeyNum2         Key = 3
	KeyNum3         Key = 4
	KeyNum4         Key = 5
	KeyNum5         Key = 6
	KeyNum6         Key = 7
	KeyNum7         Key = 8
	KeyNum8         Key = 9
	KeyNum9         Key = 10
	KeyNum0         Key = 11
	KeyMinus        Key = 12
	KeyEqual        Key = 13
	KeyBackspace    Key = 14
	KeyTab          Key = 15
	KeyQ            Key = 16
	KeyW            Key = 17
	KeyE            Key = 18
	KeyR            Key = 19
	KeyT            Key = 20
	KeyY            Key = 21
	KeyU            Key = 22
	KeyI            Key = 23
	KeyO            Key = 24
	KeyP            Key = 25
	KeyLeftBracket  Key = 26
	KeyRightBracket Key = 27
	KeyEnter        Key = 28
	KeyLeftControl  Key = 29
	KeyA            Key = 30
	KeyS            Key = 31
	KeyD            Key = 32
	KeyF            Key = 33
	KeyG            Key = 34
	KeyH            Key = 35
	KeyJ            Key = 36
	KeyK            Key = 37
	KeyL            Key = 38
	KeySemicolon    Key = 39
	KeyApostrophe   Key = 40
	KeyGraveAccent  Key = 41
	KeyLeftShift    Key = 42
	KeyBackslash    Key = 43
	KeyZ            Key = 44
	KeyX            Key = 45
	KeyC            Key = 46
	KeyV            Key = 47
	KeyB            Key = 48
	KeyN            Key = 49
	KeyM            Key = 50
	KeyComma        Key = 51
	KeyPeriod       Key = 52
	KeySlash        Key = 53
	KeyRightShift   Key = 54
	KeyKPMultiply   Key = 55
	KeyLeftAlt      Key = 56
	KeySpace        Key = 57
	KeyCapsLock     Key = 58
	KeyF1           Key = 59
	KeyF2           Key = 60
	KeyF3           Key = 61
	KeyF4           Key = 62
	KeyF5           Key = 63
	KeyF6           Key = 64
	KeyF7           Key = 65
	KeyF8           Key = 66
	KeyF9           Key = 67
	KeyF10          Key = 68
	KeyNumLock      Key = 69
	KeyScrollLock   Key = 70
	KeyKP7          Key = 71
	KeyKP8          Key = 72
	KeyKP9          Key = 73
	KeyKPSubtract   Key = 74
	KeyKP4          Key = 75
	KeyKP5          Key = 76
	KeyKP6          Key = 77
	KeyKPAdd        Key = 78
	KeyKP1          Key = 79
	KeyKP2          Key = 80
	KeyKP3          Key = 81
	KeyKP0          Key = 82
	KeyKPDecimal    Key = 83
	KeyF11          Key = 87
	KeyF12          Key = 88
	KeyKPEnter      Key = 96
	KeyRightControl Key = 97
	KeyKPDivide     Key = 98
	KeyPrintScreen  Key = 99
	KeyRightAlt     Key = 100
	KeyHome         Key = 102
	KeyUp           Key = 103
	KeyPageUp       Key = 104
	KeyLeft         Key = 105
	KeyRight        Key = 106
	KeyEnd          Key = 107
	KeyDown         Key = 108
	KeyPageDown     Key = 109
	KeyInsert       Key = 110
	KeyDelete       Key = 111
	KeyPause        Key = 119
	KeyLeftSuper    Key = 125
	KeyRightSuper   Key = 126
	KeyMenu         Key = 127
)

var keyNames = map[Key]string{
	KeyUnknown:      "Unknown",
	KeyEscape:       "Escape",
	KeyNum1:         "1",
	KeyNum2:         "2",
	KeyNum3:         "3",
	KeyNum4:         "4",
	KeyNum5:         "5",
	KeyNum6:         "6",
	KeyNum7:         "7",
	KeyNum8:         "8",
	KeyNum9:         "9",
	KeyNum0:         "0",
	KeyMinus:        "Minus",
	KeyEqual:        "Equal",
	KeyBackspace:    "Backspace",
	KeyTab:          "Tab",
	KeyQ:            "Q",
	KeyW:            "W",
	KeyE:            "E",
	KeyR:            "R",
	KeyT:            "T",
	KeyY:            "Y",
	KeyU:            "U",
	KeyI:            "I",
	KeyO:            "O",
	KeyP:            "P",
	KeyLeftBracket:  "LeftBracket",
	KeyRightBracket: "RightBracket",
	KeyEnter:        "Enter",
	KeyLeftControl:  "LeftControl",
	KeyA:            "A",
	KeyS:            "S",
	KeyD:            "D",
	KeyF:            "F",
	KeyG:            "G",
	KeyH:            "H",
	KeyJ:            "J",
	KeyK:            "K",
	KeyL:            "L",
	KeySemicolon:    "Semicolon",
	KeyApostrophe:   "Apostrophe",
	KeyGraveAccent:  "GraveAccent",
	KeyLeftShift:    "LeftShift",
	KeyBackslash:    "Backslash",
	KeyZ:            "Z",
	KeyX:            "X",
	KeyC:            "C",
	KeyV:            "V",
	KeyB:            "B",
	KeyN:            "N",
	KeyM:            "M",
	KeyComma:        "Comma",
	KeyPeriod:       "Period",
	KeySlash:        "Slash",
	KeyRightShift:   "RightShift",
	KeyKPMultiply:   "KPMultiply",
	KeyLeftAlt:      "LeftAlt",
	KeySpace:        "Space",
	KeyCapsLock:     "CapsLock",
	KeyF1:           "F1",
	KeyF2:           "F2",
	KeyF3:           "F3",
	KeyF4:           "F4",
	KeyF5:           "F5",
	KeyF6:           "F6",
	KeyF7:           "F7",
	KeyF8:           "F8",
	KeyF9:           "F9",
	KeyF10:          "F10",
	KeyNumLock:      "NumLock",
	KeyScrollLock:   "ScrollLock",
	KeyKP7:          "KP7",
	KeyKP8:          "KP8",
	KeyKP9:          "KP9",
	KeyKPSubtract:   "KPSubtract",
	KeyKP4:          "KP4",
	KeyKP5:          "KP5",
	KeyKP6:          "KP6",
	KeyKPAdd:        "KPAdd",
	KeyKP1:          "KP1",
	KeyKP2:          "KP2",
	KeyKP3:          "KP3",
	KeyKP0:          "KP0",
	KeyKPDecimal:    "KPDecimal",
	KeyF11:          "F11",
	KeyF12:          "F12",
	KeyKPEnter:      "KPEnter",
	KeyRightControl: "RightControl",
	KeyKPDivide:     "KPDivide",
	KeyPrintScreen:  "PrintScreen",
	KeyRightAlt:     "RightAlt",
	KeyHome:         "Home",
	KeyUp:           "Up",
	KeyPageUp:       "PageUp",
	KeyLeft:         "Left",
	KeyRight:        "Right",
	KeyEnd:          "End",
	KeyDown:         "Down",
	KeyPageDown:     "PageDown",
	KeyInsert:       "Insert",
	KeyDelete:       "Delete",
	KeyPause:        "Pause",
	KeyLeftSuper:    "LeftSuper",
	KeyRightSuper:   "RightSuper",
	KeyMenu:         "Menu",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}

	return "Key(" + strconv.FormatUint(uint64(k), 10) + ")"
}
