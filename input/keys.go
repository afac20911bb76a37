package input

import (
	"fmt"

	"github.com/Miuzarte/ApmOverlay/apm"
)

// virtual-key codes, see WinUser.h
const (
	vkLButton  = 0x01
	vkRButton  = 0x02
	vkMButton  = 0x04
	vkXButton1 = 0x05
	vkXButton2 = 0x06

	vkShift   = 0x10
	vkControl = 0x11
	vkMenu    = 0x12

	vkFirstKey = 0x08
	vkLastKey  = 0xFE
)

var vkButtons = [...]struct {
	vk     uint8
	button apm.Button
}{
	{vkLButton, apm.ButtonLeft},
	{vkRButton, apm.ButtonRight},
	{vkMButton, apm.ButtonMiddle},
	{vkXButton1, apm.ButtonX1},
	{vkXButton2, apm.ButtonX2},
}

var vkNames = map[uint8]apm.Key{
	0x08: "Backspace",
	0x09: "Tab",
	0x0D: "Enter",
	0x13: "Pause",
	0x14: "CapsLock",
	0x1B: "Escape",
	0x20: "Space",
	0x21: "PageUp",
	0x22: "PageDown",
	0x23: "End",
	0x24: "Home",
	0x25: "Left",
	0x26: "Up",
	0x27: "Right",
	0x28: "Down",
	0x2C: "PrintScreen",
	0x2D: "Insert",
	0x2E: "Delete",
	0x5B: "LMeta",
	0x5C: "RMeta",
	0x90: "NumLock",
	0x91: "ScrollLock",
	0xA0: apm.KeyLShift,
	0xA1: apm.KeyRShift,
	0xA2: apm.KeyLControl,
	0xA3: apm.KeyRControl,
	0xA4: apm.KeyLAlt,
	0xA5: apm.KeyRAlt,
}

// vkKey names a virtual-key code. ok is false for codes that are not
// reported as keys: mouse buttons and the side-agnostic modifiers,
// whose left/right variants are reported instead.
func vkKey(vk uint8) (k apm.Key, ok bool) {
	switch {
	case vk < vkFirstKey || vk > vkLastKey:
		return "", false
	case vk == vkShift, vk == vkControl, vk == vkMenu:
		return "", false
	case vk >= '0' && vk <= '9', vk >= 'A' && vk <= 'Z':
		return apm.Key(rune(vk)), true
	case vk >= 0x60 && vk <= 0x69:
		return apm.Key(fmt.Sprintf("Num%d", vk-0x60)), true
	case vk >= 0x70 && vk <= 0x87:
		return apm.Key(fmt.Sprintf("F%d", vk-0x70+1)), true
	}
	if name, ok := vkNames[vk]; ok {
		return name, true
	}
	return apm.Key(fmt.Sprintf("VK_%02X", vk)), true
}

// libuiohook key names as exposed by gohook, mapped onto the names above
var hookNames = map[string]apm.Key{
	"backspace": "Backspace",
	"tab":       "Tab",
	"enter":     "Enter",
	"esc":       "Escape",
	"escape":    "Escape",
	"space":     "Space",
	"pageup":    "PageUp",
	"pagedown":  "PageDown",
	"end":       "End",
	"home":      "Home",
	"left":      "Left",
	"up":        "Up",
	"right":     "Right",
	"down":      "Down",
	"insert":    "Insert",
	"delete":    "Delete",
	"capslock":  "CapsLock",
	"cmd":       "LMeta",
	"rcmd":      "RMeta",
	"shift":     apm.KeyLShift,
	"rshift":    apm.KeyRShift,
	"ctrl":      apm.KeyLControl,
	"rctrl":     apm.KeyRControl,
	"alt":       apm.KeyLAlt,
	"ralt":      apm.KeyRAlt,
}

// hookButtons indexes libuiohook mouse buttons (MOUSE_BUTTON1..5).
var hookButtons = [...]apm.Button{
	1: apm.ButtonLeft,
	2: apm.ButtonRight,
	3: apm.ButtonMiddle,
	4: apm.ButtonX1,
	5: apm.ButtonX2,
}
