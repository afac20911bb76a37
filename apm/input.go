package apm

import (
	"math/bits"
	"slices"
	"strings"
)

type Button uint8

const (
	ButtonLeft Button = 1 << iota
	ButtonRight
	ButtonMiddle
	ButtonX1
	ButtonX2
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonMiddle:
		return "Middle"
	case ButtonX1:
		return "X1"
	case ButtonX2:
		return "X2"
	default:
		return "Unknown"
	}
}

// Buttons is the set of currently pressed mouse buttons.
type Buttons uint8

func (bs Buttons) Has(b Button) bool {
	return bs&Buttons(b) != 0
}

func (bs Buttons) With(b Button) Buttons {
	return bs | Buttons(b)
}

func (bs Buttons) Without(b Button) Buttons {
	return bs &^ Buttons(b)
}

func (bs Buttons) Len() int {
	return bits.OnesCount8(uint8(bs))
}

func (bs Buttons) String() string {
	names := make([]string, 0, bs.Len())
	for b := ButtonLeft; b != 0 && b <= ButtonX2; b <<= 1 {
		if bs.Has(b) {
			names = append(names, b.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Key names a keyboard key, e.g. "Q", "F4", "LControl".
type Key string

const (
	KeyLControl Key = "LControl"
	KeyRControl Key = "RControl"
	KeyLAlt     Key = "LAlt"
	KeyRAlt     Key = "RAlt"
	KeyLShift   Key = "LShift"
	KeyRShift   Key = "RShift"
	KeyQ        Key = "Q"
	KeyF4       Key = "F4"
)

// KeySet is the set of currently pressed keys. The zero value is an empty set.
type KeySet map[Key]struct{}

func NewKeySet(keys ...Key) KeySet {
	ks := make(KeySet, len(keys))
	for _, k := range keys {
		ks[k] = struct{}{}
	}
	return ks
}

func (ks KeySet) Contains(k Key) bool {
	_, ok := ks[k]
	return ok
}

func (ks KeySet) ContainsAll(keys ...Key) bool {
	for _, k := range keys {
		if !ks.Contains(k) {
			return false
		}
	}
	return true
}

// Equal reports set equality, nil and empty sets are equal.
func (ks KeySet) Equal(other KeySet) bool {
	if len(ks) != len(other) {
		return false
	}
	for k := range ks {
		if !other.Contains(k) {
			return false
		}
	}
	return true
}

func (ks KeySet) Clone() KeySet {
	c := make(KeySet, len(ks))
	for k := range ks {
		c[k] = struct{}{}
	}
	return c
}

func (ks KeySet) Sorted() []Key {
	keys := make([]Key, 0, len(ks))
	for k := range ks {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (ks KeySet) String() string {
	sorted := ks.Sorted()
	names := make([]string, len(sorted))
	for i, k := range sorted {
		names[i] = string(k)
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Snapshot is the device state observed at one polling instant.
type Snapshot struct {
	Buttons Buttons
	Keys    KeySet
}

// Source reports the current global input state.
// The returned KeySet is kept by the caller, so it must not be mutated afterwards.
type Source interface {
	Snapshot() Snapshot
}
