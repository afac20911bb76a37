package widgets

import (
	"strconv"

	"gioui.org/layout"
	"gioui.org/unit"
)

const itoaTableLength = 1000 // [0,999]

var itoaTable = func() (t [itoaTableLength]string) {
	for i := range itoaTableLength {
		t[i] = strconv.Itoa(i)
	}
	return
}()

// itoa formats a non-negative count, negative values are shown as 0.
func itoa(i int) string {
	switch {
	case i < 0:
		return itoaTable[0]
	case i < itoaTableLength:
		return itoaTable[i]
	default:
		return strconv.Itoa(i)
	}
}

// CounterStyle draws "<Prefix><Value>" at Direction inside the constraints.
type CounterStyle struct {
	Prefix string
	Value  int

	Direction layout.Direction
	Inset     layout.Inset

	LabelStyle
}

func Counter(prefix string, size unit.Sp, direction layout.Direction, pad unit.Dp) (c CounterStyle) {
	c.Prefix = prefix
	c.Direction = direction
	c.Inset = layout.UniformInset(pad)
	// wrapping would push the value out of a small window
	c.LabelStyle = Label(size, prefix+itoa(0)).MaxLines(1)
	return c
}

func (c CounterStyle) Text() string {
	return c.Prefix + itoa(c.Value)
}

func (c CounterStyle) Layout(gtx layout.Context) layout.Dimensions {
	c.LabelStyle.Text = c.Text()
	return c.Direction.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return c.Inset.Layout(gtx, c.LabelStyle.Layout)
	})
}
