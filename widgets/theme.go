package widgets

import (
	"gioui.org/widget/material"
)

// Theme is used by every widget constructor in this package.
var Theme = material.NewTheme()
