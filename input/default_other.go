//go:build !windows

package input

import (
	"github.com/Miuzarte/ApmOverlay/apm"
)

// Default returns the hook source, it has to be started with Run.
func Default() apm.Source {
	return NewHook()
}
