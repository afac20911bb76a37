package input

import (
	"github.com/Miuzarte/ApmOverlay/apm"
)

// Default returns the polling source, falling back to the hook
// when user32 is unavailable.
func Default() apm.Source {
	p, err := NewPoller()
	if err != nil {
		log.Warn().Err(err).Msg("GetAsyncKeyState unavailable, using input hook")
		return NewHook()
	}
	return p
}
