package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// System writes to the OS clipboard. Failures (no display server, denied
// access) are reported to the caller as transient errors.
type System struct{}

// New returns the system clipboard adapter.
func New() System {
	return System{}
}

// WriteText implements app.Clipboard.
func (System) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
