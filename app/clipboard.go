package app

// Clipboard writes text to the system clipboard. Failures (headless
// session, denied permission) are transient and non-fatal.
type Clipboard interface {
	WriteText(text string) error
}
