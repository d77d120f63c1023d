package driven

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	// WriteText replaces the clipboard contents with text.
	WriteText(text string) error
}
