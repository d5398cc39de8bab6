package editor

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; read failures degrade to a swallowed
// paste and write failures are ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
