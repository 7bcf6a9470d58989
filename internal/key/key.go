package key

// Key identifies a decoded key.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// KeyRune is a printable character (see Event.Rune).
	KeyRune

	// Editing keys
	KeyEnter
	KeyBackspace
	KeyDelete

	// Navigation keys
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyWordLeft
	KeyWordRight

	// Word deletion
	KeyDeleteWordLeft
	KeyDeleteWordRight

	// History navigation (Up/Down arrows)
	KeyHistoryPrev
	KeyHistoryNext

	// Session control
	KeyInterrupt // Ctrl-C
	KeyEOF       // Ctrl-D

	// KeyUnknown is an unrecognized byte or escape sequence.
	// The raw bytes are carried in Event.Raw.
	KeyUnknown
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyRune:
		return "Rune"
	case KeyEnter:
		return "Enter"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyWordLeft:
		return "WordLeft"
	case KeyWordRight:
		return "WordRight"
	case KeyDeleteWordLeft:
		return "DeleteWordLeft"
	case KeyDeleteWordRight:
		return "DeleteWordRight"
	case KeyHistoryPrev:
		return "HistoryPrev"
	case KeyHistoryNext:
		return "HistoryNext"
	case KeyInterrupt:
		return "Interrupt"
	case KeyEOF:
		return "EOF"
	case KeyUnknown:
		return "Unknown"
	default:
		return "Invalid"
	}
}

// IsTerminal returns true if the key ends a read-line session.
func (k Key) IsTerminal() bool {
	return k == KeyEnter || k == KeyInterrupt || k == KeyEOF
}
