package key

import (
	"fmt"
	"unicode"
)

// Event represents a single decoded key event.
type Event struct {
	// Key identifies the key.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Raw holds the undecoded input bytes for KeyUnknown events.
	Raw []byte
}

// RuneEvent returns a key event for a printable character.
func RuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// Special returns a key event for a named key.
func Special(k Key) Event {
	return Event{Key: k}
}

// Unknown returns a key event carrying unrecognized raw bytes.
// The byte slice is copied; the decoder reuses its sequence buffer.
func Unknown(raw []byte) Event {
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return Event{Key: KeyUnknown, Raw: cp}
}

// IsRune returns true if this is a character event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsPrintable returns true if this is a printable character event.
func (e Event) IsPrintable() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// String returns a readable representation for logs and test failures.
func (e Event) String() string {
	switch e.Key {
	case KeyRune:
		return fmt.Sprintf("Rune(%q)", e.Rune)
	case KeyUnknown:
		return fmt.Sprintf("Unknown(% x)", e.Raw)
	default:
		return e.Key.String()
	}
}
