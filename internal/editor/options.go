package editor

import "github.com/dshills/keyline/internal/history"

// Defaults applied by New.
const (
	DefaultMaxLineLen      = 4096
	DefaultHistoryCapacity = 100
)

// EOFPolicy selects the behavior of Ctrl-D on a non-empty line. On an
// empty line Ctrl-D always ends the session; backends disagree on the
// mid-line behavior, so it is an explicit configuration choice.
type EOFPolicy uint8

const (
	// EOFIgnore treats Ctrl-D on a non-empty line as a no-op.
	EOFIgnore EOFPolicy = iota

	// EOFDeleteChar treats Ctrl-D on a non-empty line as
	// delete-at-cursor, following the traditional readline binding.
	EOFDeleteChar
)

// String returns the policy name as used in configuration files.
func (p EOFPolicy) String() string {
	switch p {
	case EOFDeleteChar:
		return "delete-char"
	default:
		return "ignore"
	}
}

// Option is a functional option for configuring an Editor.
type Option func(*Editor)

// WithMaxLineLen limits the line length in runes. Runes typed beyond
// the limit are dropped. Non-positive values keep the default.
func WithMaxLineLen(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.maxLine = n
		}
	}
}

// WithHistoryCapacity sets the capacity of the editor's history ring.
func WithHistoryCapacity(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.ring = history.New(n)
		}
	}
}

// WithHistory attaches an existing history ring, for example one seeded
// from a persistence store.
func WithHistory(r *history.Ring) Option {
	return func(e *Editor) {
		if r != nil {
			e.ring = r
		}
	}
}

// WithEOFPolicy sets the Ctrl-D behavior on a non-empty line.
func WithEOFPolicy(p EOFPolicy) Option {
	return func(e *Editor) {
		e.eofPolicy = p
	}
}
