// Package editor orchestrates interactive read-line sessions.
//
// An Editor owns the history ring shared by consecutive sessions and the
// editing policy (line length limit, Ctrl-D behavior). Each ReadLine call
// runs one session: it pulls bytes from a term.Terminal, feeds them
// through the decoder, applies the resulting key events to a fresh line
// buffer or the history ring, and emits minimal redraw output back
// through the terminal.
//
// A session ends in one of three ways: a submitted line (returned with a
// nil error), a user interrupt (ErrInterrupted), or end of input
// (ErrEndOfInput). Callers conventionally re-prompt on interrupt and
// exit on end of input. Terminal I/O failures propagate as ordinary
// errors and are never retried; unrecognized input sequences are ignored
// and can never fail a session.
//
// Sessions are strictly sequential: an Editor must not be shared between
// goroutines. The only suspension point is the terminal's ReadByte, and
// every key event is applied atomically between reads.
package editor
