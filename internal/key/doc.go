// Package key defines the key event model shared by the decoder and the
// line editor.
//
// A key event is the semantic result of decoding one or more raw input
// bytes: a printable character, a named editing or navigation key, a
// session control key (interrupt, end-of-input), or an unrecognized
// sequence carried verbatim in Raw.
//
// Events are transient values. They are produced by the decoder, consumed
// by the editor dispatch loop, and never stored.
package key
