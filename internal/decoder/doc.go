// Package decoder turns a raw input byte stream into key events.
//
// The decoder is a small state machine with three states: ground (no
// pending sequence), escape-seen, and CSI-seen. Bytes are fed one at a
// time; most bytes resolve immediately, while escape sequences and UTF-8
// continuation bytes accumulate in a bounded internal buffer until the
// sequence completes or overflows.
//
// Unrecognized or malformed input never fails: it resolves to a
// KeyUnknown event carrying the raw bytes, so the caller can decide to
// ignore or log it. The pending buffer has a fixed maximum length;
// exceeding it discards the sequence as KeyUnknown, which bounds memory
// use against malformed or adversarial input.
//
// The decoder is purely a function of the byte stream. It holds no
// reference to the line buffer or editor state.
package decoder
