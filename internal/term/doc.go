// Package term defines the I/O capability the line editor drives and the
// backends that implement it.
//
// The Terminal interface is the single seam between the editing engine
// and the physical byte channel. The engine only requires byte-at-a-time
// input, buffered output with an explicit flush, a raw-mode toggle, and
// three cursor-control primitives. Backends translate those primitives
// into whatever moves bytes on their channel; the engine never learns
// which backend it is talking to.
//
// Two implementations ship with the package: Unix, a file-descriptor
// backend using termios raw mode and ANSI control sequences, and Mem, an
// in-memory byte-queue double used to script editor sessions in tests.
package term
