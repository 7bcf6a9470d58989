package editor

import "errors"

// Termination signals returned by ReadLine. They are control outcomes,
// not failures: callers distinguish them from I/O errors with errors.Is
// and typically re-prompt on ErrInterrupted and exit on ErrEndOfInput.
var (
	// ErrInterrupted is returned when the user presses Ctrl-C. The
	// partial line is discarded and history is left untouched.
	ErrInterrupted = errors.New("interrupted")

	// ErrEndOfInput is returned when the user presses Ctrl-D on an
	// empty line, or when the input stream ends.
	ErrEndOfInput = errors.New("end of input")
)
