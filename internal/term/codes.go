package term

import "strconv"

// ANSI control sequences used for line redraw.
const (
	csi = "\x1b["

	// ClearEOL erases from the cursor to the end of the line.
	ClearEOL = csi + "K"
)

// CursorBack returns the sequence moving the cursor n columns left.
func CursorBack(n int) string {
	if n <= 0 {
		return ""
	}
	if n == 1 {
		return csi + "D"
	}
	return csi + strconv.Itoa(n) + "D"
}

// CursorForward returns the sequence moving the cursor n columns right.
func CursorForward(n int) string {
	if n <= 0 {
		return ""
	}
	if n == 1 {
		return csi + "C"
	}
	return csi + strconv.Itoa(n) + "C"
}
