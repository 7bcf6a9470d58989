// Package linebuf provides the editable single-line text buffer used by
// the line editor.
//
// A Buffer owns the in-progress line's runes and an insertion cursor with
// the invariant 0 <= cursor <= length. Every operation is total:
// out-of-range requests degrade to no-ops instead of returning errors, so
// an invalid cursor state is structurally unreachable.
//
// Mutating and movement operations return the number of display columns
// the operation covered, which is exactly what the editor needs to emit
// minimal cursor-movement and redraw output. Column widths account for
// wide characters; backward deletion removes a whole grapheme cluster so
// a combining sequence disappears with a single keystroke.
//
// Word operations classify characters purely as whitespace or
// non-whitespace. There is no locale-aware tokenization.
package linebuf
