// Package history provides the fixed-capacity ring of completed lines
// shared by consecutive read-line sessions.
//
// The ring stores entries oldest-first over a preallocated array; once
// capacity is reached the oldest entry is overwritten. Capacity is fixed
// at construction and never grows, which bounds memory on long-running
// sessions. Empty lines and lines equal to the newest entry are never
// recorded, so the ring holds no empty entry and no two adjacent equal
// entries.
//
// A separate browse cursor supports stepping through past entries with
// Prev and Next. It is distinct from the line buffer's text cursor:
// stepping past the newest entry clears it, signaling the editor to
// restore the in-progress line it stashed when browsing began.
package history
