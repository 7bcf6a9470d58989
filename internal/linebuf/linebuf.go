package linebuf

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Buffer is an editable single line of text with an insertion cursor.
// The cursor is a rune offset; 0 <= cursor <= Len() always holds.
type Buffer struct {
	content []rune
	cursor  int
}

// New creates an empty buffer with room for the given number of runes.
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{content: make([]rune, 0, capacity)}
}

// Text returns the buffer content as a string.
func (b *Buffer) Text() string {
	return string(b.content)
}

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int {
	return len(b.content)
}

// IsEmpty returns true if the buffer holds no text.
func (b *Buffer) IsEmpty() bool {
	return len(b.content) == 0
}

// Cursor returns the cursor's rune offset.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// BeforeCursor returns the text left of the cursor.
func (b *Buffer) BeforeCursor() string {
	return string(b.content[:b.cursor])
}

// AfterCursor returns the text from the cursor to the end.
func (b *Buffer) AfterCursor() string {
	return string(b.content[b.cursor:])
}

// WidthAfterCursor returns the display width of the text from the cursor
// to the end.
func (b *Buffer) WidthAfterCursor() int {
	return runewidth.StringWidth(string(b.content[b.cursor:]))
}

// Insert adds a rune at the cursor and advances the cursor past it.
// It returns the display width of the inserted rune.
func (b *Buffer) Insert(r rune) int {
	b.content = append(b.content, 0)
	copy(b.content[b.cursor+1:], b.content[b.cursor:])
	b.content[b.cursor] = r
	b.cursor++
	return runewidth.RuneWidth(r)
}

// DeleteBackward removes the grapheme cluster immediately left of the
// cursor and returns its display width. At the start of the line it is a
// no-op returning 0.
func (b *Buffer) DeleteBackward() int {
	if b.cursor == 0 {
		return 0
	}

	n := lastClusterLen(b.content[:b.cursor])
	start := b.cursor - n
	removed := string(b.content[start:b.cursor])
	b.content = append(b.content[:start], b.content[b.cursor:]...)
	b.cursor = start
	return runewidth.StringWidth(removed)
}

// DeleteForward removes the rune at the cursor and returns its display
// width. At the end of the line it is a no-op returning 0.
func (b *Buffer) DeleteForward() int {
	if b.cursor >= len(b.content) {
		return 0
	}

	w := runewidth.RuneWidth(b.content[b.cursor])
	b.content = append(b.content[:b.cursor], b.content[b.cursor+1:]...)
	return w
}

// Left moves the cursor one rune left and returns the display width
// crossed. At the start of the line it is a no-op returning 0.
func (b *Buffer) Left() int {
	if b.cursor == 0 {
		return 0
	}
	b.cursor--
	return runewidth.RuneWidth(b.content[b.cursor])
}

// Right moves the cursor one rune right and returns the display width
// crossed. At the end of the line it is a no-op returning 0.
func (b *Buffer) Right() int {
	if b.cursor >= len(b.content) {
		return 0
	}
	w := runewidth.RuneWidth(b.content[b.cursor])
	b.cursor++
	return w
}

// Home moves the cursor to the start of the line and returns the display
// width crossed.
func (b *Buffer) Home() int {
	w := runewidth.StringWidth(string(b.content[:b.cursor]))
	b.cursor = 0
	return w
}

// End moves the cursor to the end of the line and returns the display
// width crossed.
func (b *Buffer) End() int {
	w := runewidth.StringWidth(string(b.content[b.cursor:]))
	b.cursor = len(b.content)
	return w
}

// WordLeft moves the cursor to the start of the word left of it: first
// over any whitespace, then over the adjoining non-whitespace run. It
// returns the display width crossed.
func (b *Buffer) WordLeft() int {
	target := b.wordLeftPos()
	w := runewidth.StringWidth(string(b.content[target:b.cursor]))
	b.cursor = target
	return w
}

// WordRight moves the cursor right over any whitespace and then the
// adjoining non-whitespace run. It returns the display width crossed.
func (b *Buffer) WordRight() int {
	target := b.wordRightPos()
	w := runewidth.StringWidth(string(b.content[b.cursor:target]))
	b.cursor = target
	return w
}

// DeleteWordLeft removes the span WordLeft would traverse and returns
// its display width.
func (b *Buffer) DeleteWordLeft() int {
	target := b.wordLeftPos()
	w := runewidth.StringWidth(string(b.content[target:b.cursor]))
	b.content = append(b.content[:target], b.content[b.cursor:]...)
	b.cursor = target
	return w
}

// DeleteWordRight removes the span WordRight would traverse and returns
// its display width. The cursor does not move.
func (b *Buffer) DeleteWordRight() int {
	target := b.wordRightPos()
	w := runewidth.StringWidth(string(b.content[b.cursor:target]))
	b.content = append(b.content[:b.cursor], b.content[target:]...)
	return w
}

// Set replaces the buffer content and moves the cursor to the end. Used
// when history navigation substitutes a stored line.
func (b *Buffer) Set(text string) {
	b.content = append(b.content[:0], []rune(text)...)
	b.cursor = len(b.content)
}

// Take returns the finished line and resets the buffer to empty.
func (b *Buffer) Take() string {
	line := string(b.content)
	b.content = b.content[:0]
	b.cursor = 0
	return line
}

func (b *Buffer) wordLeftPos() int {
	pos := b.cursor
	for pos > 0 && unicode.IsSpace(b.content[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(b.content[pos-1]) {
		pos--
	}
	return pos
}

func (b *Buffer) wordRightPos() int {
	pos := b.cursor
	for pos < len(b.content) && unicode.IsSpace(b.content[pos]) {
		pos++
	}
	for pos < len(b.content) && !unicode.IsSpace(b.content[pos]) {
		pos++
	}
	return pos
}

// lastClusterLen returns the rune count of the final grapheme cluster in
// rs. rs must be non-empty.
func lastClusterLen(rs []rune) int {
	var n int
	state := -1
	rest := string(rs)
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		n = len([]rune(cluster))
	}
	return n
}
