package linebuf

import "testing"

// typeString inserts every rune of s at the cursor.
func typeString(b *Buffer, s string) {
	for _, r := range s {
		b.Insert(r)
	}
}

// checkInvariant fails the test if the cursor left the valid range.
func checkInvariant(t *testing.T, b *Buffer) {
	t.Helper()
	if b.Cursor() < 0 || b.Cursor() > b.Len() {
		t.Fatalf("cursor invariant violated: cursor=%d len=%d", b.Cursor(), b.Len())
	}
}

func TestNewBuffer(t *testing.T) {
	b := New(64)

	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}
	if b.Len() != 0 {
		t.Errorf("expected length 0, got %d", b.Len())
	}
	if b.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", b.Cursor())
	}
}

func TestInsert(t *testing.T) {
	b := New(8)
	typeString(b, "hello")

	if b.Text() != "hello" {
		t.Errorf("expected %q, got %q", "hello", b.Text())
	}
	if b.Cursor() != 5 {
		t.Errorf("expected cursor 5, got %d", b.Cursor())
	}
}

func TestInsertMidLine(t *testing.T) {
	b := New(8)
	typeString(b, "held")
	b.Left()
	b.Insert('l')

	if b.Text() != "helld" {
		t.Errorf("expected %q, got %q", "helld", b.Text())
	}
	if b.Cursor() != 4 {
		t.Errorf("expected cursor 4, got %d", b.Cursor())
	}
}

func TestInsertReportsWidth(t *testing.T) {
	b := New(8)

	if w := b.Insert('a'); w != 1 {
		t.Errorf("Insert('a') width = %d, want 1", w)
	}
	if w := b.Insert('世'); w != 2 {
		t.Errorf("Insert('世') width = %d, want 2", w)
	}
}

func TestDeleteBackward(t *testing.T) {
	b := New(8)
	typeString(b, "hello")

	if w := b.DeleteBackward(); w != 1 {
		t.Errorf("DeleteBackward width = %d, want 1", w)
	}
	if b.Text() != "hell" {
		t.Errorf("expected %q, got %q", "hell", b.Text())
	}
}

func TestDeleteBackwardAtStart(t *testing.T) {
	b := New(8)
	typeString(b, "ab")
	b.Home()

	if w := b.DeleteBackward(); w != 0 {
		t.Errorf("DeleteBackward at start = %d, want 0 (no-op)", w)
	}
	if b.Text() != "ab" {
		t.Errorf("buffer changed on no-op: %q", b.Text())
	}
	checkInvariant(t, b)
}

func TestDeleteBackwardGraphemeCluster(t *testing.T) {
	b := New(8)
	// "e" followed by a combining acute accent is one grapheme cluster
	// of two runes.
	typeString(b, "aé")

	b.DeleteBackward()
	if b.Text() != "a" {
		t.Errorf("expected combining sequence removed in one step, got %q", b.Text())
	}
	if b.Cursor() != 1 {
		t.Errorf("expected cursor 1, got %d", b.Cursor())
	}
}

func TestDeleteForward(t *testing.T) {
	b := New(8)
	typeString(b, "abc")
	b.Home()

	if w := b.DeleteForward(); w != 1 {
		t.Errorf("DeleteForward width = %d, want 1", w)
	}
	if b.Text() != "bc" {
		t.Errorf("expected %q, got %q", "bc", b.Text())
	}
	if b.Cursor() != 0 {
		t.Errorf("cursor should stay at 0, got %d", b.Cursor())
	}
}

func TestDeleteForwardAtEnd(t *testing.T) {
	b := New(8)
	typeString(b, "abc")

	if w := b.DeleteForward(); w != 0 {
		t.Errorf("DeleteForward at end = %d, want 0 (no-op)", w)
	}
	if b.Text() != "abc" {
		t.Errorf("buffer changed on no-op: %q", b.Text())
	}
}

func TestMoveClampsAtBounds(t *testing.T) {
	b := New(8)
	typeString(b, "ab")

	if w := b.Right(); w != 0 {
		t.Errorf("Right at end = %d, want 0", w)
	}

	b.Home()
	if w := b.Left(); w != 0 {
		t.Errorf("Left at start = %d, want 0", w)
	}
	checkInvariant(t, b)
}

func TestHomeEnd(t *testing.T) {
	b := New(8)
	typeString(b, "hello")

	if w := b.Home(); w != 5 {
		t.Errorf("Home width = %d, want 5", w)
	}
	if b.Cursor() != 0 {
		t.Errorf("cursor after Home = %d, want 0", b.Cursor())
	}

	if w := b.End(); w != 5 {
		t.Errorf("End width = %d, want 5", w)
	}
	if b.Cursor() != 5 {
		t.Errorf("cursor after End = %d, want 5", b.Cursor())
	}
}

func TestWideRuneWidths(t *testing.T) {
	b := New(8)
	typeString(b, "a世b")

	if w := b.Home(); w != 4 {
		t.Errorf("Home over 'a世b' = %d columns, want 4", w)
	}
	if w := b.Right(); w != 1 {
		t.Errorf("Right over 'a' = %d, want 1", w)
	}
	if w := b.Right(); w != 2 {
		t.Errorf("Right over '世' = %d, want 2", w)
	}
	if w := b.WidthAfterCursor(); w != 1 {
		t.Errorf("WidthAfterCursor = %d, want 1", w)
	}
}

func TestWordLeft(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantCursor int
	}{
		{"single word", "hello", 0},
		{"two words", "foo bar", 4},
		{"trailing spaces", "foo bar  ", 4},
		{"all spaces", "   ", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(16)
			typeString(b, tt.text)
			b.WordLeft()
			if b.Cursor() != tt.wantCursor {
				t.Errorf("cursor = %d, want %d", b.Cursor(), tt.wantCursor)
			}
			checkInvariant(t, b)
		})
	}
}

func TestWordRight(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start      int
		wantCursor int
	}{
		{"from start", "foo bar", 0, 3},
		{"from space", "foo bar", 3, 7},
		{"at end", "foo", 3, 3},
		{"leading spaces", "  foo", 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(16)
			typeString(b, tt.text)
			b.Home()
			for i := 0; i < tt.start; i++ {
				b.Right()
			}
			b.WordRight()
			if b.Cursor() != tt.wantCursor {
				t.Errorf("cursor = %d, want %d", b.Cursor(), tt.wantCursor)
			}
		})
	}
}

// DeleteWordLeft must remove exactly the span WordLeft traverses from
// the same position, leaving the cursor at the span's start.
func TestDeleteWordLeftMatchesWordLeft(t *testing.T) {
	texts := []string{"foo bar baz", "foo   bar", "  leading", "one"}

	for _, text := range texts {
		probe := New(16)
		typeString(probe, text)
		probe.WordLeft()
		wantCursor := probe.Cursor()
		wantText := string([]rune(text)[:wantCursor])

		b := New(16)
		typeString(b, text)
		b.DeleteWordLeft()

		if b.Cursor() != wantCursor {
			t.Errorf("%q: cursor = %d, want %d", text, b.Cursor(), wantCursor)
		}
		if b.Text() != wantText {
			t.Errorf("%q: text = %q, want %q", text, b.Text(), wantText)
		}
		checkInvariant(t, b)
	}
}

func TestDeleteWordRight(t *testing.T) {
	b := New(16)
	typeString(b, "foo bar")
	b.Home()

	b.DeleteWordRight()
	if b.Text() != " bar" {
		t.Errorf("expected %q, got %q", " bar", b.Text())
	}
	if b.Cursor() != 0 {
		t.Errorf("cursor should not move, got %d", b.Cursor())
	}
}

func TestSet(t *testing.T) {
	b := New(16)
	typeString(b, "draft")

	b.Set("from history")
	if b.Text() != "from history" {
		t.Errorf("expected %q, got %q", "from history", b.Text())
	}
	if b.Cursor() != b.Len() {
		t.Errorf("cursor should be at end, got %d", b.Cursor())
	}
}

func TestTake(t *testing.T) {
	b := New(16)
	typeString(b, "done")

	line := b.Take()
	if line != "done" {
		t.Errorf("Take() = %q, want %q", line, "done")
	}
	if !b.IsEmpty() || b.Cursor() != 0 {
		t.Errorf("buffer not reset: %q cursor=%d", b.Text(), b.Cursor())
	}
}

func TestBeforeAfterCursor(t *testing.T) {
	b := New(16)
	typeString(b, "hello")
	b.Left()
	b.Left()

	if got := b.BeforeCursor(); got != "hel" {
		t.Errorf("BeforeCursor() = %q, want %q", got, "hel")
	}
	if got := b.AfterCursor(); got != "lo" {
		t.Errorf("AfterCursor() = %q, want %q", got, "lo")
	}
}

// The cursor invariant holds after any sequence of operations.
func TestCursorInvariantUnderRandomOps(t *testing.T) {
	b := New(8)
	ops := []func(){
		func() { b.Insert('x') },
		func() { b.Insert(' ') },
		func() { b.DeleteBackward() },
		func() { b.DeleteForward() },
		func() { b.Left() },
		func() { b.Right() },
		func() { b.Home() },
		func() { b.End() },
		func() { b.WordLeft() },
		func() { b.WordRight() },
		func() { b.DeleteWordLeft() },
		func() { b.DeleteWordRight() },
		func() { b.Set("abc def") },
		func() { b.Take() },
	}

	// Deterministic pseudo-random walk over the operation set.
	seed := uint64(0x9e3779b97f4a7c15)
	for i := 0; i < 5000; i++ {
		seed = seed*6364136223846793005 + 1442695040888963407
		ops[seed%uint64(len(ops))]()
		checkInvariant(t, b)
	}
}
