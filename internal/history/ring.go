package history

// DefaultCapacity is used when a caller passes a non-positive capacity.
const DefaultCapacity = 100

// Ring is a fixed-capacity, insertion-ordered store of completed lines
// with a browse cursor for history navigation.
type Ring struct {
	entries []string
	head    int // index of the oldest entry
	count   int
	browse  int // logical position while browsing, -1 = not browsing
}

// New creates a ring holding at most capacity entries.
func New(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{
		entries: make([]string, capacity),
		browse:  -1,
	}
}

// Len returns the number of stored entries.
func (r *Ring) Len() int {
	return r.count
}

// Cap returns the fixed capacity.
func (r *Ring) Cap() int {
	return len(r.entries)
}

// Browsing returns true while the browse cursor is active.
func (r *Ring) Browsing() bool {
	return r.browse >= 0
}

// Record appends a completed line. Empty lines and lines equal to the
// newest entry are skipped. At capacity the oldest entry is overwritten.
// Recording always leaves the browse cursor cleared.
func (r *Ring) Record(line string) {
	r.browse = -1

	if line == "" {
		return
	}
	if r.count > 0 && r.at(r.count-1) == line {
		return
	}

	if r.count < len(r.entries) {
		r.entries[(r.head+r.count)%len(r.entries)] = line
		r.count++
		return
	}

	r.entries[r.head] = line
	r.head = (r.head + 1) % len(r.entries)
}

// Prev moves the browse cursor one entry older and returns that entry.
// The first call starts at the newest entry. At the oldest entry the
// cursor holds position; there is no wraparound. Returns ok=false only
// when the ring is empty.
func (r *Ring) Prev() (string, bool) {
	if r.count == 0 {
		return "", false
	}

	switch {
	case r.browse < 0:
		r.browse = r.count - 1
	case r.browse > 0:
		r.browse--
	}
	return r.at(r.browse), true
}

// Next moves the browse cursor one entry newer and returns that entry.
// Stepping past the newest entry clears the cursor and returns ok=false,
// signaling a return to the in-progress line.
func (r *Ring) Next() (string, bool) {
	if r.browse < 0 {
		return "", false
	}

	r.browse++
	if r.browse >= r.count {
		r.browse = -1
		return "", false
	}
	return r.at(r.browse), true
}

// Current returns the entry under the browse cursor, or ok=false when
// not browsing.
func (r *Ring) Current() (string, bool) {
	if r.browse < 0 {
		return "", false
	}
	return r.at(r.browse), true
}

// ResetCursor clears the browse cursor without touching entries.
func (r *Ring) ResetCursor() {
	r.browse = -1
}

// Entries returns a snapshot of all entries, oldest first.
func (r *Ring) Entries() []string {
	out := make([]string, r.count)
	for i := 0; i < r.count; i++ {
		out[i] = r.at(i)
	}
	return out
}

// Seed records each line in order, applying the usual suppression
// rules. Used to preload the ring from a persistence store.
func (r *Ring) Seed(lines []string) {
	for _, line := range lines {
		r.Record(line)
	}
}

// at returns the entry at logical position i, 0 = oldest.
func (r *Ring) at(i int) string {
	return r.entries[(r.head+i)%len(r.entries)]
}
