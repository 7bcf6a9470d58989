package decoder

import (
	"unicode/utf8"

	"github.com/dshills/keyline/internal/key"
)

// MaxSequenceLen is the maximum number of bytes buffered for a pending
// escape sequence or multi-byte character before the decoder gives up
// and reports the bytes as a KeyUnknown event.
const MaxSequenceLen = 16

// state identifies the decoder's position in a control sequence.
type state uint8

const (
	ground  state = iota // no pending sequence
	escSeen              // 0x1B received
	csiSeen              // 0x1B 0x5B received, accumulating parameters
)

// Control bytes recognized in ground state.
const (
	ctrlC = 0x03
	ctrlD = 0x04
	ctrlH = 0x08
	ctrlW = 0x17
	esc   = 0x1b
	del   = 0x7f
)

// Decoder recognizes key events in a byte stream.
// The zero value is ready to use.
type Decoder struct {
	state state
	seq   []byte // pending escape sequence, including the leading ESC

	// UTF-8 accumulation for multi-byte characters.
	pending []byte
	need    int
}

// New creates a decoder in the ground state.
func New() *Decoder {
	return &Decoder{
		seq:     make([]byte, 0, MaxSequenceLen),
		pending: make([]byte, 0, utf8.UTFMax),
	}
}

// Feed processes one input byte. It returns the resolved event and true,
// or a zero event and false if the byte extended a pending sequence.
func (d *Decoder) Feed(b byte) (key.Event, bool) {
	switch d.state {
	case escSeen:
		return d.feedEscape(b)
	case csiSeen:
		return d.feedCSI(b)
	default:
		return d.feedGround(b)
	}
}

// Reset discards all pending state and returns the decoder to ground.
func (d *Decoder) Reset() {
	d.state = ground
	d.seq = d.seq[:0]
	d.pending = d.pending[:0]
	d.need = 0
}

func (d *Decoder) feedGround(b byte) (key.Event, bool) {
	// A multi-byte character in progress consumes continuation bytes
	// before anything else.
	if d.need > 0 {
		return d.feedContinuation(b)
	}

	switch {
	case b == esc:
		d.state = escSeen
		d.seq = append(d.seq[:0], b)
		return key.Event{}, false
	case b == '\r' || b == '\n':
		return key.Special(key.KeyEnter), true
	case b == ctrlH || b == del:
		return key.Special(key.KeyBackspace), true
	case b == ctrlC:
		return key.Special(key.KeyInterrupt), true
	case b == ctrlD:
		return key.Special(key.KeyEOF), true
	case b == ctrlW:
		return key.Special(key.KeyDeleteWordLeft), true
	case b == '\t':
		// Tab inserts as a plain character; completion is the
		// caller's concern.
		return key.RuneEvent('\t'), true
	case b < 0x20:
		// Unhandled C0 control byte.
		return key.Unknown([]byte{b}), true
	case b < utf8.RuneSelf:
		return key.RuneEvent(rune(b)), true
	default:
		return d.feedLeadByte(b)
	}
}

// feedLeadByte starts UTF-8 accumulation for a non-ASCII byte.
func (d *Decoder) feedLeadByte(b byte) (key.Event, bool) {
	var need int
	switch {
	case b&0xe0 == 0xc0:
		need = 1
	case b&0xf0 == 0xe0:
		need = 2
	case b&0xf8 == 0xf0:
		need = 3
	default:
		// Continuation or invalid lead byte with nothing pending.
		return key.Unknown([]byte{b}), true
	}

	d.pending = append(d.pending[:0], b)
	d.need = need
	return key.Event{}, false
}

func (d *Decoder) feedContinuation(b byte) (key.Event, bool) {
	if b&0xc0 != 0x80 {
		// Broken sequence. The accumulated bytes and the offending
		// byte surface together as one unknown event; decoding
		// resumes from ground on the next byte.
		bad := append(d.pending, b)
		d.pending = d.pending[:0]
		d.need = 0
		return key.Unknown(bad), true
	}

	d.pending = append(d.pending, b)
	d.need--
	if d.need > 0 {
		return key.Event{}, false
	}

	r, size := utf8.DecodeRune(d.pending)
	ev := key.Unknown(d.pending)
	if r != utf8.RuneError || size == len(d.pending) {
		ev = key.RuneEvent(r)
	}
	d.pending = d.pending[:0]
	return ev, true
}

func (d *Decoder) feedEscape(b byte) (key.Event, bool) {
	if b == '[' {
		d.state = csiSeen
		d.seq = append(d.seq, b)
		return key.Event{}, false
	}

	// Alt+Backspace arrives as ESC followed by a backspace byte.
	if b == del || b == ctrlH {
		d.Reset()
		return key.Special(key.KeyDeleteWordLeft), true
	}

	// Not a CSI introducer. Report the whole sequence rather than
	// silently dropping ambiguous input.
	d.seq = append(d.seq, b)
	ev := key.Unknown(d.seq)
	d.Reset()
	return ev, true
}

func (d *Decoder) feedCSI(b byte) (key.Event, bool) {
	if len(d.seq) >= MaxSequenceLen {
		ev := key.Unknown(append(d.seq, b))
		d.Reset()
		return ev, true
	}

	if b >= '0' && b <= '9' || b == ';' {
		d.seq = append(d.seq, b)
		return key.Event{}, false
	}

	d.seq = append(d.seq, b)
	ev := d.resolveCSI(b)
	d.Reset()
	return ev, true
}

// resolveCSI maps a completed CSI sequence to a key event. The final
// byte has already been appended to d.seq.
func (d *Decoder) resolveCSI(final byte) key.Event {
	params := d.csiParams()
	mods := key.ModNone
	if len(params) >= 2 {
		mods = key.FromCSIParam(params[1])
	}

	switch final {
	case 'A':
		return key.Special(key.KeyHistoryPrev)
	case 'B':
		return key.Special(key.KeyHistoryNext)
	case 'C':
		if mods.Has(key.ModCtrl) || mods.Has(key.ModAlt) {
			return key.Special(key.KeyWordRight)
		}
		return key.Special(key.KeyRight)
	case 'D':
		if mods.Has(key.ModCtrl) || mods.Has(key.ModAlt) {
			return key.Special(key.KeyWordLeft)
		}
		return key.Special(key.KeyLeft)
	case 'H':
		return key.Special(key.KeyHome)
	case 'F':
		return key.Special(key.KeyEnd)
	case '~':
		return d.resolveTilde(params, mods)
	}

	return key.Unknown(d.seq)
}

// resolveTilde handles VT-style "ESC [ n ~" sequences.
func (d *Decoder) resolveTilde(params []int, mods key.Modifier) key.Event {
	if len(params) == 0 {
		return key.Unknown(d.seq)
	}

	switch params[0] {
	case 1, 7:
		return key.Special(key.KeyHome)
	case 3:
		if mods.Has(key.ModCtrl) || mods.Has(key.ModAlt) {
			return key.Special(key.KeyDeleteWordRight)
		}
		return key.Special(key.KeyDelete)
	case 4, 8:
		return key.Special(key.KeyEnd)
	}

	return key.Unknown(d.seq)
}

// csiParams parses the numeric parameters between "ESC [" and the final
// byte. Empty parameters parse as zero.
func (d *Decoder) csiParams() []int {
	body := d.seq[2 : len(d.seq)-1]
	if len(body) == 0 {
		return nil
	}

	var params []int
	n := 0
	for _, b := range body {
		if b == ';' {
			params = append(params, n)
			n = 0
			continue
		}
		n = n*10 + int(b-'0')
	}
	return append(params, n)
}
