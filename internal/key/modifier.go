package key

import "strings"

// Modifier represents keyboard modifier keys reported by CSI sequences.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key.
	ModAlt
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns m with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// String returns a "+"-joined list of modifier names.
func (m Modifier) String() string {
	if m == ModNone {
		return "None"
	}
	var parts []string
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	return strings.Join(parts, "+")
}

// FromCSIParam converts an xterm modifier parameter (the "5" in
// "ESC [ 1 ; 5 C") to a Modifier. The parameter encodes modifiers+1 as a
// bitmask: 2=Shift, 3=Alt, 5=Ctrl, and sums thereof.
func FromCSIParam(p int) Modifier {
	if p < 2 {
		return ModNone
	}
	bits := p - 1
	var m Modifier
	if bits&1 != 0 {
		m = m.With(ModShift)
	}
	if bits&2 != 0 {
		m = m.With(ModAlt)
	}
	if bits&4 != 0 {
		m = m.With(ModCtrl)
	}
	return m
}
