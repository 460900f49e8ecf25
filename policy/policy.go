package policy

import "fmt"

// Placeholder is the default replacement text for full redaction.
const Placeholder = "[REDACTED]"

// DefaultMask is the rune that hides masked code points.
const DefaultMask = '*'

type kind int

const (
	kindFull kind = iota
	kindKeep
	kindMask
)

// Text is a redaction strategy for string values. Construct one with [Full],
// [Keep], [Mask], or their variants; applying it never fails.
type Text struct {
	kind        kind
	placeholder string
	prefix      int
	suffix      int
	mask        rune
}

// Full replaces the entire value with [Placeholder].
func Full() Text {
	return FullWith(Placeholder)
}

// FullWith replaces the entire value with a custom placeholder. The
// placeholder is returned even for empty input.
func FullWith(placeholder string) Text {
	return Text{kind: kindFull, placeholder: placeholder}
}

// Keep leaves the first prefix and last suffix code points visible and masks
// everything between them. If prefix+suffix covers the whole value, the
// value is returned unchanged.
func Keep(prefix, suffix int) Text {
	return Text{kind: kindKeep, prefix: clamp(prefix), suffix: clamp(suffix), mask: DefaultMask}
}

// KeepFirst keeps only the first n code points visible.
func KeepFirst(n int) Text { return Keep(n, 0) }

// KeepLast keeps only the last n code points visible.
func KeepLast(n int) Text { return Keep(0, n) }

// Mask hides the first prefix and last suffix code points and leaves the
// middle visible. If prefix+suffix covers the whole value, every code point
// is masked.
func Mask(prefix, suffix int) Text {
	return Text{kind: kindMask, prefix: clamp(prefix), suffix: clamp(suffix), mask: DefaultMask}
}

// MaskFirst masks only the first n code points.
func MaskFirst(n int) Text { return Mask(n, 0) }

// MaskLast masks only the last n code points.
func MaskLast(n int) Text { return Mask(0, n) }

// WithMask returns a copy of the policy using the given mask rune. It has no
// effect on full-replacement policies, which substitute a placeholder string
// rather than masking individual code points.
func (t Text) WithMask(mask rune) Text {
	if t.kind != kindFull && mask != 0 {
		t.mask = mask
	}
	return t
}

// Apply transforms value according to the policy. Keep and Mask preserve the
// code point count of the input; Full does not.
func (t Text) Apply(value string) string {
	switch t.kind {
	case kindKeep:
		return t.applyKeep(value)
	case kindMask:
		return t.applyMask(value)
	default:
		return t.placeholder
	}
}

func (t Text) applyKeep(value string) string {
	runes := []rune(value)
	if t.prefix+t.suffix >= len(runes) {
		return value
	}
	for i := t.prefix; i < len(runes)-t.suffix; i++ {
		runes[i] = t.maskRune()
	}
	return string(runes)
}

func (t Text) applyMask(value string) string {
	runes := []rune(value)
	if t.prefix+t.suffix >= len(runes) {
		for i := range runes {
			runes[i] = t.maskRune()
		}
		return string(runes)
	}
	for i := 0; i < t.prefix; i++ {
		runes[i] = t.maskRune()
	}
	for i := len(runes) - t.suffix; i < len(runes); i++ {
		runes[i] = t.maskRune()
	}
	return string(runes)
}

func (t Text) maskRune() rune {
	if t.mask == 0 {
		return DefaultMask
	}
	return t.mask
}

// String describes the policy for diagnostics and CLI listings.
func (t Text) String() string {
	switch t.kind {
	case kindKeep:
		return fmt.Sprintf("keep(%d,%d)", t.prefix, t.suffix)
	case kindMask:
		return fmt.Sprintf("mask(%d,%d)", t.prefix, t.suffix)
	default:
		return fmt.Sprintf("full(%q)", t.placeholder)
	}
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
