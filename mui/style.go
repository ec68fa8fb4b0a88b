package mui

// StyleFlags is the drawing-flags bitmask the focus-style resolver produces
// and the Display primitives consume.
type StyleFlags uint8

const (
	Frame   StyleFlags = 1 << 0
	Invert  StyleFlags = 1 << 1
	XFrame  StyleFlags = 1 << 2
	HCenter StyleFlags = 1 << 3
)

// VisualStyle names one of the four focus/edit style families.
type VisualStyle uint8

const (
	StylePI VisualStyle = iota // plain / invert — input elements
	StyleFI                    // frame / invert — buttons
	StylePF                    // plain / frame
	StyleIF                    // invert / frame
)

// ResolveStyleFlags maps (focused, isMud) to drawing flags for the given
// visual style family. isMud is the raw is_mud byte; only "zero vs nonzero"
// is significant here, matching the base table.
func ResolveStyleFlags(style VisualStyle, focused bool, isMud uint8) StyleFlags {
	switch style {
	case StylePI:
		if !focused {
			return 0
		}
		if isMud == 0 {
			return Invert
		}
		return Invert | XFrame
	case StyleFI:
		if !focused {
			return Frame
		}
		if isMud == 0 {
			return Frame | Invert
		}
		return Frame
	case StylePF:
		if !focused {
			return 0
		}
		if isMud == 0 {
			return Frame
		}
		return Frame | Invert
	case StyleIF:
		if !focused {
			return Invert
		}
		if isMud == 0 {
			return Frame
		}
		return Frame | Invert
	default:
		return 0
	}
}

// Style carries the pixel constants field handlers need when composing
// drawing calls. Unlike the teacher's color-centric Style, a monochrome
// display has no palette to theme; what varies is spacing.
type Style struct {
	ButtonPadH        int // horizontal button padding
	ButtonPadV        int // vertical button padding, conventionally 1
	BarInset          int // inset of the filled region inside a bar's frame
	CheckboxGap       int // gap between a checkbox square and its label
	HalfDisplayMargin int // subtracted margin for w2-width buttons
	FullDisplayMargin int // not read by any field; w1-width buttons subtract the field's x per side
}

// DefaultStyle mirrors the teacher's DefaultStyle constructor pattern
// (style.go) generalized from color fields to the spacing constants this
// domain actually varies.
func DefaultStyle() Style {
	return Style{
		ButtonPadH:        1,
		ButtonPadV:        1,
		BarInset:          1,
		CheckboxGap:       2,
		HalfDisplayMargin: 10,
		FullDisplayMargin: 1,
	}
}
