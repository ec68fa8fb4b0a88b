package mui

import "strconv"

// BarFlags configures a BarField's rendering and wrap behaviour (§4.5).
type BarFlags uint8

const (
	BarNoWrap    BarFlags = 1 << 0
	BarScale2X   BarFlags = 1 << 1
	BarScale4X   BarFlags = 1 << 2
	BarShowValue BarFlags = 1 << 3
)

// BarField is the bar/slider control of §4.5: a stepped, optionally-wrapping
// U8MinMax with a pixel-mapped fill and an optional numeric readout.
type BarField struct {
	Value *uint8
	Min   uint8
	Max   uint8
	Step  uint8
	// Width, when non-zero, switches to fixed-width mode: the bar spans
	// Width value-units regardless of Max. Zero means variable-width mode,
	// where the bar spans Max value-units.
	Width uint8
	Flags BarFlags
	Style VisualStyle
	// Capture selects the mud up/down-capture model over the single-press
	// mse model, exactly as U8MinMaxField.Capture.
	Capture bool
}

// NewBarField builds a variable-width bar with the given step, defaulting
// to the pi style and the single-press model. Use the Flags/Width/Capture
// fields directly to configure fixed width, wrap, scale or capture mode.
func NewBarField(value *uint8, min, max, step uint8) *BarField {
	return &BarField{Value: value, Min: min, Max: max, Step: step, Style: StylePI}
}

func (f *BarField) scale() int {
	scale := 0
	if f.Flags&BarScale2X != 0 {
		scale |= 1
	}
	if f.Flags&BarScale4X != 0 {
		scale |= 2
	}
	return scale
}

func (f *BarField) Handle(ui *UIState, msg Message) Result {
	switch msg {
	case MsgDraw:
		f.draw(ui)
	case MsgCursorSelect, MsgValueIncrement, MsgValueDecrement:
		if f.Capture {
			ui.IsMud = 1 - ui.IsMud
			return Pass
		}
		if msg == MsgValueDecrement {
			f.decrement()
		} else {
			f.increment()
		}
	case MsgEventNext:
		if f.Capture && ui.IsMud != 0 {
			f.increment()
			return Consumed
		}
	case MsgEventPrev:
		if f.Capture && ui.IsMud != 0 {
			f.decrement()
			return Consumed
		}
	}
	return Pass
}

func (f *BarField) increment() {
	v := int(*f.Value) + int(f.Step)
	if v > int(f.Max) {
		if f.Flags&BarNoWrap != 0 {
			*f.Value = f.Max
		} else {
			*f.Value = f.Min
		}
		return
	}
	*f.Value = uint8(v)
}

func (f *BarField) decrement() {
	if *f.Value >= f.Min+f.Step {
		*f.Value -= f.Step
		return
	}
	if f.Flags&BarNoWrap != 0 {
		*f.Value = f.Min
	} else {
		*f.Value = f.Max
	}
}

func (f *BarField) draw(ui *UIState) {
	*f.Value = clampU8(*f.Value, f.Min, f.Max)
	scale := f.scale()

	var barUnits, pixels int
	if f.Width == 0 {
		barUnits = int(f.Max) << scale
		pixels = int(*f.Value) << scale
	} else {
		barUnits = int(f.Width) << scale
		// Wider intermediate arithmetic (§4.5) — int is 64-bit on every Go
		// target this engine runs on, so int already avoids the overflow
		// the original's u8g2_long_t cast exists to prevent.
		pixels = int(*f.Value) * barUnits / int(f.Max)
	}

	w := barUnits + 2
	x := scaleX(ui.Display, ui.X)
	height := ui.Display.Ascent()
	ui.Display.DrawFrame(x, ui.Y-height, w, height)
	ui.Display.DrawBox(x+ui.Style().BarInset, ui.Y-height+ui.Style().BarInset, pixels, height-2*ui.Style().BarInset)

	if f.Flags&BarShowValue != 0 {
		w += 2
		text := strconv.Itoa(int(*f.Value))
		ui.Display.DrawUTF8(x+w, ui.Y, text)
		w += ui.Display.UTF8Width(text) + 1
	}

	drawButtonFrame(ui, f.Style, w, 1)
}
