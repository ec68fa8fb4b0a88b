package mui

import "strconv"

// U8MinMaxField is the integer picker of §4.4: a single byte clamped to
// [Min, Max], rendered as a fixed-width right-aligned numeric button.
//
// Two capture models are supported via Capture:
//
//	Capture == false ("mse"): SELECT/INCREMENT/DECREMENT mutate the value
//	  directly, wrapping at the range edges.
//	Capture == true ("mud"): SELECT/INCREMENT/DECREMENT toggle is_mud;
//	  while captured, NEXT/PREV mutate the value and consume the event.
type U8MinMaxField struct {
	Value *uint8
	Min   uint8
	Max   uint8
	Style VisualStyle
	// Capture selects the mud up/down-capture model over the single-press
	// mse model.
	Capture bool
}

// NewU8MinMaxField builds a picker bound to value, defaulting to the pi
// style and the single-press (mse) model.
func NewU8MinMaxField(value *uint8, min, max uint8) *U8MinMaxField {
	return &U8MinMaxField{Value: value, Min: min, Max: max, Style: StylePI}
}

func (f *U8MinMaxField) Handle(ui *UIState, msg Message) Result {
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

func (f *U8MinMaxField) increment() {
	*f.Value++
	if *f.Value > f.Max {
		*f.Value = f.Min
	}
}

func (f *U8MinMaxField) decrement() {
	if *f.Value > f.Min {
		*f.Value--
	} else {
		*f.Value = f.Max
	}
}

// decimalWidth returns 1, 2 or 3 — the digit width needed to show Max.
func (f *U8MinMaxField) decimalWidth() int {
	switch {
	case f.Max < 10:
		return 1
	case f.Max < 100:
		return 2
	default:
		return 3
	}
}

func (f *U8MinMaxField) draw(ui *UIState) {
	*f.Value = clampU8(*f.Value, f.Min, f.Max)
	text := strconv.Itoa(int(*f.Value))
	cnt := f.decimalWidth()
	for len(text) < cnt {
		text = " " + text
	}
	width := ui.Display.UTF8Width(placeholderDigits[:cnt]) + 1
	drawButton(ui, f.Style, width, ui.Style().ButtonPadH, text)
}

// placeholderDigits gives the draw routine a same-width string to measure
// against, mirroring the original's "999" scratch buffer sizing trick.
const placeholderDigits = "999"
