package mui

// CharField is the single-character editor of §4.6: a byte constrained to
// {space, A-Z, a-z, 0-9}, toggled into a "mud" capture mode that steps the
// byte forward/backward through the valid alphabet on NEXT/PREV.
type CharField struct {
	Value *byte
	Style VisualStyle
}

// NewCharField builds a single-character editor bound to value, defaulting
// to the pi style.
func NewCharField(value *byte) *CharField {
	return &CharField{Value: value, Style: StylePI}
}

func (f *CharField) Handle(ui *UIState, msg Message) Result {
	switch msg {
	case MsgDraw:
		f.draw(ui)
	case MsgCursorSelect, MsgValueIncrement, MsgValueDecrement:
		ui.IsMud = 1 - ui.IsMud
	case MsgEventNext:
		if ui.IsMud != 0 {
			f.step(1)
			return Consumed
		}
	case MsgEventPrev:
		if ui.IsMud != 0 {
			f.step(-1)
			return Consumed
		}
	}
	return Pass
}

// step advances *Value by delta, repeating until it lands on a valid
// character, exactly as the original's do/while walk.
func (f *CharField) step(delta int) {
	for {
		*f.Value = byte(int(*f.Value) + delta)
		if isValidChar(*f.Value) {
			return
		}
	}
}

func (f *CharField) draw(ui *UIState) {
	for !isValidChar(*f.Value) {
		*f.Value++
	}
	drawButton(ui, f.Style, ui.Display.MaxCharWidth(), ui.Style().ButtonPadH, string(*f.Value))
}
