package mui

// ButtonWidth selects one of the three button-sizing conventions of §4.9.
type ButtonWidth uint8

const (
	// WidthText sizes the button to its label ("wm").
	WidthText ButtonWidth = iota
	// WidthHalf sizes the button to half the display width, minus the
	// style's HalfDisplayMargin ("w2").
	WidthHalf
	// WidthFull sizes the button to the full display width, minus the
	// field's x on each side, 2*x in total ("w1").
	WidthFull
)

// GotoButtonField is the navigation button of §4.9: selecting it jumps to
// the form named by ui.Arg via goto-form-auto-cursor.
type GotoButtonField struct {
	Width ButtonWidth
	Style VisualStyle
}

func NewGotoButtonField(width ButtonWidth, style VisualStyle) *GotoButtonField {
	return &GotoButtonField{Width: width, Style: style}
}

func (f *GotoButtonField) Handle(ui *UIState, msg Message) Result {
	switch msg {
	case MsgDraw:
		drawButtonCentered(ui, f.Style, f.pixelWidth(ui), f.padH(ui), ui.Text)
	case MsgCursorSelect, MsgValueIncrement, MsgValueDecrement:
		ui.Host.GotoFormAutoCursor(ui.Arg)
	}
	return Pass
}

func (f *GotoButtonField) pixelWidth(ui *UIState) int {
	switch f.Width {
	case WidthHalf:
		return ui.Display.DisplayWidth()/2 - ui.Style().HalfDisplayMargin
	case WidthFull:
		return ui.Display.DisplayWidth() - ui.X*2
	default:
		return 0
	}
}

func (f *GotoButtonField) padH(ui *UIState) int {
	if f.Width == WidthHalf {
		return 0
	}
	return ui.Style().ButtonPadH
}

// ExitButtonField is the exit button of §4.9: selecting it optionally writes
// ui.Arg into the bound slot, saves the current form, and leaves the menu.
type ExitButtonField struct {
	Value *uint8 // optional; nil if the exit value is not captured
	Style VisualStyle
}

func NewExitButtonField(value *uint8, style VisualStyle) *ExitButtonField {
	return &ExitButtonField{Value: value, Style: style}
}

func (f *ExitButtonField) Handle(ui *UIState, msg Message) Result {
	switch msg {
	case MsgDraw:
		drawButtonCentered(ui, f.Style, 0, ui.Style().ButtonPadH, ui.Text)
	case MsgCursorSelect, MsgValueIncrement, MsgValueDecrement:
		if f.Value != nil {
			*f.Value = ui.Arg
		}
		ui.Host.SaveForm()
		ui.Host.LeaveForm()
		return Consumed
	}
	return Pass
}
