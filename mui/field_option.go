package mui

import "strings"

// splitOptions splits a field's pipe-separated option text (§3's option-line
// invariant). An empty string yields a single empty option, matching the
// original's "first option has value 0" contract even with no text set.
func splitOptions(text string) []string {
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "|")
}

// OptionLineField is the opt_line picker of §4.7: ui.Text holds '|'-separated
// options and Value indexes the one currently displayed.
type OptionLineField struct {
	Value *uint8
	Style VisualStyle
	// Capture selects the mud up/down-capture model over the single-press
	// mse model.
	Capture bool
}

func NewOptionLineField(value *uint8) *OptionLineField {
	return &OptionLineField{Value: value, Style: StylePI}
}

func (f *OptionLineField) Handle(ui *UIState, msg Message) Result {
	options := splitOptions(ui.Text)
	switch msg {
	case MsgDraw:
		if int(*f.Value) >= len(options) {
			*f.Value = 0
		}
		drawButton(ui, f.Style, int(ui.Arg), 1, options[*f.Value])
	case MsgCursorSelect, MsgValueIncrement, MsgValueDecrement:
		if f.Capture {
			ui.IsMud = 1 - ui.IsMud
			return Pass
		}
		if msg == MsgValueDecrement {
			f.prev(options)
		} else {
			f.next(options)
		}
	case MsgEventNext:
		if f.Capture && ui.IsMud != 0 {
			f.next(options)
			return Consumed
		}
	case MsgEventPrev:
		if f.Capture && ui.IsMud != 0 {
			f.prev(options)
			return Consumed
		}
	}
	return Pass
}

func (f *OptionLineField) next(options []string) {
	*f.Value++
	if int(*f.Value) >= len(options) {
		*f.Value = 0
	}
}

func (f *OptionLineField) prev(options []string) {
	if *f.Value > 0 {
		*f.Value--
	} else {
		*f.Value = uint8(len(options) - 1)
	}
}

// CheckboxField is the checkbox of §4.7: *Value is 0 or 1, drawn as a
// filled/unfilled square of side = font ascent, with ui.Text as an optional
// trailing label.
type CheckboxField struct {
	Value *uint8
}

func NewCheckboxField(value *uint8) *CheckboxField {
	return &CheckboxField{Value: value}
}

func (f *CheckboxField) Handle(ui *UIState, msg Message) Result {
	switch msg {
	case MsgDraw:
		f.draw(ui)
	case MsgCursorSelect, MsgValueIncrement, MsgValueDecrement:
		*f.Value++
		if *f.Value > 1 {
			*f.Value = 0
		}
	}
	return Pass
}

func (f *CheckboxField) draw(ui *UIState) {
	if *f.Value > 1 {
		*f.Value = 1
	}
	x := scaleX(ui.Display, ui.X)
	a := ui.Display.Ascent()
	ui.Display.DrawCheckbox(x, ui.Y, a, *f.Value != 0)

	w := 0
	if ui.Text != "" {
		w = ui.Display.UTF8Width(ui.Text)
		a += ui.Style().CheckboxGap
		ui.Display.DrawUTF8(x+a, ui.Y, ui.Text)
	}

	flags := StyleFlags(0)
	if ui.CursorFocus {
		flags = Invert
	}
	ui.Display.DrawButtonFrame(x, ui.Y, flags, w+a, 1, ui.Style().ButtonPadV)
}

// RadioField is one button of a radio group (§4.7): *Value is written with
// ui.Arg on select, and this row draws filled iff *Value == ui.Arg.
type RadioField struct {
	Value *uint8
}

func NewRadioField(value *uint8) *RadioField {
	return &RadioField{Value: value}
}

func (f *RadioField) Handle(ui *UIState, msg Message) Result {
	switch msg {
	case MsgDraw:
		f.draw(ui)
	case MsgCursorSelect, MsgValueIncrement, MsgValueDecrement:
		*f.Value = ui.Arg
	}
	return Pass
}

func (f *RadioField) draw(ui *UIState) {
	x := scaleX(ui.Display, ui.X)
	a := ui.Display.Ascent()
	ui.Display.DrawCheckbox(x, ui.Y, a, *f.Value == ui.Arg)

	w := 0
	if ui.Text != "" {
		w = ui.Display.UTF8Width(ui.Text)
		a += ui.Style().CheckboxGap
		ui.Display.DrawUTF8(x+a, ui.Y, ui.Text)
	}

	flags := StyleFlags(0)
	if ui.CursorFocus {
		flags = Invert
	}
	ui.Display.DrawButtonFrame(x, ui.Y, flags, w+a, 1, ui.Style().ButtonPadV)
}

// OptionParentField lives on the outer form (§4.7): selecting it saves the
// current form/position and jumps to the child form (ui.Arg) with the
// child's initial cursor at *Value.
type OptionParentField struct {
	Value *uint8
}

func NewOptionParentField(value *uint8) *OptionParentField {
	return &OptionParentField{Value: value}
}

func (f *OptionParentField) Handle(ui *UIState, msg Message) Result {
	options := splitOptions(ui.Text)
	switch msg {
	case MsgDraw:
		if int(*f.Value) >= len(options) {
			*f.Value = 0
		}
		drawButton(ui, StylePI, 0, 1, options[*f.Value])
	case MsgCursorSelect, MsgValueIncrement, MsgValueDecrement:
		ui.Host.SaveForm()
		ui.Host.GotoForm(ui.Arg, *f.Value)
	}
	return Pass
}

// handleOptionChildCommon is the shared child-of-parent bookkeeping from
// §4.7 ("Option child common"): scroll-window setup on FORM_START, the
// scroll controller for ENTER/NEXT/PREV, and select-writes-back-and-restore.
//
// It deliberately does NOT reset ui.Scroll.Top on FORM_START — see the open
// question in §9 on the scroll-top reset divergence versus the U16-list
// child, preserved here unchanged.
func handleOptionChildCommon(ui *UIState, msg Message, value *uint8) Result {
	arg := ui.Arg
	switch msg {
	case MsgFormStart:
		if ui.Scroll.Visible <= int(arg) {
			ui.Scroll.Visible = int(arg) + 1
		}
		if ui.Scroll.Total == 0 {
			ui.Scroll.Total = ui.SelectableOptionCount()
		}
	case MsgCursorEnter:
		return ui.Scroll.CursorEnter(arg)
	case MsgCursorSelect, MsgValueIncrement, MsgValueDecrement:
		if value != nil {
			*value = uint8(ui.Scroll.Top) + arg
		}
		ui.Host.RestoreForm()
	case MsgEventNext:
		if ui.Scroll.Next(arg) {
			return Consumed
		}
	case MsgEventPrev:
		if ui.Scroll.Prev(arg) {
			return Consumed
		}
	}
	return Pass
}

// OptionChildField is the plain text child row (mui_u8g2_u8_opt_child_wm_pi):
// no value mark, just the option label recovered from ui.Text or, if empty,
// from the parent form's option list via LastForm.
type OptionChildField struct {
	Value *uint8
}

func NewOptionChildField(value *uint8) *OptionChildField {
	return &OptionChildField{Value: value}
}

func (f *OptionChildField) Handle(ui *UIState, msg Message) Result {
	if msg == MsgDraw {
		text := ui.Text
		if text == "" {
			text = ui.OptionText(int(ui.Arg) + ui.Scroll.Top)
		}
		if text != "" {
			drawButton(ui, StylePI, 0, 1, text)
		}
		return Pass
	}
	return handleOptionChildCommon(ui, msg, f.Value)
}

// OptionRadioChildField is the radio-style child row of §4.7: draws a value
// mark when *Value equals the row's absolute index (ui.Arg+ui.Scroll.Top),
// plus a focus frame either around the text (W1 == false, "wm") or spanning
// the full display width (W1 == true, "w1").
type OptionRadioChildField struct {
	Value *uint8
	W1    bool
}

func NewOptionRadioChildField(value *uint8) *OptionRadioChildField {
	return &OptionRadioChildField{Value: value}
}

func (f *OptionRadioChildField) Handle(ui *UIState, msg Message) Result {
	if msg == MsgDraw {
		f.draw(ui)
		return Pass
	}
	return handleOptionChildCommon(ui, msg, f.Value)
}

func (f *OptionRadioChildField) draw(ui *UIState) {
	arg := ui.Arg
	x := scaleX(ui.Display, ui.X)
	y := ui.Y
	a := ui.Display.Ascent() - 2
	isFocus := ui.CursorFocus
	pos := int(arg) + ui.Scroll.Top

	if int(*f.Value) == pos {
		ui.Display.DrawValueMark(x, y, a)
	}

	text := ui.Text
	if text == "" {
		text = ui.OptionText(pos)
	}

	if f.W1 {
		if text != "" {
			ui.Display.DrawUTF8(x+a+ui.Style().CheckboxGap, y, text)
		}
		if isFocus {
			ui.Display.DrawButtonFrame(0, y, Invert, ui.Display.DisplayWidth(), 0, ui.Style().ButtonPadV)
		}
		return
	}

	w := 0
	if text != "" {
		w = ui.Display.UTF8Width(text)
		a += ui.Style().CheckboxGap
		ui.Display.DrawUTF8(x+a, y, text)
	}
	if isFocus {
		ui.Display.DrawButtonFrame(x, y, Invert, w+a, 1, ui.Style().ButtonPadV)
	}
}
