package mui

import "testing"

func TestOptionLineFieldWrapsOverTokens(t *testing.T) {
	v := uint8(2)
	f := NewOptionLineField(&v)
	ui := &UIState{Text: "red|green|blue"}

	f.Handle(ui, MsgCursorSelect)
	if v != 0 {
		t.Errorf("expected SELECT past the last option to wrap to 0, got %d", v)
	}

	f.Handle(ui, MsgValueDecrement)
	if v != 2 {
		t.Errorf("expected DECREMENT from 0 to wrap to the last index (2), got %d", v)
	}
}

func TestOptionLineFieldSingleEmptyOption(t *testing.T) {
	opts := splitOptions("")
	if len(opts) != 1 || opts[0] != "" {
		t.Fatalf("expected a single empty option for empty text, got %#v", opts)
	}
}

func TestCheckboxFieldToggles(t *testing.T) {
	v := uint8(0)
	f := NewCheckboxField(&v)
	ui := &UIState{}

	f.Handle(ui, MsgCursorSelect)
	if v != 1 {
		t.Fatalf("expected toggle to 1, got %d", v)
	}
	f.Handle(ui, MsgCursorSelect)
	if v != 0 {
		t.Fatalf("expected toggle back to 0, got %d", v)
	}
}

func TestRadioFieldWritesArg(t *testing.T) {
	v := uint8(0)
	f := NewRadioField(&v)
	ui := &UIState{Arg: 3}

	f.Handle(ui, MsgCursorSelect)
	if v != 3 {
		t.Errorf("expected RadioField SELECT to write ui.Arg, got %d", v)
	}
}

func TestOptionChildCommonRefusesOutOfRangeRow(t *testing.T) {
	ui := &UIState{Scroll: &ScrollWindow{Top: 0, Visible: 5, Total: 3}}
	if got := handleOptionChildCommon(ui, MsgCursorEnter, nil); got != Pass {
		t.Fatalf("arg=0 default should always be entered, got %v", got)
	}

	ui.Arg = 3
	if got := handleOptionChildCommon(ui, MsgCursorEnter, nil); got != RefuseFocus {
		t.Errorf("row beyond total should refuse focus, got %v", got)
	}
}

func TestOptionChildCommonDoesNotResetScrollTop(t *testing.T) {
	ui := &UIState{Scroll: &ScrollWindow{Top: 2, Visible: 3, Total: 10}}
	handleOptionChildCommon(ui, MsgFormStart, nil)
	if ui.Scroll.Top != 2 {
		t.Errorf("option-child FORM_START must not reset ScrollTop, got %d", ui.Scroll.Top)
	}
}

func TestU16ListChildCommonResetsScrollTop(t *testing.T) {
	ui := &UIState{Scroll: &ScrollWindow{Top: 2, Visible: 3, Total: 10}}
	handleU16ListChildCommon(ui, MsgFormStart, fixedListSource{n: 10}, nil)
	if ui.Scroll.Top != 0 {
		t.Errorf("u16-list-child FORM_START must reset ScrollTop to 0, got %d", ui.Scroll.Top)
	}
}

type fixedListSource struct{ n int }

func (f fixedListSource) Count() int           { return f.n }
func (f fixedListSource) Element(i int) string { return "" }
