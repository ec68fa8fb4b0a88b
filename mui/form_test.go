package mui

import "testing"

// stubDisplay is a no-op Display, enough to let Draw traverse a form
// without a real framebuffer, mirroring the teacher's mockRenderer pattern
// in gui_test.go.
type stubDisplay struct{}

func (stubDisplay) DisplayWidth() int      { return 128 }
func (stubDisplay) DisplayHeight() int     { return 64 }
func (stubDisplay) Ascent() int            { return 7 }
func (stubDisplay) MaxCharWidth() int      { return 6 }
func (stubDisplay) UTF8Width(s string) int { return len(s) * 6 }
func (stubDisplay) DrawUTF8(x, y int, s string)                                                {}
func (stubDisplay) DrawFrame(x, y, w, h int)                                                   {}
func (stubDisplay) DrawBox(x, y, w, h int)                                                     {}
func (stubDisplay) DrawButtonUTF8(x, y int, flags StyleFlags, width, padH, padV int, s string) {}
func (stubDisplay) DrawButtonFrame(x, y int, flags StyleFlags, w, padH, padV int)              {}
func (stubDisplay) DrawCheckbox(x, y, side int, filled bool)                                   {}
func (stubDisplay) DrawValueMark(x, y, side int)                                               {}

// countingField records how many times Handle is called per message, used
// to verify Interpreter.Dispatch never double-delivers an event.
type countingField struct {
	calls  map[Message]int
	refuse bool
}

func newCountingField() *countingField {
	return &countingField{calls: make(map[Message]int)}
}

func (f *countingField) Handle(ui *UIState, msg Message) Result {
	f.calls[msg]++
	if msg == MsgCursorEnter && f.refuse {
		return RefuseFocus
	}
	return Pass
}

func TestInterpreterDispatchCallsHandleExactlyOnce(t *testing.T) {
	a := newCountingField()
	b := newCountingField()

	form := NewForm(0)
	form.Add(a, 0, 0, 0, "")
	form.Add(b, 0, 10, 0, "")

	it := NewInterpreter(stubDisplay{}, DefaultStyle())
	it.AddForm(form)
	it.GotoForm(0, 0)

	it.Dispatch(MsgCursorSelect)
	if a.calls[MsgCursorSelect] != 1 {
		t.Errorf("expected field a to receive exactly one CURSOR_SELECT, got %d", a.calls[MsgCursorSelect])
	}
	if b.calls[MsgCursorSelect] != 0 {
		t.Errorf("expected field b (not focused) to receive no CURSOR_SELECT, got %d", b.calls[MsgCursorSelect])
	}
}

func TestInterpreterNavigateSkipsRefusingField(t *testing.T) {
	a := newCountingField()
	middle := newCountingField()
	middle.refuse = true
	c := newCountingField()

	form := NewForm(0)
	form.Add(a, 0, 0, 0, "")
	form.Add(middle, 0, 10, 0, "")
	form.Add(c, 0, 20, 0, "")

	it := NewInterpreter(stubDisplay{}, DefaultStyle())
	it.AddForm(form)
	it.GotoForm(0, 0)

	if it.Current().cursor != 0 {
		t.Fatal("expected cursor to land on field a first")
	}

	it.Dispatch(MsgEventNext)
	if middle.calls[MsgCursorEnter] == 0 {
		t.Error("expected the refusing field to have been offered focus")
	}
	if c.calls[MsgCursorEnter] == 0 {
		t.Error("expected the scan to continue past the refusing field to c")
	}
}

func TestInterpreterDrawVisitsEveryField(t *testing.T) {
	a := newCountingField()
	b := newCountingField()

	form := NewForm(0)
	form.Add(a, 0, 0, 0, "")
	form.Add(b, 0, 10, 0, "")

	it := NewInterpreter(stubDisplay{}, DefaultStyle())
	it.AddForm(form)
	it.GotoForm(0, 0)
	it.Draw(stubDisplay{})

	if a.calls[MsgDraw] != 1 || b.calls[MsgDraw] != 1 {
		t.Errorf("expected exactly one DRAW per field, got a=%d b=%d", a.calls[MsgDraw], b.calls[MsgDraw])
	}
}

func TestInterpreterSaveRestoreForm(t *testing.T) {
	var value uint8
	parentForm := NewForm(0)
	parentForm.Add(NewOptionParentField(&value), 0, 0, 1, "x|y|z")

	childForm := NewForm(1)
	childForm.Add(NewOptionChildField(&value), 0, 0, 0, "")
	childForm.Add(NewOptionChildField(&value), 0, 10, 1, "")

	it := NewInterpreter(stubDisplay{}, DefaultStyle())
	it.AddForm(parentForm)
	it.AddForm(childForm)
	it.GotoForm(0, 0)

	it.Dispatch(MsgCursorSelect) // goto child form 1
	if it.Current().ID != 1 {
		t.Fatalf("expected OptionParentField SELECT to goto form 1, got form %d", it.Current().ID)
	}

	it.Dispatch(MsgEventNext)    // move focus to second child row
	it.Dispatch(MsgCursorSelect) // select it, restoring form 0

	if it.Current().ID != 0 {
		t.Fatalf("expected RestoreForm to return to form 0, got %d", it.Current().ID)
	}
}
