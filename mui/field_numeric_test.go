package mui

import "testing"

func TestU8MinMaxFieldWrap(t *testing.T) {
	v := uint8(9)
	f := NewU8MinMaxField(&v, 0, 9)
	ui := &UIState{}

	if got := f.Handle(ui, MsgCursorSelect); got != Pass {
		t.Fatalf("expected Pass, got %v", got)
	}
	if v != 0 {
		t.Errorf("expected wrap to 0, got %d", v)
	}
}

func TestU8MinMaxFieldDecrementWrap(t *testing.T) {
	v := uint8(0)
	f := NewU8MinMaxField(&v, 0, 9)
	ui := &UIState{}

	f.Handle(ui, MsgValueDecrement)
	if v != 9 {
		t.Errorf("expected decrement below Min to wrap to Max=9, got %d", v)
	}
}

func TestU8MinMaxFieldCaptureModel(t *testing.T) {
	v := uint8(3)
	f := &U8MinMaxField{Value: &v, Min: 0, Max: 9, Capture: true}
	ui := &UIState{}

	f.Handle(ui, MsgCursorSelect)
	if ui.IsMud != 1 {
		t.Fatalf("expected SELECT to enter captured mode, IsMud=%d", ui.IsMud)
	}
	if v != 3 {
		t.Errorf("captured SELECT must not mutate the value directly, got %d", v)
	}

	if got := f.Handle(ui, MsgEventNext); got != Consumed {
		t.Errorf("expected NEXT while captured to consume, got %v", got)
	}
	if v != 4 {
		t.Errorf("expected captured NEXT to increment, got %d", v)
	}

	f.Handle(ui, MsgCursorSelect)
	if ui.IsMud != 0 {
		t.Errorf("expected second SELECT to leave captured mode, IsMud=%d", ui.IsMud)
	}
}

func TestU8MinMaxFieldNextPrevIgnoredWithoutCapture(t *testing.T) {
	v := uint8(3)
	f := NewU8MinMaxField(&v, 0, 9)
	ui := &UIState{}

	if got := f.Handle(ui, MsgEventNext); got != Pass {
		t.Errorf("expected Pass for NEXT on a non-capture field, got %v", got)
	}
	if v != 3 {
		t.Errorf("value must be untouched, got %d", v)
	}
}
