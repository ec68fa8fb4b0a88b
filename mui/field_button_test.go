package mui

import "testing"

func TestGotoButtonFieldJumpsOnSelect(t *testing.T) {
	host := &stubHost{}
	f := NewGotoButtonField(WidthText, StyleFI)
	ui := &UIState{Host: host, Arg: 9}

	f.Handle(ui, MsgCursorSelect)
	if len(host.gotoAutoCalls) != 1 || host.gotoAutoCalls[0] != 9 {
		t.Errorf("expected GotoFormAutoCursor(9), got %#v", host.gotoAutoCalls)
	}
}

func TestGotoButtonFieldPixelWidthByMode(t *testing.T) {
	ui := &UIState{Display: stubDisplay{}, X: 4, style: Style{HalfDisplayMargin: 10}}

	text := NewGotoButtonField(WidthText, StylePI)
	if got := text.pixelWidth(ui); got != 0 {
		t.Errorf("expected WidthText to size to its label (0 = caller measures), got %d", got)
	}

	half := NewGotoButtonField(WidthHalf, StylePI)
	if got := half.pixelWidth(ui); got != 128/2-10 {
		t.Errorf("expected WidthHalf = displayWidth/2 - margin, got %d", got)
	}

	full := NewGotoButtonField(WidthFull, StylePI)
	if got := full.pixelWidth(ui); got != 128-4*2 {
		t.Errorf("expected WidthFull = displayWidth - 2*x, got %d", got)
	}
}

func TestExitButtonFieldWritesValueAndLeaves(t *testing.T) {
	var v uint8
	host := &stubHost{}
	f := NewExitButtonField(&v, StyleFI)
	ui := &UIState{Host: host, Arg: 3}

	if got := f.Handle(ui, MsgCursorSelect); got != Consumed {
		t.Errorf("expected SELECT to consume, got %v", got)
	}
	if v != 3 {
		t.Errorf("expected the exit value to be written from ui.Arg, got %d", v)
	}
	if host.saveFormCalls != 1 || host.leaveFormCalls != 1 {
		t.Errorf("expected exactly one SaveForm and one LeaveForm call, got save=%d leave=%d", host.saveFormCalls, host.leaveFormCalls)
	}
}

func TestExitButtonFieldWithoutBoundValue(t *testing.T) {
	host := &stubHost{}
	f := NewExitButtonField(nil, StylePI)
	ui := &UIState{Host: host, Arg: 3}

	if got := f.Handle(ui, MsgCursorSelect); got != Consumed {
		t.Errorf("expected SELECT to consume even with no bound value, got %v", got)
	}
}
