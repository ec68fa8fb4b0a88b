package mui

import "testing"

func TestStringBufferNeverGrowsPastCap(t *testing.T) {
	b := NewStringBuffer("xy", 2)
	if ok := b.appendSpace(); ok {
		t.Fatal("appendSpace at capacity must report false")
	}
	if b.Len() != 2 {
		t.Errorf("expected length to stay at 2, got %d", b.Len())
	}
}

func TestStringBufferAppendAndTrim(t *testing.T) {
	b := NewStringBuffer("ab", 5)
	if !b.appendSpace() {
		t.Fatal("expected room for an appended space")
	}
	if b.String() != "ab " {
		t.Fatalf("expected %q, got %q", "ab ", b.String())
	}
	b.trimLastByte()
	if b.String() != "ab" {
		t.Errorf("expected trim to restore %q, got %q", "ab", b.String())
	}
}

func TestStringBufferDeleteAt(t *testing.T) {
	b := NewStringBuffer("abc", 5)
	b.deleteAt(1)
	if b.String() != "ac" {
		t.Errorf("expected %q after deleting index 1, got %q", "ac", b.String())
	}
}

func TestStringFieldEditCycle(t *testing.T) {
	buf := NewStringBuffer("ab", 5)
	f := NewStringField(buf, FlagUpper|FlagLower)
	ui := &UIState{Display: stubDisplay{}, Scroll: &ScrollWindow{}}

	f.Handle(ui, MsgCursorSelect)
	if ui.IsMud != 1 {
		t.Fatalf("expected first SELECT to enter mud=1 (caret navigation), got %d", ui.IsMud)
	}
	if buf.String() != "ab " {
		t.Fatalf("expected SELECT to append the insert-at-end space, got %q", buf.String())
	}

	f.Handle(ui, MsgCursorSelect)
	if ui.IsMud != 2 {
		t.Fatalf("expected second SELECT at token!=len to enter mud=2 (char edit), got %d", ui.IsMud)
	}

	f.Handle(ui, MsgEventNext)
	if buf.At(0) != 'b' {
		t.Errorf("expected stepEditChar(+1) on 'a' to give 'b', got %q", buf.At(0))
	}

	f.Handle(ui, MsgCursorSelect)
	if ui.IsMud != 1 {
		t.Fatalf("expected SELECT from mud=2 to return to mud=1, got %d", ui.IsMud)
	}

	f.Handle(ui, MsgEventNext)
	if ui.Token != 1 {
		t.Errorf("expected captured NEXT to advance Token to 1, got %d", ui.Token)
	}
}

func TestStringFieldSelectAtEndExitsEditMode(t *testing.T) {
	buf := NewStringBuffer("ab", 2) // already at capacity, appendSpace is a no-op
	f := NewStringField(buf, FlagUpper|FlagLower)
	ui := &UIState{Display: stubDisplay{}, Scroll: &ScrollWindow{}}

	f.Handle(ui, MsgCursorSelect) // mud=1, Token stays 0, Len()==2 == Token? no: Token 0 != 2
	if ui.IsMud != 1 {
		t.Fatalf("expected mud=1, got %d", ui.IsMud)
	}

	ui.Token = buf.Len() // simulate the caret having walked to the end slot
	f.Handle(ui, MsgCursorSelect)
	if ui.IsMud != 0 {
		t.Errorf("expected SELECT with token==len to exit edit mode entirely, got mud=%d", ui.IsMud)
	}
}
