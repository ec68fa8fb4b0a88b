package mui

// StringBuffer is the string editor's fixed-capacity buffer (§9's
// "(data, len, cap)" design note): growth is forbidden past Cap, and the
// buffer is always represented without relying on null-termination
// arithmetic beyond its own length.
type StringBuffer struct {
	data []byte
	cap  int
}

// NewStringBuffer wraps initial as an editable buffer that never grows
// past maxLength bytes.
func NewStringBuffer(initial string, maxLength int) *StringBuffer {
	return &StringBuffer{data: []byte(initial), cap: maxLength}
}

// String returns the buffer's current content.
func (b *StringBuffer) String() string { return string(b.data) }

// Len returns the buffer's current content length.
func (b *StringBuffer) Len() int { return len(b.data) }

// Cap returns the buffer's capacity (max_length).
func (b *StringBuffer) Cap() int { return b.cap }

// At returns the byte at i.
func (b *StringBuffer) At(i int) byte { return b.data[i] }

// Set overwrites the byte at i.
func (b *StringBuffer) Set(i int, c byte) { b.data[i] = c }

// appendSpace appends a trailing space if there is room, reporting whether
// it did. This is the "insert-at-end" slot §4.10 describes.
func (b *StringBuffer) appendSpace() bool {
	if len(b.data) >= b.cap {
		return false
	}
	b.data = append(b.data, ' ')
	return true
}

// deleteAt removes the byte at i, shifting the remainder left by one.
func (b *StringBuffer) deleteAt(i int) {
	if i < 0 || i >= len(b.data) {
		return
	}
	b.data = append(b.data[:i], b.data[i+1:]...)
}

// trimLastByte drops the final byte, used to trim the temporary
// insert-at-end space on exiting edit mode.
func (b *StringBuffer) trimLastByte() {
	if len(b.data) > 0 {
		b.data = b.data[:len(b.data)-1]
	}
}

// StringField is the three-state in-place string editor of §4.10. State
// lives in the shared ui.IsMud/ui.Token/ui.Scroll fields rather than on the
// field itself, exactly as the base spec's data model requires (no handler
// retains state beyond what the shared UI state or bound value holds).
//
// NEXT/PREV/SELECT handling below omits the "only act if this field holds
// cursor focus" guard the original source carries on its CURSOR_SELECT and
// EVENT_NEXT cases: this engine's Interpreter never dispatches an event to
// anything but the currently focused field (§5's ordering guarantee), so
// the guard would always be true here and is redundant.
type StringField struct {
	Value *StringBuffer
	Flags CharFlags
	// Width is the visible window width in characters (the base spec's
	// arg). Zero selects the default of (display width - x) / max char
	// width.
	Width uint8
}

func NewStringField(value *StringBuffer, flags CharFlags) *StringField {
	return &StringField{Value: value, Flags: flags}
}

func (f *StringField) visibleWidth(ui *UIState) int {
	if f.Width != 0 {
		return int(f.Width)
	}
	mcw := ui.Display.MaxCharWidth()
	if mcw == 0 {
		return 0
	}
	return (ui.Display.DisplayWidth() - ui.X) / mcw
}

func (f *StringField) Handle(ui *UIState, msg Message) Result {
	switch msg {
	case MsgDraw:
		f.draw(ui)
	case MsgCursorSelect, MsgValueIncrement, MsgValueDecrement:
		f.handleSelect(ui)
	case MsgEventNext:
		return f.handleNext(ui)
	case MsgEventPrev:
		return f.handlePrev(ui)
	}
	return Pass
}

func (f *StringField) handleSelect(ui *UIState) {
	switch ui.IsMud {
	case 1:
		pos := ui.Token
		if pos == f.Value.Len() {
			ui.IsMud = 0
			ui.Scroll.Total = 0
			ui.Scroll.Visible = 0
			ui.Scroll.Top = 0
			ui.Token = 0
			if n := f.Value.Len(); n > 0 && f.Value.At(n-1) == ' ' {
				f.Value.trimLastByte()
			}
		} else {
			ui.IsMud = 2
		}
	case 2:
		pos := ui.Token
		if pos < f.Value.Len() && f.Value.At(pos) == Delete {
			f.Value.deleteAt(pos)
		}
		if pos == ui.Scroll.Total-1 && f.Value.Len() < f.Value.Cap() {
			f.Value.appendSpace()
		}
		ui.Scroll.Total = f.Value.Len()
		ui.IsMud = 1
	default:
		ui.IsMud = 1
		f.Value.appendSpace()
		ui.Scroll.Total = f.Value.Len()
		ui.Scroll.Visible = f.visibleWidth(ui) + 1
	}
}

func (f *StringField) handleNext(ui *UIState) Result {
	switch ui.IsMud {
	case 1:
		pos := ui.Token
		if pos < ui.Scroll.Total {
			pos++
			ui.Token = pos
		}
		if pos+1 >= ui.Scroll.Visible && ui.Scroll.Visible+ui.Scroll.Top < ui.Scroll.Total {
			ui.Scroll.Top++
		}
		return Consumed
	case 2:
		f.stepEditChar(ui.Token, 1)
		return Consumed
	}
	return Pass
}

func (f *StringField) handlePrev(ui *UIState) Result {
	switch ui.IsMud {
	case 1:
		pos := ui.Token
		if pos != 0 {
			pos--
			ui.Token = pos
		}
		if pos-1 <= ui.Scroll.Top && ui.Scroll.Top > 0 {
			ui.Scroll.Top--
		}
		return Consumed
	case 2:
		f.stepEditChar(ui.Token, -1)
		return Consumed
	}
	return Pass
}

// stepEditChar repeatedly steps the byte at pos by delta until it lands on
// a valid edit character, mirroring the original's do/while walk.
func (f *StringField) stepEditChar(pos, delta int) {
	if pos < 0 || pos >= f.Value.Len() {
		return
	}
	c := f.Value.At(pos)
	for {
		c = byte(int(c) + delta)
		if isValidEditChar(c, f.Flags) {
			break
		}
	}
	f.Value.Set(pos, c)
}

func (f *StringField) draw(ui *UIState) {
	drawFlags := StyleFlags(0)
	switch ui.IsMud {
	case 1:
		drawFlags |= Invert
		fallthrough
	case 2:
		if ui.CursorFocus {
			f.drawEditing(ui, drawFlags)
			return
		}
	}
	s := f.Value.String()
	w := ui.Display.UTF8Width(s) + 1
	drawButton(ui, StylePI, w, 1, s)
}

func (f *StringField) drawEditing(ui *UIState, drawFlags StyleFlags) {
	x := scaleX(ui.Display, ui.X)
	y := ui.Y
	pos := ui.Token
	xOffset := 0

	for i := ui.Scroll.Top; i <= ui.Scroll.Visible && i <= ui.Scroll.Total; i++ {
		var buf string
		if i == ui.Scroll.Total {
			buf = string(Enter)
		} else if i < f.Value.Len() {
			c := f.Value.At(i)
			for !isValidEditChar(c, f.Flags) {
				c++
			}
			f.Value.Set(i, c)
			buf = string(c)
		} else {
			buf = " "
		}

		offset := 0
		if i == pos {
			offset = 2
		}
		ui.Display.DrawUTF8(x+xOffset+offset, y, buf)

		width := ui.Display.UTF8Width(buf)
		if i == pos {
			ui.Display.DrawButtonFrame(x+xOffset+1, y, drawFlags, width+2, 0, ui.Style().ButtonPadV)
			xOffset += width + 5
		} else {
			xOffset += width + 1
		}
	}
}
