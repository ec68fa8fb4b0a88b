package mui

import "github.com/go-theft-auto/muiengine/internal/muilog"

// FieldEntry binds one Field into a Form's field-definition stream (FDS):
// the field's draw origin, its arg byte, and its label/option text, exactly
// the triple a form's field-definition string supplies per §3.
type FieldEntry struct {
	Field Field
	X, Y  int
	Arg   uint8
	Text  string
}

// FieldSet is an ordered field-definition stream, the unit a Form is built
// from.
type FieldSet []FieldEntry

// Form is one named screen: an ordered FieldSet plus the cursor position
// currently holding focus within it (-1 if nothing is focused yet).
type Form struct {
	ID      uint8
	Entries FieldSet
	cursor  int
	scroll  ScrollWindow
}

// NewForm creates an empty form with no field focused.
func NewForm(id uint8) *Form {
	return &Form{ID: id, cursor: -1}
}

// Add appends a field entry and returns the form, for chained construction.
func (f *Form) Add(field Field, x, y int, arg uint8, text string) *Form {
	f.Entries = append(f.Entries, FieldEntry{Field: field, X: x, Y: y, Arg: arg, Text: text})
	return f
}

// selectableOptions recovers the pipe-separated option list of the field
// that was focused on the form we goto'd here from — the mechanism
// OptionChildField/OptionRadioChildField use to resolve their own label
// when the child row's own Text is empty (§4.7).
func (ui *UIState) selectableOptions() []string {
	if ui.LastForm == nil {
		return nil
	}
	c := ui.LastForm.cursor
	if c < 0 || c >= len(ui.LastForm.Entries) {
		return nil
	}
	return splitOptions(ui.LastForm.Entries[c].Text)
}

// SelectableOptionCount returns the number of options the previously active
// form's focused field was showing.
func (ui *UIState) SelectableOptionCount() int {
	return len(ui.selectableOptions())
}

// OptionText returns option i of the previously active form's focused
// field's option list, or "" if out of range.
func (ui *UIState) OptionText(i int) string {
	opts := ui.selectableOptions()
	if i < 0 || i >= len(opts) {
		return ""
	}
	return opts[i]
}

// savedFrame is one entry of the interpreter's save_form/restore_form stack
// (§4.9, §4.12): the form to return to and the cursor row it had.
type savedFrame struct {
	formID uint8
	cursor int
}

// Interpreter is the reference form-switching engine of §4.12: it owns the
// form registry, the currently active form, the save/restore stack, and the
// single UIState instance threaded into every Field.Handle call. It
// implements HostAPI, so navigation handlers call back into it directly.
//
// Grounded on gui.go's New/Begin/End lifecycle and focus_registry.go's
// linear focus-scan idiom, generalized from a per-frame immediate-mode
// widget tree to a persistent named-form registry.
type Interpreter struct {
	forms   map[uint8]*Form
	current *Form
	stack   []savedFrame
	ui      *UIState
}

var _ HostAPI = (*Interpreter)(nil)

// NewInterpreter creates an interpreter bound to a Display adapter and a
// spacing Style. No form is active until AddForm/GotoForm establishes one.
func NewInterpreter(display Display, style Style) *Interpreter {
	it := &Interpreter{forms: make(map[uint8]*Form)}
	it.ui = &UIState{Display: display, Host: it, style: style}
	return it
}

// AddForm registers a form under its ID, overwriting any prior form with
// the same ID.
func (it *Interpreter) AddForm(f *Form) {
	it.forms[f.ID] = f
}

// Current returns the currently active form, or nil if none has been
// entered yet or LeaveForm has left it.
func (it *Interpreter) Current() *Form {
	return it.current
}

func (it *Interpreter) setUIForEntry(idx int) {
	e := &it.current.Entries[idx]
	it.ui.X, it.ui.Y = e.X, e.Y
	it.ui.Arg = e.Arg
	it.ui.Text = e.Text
	it.ui.CursorFocus = idx == it.current.cursor
}

func (it *Interpreter) callEntry(idx int, msg Message) Result {
	it.setUIForEntry(idx)
	return it.current.Entries[idx].Field.Handle(it.ui, msg)
}

// tryFocus attempts to move focus onto idx, sending it CURSOR_ENTER first;
// a RefuseFocus reply leaves the current focus untouched. On success the
// previously focused field (if any, and if different) receives
// CURSOR_LEAVE.
func (it *Interpreter) tryFocus(idx int) bool {
	it.setUIForEntry(idx)
	res := it.current.Entries[idx].Field.Handle(it.ui, MsgCursorEnter)
	if res == RefuseFocus {
		muilog.Logger.Debug("focus refused", "form", it.current.ID, "field", idx)
		return false
	}
	if it.current.cursor >= 0 && it.current.cursor != idx {
		it.callEntry(it.current.cursor, MsgCursorLeave)
	}
	it.current.cursor = idx
	return true
}

// autoFocusFrom scans forward from start (inclusive, wrapping) for the
// first field willing to accept focus.
func (it *Interpreter) autoFocusFrom(start int) bool {
	n := len(it.current.Entries)
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		if it.tryFocus(idx) {
			return true
		}
	}
	return false
}

func (it *Interpreter) sendFormEnd() {
	for i := range it.current.Entries {
		it.setUIForEntry(i)
		it.current.Entries[i].Field.Handle(it.ui, MsgFormEnd)
	}
}

// switchForm is the common goto machinery: FORM_END to the outgoing form,
// FORM_START to every field of the incoming form, then an attempt to land
// the cursor at wantCursor (or, if wantCursor is negative or refuses focus,
// the first focusable field from the top).
func (it *Interpreter) switchForm(id uint8, wantCursor int) {
	f, ok := it.forms[id]
	if !ok {
		muilog.Logger.Debug("goto unknown form", "id", id)
		return
	}

	prev := it.current
	if prev != nil {
		it.sendFormEnd()
	}

	it.current = f
	it.ui.LastForm = prev
	it.current.cursor = -1
	it.ui.Scroll = &f.scroll
	it.ui.IsMud = 0
	it.ui.Token = 0

	for i := range f.Entries {
		it.setUIForEntry(i)
		f.Entries[i].Field.Handle(it.ui, MsgFormStart)
	}

	if len(f.Entries) == 0 {
		muilog.Logger.Debug("form switched", "id", id, "cursor", -1)
		return
	}

	if wantCursor >= 0 && wantCursor < len(f.Entries) && it.tryFocus(wantCursor) {
		muilog.Logger.Debug("form switched", "id", id, "cursor", wantCursor)
		return
	}
	it.autoFocusFrom(0)
	muilog.Logger.Debug("form switched", "id", id, "cursor", it.current.cursor)
}

// GotoForm implements HostAPI: jump to id, requesting cursor as the initial
// focused row.
func (it *Interpreter) GotoForm(id uint8, cursor uint8) {
	it.switchForm(id, int(cursor))
}

// GotoFormAutoCursor implements HostAPI: jump to id, focusing the first
// field willing to accept it.
func (it *Interpreter) GotoFormAutoCursor(id uint8) {
	it.switchForm(id, -1)
}

// SaveForm implements HostAPI: push the active form/cursor onto the
// save/restore stack.
func (it *Interpreter) SaveForm() {
	if it.current == nil {
		return
	}
	it.stack = append(it.stack, savedFrame{formID: it.current.ID, cursor: it.current.cursor})
}

// RestoreForm implements HostAPI: pop the save/restore stack and switch
// back to it.
func (it *Interpreter) RestoreForm() {
	if len(it.stack) == 0 {
		return
	}
	s := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.switchForm(s.formID, s.cursor)
}

// SaveCursorPosition implements HostAPI: overwrite the active form's cursor
// row without a form transition.
func (it *Interpreter) SaveCursorPosition(p uint8) {
	if it.current != nil {
		it.current.cursor = int(p)
	}
}

// LeaveForm implements HostAPI: the exit-button contract of §4.9 — send
// FORM_END to the active form and leave the menu, so that no form is active
// until GotoForm or RestoreForm enters one again.
func (it *Interpreter) LeaveForm() {
	if it.current == nil {
		return
	}
	it.sendFormEnd()
	it.current = nil
}

// Draw renders every field of the active form, in order, onto d.
func (it *Interpreter) Draw(d Display) {
	if it.current == nil {
		return
	}
	it.ui.Display = d
	for i := range it.current.Entries {
		it.setUIForEntry(i)
		it.current.Entries[i].Field.Handle(it.ui, MsgDraw)
	}
}

// Dispatch routes one event message to the active form: CURSOR_SELECT,
// VALUE_INCREMENT/DECREMENT and TOUCH_DOWN/TOUCH_UP go straight to the
// focused field; EVENT_NEXT/EVENT_PREV first offer the focused field a
// chance to consume the event itself (a scroll-window mid-list step), and
// only then walk the form linearly, skipping any field that refuses focus,
// per §4.3's CURSOR_ENTER contract.
func (it *Interpreter) Dispatch(msg Message) Result {
	if it.current == nil || len(it.current.Entries) == 0 {
		return Pass
	}

	switch msg {
	case MsgEventNext:
		return it.navigate(msg, 1)
	case MsgEventPrev:
		return it.navigate(msg, -1)
	default:
		if it.current.cursor < 0 {
			return Pass
		}
		return it.callEntry(it.current.cursor, msg)
	}
}

func (it *Interpreter) navigate(msg Message, dir int) Result {
	n := len(it.current.Entries)
	start := it.current.cursor

	if start >= 0 {
		if it.callEntry(start, msg) == Consumed {
			return Consumed
		}
	}

	for i := 1; i <= n; i++ {
		var idx int
		if start < 0 {
			idx = (i - 1) % n
		} else {
			idx = (((start+dir*i)%n)+n) % n
		}
		if it.tryFocus(idx) {
			muilog.Logger.Debug("focus moved", "form", it.current.ID, "field", idx)
			return Consumed
		}
	}
	return Pass
}
