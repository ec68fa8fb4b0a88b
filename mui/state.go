package mui

// UIState is the shared record threaded by value of reference into every
// Field.Handle call, owned and mutated exclusively by the Interpreter
// dispatching the current message (§3, §9 "global mutable UI state").
// There is deliberately no package-level singleton holding any of this.
type UIState struct {
	// X, Y is the draw origin of the current field, in display units.
	X, Y int

	// Arg is the 8-bit FDS parameter; meaning depends on field (row index,
	// form id, bar width...).
	Arg uint8

	// Text is the current field's label/option string, or empty.
	Text string

	// Token is scratch storage for the string editor's in-edit caret.
	Token int

	// CursorFocus and TouchFocus are the dflags bits.
	CursorFocus bool
	TouchFocus  bool

	// IsMud is the editing-mode byte: 0 idle, 1 captured navigation,
	// 2 character-level edit (string editor only).
	IsMud uint8

	// Scroll is the current form's scroll window, shared by every
	// child-of-parent field in that form.
	Scroll *ScrollWindow

	// LastForm is a non-owning weak reference to the form that was active
	// before a goto transition landed on the current form. Child option
	// rows read through it to recover option text when their own Text is
	// empty. Never cloned, never freed explicitly.
	LastForm *Form

	// Display is the graphics adapter: the one given to NewInterpreter,
	// replaced by the one passed to each Interpreter.Draw. Drawing happens
	// only during MsgDraw; StringField also reads its metrics on SELECT.
	Display Display

	// Host is the narrow interpreter API consumed by navigation handlers.
	Host HostAPI

	style Style
}

// Style returns the UI-wide spacing constants.
func (s *UIState) Style() Style { return s.style }

// IsCursorFocus mirrors the interpreter API's is_cursor_focus().
func (s *UIState) IsCursorFocus() bool { return s.CursorFocus }

// HostAPI is the slice of the form interpreter's API that navigation
// handlers consume (§6). The interpreter itself is out of scope; only this
// interface is specified.
type HostAPI interface {
	GotoForm(id uint8, cursor uint8)
	GotoFormAutoCursor(id uint8)
	SaveForm()
	RestoreForm()
	SaveCursorPosition(p uint8)
	LeaveForm()
}
