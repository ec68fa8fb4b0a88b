package main

import "github.com/go-theft-auto/muiengine/mui"

// demoState holds the bound values the demo form set edits, standing in for
// the embedding application's own data in a real deployment.
type demoState struct {
	volume     uint8
	brightness uint8
	enabled    uint8
	mode       uint8
	initial    byte
}

const (
	formMain = 0
	formMode = 1
)

// buildForms wires a small two-form demo into it: a main form exercising
// the integer picker, bar, checkbox and char editor, and a mode form
// reached through an option-parent/child pair, exactly the round-trip §8
// calls out as a testable property.
func buildForms(it *mui.Interpreter, st *demoState) {
	mainForm := mui.NewForm(formMain)
	mainForm.Add(mui.NewU8MinMaxField(&st.volume, 0, 10), 0, 10, 0, "")
	bar := mui.NewBarField(&st.brightness, 0, 100, 10)
	bar.Flags = mui.BarShowValue
	mainForm.Add(bar, 0, 22, 0, "")
	mainForm.Add(mui.NewCheckboxField(&st.enabled), 0, 34, 0, "enabled")
	mainForm.Add(mui.NewCharField(&st.initial), 0, 46, 0, "")
	mainForm.Add(mui.NewOptionParentField(&st.mode), 0, 58, formMode, "auto|manual|off")

	modeForm := mui.NewForm(formMode)
	for i := 0; i < 3; i++ {
		modeForm.Add(mui.NewOptionChildField(&st.mode), 0, 10+12*i, uint8(i), "")
	}

	it.AddForm(mainForm)
	it.AddForm(modeForm)
}
