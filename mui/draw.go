package mui

// drawButton is the common "draw dispatch by style" plumbing (§2's
// "Common plumbing" line item): resolve the style's flags from current
// focus/edit state and hand off to the Display adapter at the field's
// (possibly coordinate-scaled) origin.
func drawButton(ui *UIState, style VisualStyle, width, padH int, text string) {
	flags := ResolveStyleFlags(style, ui.CursorFocus, ui.IsMud)
	ui.Display.DrawButtonUTF8(scaleX(ui.Display, ui.X), ui.Y, flags, width, padH, ui.Style().ButtonPadV, text)
}

// drawButtonCentered is drawButton with HCenter folded into the flags, used
// by the goto/exit button family (§4.9).
func drawButtonCentered(ui *UIState, style VisualStyle, width, padH int, text string) {
	flags := ResolveStyleFlags(style, ui.CursorFocus, ui.IsMud) | HCenter
	ui.Display.DrawButtonUTF8(scaleX(ui.Display, ui.X), ui.Y, flags, width, padH, ui.Style().ButtonPadV, text)
}

// drawButtonFrame draws just the frame/invert composite with no label,
// used by the bar control (§4.5) and the string editor's per-character
// selection box (§4.10).
func drawButtonFrame(ui *UIState, style VisualStyle, width, padH int) {
	flags := ResolveStyleFlags(style, ui.CursorFocus, ui.IsMud)
	ui.Display.DrawButtonFrame(scaleX(ui.Display, ui.X), ui.Y, flags, width, padH, ui.Style().ButtonPadV)
}
