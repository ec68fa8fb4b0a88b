package mui

// Display is the narrow drawing-primitives surface every field consumes.
// It plays the role the teacher's Renderer interface plays for the
// immediate-mode widget library (gui.go), cut down to the handful of
// monochrome primitives the base spec names in §4.2 and §6.
type Display interface {
	DisplayWidth() int
	DisplayHeight() int
	Ascent() int
	MaxCharWidth() int
	UTF8Width(s string) int

	DrawUTF8(x, y int, s string)
	DrawFrame(x, y, w, h int)
	DrawBox(x, y, w, h int)
	DrawButtonUTF8(x, y int, flags StyleFlags, width, padH, padV int, s string)
	DrawButtonFrame(x, y int, flags StyleFlags, w, padH, padV int)

	// DrawCheckbox draws a side x side square frame, boxed solid when
	// filled, used by the checkbox and radio fields (§4.7).
	DrawCheckbox(x, y, side int, filled bool)
	// DrawValueMark draws a side x side filled square, used by radio-style
	// child rows to mark the selected entry (§4.7, §4.8).
	DrawValueMark(x, y, side int)
}

// scaleX applies the coordinate convention from §6: x is specified in
// half-pixels once the display is at least 255px wide.
func scaleX(d Display, x int) int {
	if d.DisplayWidth() >= 255 {
		return 2 * x
	}
	return x
}
