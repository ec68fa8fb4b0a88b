// Package softdisplay is a pure-Go, dependency-free 1bpp framebuffer
// implementing mui.Display, grounded in the teacher's drawlist.go built-in
// bitmap font fallback — the same idea, generalized from an anti-aliased
// glyph quad to a true monochrome glyph stamp. It is the adapter the demo
// binary renders against, headless or windowed; the mui package's own
// handler tests use a no-op stub display instead.
package softdisplay

import "github.com/go-theft-auto/muiengine/mui"

// Display is a bit-packed monochrome framebuffer: one bit per pixel, rows
// byte-aligned, set bit meaning "lit".
type Display struct {
	width, height int
	rowBytes      int
	pix           []byte

	ascent       int
	maxCharWidth int
	charGap      int
}

var _ mui.Display = (*Display)(nil)

// New creates a width x height framebuffer, all pixels clear.
func New(width, height int) *Display {
	rowBytes := (width + 7) / 8
	return &Display{
		width:        width,
		height:       height,
		rowBytes:     rowBytes,
		pix:          make([]byte, rowBytes*height),
		ascent:       glyphHeight,
		maxCharWidth: glyphWidth + 1,
		charGap:      1,
	}
}

// Clear sets every pixel off.
func (d *Display) Clear() {
	for i := range d.pix {
		d.pix[i] = 0
	}
}

// Pixel reports whether (x, y) is lit. Out-of-bounds coordinates report
// false rather than panicking.
func (d *Display) Pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return false
	}
	idx := y*d.rowBytes + x/8
	bit := uint(x % 8)
	return d.pix[idx]&(1<<bit) != 0
}

// setPixel lights or clears (x, y), silently dropping anything outside the
// framebuffer rectangle — the same "degrades defensively" posture §7 of the
// spec gives the rest of the core.
func (d *Display) setPixel(x, y int, on bool) {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return
	}
	idx := y*d.rowBytes + x/8
	bit := byte(1 << uint(x%8))
	if on {
		d.pix[idx] |= bit
	} else {
		d.pix[idx] &^= bit
	}
}

func (d *Display) DisplayWidth() int  { return d.width }
func (d *Display) DisplayHeight() int { return d.height }
func (d *Display) Ascent() int        { return d.ascent }
func (d *Display) MaxCharWidth() int  { return d.maxCharWidth }

func (d *Display) UTF8Width(s string) int {
	n := 0
	for range s {
		n++
	}
	if n == 0 {
		return 0
	}
	return n*glyphWidth + (n-1)*d.charGap
}

// DrawUTF8 draws s left-to-right with the glyph's bottom row on the y
// baseline (y is the text baseline per §6's coordinate convention).
func (d *Display) DrawUTF8(x, y int, s string) {
	cursor := x
	for i := 0; i < len(s); i++ {
		d.drawGlyph(cursor, y, glyphFor(s[i]))
		cursor += glyphWidth + d.charGap
	}
}

func (d *Display) drawGlyph(x, y int, g glyph) {
	top := y - glyphHeight + 1
	for row := 0; row < glyphHeight; row++ {
		bits := g[row]
		for col := 0; col < glyphWidth; col++ {
			if bits&(1<<uint(glyphWidth-1-col)) != 0 {
				d.setPixel(x+col, top+row, true)
			}
		}
	}
}

// DrawFrame draws an unfilled rectangle outline.
func (d *Display) DrawFrame(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	for i := 0; i < w; i++ {
		d.setPixel(x+i, y, true)
		d.setPixel(x+i, y+h-1, true)
	}
	for j := 0; j < h; j++ {
		d.setPixel(x, y+j, true)
		d.setPixel(x+w-1, y+j, true)
	}
}

// DrawBox draws a filled rectangle.
func (d *Display) DrawBox(x, y, w, h int) {
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			d.setPixel(x+i, y+j, true)
		}
	}
}

// invertBox XORs a rectangular region, used to render the INVERT style flag
// without a separate color channel.
func (d *Display) invertBox(x, y, w, h int) {
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			cx, cy := x+i, y+j
			d.setPixel(cx, cy, !d.Pixel(cx, cy))
		}
	}
}

// DrawButtonUTF8 composites a button frame/invert per flags around s, then
// draws the label, exactly the mui.Display contract §4.2/§6 requires.
func (d *Display) DrawButtonUTF8(x, y int, flags mui.StyleFlags, width, padH, padV int, s string) {
	w := width
	if w == 0 {
		w = d.UTF8Width(s) + 2*padH
	}
	textX := x + padH
	if flags&mui.HCenter != 0 {
		textX = x + (w-d.UTF8Width(s))/2
	}
	d.DrawButtonFrame(x, y, flags, w, 0, padV)
	d.DrawUTF8(textX, y, s)
}

// DrawButtonFrame draws the frame/invert composite with no label, used by
// the bar control and the string editor's per-character selection box.
func (d *Display) DrawButtonFrame(x, y int, flags mui.StyleFlags, w, padH, padV int) {
	width := w
	if width == 0 {
		width = d.maxCharWidth
	}
	top := y - d.ascent - padV
	height := d.ascent + 2*padV

	if flags&mui.Frame != 0 {
		d.DrawFrame(x, top, width, height)
	}
	if flags&mui.XFrame != 0 {
		d.DrawFrame(x-1, top-1, width+2, height+2)
	}
	if flags&mui.Invert != 0 {
		d.invertBox(x, top, width, height)
	}
}

// DrawCheckbox draws a side x side square frame, boxed solid when filled.
func (d *Display) DrawCheckbox(x, y, side int, filled bool) {
	top := y - side
	d.DrawFrame(x, top, side, side)
	if filled {
		d.DrawBox(x+1, top+1, side-2, side-2)
	}
}

// DrawValueMark draws a side x side filled square.
func (d *Display) DrawValueMark(x, y, side int) {
	d.DrawBox(x, y-side, side, side)
}
