package softdisplay

import "testing"

func TestDisplayOutOfBoundsPixelWritesAreSilent(t *testing.T) {
	d := New(16, 8)
	d.setPixel(-1, 0, true)
	d.setPixel(0, -1, true)
	d.setPixel(100, 0, true)
	d.setPixel(0, 100, true)
	if d.Pixel(-1, 0) || d.Pixel(100, 0) {
		t.Error("out-of-bounds reads must report false, not panic or alias into range")
	}
}

func TestDisplaySetAndReadPixel(t *testing.T) {
	d := New(16, 8)
	d.setPixel(3, 2, true)
	if !d.Pixel(3, 2) {
		t.Fatal("expected pixel (3,2) to read back lit")
	}
	d.setPixel(3, 2, false)
	if d.Pixel(3, 2) {
		t.Error("expected pixel (3,2) to read back clear after unsetting")
	}
}

func TestDisplayClear(t *testing.T) {
	d := New(16, 8)
	d.setPixel(0, 0, true)
	d.setPixel(15, 7, true)
	d.Clear()
	if d.Pixel(0, 0) || d.Pixel(15, 7) {
		t.Error("expected Clear to drop every lit pixel")
	}
}

func TestUTF8WidthScalesWithGlyphCount(t *testing.T) {
	d := New(128, 64)
	if got := d.UTF8Width(""); got != 0 {
		t.Errorf("expected empty string width 0, got %d", got)
	}
	one := d.UTF8Width("A")
	three := d.UTF8Width("ABC")
	if want := 3*glyphWidth + 2*d.charGap; three != want {
		t.Errorf("expected 3-char width %d (3 glyphs + 2 gaps), got %d", want, three)
	}
	if one != glyphWidth {
		t.Errorf("expected single-char width to equal glyphWidth, got %d", one)
	}
}

func TestDrawBoxLightsFilledRectangle(t *testing.T) {
	d := New(16, 8)
	d.DrawBox(1, 1, 3, 2)
	for y := 1; y < 3; y++ {
		for x := 1; x < 4; x++ {
			if !d.Pixel(x, y) {
				t.Fatalf("expected (%d,%d) lit inside the filled box", x, y)
			}
		}
	}
	if d.Pixel(0, 0) || d.Pixel(4, 1) {
		t.Error("expected pixels outside the box to remain clear")
	}
}

func TestDrawFrameLeavesInteriorClear(t *testing.T) {
	d := New(16, 8)
	d.DrawFrame(1, 1, 4, 4)
	if !d.Pixel(1, 1) || !d.Pixel(4, 1) || !d.Pixel(1, 4) || !d.Pixel(4, 4) {
		t.Error("expected all four frame corners lit")
	}
	if d.Pixel(2, 2) {
		t.Error("expected the frame interior to stay clear")
	}
}

func TestInvertBoxTogglesExistingPixels(t *testing.T) {
	d := New(16, 8)
	d.setPixel(2, 2, true)
	d.invertBox(1, 1, 3, 3)
	if d.Pixel(2, 2) {
		t.Error("expected a lit pixel inside the inverted region to become clear")
	}
	if !d.Pixel(1, 1) {
		t.Error("expected a clear pixel inside the inverted region to become lit")
	}
}

func TestDrawCheckboxFilledVsOutline(t *testing.T) {
	d := New(16, 16)
	d.DrawCheckbox(2, 10, 6, false)
	if d.Pixel(4, 6) {
		t.Error("expected an unfilled checkbox to have a clear interior")
	}

	d2 := New(16, 16)
	d2.DrawCheckbox(2, 10, 6, true)
	if !d2.Pixel(4, 6) {
		t.Error("expected a filled checkbox to have a lit interior")
	}
}

func TestDrawValueMarkFillsSquare(t *testing.T) {
	d := New(16, 16)
	d.DrawValueMark(2, 10, 4)
	for y := 6; y < 10; y++ {
		for x := 2; x < 6; x++ {
			if !d.Pixel(x, y) {
				t.Fatalf("expected value mark pixel (%d,%d) lit", x, y)
			}
		}
	}
}
