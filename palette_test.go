package xterm_test

import (
	"fmt"
	"testing"

	"github.com/bengarrett/xterm"
	"github.com/nalgeon/be"
)

func ExampleTranslate() {
	tr := xterm.Translate(0xff0000)
	fmt.Println(tr.Kind(), tr.Code())
	// Output: color 196
}

func TestTranslatePureRed(t *testing.T) {
	tr := xterm.Translate(0xff0000)
	be.Equal(t, tr.Kind(), xterm.ColorCube)
	be.Equal(t, tr.Code(), 196)
	be.Equal(t, tr.CodeString(), "196")
}

func TestTranslatePureGray(t *testing.T) {
	tr := xterm.Translate(0x080808)
	be.Equal(t, tr.Kind(), xterm.ColorGray)
}

func TestScaleColorLadder(t *testing.T) {
	be.Equal(t, xterm.ScaleColor(0, 0, 0), 0)
	be.Equal(t, xterm.ScaleColor(255, 255, 255), 0xffffff)
	be.Equal(t, xterm.ScaleColor(95, 95, 95), 0x5f5f5f)
}

func TestScaleGrayRamp(t *testing.T) {
	rgb := xterm.ScaleGray(8)
	be.Equal(t, rgb, 0x080808)
}

func TestGrayPaletteBounds(t *testing.T) {
	rgb, code := xterm.GrayPalette(0)
	be.Equal(t, rgb, 0x080808)
	be.Equal(t, code, 232)

	rgb, code = xterm.GrayPalette(23)
	be.Equal(t, rgb, 0xeeeeee)
	be.Equal(t, code, 255)
}

func TestColorPaletteCorners(t *testing.T) {
	rgb, code := xterm.ColorPalette(0, 0, 0)
	be.Equal(t, rgb, 0)
	be.Equal(t, code, 16)

	rgb, code = xterm.ColorPalette(5, 5, 5)
	be.Equal(t, rgb, 0xffffff)
	be.Equal(t, code, 231)
}

func TestColorRGBRoundTrip(t *testing.T) {
	rgb, ok := xterm.ColorRGB(196)
	be.True(t, ok)
	be.Equal(t, rgb, 0xff0000)
	be.Equal(t, xterm.ColorCode(rgb), 196)
}

func TestColorRGBOutOfRange(t *testing.T) {
	_, ok := xterm.ColorRGB(5)
	be.True(t, !ok)
	_, ok = xterm.ColorRGB(255)
	be.True(t, !ok)
}

func TestIndexSize(t *testing.T) {
	idx := xterm.Index()
	be.Equal(t, len(idx), 240)
	be.Equal(t, idx[16], 0)
	be.Equal(t, idx[231], 0xffffff)
	be.Equal(t, idx[232], 0x080808)
	be.Equal(t, idx[255], 0xeeeeee)
}

func TestTranslateIdempotentOnColorBranch(t *testing.T) {
	r, g, b := 255, 0, 0
	want := xterm.Translate(xterm.ScaleColor(r, g, b))
	got := xterm.Translate(r<<16 | g<<8 | b)
	if got.Kind() == xterm.ColorCube {
		be.Equal(t, want.Code(), got.Code())
	}
}
