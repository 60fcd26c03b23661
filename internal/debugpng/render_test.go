package debugpng

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/quartersbrief/armorview/armor"
	"github.com/quartersbrief/armorview/geom2"
)

func TestRenderProducesValidPNG(t *testing.T) {
	v := armor.View{
		1: []geom2.Ring{{geom2.XY(1, 1), geom2.XY(3, 1), geom2.XY(3, 3), geom2.XY(1, 3)}},
	}

	var buf bytes.Buffer
	if err := Render(&buf, v, Options{Width: 64, Height: 64}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Fatalf("unexpected image size %v", img.Bounds())
	}
}

func TestRenderEmptyViewProducesBlankImage(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, armor.View{}, Options{}); err != nil {
		t.Fatalf("Render failed on empty view: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected non-empty PNG output")
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if r, g, bl, _ := img.At(x, y).RGBA(); r != 0xFFFF || g != 0xFFFF || bl != 0xFFFF {
				t.Fatalf("expected a blank (all-white) image, found a non-white pixel at (%d,%d)", x, y)
			}
		}
	}
}
