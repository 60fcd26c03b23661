// Package debugpng rasterizes an armor.View to a PNG for visual
// inspection. It is tooling only: nothing in the core get_armor_view
// path imports it, only the CLI's -debug-png flag.
package debugpng

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"sort"

	"golang.org/x/image/vector"

	"github.com/quartersbrief/armorview/armor"
	"github.com/quartersbrief/armorview/geom2"
)

// Options configures the rasterizer.
type Options struct {
	Width, Height int
	// Margin, in pixels, left empty around the view's bounding box.
	Margin int
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = 512
	}
	if o.Height == 0 {
		o.Height = 512
	}
	if o.Margin == 0 {
		o.Margin = 16
	}
	return o
}

// Render rasterizes every ring of v, filled in its piece's color from
// colorFor, and writes the result to w as a PNG.
func Render(w io.Writer, v armor.View, opts Options) error {
	opts = opts.withDefaults()

	min, max, ok := bounds(v)
	if !ok {
		min, max = geom2.XY(0, 0), geom2.XY(1, 1)
	}
	toPixel := projector(min, max, opts)

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	fillBackground(img, color.White)

	ids := make([]int, 0, len(v))
	for id := range v {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		col := colorFor(id)
		for _, ring := range v[id] {
			rasterizeRing(img, ring, toPixel, col, opts)
		}
	}

	return png.Encode(w, img)
}

func bounds(v armor.View) (min, max geom2.Coord, ok bool) {
	first := true
	for _, rings := range v {
		for _, r := range rings {
			if len(r) == 0 {
				continue
			}
			rMin, rMax := r.Min(), r.Max()
			if first {
				min, max = rMin, rMax
				first = false
				continue
			}
			min, max = min.Min(rMin), max.Max(rMax)
		}
	}
	return min, max, !first
}

func projector(min, max geom2.Coord, opts Options) func(geom2.Coord) (float32, float32) {
	width := max.X - min.X
	height := max.Y - min.Y
	if width == 0 {
		width = 1
	}
	if height == 0 {
		height = 1
	}
	usableW := float64(opts.Width - 2*opts.Margin)
	usableH := float64(opts.Height - 2*opts.Margin)
	scale := usableW / width
	if alt := usableH / height; alt < scale {
		scale = alt
	}

	return func(c geom2.Coord) (float32, float32) {
		x := float64(opts.Margin) + (c.X-min.X)*scale
		// Flip y: image rows grow downward, view coordinates grow upward.
		y := float64(opts.Height-opts.Margin) - (c.Y-min.Y)*scale
		return float32(x), float32(y)
	}
}

func rasterizeRing(img *image.RGBA, ring geom2.Ring, toPixel func(geom2.Coord) (float32, float32), col color.RGBA, opts Options) {
	if len(ring) < 3 {
		return
	}
	raster := vector.NewRasterizer(opts.Width, opts.Height)
	x0, y0 := toPixel(ring[0])
	raster.MoveTo(x0, y0)
	for _, c := range ring[1:] {
		x, y := toPixel(c)
		raster.LineTo(x, y)
	}
	raster.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, opts.Width, opts.Height))
	raster.Draw(mask, mask.Bounds(), image.NewUniform(color.Opaque), image.Point{})

	draw(img, mask, col)
}

func draw(dst *image.RGBA, mask *image.Alpha, col color.RGBA) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := mask.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			dst.Set(x, y, col)
		}
	}
}

func fillBackground(img *image.RGBA, c color.Color) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

// colorFor assigns a stable, visually distinct color to a piece id
// from a small fixed palette, cycling for ids beyond the palette size.
func colorFor(id int) color.RGBA {
	palette := []color.RGBA{
		{R: 0xE6, G: 0x39, B: 0x46, A: 0xFF},
		{R: 0x3C, G: 0x78, B: 0xD8, A: 0xFF},
		{R: 0x3C, G: 0xB8, B: 0x6A, A: 0xFF},
		{R: 0xE8, G: 0xA6, B: 0x2E, A: 0xFF},
		{R: 0x9B, G: 0x59, B: 0xB6, A: 0xFF},
	}
	if id < 0 {
		id = -id
	}
	return palette[id%len(palette)]
}
