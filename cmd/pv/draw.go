package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/math/fixed"
)

var (
	monobold = mustParseTTF(gomonobold.TTF)

	monobold18 = NewFace(monobold, Size(18), Hinting(font.HintingFull))
)

func mustParseTTF(ttf []byte) *truetype.Font {
	f, err := truetype.Parse(ttf)
	if err != nil {
		panic(err)
	}
	return f
}

func Size(x float64) func(*truetype.Options) {
	return func(a *truetype.Options) {
		a.Size = x
	}
}

func Hinting(x font.Hinting) func(*truetype.Options) {
	return func(a *truetype.Options) {
		a.Hinting = x
	}
}

func NewFace(fnt *truetype.Font, opts ...func(*truetype.Options)) font.Face {
	o := &truetype.Options{}
	for _, opt := range opts {
		opt(o)
	}
	return truetype.NewFace(fnt, o)
}

type Drawer struct {
	src  image.Image
	pos  image.Point
	face font.Face
}

func (d *Drawer) TranslateTo(pt image.Point) { d.pos = pt }
func (d *Drawer) SetColor(clr color.Color)   { d.src = image.NewUniform(clr) }

func (d *Drawer) MeasureString(s string) image.Rectangle {
	adv := font.MeasureString(d.face, s).Ceil()
	asc := d.face.Metrics().Ascent.Ceil()
	return image.Rect(0, 0, adv, asc)
}

func (d *Drawer) DrawString(dst *image.RGBA, s string) {
	dr := font.Drawer{
		Dst:  dst,
		Src:  d.src,
		Face: d.face,
		Dot: fixed.Point26_6{
			X: fixed.I(d.pos.X),
			Y: fixed.I(d.pos.Y + d.face.Metrics().Ascent.Ceil()),
		},
	}
	dr.DrawString(s)
}

// drawLabel paints the current file and parameters over a bar in the lower
// left corner and returns the rectangle it dirtied.
func drawLabel(dst *image.RGBA) image.Rectangle {
	s := fmt.Sprintf("%s  %v %v:%v",
		filepath.Base(state.paths[state.index]),
		state.by, state.lo, state.hi)

	d := &Drawer{face: monobold18}
	const pad = 6
	m := d.MeasureString(s)
	b := dst.Bounds()
	bar := image.Rect(b.Min.X, b.Max.Y-m.Dy()-2*pad, b.Min.X+m.Dx()+2*pad, b.Max.Y)

	draw.Draw(dst, bar, image.NewUniform(color.RGBA{0, 0, 0, 192}), image.ZP, draw.Over)
	d.SetColor(color.White)
	d.TranslateTo(image.Pt(bar.Min.X+pad, bar.Min.Y+pad))
	d.DrawString(dst, s)
	return bar
}
