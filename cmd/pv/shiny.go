package main

import (
	"image"
	"image/color"
	"image/draw"
	"log"

	"github.com/nfnt/resize"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

var background = image.NewUniform(color.RGBA{38, 50, 56, 255})

func shinyMain(s screen.Screen) {
	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  1024,
		Height: 1024,
		Title:  title,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer w.Release()

	var (
		buf screen.Buffer
		// paintPending batches up state changes so a burst of key repeats
		// paints once.
		paintPending bool
	)

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case key.Event:
			if !handle(e) {
				break
			}
			if !paintPending {
				paintPending = true
				w.Send(paint.Event{})
			}
		case size.Event:
			if buf != nil {
				buf.Release()
				buf = nil
			}
			if sz := e.Size(); sz != image.ZP {
				if buf, err = s.NewBuffer(sz); err != nil {
					log.Fatal(err)
				}
			}
			w.Send(paint.Event{})
		case paint.Event:
			if buf != nil {
				compose(buf.RGBA())
				w.Upload(image.ZP, buf, buf.Bounds())
				w.Publish()
			}
			paintPending = false
		case error:
			log.Println(e)
		}
	}
}

// compose paints the current sorted frame fit to dst with the label overlay.
func compose(dst *image.RGBA) {
	b := dst.Bounds()
	draw.Draw(dst, b, background, image.ZP, draw.Src)

	m := fit(b.Size(), state.sorted)
	mb := m.Bounds()
	off := image.Pt((b.Dx()-mb.Dx())/2, (b.Dy()-mb.Dy())/2)
	draw.Draw(dst, mb.Add(off), m, image.ZP, draw.Src)

	drawLabel(dst)
}

// fit scales src to fill viewport while preserving aspect.
func fit(viewport image.Point, src *image.RGBA) image.Image {
	sz := src.Bounds().Size()
	if viewport.X*sz.Y < viewport.Y*sz.X {
		return resize.Resize(uint(viewport.X), 0, src, resize.Lanczos3)
	}
	return resize.Resize(0, uint(viewport.Y), src, resize.Lanczos3)
}
