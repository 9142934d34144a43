// Command pv interactively previews the porter pixel-sorting effect.
//
// pv holds the unsorted source in memory and re-sorts a fresh copy whenever
// a parameter changes, so edits never compound. Keys:
//
//	1/2/3       sort by luminance, hue, saturation
//	left/right  lower threshold -1/+1
//	down/up     upper threshold -1/+1
//	a/d, s/w    the same, in steps of 10
//	r           reset thresholds to the property's full domain
//	n/p         next/previous image argument
//	enter       write sorted-<name>.png to the working directory
//	esc         quit
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/exp/shiny/driver/gldriver"

	"dasa.cc/porter/pixelsort"
)

const title = "pv"

var state = struct {
	paths []string
	index int

	src    *image.RGBA // unsorted source of paths[index]
	sorted *image.RGBA // src re-sorted under the current parameters

	by     pixelsort.By
	lo, hi uint16
}{hi: pixelsort.Luminance.Max()}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [images]\n", os.Args[0])
	flag.PrintDefaults()
}

func init() {
	flag.Usage = usage
	log.SetPrefix(title + ": ")
	log.SetFlags(0)
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	state.paths = flag.Args()
	if err := load(0); err != nil {
		log.Fatal(err)
	}

	gldriver.Main(shinyMain)
}

func load(i int) error {
	n := len(state.paths)
	state.index = ((i % n) + n) % n
	path := state.paths[state.index]

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %v", path, err)
	}

	m := image.NewRGBA(image.Rectangle{Max: src.Bounds().Size()})
	draw.Draw(m, m.Bounds(), src, src.Bounds().Min, draw.Src)
	state.src = m
	resort()
	return nil
}

// resort runs the effect against a fresh copy of the unsorted source.
func resort() {
	m := image.NewRGBA(state.src.Bounds())
	copy(m.Pix, state.src.Pix)
	if err := pixelsort.Sort(m, state.by, state.lo, state.hi); err != nil {
		log.Println(err)
		return
	}
	state.sorted = m
}

func setBy(by pixelsort.By) {
	state.by = by
	if state.hi > by.Max() {
		state.hi = by.Max()
	}
	if state.lo > state.hi {
		state.lo = state.hi
	}
	resort()
}

func stepLo(d int) {
	state.lo = clamp(int(state.lo)+d, 0, int(state.hi))
	resort()
}

func stepHi(d int) {
	state.hi = clamp(int(state.hi)+d, int(state.lo), int(state.by.Max()))
	resort()
}

func reset() {
	state.lo, state.hi = 0, state.by.Max()
	resort()
}

func cycle(d int) {
	if len(state.paths) < 2 {
		return
	}
	if err := load(state.index + d); err != nil {
		log.Println(err)
	}
}

func clamp(v, lo, hi int) uint16 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return uint16(v)
}

// save writes the current sorted frame as png, whatever the source format.
func save() {
	base := filepath.Base(state.paths[state.index])
	name := "sorted-" + strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
	f, err := os.Create(name)
	if err != nil {
		log.Println(err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, state.sorted); err != nil {
		log.Println(err)
		return
	}
	log.Println("wrote", name)
}
