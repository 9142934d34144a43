// Command porter applies a pixel-sorting effect to images.
//
// Within every row, maximal runs of pixels whose property value falls
// between flags lo and hi are sorted ascending by that property, streaking
// the accepted regions. Results are written to the working directory with
// flag prefix prepended to each input's base name. For example:
//
//	porter -by hue -lo 90 -hi 270 glitch.png
//	porter -by luminance -hi 64 a.jpg b.jpg
//
// Failures on individual images are logged and the rest of the batch still
// runs; the exit code is 1 if any image failed. Flag i drops into an
// interactive tuning shell instead of running a batch.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"log"
	"os"
	"path/filepath"

	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"dasa.cc/porter/pixelsort"
)

var (
	flagBy     = flag.String("by", "luminance", "property to sort by; one of luminance, hue, saturation.")
	flagLo     = flag.Int("lo", 0, "lower threshold, in the property's domain.")
	flagHi     = flag.Int("hi", -1, "upper threshold; -1 means the property's domain max.")
	flagPrefix = flag.String("prefix", "sorted-", "prefix for output file names.")
	flagShell  = flag.Bool("i", false, "start an interactive tuning shell.")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "\n"+`Sorts runs of pixels within image rows by flag by. A pixel is part of a
run while its property value lies between flags lo and hi inclusive;
each run sorts independently, everything else stays put. Thresholds
range 0-255 for luminance and saturation, 0-360 for hue. For example:

	porter -by hue -lo 90 -hi 270 glitch.png
	porter -by luminance -hi 64 a.jpg b.jpg`)
}

func init() {
	flag.Usage = usage
	log.SetPrefix("porter: ")
	log.SetFlags(0)
}

func main() {
	flag.Parse()

	by, err := pixelsort.ParseBy(*flagBy)
	if err != nil {
		flag.Usage()
		log.Fatal(err)
	}
	lo, hi, err := thresholds(by)
	if err != nil {
		flag.Usage()
		log.Fatal(err)
	}

	if *flagShell {
		shell(by, lo, hi)
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	code := 0
	for _, path := range flag.Args() {
		if err := process(path, by, lo, hi); err != nil {
			log.Printf("%s: %v", path, err)
			code = 1
		}
	}
	os.Exit(code)
}

// thresholds resolves flags lo and hi against by's domain.
func thresholds(by pixelsort.By) (lo, hi uint16, err error) {
	max := int(by.Max())
	if *flagHi == -1 {
		*flagHi = max
	}
	if *flagLo < 0 || *flagLo > max || *flagHi < 0 || *flagHi > max {
		return 0, 0, fmt.Errorf("thresholds for %v range 0-%v", by, max)
	}
	if *flagLo > *flagHi {
		return 0, 0, fmt.Errorf("lower threshold %v exceeds upper %v", *flagLo, *flagHi)
	}
	return uint16(*flagLo), uint16(*flagHi), nil
}

// process decodes path, sorts it, and writes prefix+basename to the
// working directory in the source format.
func process(path string, by pixelsort.By, lo, hi uint16) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return err
	}

	m := rgba(src)
	if err := pixelsort.Sort(m, by, lo, hi); err != nil {
		return err
	}
	return write(*flagPrefix+filepath.Base(path), format, m)
}

func rgba(src image.Image) *image.RGBA {
	if m, ok := src.(*image.RGBA); ok {
		return m
	}
	m := image.NewRGBA(src.Bounds())
	draw.Draw(m, m.Bounds(), src, src.Bounds().Min, draw.Src)
	return m
}

func write(name, format string, m *image.RGBA) error {
	if format == "webp" {
		// decode-only upstream; fall back to png.
		name += ".png"
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case "jpeg":
		return jpeg.Encode(f, m, nil)
	case "gif":
		return gif.Encode(f, m, nil)
	case "bmp":
		return bmp.Encode(f, m)
	case "tiff":
		return tiff.Encode(f, m, nil)
	default:
		return png.Encode(f, m)
	}
}
