// Package pixelsort streaks images by sorting runs of pixels within rows.
//
// For every row, pixels whose key under the chosen property falls inside an
// inclusive threshold range form an acceptance mask; each maximal run of
// accepted pixels is stably sorted in place, ascending by that same key.
// Pixels outside a run never move, and alpha travels with its pixel without
// ever entering a key.
package pixelsort

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"dasa.cc/porter/intervals"
)

// By selects the photometric property used for masking and ordering.
type By uint8

const (
	// Luminance is weighted luma, (2126r + 7152g + 722b)/10000 in integer
	// math; keys in [0, 255].
	Luminance By = iota

	// Hue is the HSL hue angle in degrees, truncated; keys in [0, 360).
	// Achromatic pixels key to 0.
	Hue

	// Saturation is HSL saturation scaled to [0, 255] and truncated.
	Saturation
)

// ParseBy maps a property name to its By value.
func ParseBy(s string) (By, error) {
	switch s {
	case "luminance":
		return Luminance, nil
	case "hue":
		return Hue, nil
	case "saturation":
		return Saturation, nil
	}
	return 0, fmt.Errorf("pixelsort: unknown property %q", s)
}

func (by By) String() string {
	switch by {
	case Luminance:
		return "luminance"
	case Hue:
		return "hue"
	case Saturation:
		return "saturation"
	}
	return fmt.Sprintf("By(%d)", uint8(by))
}

// Max returns the upper bound of the threshold domain for by.
func (by By) Max() uint16 {
	if by == Hue {
		return 360
	}
	return 255
}

// Key returns the scalar key of an RGB triple under by. The same key ranks
// pixels and tests threshold membership, and float conversions truncate
// toward zero, so results are reproducible bit for bit.
func (by By) Key(r, g, b uint8) uint16 {
	switch by {
	case Luminance:
		return luma(r, g, b)
	case Hue:
		return hue(r, g, b)
	case Saturation:
		return saturation(r, g, b)
	}
	panic(fmt.Sprintf("pixelsort: Key on invalid By(%d)", uint8(by)))
}

func luma(r, g, b uint8) uint16 {
	return uint16((2126*uint32(r) + 7152*uint32(g) + 722*uint32(b)) / 10000)
}

func hue(r, g, b uint8) uint16 {
	red, green, blue := float32(r), float32(g), float32(b)
	min, max := minmax(red, green, blue)
	if max == min {
		return 0
	}

	var h float32
	switch max {
	case red:
		h = (green - blue) / (max - min)
	case green:
		h = 2 + (blue-red)/(max-min)
	default:
		h = 4 + (red-green)/(max-min)
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return uint16(h)
}

func saturation(r, g, b uint8) uint16 {
	red, green, blue := float32(r)/255, float32(g)/255, float32(b)/255
	min, max := minmax(red, green, blue)
	if max == min {
		return 0
	}

	l := (max + min) / 2
	s := 1 - abs(2*l-1)
	return uint16(s * 255)
}

func minmax(a, b, c float32) (min, max float32) {
	min, max = a, a
	if b < min {
		min = b
	}
	if b > max {
		max = b
	}
	if c < min {
		min = c
	}
	if c > max {
		max = c
	}
	return min, max
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// ErrRange reports an inverted threshold range.
var ErrRange = errors.New("pixelsort: lower threshold exceeds upper")

// pixel is one owned pixel with its precomputed key; its lifetime is scoped
// to sorting a single run.
type pixel struct {
	key        uint16
	r, g, b, a uint8
}

// Sort reorders m in place so that within every row, each maximal run of
// pixels whose key under by lies in [lo, hi] is ascending in that key. The
// sort is stable, so pixels with equal keys keep their relative order and
// flat regions come through unchanged.
//
// An inverted range or an unrecognized property fails fast and leaves m
// untouched. Zero-size bounds are a no-op.
func Sort(m *image.RGBA, by By, lo, hi uint16) error {
	if lo > hi {
		return fmt.Errorf("%w: %v > %v", ErrRange, lo, hi)
	}
	if by > Saturation {
		return fmt.Errorf("pixelsort: unknown property By(%d)", uint8(by))
	}

	b := m.Bounds()
	w := b.Dx()
	if w == 0 || b.Dy() == 0 {
		return nil
	}

	mask := make([]bool, w)
	run := make([]pixel, 0, w)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := m.PixOffset(b.Min.X, y)
		row := m.Pix[i : i+4*w : i+4*w]

		for x := 0; x < w; x++ {
			k := by.Key(row[4*x], row[4*x+1], row[4*x+2])
			mask[x] = lo <= k && k <= hi
		}

		for _, s := range intervals.Runs(mask) {
			run = run[:0]
			for x := s.Start; x < s.End; x++ {
				p := row[4*x : 4*x+4 : 4*x+4]
				run = append(run, pixel{by.Key(p[0], p[1], p[2]), p[0], p[1], p[2], p[3]})
			}
			sort.SliceStable(run, func(i, j int) bool { return run[i].key < run[j].key })
			for n, p := range run {
				x := 4 * (s.Start + n)
				row[x], row[x+1], row[x+2], row[x+3] = p.r, p.g, p.b, p.a
			}
		}
	}
	return nil
}
