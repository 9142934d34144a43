// Package intervals decomposes a boolean sequence into its maximal runs of true.
package intervals

// Span is a half-open index range [Start, End) over the scanned sequence.
type Span struct{ Start, End int }

// Len returns the number of indices covered by s.
func (s Span) Len() int { return s.End - s.Start }

// Runs scans mask left to right and returns every maximal run of true as a
// Span in increasing start order. Spans are disjoint and never adjacent; a
// false gap always separates two. A nil, empty, or all-false mask yields nil.
func Runs(mask []bool) []Span {
	var spans []Span
	start := -1
	for i, ok := range mask {
		switch {
		case ok && start < 0:
			start = i
		case !ok && start >= 0:
			spans = append(spans, Span{start, i})
			start = -1
		}
	}
	if start >= 0 {
		spans = append(spans, Span{start, len(mask)})
	}
	return spans
}
