package intervals

import (
	"math/rand"
	"testing"
)

func mask(s string) []bool {
	m := make([]bool, len(s))
	for i, c := range s {
		m[i] = c == '1'
	}
	return m
}

func TestRuns(t *testing.T) {
	tests := []struct {
		mask string
		want []Span
	}{
		{"", nil},
		{"0", nil},
		{"000000", nil},
		{"1", []Span{{0, 1}}},
		{"111111", []Span{{0, 6}}},
		{"101", []Span{{0, 1}, {2, 3}}},
		{"0110010", []Span{{1, 3}, {5, 6}}},
		{"1001", []Span{{0, 1}, {3, 4}}},
		{"0111", []Span{{1, 4}}},
		{"1110", []Span{{0, 3}}},
	}
	for _, tt := range tests {
		have := Runs(mask(tt.mask))
		if len(have) != len(tt.want) {
			t.Fatalf("Runs(%q): expected %v but got %v", tt.mask, tt.want, have)
		}
		for i, s := range have {
			if s != tt.want[i] {
				t.Fatalf("Runs(%q): expected %v but got %v", tt.mask, tt.want, have)
			}
		}
	}
}

// TestPartition checks spans are disjoint, increasing, non-adjacent, and
// cover exactly the true indices.
func TestPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 1000; n++ {
		m := make([]bool, rng.Intn(64))
		for i := range m {
			m[i] = rng.Intn(2) == 0
		}

		covered := make([]bool, len(m))
		prev := Span{-1, -1}
		for _, s := range Runs(m) {
			if s.Start >= s.End {
				t.Fatalf("empty span %v", s)
			}
			if s.Start <= prev.End {
				t.Fatalf("span %v not separated from %v", s, prev)
			}
			for i := s.Start; i < s.End; i++ {
				covered[i] = true
			}
			prev = s
		}
		for i := range m {
			if m[i] != covered[i] {
				t.Fatalf("index %v: mask %v but covered %v", i, m[i], covered[i])
			}
		}
	}
}

func BenchmarkRuns(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	m := make([]bool, 4096)
	for i := range m {
		m[i] = rng.Intn(2) == 0
	}
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		Runs(m)
	}
}
