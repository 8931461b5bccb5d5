package layout

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/contour/model"
)

// DefaultBodySize is reported for documents with no measurable text.
const DefaultBodySize = 10

// FontStats tallies how many characters of a document are set in each
// rounded font size. Body text dominates the tally in any text-heavy
// document, so the modal size is a reliable baseline for "normal" text.
type FontStats struct {
	counts map[int]int
	order  []int // sizes in order of first appearance, for stable ties
}

// NewFontStats returns an empty tally.
func NewFontStats() *FontStats {
	return &FontStats{counts: make(map[int]int)}
}

// Add records chars characters set at the given rounded size.
func (s *FontStats) Add(size, chars int) {
	if _, seen := s.counts[size]; !seen {
		s.order = append(s.order, size)
	}
	s.counts[size] += chars
}

// Count returns the character tally recorded for a rounded size.
func (s *FontStats) Count(size int) int {
	return s.counts[size]
}

// BodySize returns the rounded font size with the largest character tally.
// Ties go to the size encountered first. An empty tally returns
// DefaultBodySize.
func (s *FontStats) BodySize() int {
	if len(s.order) == 0 {
		return DefaultBodySize
	}
	best := s.order[0]
	for _, size := range s.order[1:] {
		if s.counts[size] > s.counts[best] {
			best = size
		}
	}
	return best
}

// ComputeFontStats tallies every non-empty span across all pages of the
// document, weighted by the character count of its trimmed text.
func ComputeFontStats(doc *model.Document) *FontStats {
	stats := NewFontStats()
	for _, page := range doc.Pages {
		for _, block := range page.Blocks {
			for _, line := range block.Lines {
				for _, span := range line.Spans {
					trimmed := strings.TrimSpace(span.Text)
					if trimmed == "" {
						continue
					}
					stats.Add(RoundSize(span.Size), utf8.RuneCountInString(trimmed))
				}
			}
		}
	}
	return stats
}

// RoundSize rounds a font size to the integer bucket used everywhere sizes
// are compared.
func RoundSize(size float64) int {
	return int(math.Round(size))
}
