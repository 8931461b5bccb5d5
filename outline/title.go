// Package outline derives document titles and finalized outlines from
// decoded pages and scored heading candidates.
package outline

import (
	"regexp"
	"strings"

	"github.com/tsawler/contour/layout"
	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/text"
)

// TitleConfig controls the title fallback chain.
type TitleConfig struct {
	// TopFraction restricts title search to blocks whose bottom edge lies
	// within this fraction of page height from the top.
	TopFraction float64
	// SizeRatio admits spans whose rounded size reaches this fraction of
	// the maximum rounded size.
	SizeRatio float64
	// CenterTolerance is the centering fallback tolerance as a fraction of
	// page width.
	CenterTolerance float64
	// MaxWords caps the word count of a centered-block title.
	MaxWords int
}

// DefaultTitleConfig returns the standard title extraction settings.
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		TopFraction:     0.6,
		SizeRatio:       0.9,
		CenterTolerance: layout.DefaultCenterTolerance,
		MaxWords:        20,
	}
}

var titleKeywords = regexp.MustCompile(`(?i)\b(title|abstract)\b`)

// ExtractTitle derives a document title from the first page with the
// default configuration. Every strategy that needs a title calls this one
// function.
func ExtractTitle(doc *model.Document) string {
	return ExtractTitleWithConfig(doc, DefaultTitleConfig())
}

// ExtractTitleWithConfig derives a document title from the first page.
//
// The chain: the largest-font text near the top of the first page; failing
// that, a short horizontally centered block; failing that, a block
// mentioning "title" or "abstract"; failing everything, the empty string.
func ExtractTitleWithConfig(doc *model.Document, cfg TitleConfig) string {
	if doc.PageCount() == 0 {
		return ""
	}
	page := doc.Pages[0]

	var blocks []*model.Block
	for _, b := range page.Blocks {
		if b.BBox.Bottom() < page.Height*cfg.TopFraction {
			blocks = append(blocks, b)
		}
	}
	if len(blocks) == 0 {
		return ""
	}

	// Primary: the dominant font size among top-of-page spans.
	var spans []model.Span
	for _, b := range blocks {
		for _, s := range b.Spans() {
			if strings.TrimSpace(s.Text) != "" {
				spans = append(spans, s)
			}
		}
	}
	if len(spans) > 0 {
		topSize := spans[0].Size
		for _, s := range spans[1:] {
			if s.Size > topSize {
				topSize = s.Size
			}
		}
		threshold := layout.RoundSize(topSize * cfg.SizeRatio)
		topRounded := layout.RoundSize(topSize)

		hasCandidates := false
		var parts []string
		for _, s := range spans {
			rounded := layout.RoundSize(s.Size)
			if rounded >= threshold {
				hasCandidates = true
			}
			if rounded == topRounded {
				parts = append(parts, s.Text)
			}
		}
		if hasCandidates {
			return text.Clean(strings.Join(parts, " "))
		}
	}

	// Fallback 1: a short block sitting at the horizontal center.
	for _, b := range blocks {
		if layout.IsCentered(b.BBox, page.Width, cfg.CenterTolerance) {
			cleaned := text.Clean(b.Text())
			if cleaned != "" && text.WordCount(cleaned) < cfg.MaxWords {
				return cleaned
			}
		}
	}

	// Fallback 2: a block announcing itself as title or abstract.
	for _, b := range blocks {
		cleaned := text.Clean(b.Text())
		if titleKeywords.MatchString(cleaned) {
			return cleaned
		}
	}

	return ""
}
