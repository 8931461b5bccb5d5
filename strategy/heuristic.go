package strategy

import (
	"regexp"
	"unicode/utf8"

	"github.com/tsawler/contour/layout"
	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/outline"
	"github.com/tsawler/contour/text"
)

// Score weights for heuristic heading detection.
const (
	sizeWeight        = 5  // per point above body size
	boldBonus         = 10 // first span uses a bold face
	shortBonus        = 10 // fewer than shortWordLimit words
	noTerminatorBonus = 5  // does not end like a sentence or label
	numberedBonus     = 30 // leads with section numbering
	proseWordLimit    = 25 // more words than this reads as prose
	shortWordLimit    = 12
	prosePenalty      = 20
	proseDotLength    = 30 // internal dot only counts against long text
)

// headingNumbering recognizes section-style lead-ins: dotted digit groups,
// appendix letters, roman numerals with a trailing dot.
var headingNumbering = regexp.MustCompile(`^((\d+(\.\d+)*)|(Appendix\s+[A-Z])|([IVXLCDM]+\.))\b`)

// HeuristicConfig controls scoring-based heading detection.
type HeuristicConfig struct {
	// Threshold is the minimum score a block needs to become a heading
	// candidate.
	Threshold int
	// MarginBand is the height in points of the header and footer bands
	// excluded from scoring.
	MarginBand float64
	// Title configures the shared title extraction.
	Title outline.TitleConfig
}

// DefaultHeuristicConfig returns the standard heuristic settings.
func DefaultHeuristicConfig() HeuristicConfig {
	return HeuristicConfig{
		Threshold:  25,
		MarginBand: layout.DefaultMarginBand,
		Title:      outline.DefaultTitleConfig(),
	}
}

// Heuristic detects headings in text-heavy documents by scoring every
// block against the document's body font size. It is the fallback strategy
// when no stronger document signal applies.
type Heuristic struct {
	config HeuristicConfig
}

// NewHeuristic creates a heuristic strategy with default configuration.
func NewHeuristic() *Heuristic {
	return NewHeuristicWithConfig(DefaultHeuristicConfig())
}

// NewHeuristicWithConfig creates a heuristic strategy with custom
// configuration.
func NewHeuristicWithConfig(config HeuristicConfig) *Heuristic {
	return &Heuristic{config: config}
}

func (s *Heuristic) String() string { return NameHeuristic }

// Extract scores every block outside the margin bands and structures the
// survivors into an outline.
func (s *Heuristic) Extract(doc *model.Document) model.Result {
	title := outline.ExtractTitleWithConfig(doc, s.config.Title)
	bodySize := layout.ComputeFontStats(doc).BodySize()
	candidates := s.findHeadings(doc, bodySize)
	return model.Result{Title: title, Outline: outline.Structure(candidates)}
}

func (s *Heuristic) findHeadings(doc *model.Document, bodySize int) []model.HeadingCandidate {
	var candidates []model.HeadingCandidate
	for pageIdx, page := range doc.Pages {
		for _, block := range page.Blocks {
			cleaned := text.Clean(block.Text())
			if cleaned == "" {
				continue
			}
			if layout.InMarginBand(block.BBox, page.Height, s.config.MarginBand) {
				continue
			}
			first := block.FirstSpan()
			if first == nil {
				continue
			}

			size := layout.RoundSize(first.Size)
			style := model.Style{Size: size, Bold: first.Bold}
			score := scoreHeading(cleaned, style, bodySize)
			if score >= s.config.Threshold {
				candidates = append(candidates, model.HeadingCandidate{
					Text:  cleaned,
					Page:  pageIdx,
					Style: style,
					BBox:  block.BBox,
					Score: score,
				})
			}
		}
	}
	return candidates
}

// scoreHeading computes the additive heading score for a cleaned block
// text with the given first-span style, relative to the body font size.
func scoreHeading(cleaned string, style model.Style, bodySize int) int {
	score := 0

	if style.Size > bodySize {
		score += (style.Size - bodySize) * sizeWeight
	}
	if style.Bold {
		score += boldBonus
	}

	words := text.WordCount(cleaned)
	if words < shortWordLimit {
		score += shortBonus
	}
	if !text.EndsWithAny(cleaned, ".", ":", ";") {
		score += noTerminatorBonus
	}
	if headingNumbering.MatchString(cleaned) {
		score += numberedBonus
	}
	if words > proseWordLimit ||
		(internalDot(cleaned) && utf8.RuneCountInString(cleaned) > proseDotLength) {
		score -= prosePenalty
	}

	return score
}

// internalDot reports a '.' anywhere except the first and last character.
// Section numbers put dots at the edges; prose puts them in the middle.
func internalDot(s string) bool {
	runes := []rune(s)
	if len(runes) <= 2 {
		return false
	}
	for _, r := range runes[1 : len(runes)-1] {
		if r == '.' {
			return true
		}
	}
	return false
}
