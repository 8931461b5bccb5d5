package strategy

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/contour/layout"
	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/outline"
	"github.com/tsawler/contour/text"
)

// Score weights for visual-layout heading detection.
const (
	isolationBonus    = 25 // clear space above the block
	centeredBonus     = 20
	visualSizeWeight  = 5
	briefBonus        = 10 // fewer than briefWordLimit words
	allCapsBonus      = 15
	crowdedPenalty    = 25 // next block follows too closely
	proseLikePenalty  = 25 // wordy or sentence-punctuated
	noisePenalty      = 20 // label-like or boilerplate text
	exclamationBonus  = 30 // short call-to-action phrasing
	briefWordLimit    = 6
	visualProseWords  = 10
	isolationGap      = 10.0 // points of clear space that count as isolated
	crowdingGap       = 8.0  // closer than this reads as a dense list
	edgeGap           = 100.0
)

// visualNoise matches label and boilerplate text that visually resembles a
// heading but never is one.
var visualNoise = regexp.MustCompile(`(?i):|\/|www\.|\.com|address|required|waiver|parents|regular pathway`)

// callToAction captures an all-caps run ending in an exclamation mark.
var callToAction = regexp.MustCompile(`([A-Z\s]+!)`)

// VisualConfig controls visual-layout heading detection.
type VisualConfig struct {
	// Threshold is the minimum score a block needs to become a heading
	// candidate. Higher than the heuristic threshold: sparse documents
	// offer fewer corroborating signals, so only strong candidates pass.
	Threshold int
	// MinTextLength drops blocks whose cleaned text is shorter than this.
	MinTextLength int
}

// DefaultVisualConfig returns the standard visual-layout settings.
func DefaultVisualConfig() VisualConfig {
	return VisualConfig{
		Threshold:     40,
		MinTextLength: 4,
	}
}

// VisualLayout detects headings in sparse, visually-driven documents such
// as flyers, posters and invitations. Content cues are unreliable there,
// so scoring leans on spacing, centering and typography relative to each
// block's immediate neighbors. These documents have no meaningful title.
type VisualLayout struct {
	config VisualConfig
}

// NewVisualLayout creates a visual-layout strategy with default
// configuration.
func NewVisualLayout() *VisualLayout {
	return NewVisualLayoutWithConfig(DefaultVisualConfig())
}

// NewVisualLayoutWithConfig creates a visual-layout strategy with custom
// configuration.
func NewVisualLayoutWithConfig(config VisualConfig) *VisualLayout {
	return &VisualLayout{config: config}
}

func (s *VisualLayout) String() string { return NameVisual }

// Extract scores blocks page by page against their neighbors and
// structures the survivors. The title is always empty.
func (s *VisualLayout) Extract(doc *model.Document) model.Result {
	bodySize := layout.ComputeFontStats(doc).BodySize()

	var candidates []model.HeadingCandidate
	for pageIdx, page := range doc.Pages {
		candidates = append(candidates, s.findOnPage(page, pageIdx, bodySize)...)
	}

	return model.Result{Title: "", Outline: outline.Structure(candidates)}
}

func (s *VisualLayout) findOnPage(page *model.Page, pageIdx, bodySize int) []model.HeadingCandidate {
	blocks := make([]*model.Block, len(page.Blocks))
	copy(blocks, page.Blocks)
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].BBox.Top() < blocks[j].BBox.Top()
	})

	var candidates []model.HeadingCandidate
	for i, block := range blocks {
		cleaned := text.Clean(block.Text())
		if utf8.RuneCountInString(cleaned) < s.config.MinTextLength {
			continue
		}
		first := block.FirstSpan()
		if first == nil {
			continue
		}

		score := 0

		gapAbove := edgeGap
		if i > 0 {
			gapAbove = block.BBox.Top() - blocks[i-1].BBox.Bottom()
		}
		if gapAbove > isolationGap {
			score += isolationBonus
		}

		if layout.IsCentered(block.BBox, page.Width, layout.DefaultCenterTolerance) {
			score += centeredBonus
		}

		size := layout.RoundSize(first.Size)
		if size > bodySize+1 {
			score += (size - bodySize) * visualSizeWeight
		}

		words := text.WordCount(cleaned)
		if words < briefWordLimit {
			score += briefBonus
		}
		if text.AllCaps(cleaned) && words > 1 {
			score += allCapsBonus
		}

		gapBelow := edgeGap
		if i < len(blocks)-1 {
			gapBelow = blocks[i+1].BBox.Top() - block.BBox.Bottom()
		}
		if gapBelow < crowdingGap {
			score -= crowdedPenalty
		}

		if words > visualProseWords || dotBeforeLast(cleaned) {
			score -= proseLikePenalty
		}
		if visualNoise.MatchString(cleaned) {
			score -= noisePenalty
		}
		if strings.Contains(cleaned, "!") && words < briefWordLimit {
			score += exclamationBonus
		}

		if score >= s.config.Threshold {
			candidateText := cleaned
			if m := callToAction.FindString(cleaned); m != "" {
				candidateText = strings.TrimSpace(m)
			}
			candidates = append(candidates, model.HeadingCandidate{
				Text:  candidateText,
				Page:  pageIdx,
				Style: model.Style{Size: size, Bold: first.Bold},
				BBox:  block.BBox,
				Score: score,
			})
		}
	}
	return candidates
}

// dotBeforeLast reports a '.' anywhere except as the final character.
func dotBeforeLast(s string) bool {
	runes := []rune(s)
	if len(runes) <= 1 {
		return false
	}
	for _, r := range runes[:len(runes)-1] {
		if r == '.' {
			return true
		}
	}
	return false
}
