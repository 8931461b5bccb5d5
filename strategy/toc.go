package strategy

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/outline"
	"github.com/tsawler/contour/text"
)

// dotLeader matches the ".... 12" leader-and-page fragments TOC entries
// drag along. Removed everywhere they appear, not only at the end.
var dotLeader = regexp.MustCompile(`\s+\.{2,}\s*\d+`)

// embeddedNumbering finds nested numbered sub-headings ("2.1 ", "3.4.2 ")
// packed into a single TOC entry.
var embeddedNumbering = regexp.MustCompile(`\d+(\.\d+)+\s`)

// TOCConfig controls TOC-based extraction.
type TOCConfig struct {
	// MaxLevel drops embedded entries nested deeper than this.
	MaxLevel int
	// MinTextLength drops entries whose cleaned text is this short or
	// shorter.
	MinTextLength int
	// Title configures the shared title extraction.
	Title outline.TitleConfig
}

// DefaultTOCConfig returns the standard TOC extraction settings.
func DefaultTOCConfig() TOCConfig {
	return TOCConfig{
		MaxLevel:      model.MaxLevel,
		MinTextLength: 2,
		Title:         outline.DefaultTitleConfig(),
	}
}

// TOC extracts an outline directly from the document's embedded table of
// contents. Embedded levels are authoritative: no style ranking applies,
// only hierarchy correction.
type TOC struct {
	config TOCConfig
}

// NewTOC creates a TOC strategy with default configuration.
func NewTOC() *TOC {
	return NewTOCWithConfig(DefaultTOCConfig())
}

// NewTOCWithConfig creates a TOC strategy with custom configuration.
func NewTOCWithConfig(config TOCConfig) *TOC {
	return &TOC{config: config}
}

func (s *TOC) String() string { return NameTOC }

// Extract builds the outline from embedded TOC entries and derives the
// title from the first page.
func (s *TOC) Extract(doc *model.Document) model.Result {
	title := outline.ExtractTitleWithConfig(doc, s.config.Title)

	items := make([]model.OutlineItem, 0, len(doc.TOC))
	for _, entry := range doc.TOC {
		if entry.Level > s.config.MaxLevel {
			continue
		}
		cleaned := text.Clean(dotLeader.ReplaceAllString(entry.Title, ""))
		if utf8.RuneCountInString(cleaned) <= s.config.MinTextLength || text.IsDigits(cleaned) {
			continue
		}
		for _, segment := range splitEmbedded(cleaned) {
			segment = strings.TrimSpace(segment)
			if segment == "" {
				continue
			}
			items = append(items, model.OutlineItem{
				Level: model.LevelName(entry.Level),
				Text:  segment,
				Page:  entry.Page + 1,
			})
		}
	}

	return model.Result{Title: title, Outline: outline.CorrectHierarchy(items)}
}

// splitEmbedded splits an entry before each nested numbered sub-heading,
// so "Overview 2.1 Scope 2.2 Terms" yields three segments. Entries without
// embedded numbering come back whole.
func splitEmbedded(s string) []string {
	locs := embeddedNumbering.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return []string{s}
	}

	var parts []string
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			parts = append(parts, s[prev:loc[0]])
		}
		prev = loc[0]
	}
	parts = append(parts, s[prev:])
	return parts
}
