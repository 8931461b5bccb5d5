package strategy

import (
	"strings"

	"github.com/tsawler/contour/model"
)

// SelectorConfig controls strategy selection and carries the configuration
// handed to whichever strategy wins.
type SelectorConfig struct {
	// MinTOCEntries is the embedded-TOC size that must be exceeded before
	// the TOC strategy applies.
	MinTOCEntries int
	// MaxVisualPages and MaxVisualWords bound the short, sparse documents
	// routed to the visual-layout strategy.
	MaxVisualPages int
	MaxVisualWords int
	// FormPhrases route a document to the form strategy when any of them
	// appears in the first page's lowercased text.
	FormPhrases []string

	TOC       TOCConfig
	Heuristic HeuristicConfig
	Form      FormConfig
	Visual    VisualConfig
}

// DefaultSelectorConfig returns the standard selection settings.
func DefaultSelectorConfig() SelectorConfig {
	return SelectorConfig{
		MinTOCEntries:  5,
		MaxVisualPages: 2,
		MaxVisualWords: 800,
		FormPhrases:    []string{"application form", "grant of"},
		TOC:            DefaultTOCConfig(),
		Heuristic:      DefaultHeuristicConfig(),
		Form:           DefaultFormConfig(),
		Visual:         DefaultVisualConfig(),
	}
}

// Selector picks the one strategy that handles a document.
type Selector struct {
	config SelectorConfig
}

// NewSelector creates a selector with default configuration.
func NewSelector() *Selector {
	return NewSelectorWithConfig(DefaultSelectorConfig())
}

// NewSelectorWithConfig creates a selector with custom configuration.
func NewSelectorWithConfig(config SelectorConfig) *Selector {
	return &Selector{config: config}
}

// Select inspects document-level signals in priority order and returns the
// first strategy whose conditions hold:
//
//  1. No pages at all falls through to the heuristic, which degrades to an
//     empty result.
//  2. An embedded TOC with enough entries wins outright.
//  3. Form phrasing on the first page marks an application form.
//  4. A short document with little text is treated as visually driven.
//  5. Everything else is scored heuristically.
func (s *Selector) Select(doc *model.Document) Strategy {
	if doc.PageCount() == 0 {
		return NewHeuristicWithConfig(s.config.Heuristic)
	}

	if len(doc.TOC) > s.config.MinTOCEntries {
		return NewTOCWithConfig(s.config.TOC)
	}

	firstPageText := strings.ToLower(doc.Pages[0].PlainText())
	for _, phrase := range s.config.FormPhrases {
		if strings.Contains(firstPageText, phrase) {
			return NewFormWithConfig(s.config.Form)
		}
	}

	if doc.PageCount() <= s.config.MaxVisualPages && doc.WordCount() < s.config.MaxVisualWords {
		return NewVisualLayoutWithConfig(s.config.Visual)
	}

	return NewHeuristicWithConfig(s.config.Heuristic)
}

// Select picks a strategy for the document using default configuration.
func Select(doc *model.Document) Strategy {
	return NewSelector().Select(doc)
}
