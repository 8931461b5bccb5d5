package contour

import (
	"log/slog"

	"github.com/tsawler/contour/strategy"
)

// extractOptions holds configuration for outline extraction.
type extractOptions struct {
	// Logging (injected, never global)
	logger *slog.Logger

	// Strategy selection
	strategyName string // non-empty forces a strategy by name
	selector     strategy.SelectorConfig

	// Resource guards
	maxPages int // 0 means no cap
}

// defaultOptions returns the default extraction options.
func defaultOptions() extractOptions {
	return extractOptions{
		logger:   slog.Default(),
		selector: strategy.DefaultSelectorConfig(),
		maxPages: 0,
	}
}

// clone creates a deep copy of extractOptions.
func (o extractOptions) clone() extractOptions {
	newOpts := o

	// Deep copy the selector's phrase slice
	if o.selector.FormPhrases != nil {
		newOpts.selector.FormPhrases = make([]string, len(o.selector.FormPhrases))
		copy(newOpts.selector.FormPhrases, o.selector.FormPhrases)
	}

	return newOpts
}
