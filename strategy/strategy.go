// Package strategy implements the per-document extraction strategies and
// the selector that picks one.
//
// A document is handled by exactly one of four strategies: [TOC] when the
// source carries a usable embedded table of contents, [Form] for
// application-form-like documents, [VisualLayout] for short visually-driven
// documents such as flyers and invitations, and [Heuristic] for everything
// else. [Select] inspects document-level signals and returns the matching
// strategy.
//
// Strategies are stateless across documents. Anything derived from a
// document (font statistics, style tables) is computed inside a single
// Extract call and discarded with it.
package strategy

import (
	"fmt"

	"github.com/tsawler/contour/model"
)

// Strategy turns a decoded document into an extraction result. Extract
// never fails: a document that defeats a strategy produces an empty or
// partial result, not an error.
type Strategy interface {
	Extract(doc *model.Document) model.Result
}

// Strategy names, as reported by each implementation's String method and
// accepted by ByName.
const (
	NameTOC       = "toc"
	NameHeuristic = "heuristic"
	NameForm      = "form"
	NameVisual    = "visual"
)

// ByName returns a default-configured strategy for a name. Used by
// surfaces that let callers force a strategy instead of selecting one.
func ByName(name string) (Strategy, error) {
	switch name {
	case NameTOC:
		return NewTOC(), nil
	case NameHeuristic:
		return NewHeuristic(), nil
	case NameForm:
		return NewForm(), nil
	case NameVisual:
		return NewVisualLayout(), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (valid: %s, %s, %s, %s)",
			name, NameTOC, NameHeuristic, NameForm, NameVisual)
	}
}

// NameOf returns the name of a strategy for logging.
func NameOf(s Strategy) string {
	if str, ok := s.(fmt.Stringer); ok {
		return str.String()
	}
	return fmt.Sprintf("%T", s)
}
