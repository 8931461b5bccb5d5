package strategy

import (
	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/outline"
)

// FormConfig controls form extraction.
type FormConfig struct {
	// Title configures the shared title extraction.
	Title outline.TitleConfig
}

// DefaultFormConfig returns the standard form settings.
func DefaultFormConfig() FormConfig {
	return FormConfig{Title: outline.DefaultTitleConfig()}
}

// Form handles application-form-like documents: a title is worth
// extracting, but field labels never form a meaningful hierarchy, so the
// outline stays empty.
type Form struct {
	config FormConfig
}

// NewForm creates a form strategy with default configuration.
func NewForm() *Form {
	return NewFormWithConfig(DefaultFormConfig())
}

// NewFormWithConfig creates a form strategy with custom configuration.
func NewFormWithConfig(config FormConfig) *Form {
	return &Form{config: config}
}

func (s *Form) String() string { return NameForm }

// Extract returns the document title and an empty outline.
func (s *Form) Extract(doc *model.Document) model.Result {
	return model.Result{
		Title:   outline.ExtractTitleWithConfig(doc, s.config.Title),
		Outline: []model.OutlineItem{},
	}
}
