package contour

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tsawler/contour/format"
	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/pdfdoc"
	"github.com/tsawler/contour/stextdoc"
	"github.com/tsawler/contour/strategy"
)

// Extractor provides a fluent interface for extracting a title and outline
// from a document. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	format   format.Format

	// Decoded document (set by FromDocument or on first terminal call)
	doc       *model.Document
	docLoaded bool

	// Configuration
	options extractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of
// options. This ensures immutability - each chain method returns a new
// instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:  e.filename,
		format:    e.format,
		doc:       e.doc,
		docLoaded: e.docLoaded,
		options:   e.options.clone(),
		err:       e.err,
	}
}

// ensureDocument decodes the source if not already decoded.
func (e *Extractor) ensureDocument() error {
	if e.docLoaded {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	switch e.format {
	case format.PDF:
		doc, err := pdfdoc.Open(e.filename)
		if err != nil {
			return err
		}
		e.doc = doc
		e.docLoaded = true
		return nil

	case format.StextJSON:
		doc, err := stextdoc.Open(e.filename)
		if err != nil {
			return err
		}
		e.doc = doc
		e.docLoaded = true
		return nil

	default:
		return &model.DecodeError{
			Path: e.filename,
			Err:  fmt.Errorf("unsupported file format: %s", e.format),
		}
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// WithLogger sets the logger used during extraction. The default is
// slog.Default().
//
// Example:
//
//	result, err := contour.Open("doc.pdf").WithLogger(logger).Result()
func (e *Extractor) WithLogger(logger *slog.Logger) *Extractor {
	newExt := e.clone()
	newExt.options.logger = logger
	return newExt
}

// WithStrategy forces a named extraction strategy ("toc", "heuristic",
// "form" or "visual") instead of selecting one from document signals.
// An unknown name surfaces as an error from the terminal operation.
//
// Example:
//
//	result, err := contour.Open("flyer.pdf").WithStrategy("visual").Result()
func (e *Extractor) WithStrategy(name string) *Extractor {
	newExt := e.clone()
	newExt.options.strategyName = name
	if _, err := strategy.ByName(name); err != nil && newExt.err == nil {
		newExt.err = err
	}
	return newExt
}

// WithSelectorConfig overrides the strategy-selection thresholds and the
// per-strategy configuration handed to whichever strategy wins.
func (e *Extractor) WithSelectorConfig(config strategy.SelectorConfig) *Extractor {
	newExt := e.clone()
	newExt.options.selector = config
	return newExt
}

// WithMaxPages caps the number of pages the extractor will process.
// Documents exceeding the cap fail with *model.ResourceError. Zero means
// no cap.
//
// Example:
//
//	result, err := contour.Open("doc.pdf").WithMaxPages(500).Result()
func (e *Extractor) WithMaxPages(n int) *Extractor {
	newExt := e.clone()
	newExt.options.maxPages = n
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Result decodes the source, runs exactly one extraction strategy and
// returns the title and outline. Panics during strategy execution are
// recovered and surfaced as *model.UnexpectedError; callers that treat
// failures as recoverable substitute model.EmptyResult().
func (e *Extractor) Result() (result model.Result, err error) {
	if e.err != nil {
		return model.EmptyResult(), e.err
	}
	if err := e.ensureDocument(); err != nil {
		return model.EmptyResult(), err
	}

	if e.options.maxPages > 0 && e.doc.PageCount() > e.options.maxPages {
		return model.EmptyResult(), &model.ResourceError{
			Path:  e.filename,
			Limit: fmt.Sprintf("page count %d exceeds cap %d", e.doc.PageCount(), e.options.maxPages),
		}
	}

	defer func() {
		if r := recover(); r != nil {
			result = model.EmptyResult()
			err = &model.UnexpectedError{
				Path: e.filename,
				Err:  fmt.Errorf("recovered panic: %v", r),
			}
		}
	}()

	strat, err := e.pickStrategy()
	if err != nil {
		return model.EmptyResult(), err
	}

	e.options.logger.Debug("extracting",
		"file", e.filename,
		"pages", e.doc.PageCount(),
		"strategy", strategy.NameOf(strat))

	result = strat.Extract(e.doc)
	if result.Outline == nil {
		result.Outline = []model.OutlineItem{}
	}
	return result, nil
}

func (e *Extractor) pickStrategy() (strategy.Strategy, error) {
	if e.options.strategyName != "" {
		return strategy.ByName(e.options.strategyName)
	}
	return strategy.NewSelectorWithConfig(e.options.selector).Select(e.doc), nil
}

// Title extracts only the document title.
func (e *Extractor) Title() (string, error) {
	result, err := e.Result()
	return result.Title, err
}

// Outline extracts only the heading outline.
func (e *Extractor) Outline() ([]model.OutlineItem, error) {
	result, err := e.Result()
	return result.Outline, err
}

// JSON extracts and writes the result record to w as indented JSON.
// Non-ASCII characters are preserved literally.
func (e *Extractor) JSON(w io.Writer) error {
	result, err := e.Result()
	if err != nil {
		return err
	}
	return EncodeResult(w, result)
}

// WriteFile extracts and writes the result record to a file. Storage
// failures surface as *model.WriteError.
func (e *Extractor) WriteFile(path string) error {
	result, err := e.Result()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return &model.WriteError{Path: path, Err: err}
	}
	if err := EncodeResult(f, result); err != nil {
		f.Close()
		return &model.WriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &model.WriteError{Path: path, Err: err}
	}
	return nil
}

// EncodeResult writes a result record as indented JSON with HTML escaping
// disabled, so non-ASCII heading text round-trips byte for byte.
func EncodeResult(w io.Writer, result model.Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(result)
}
