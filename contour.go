// Package contour provides a fluent API for extracting a document title
// and heading outline (H1–H3) from PDF files and MuPDF structured-text
// JSON.
//
// Basic usage:
//
//	result, err := contour.Open("document.pdf").Result()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(result.Title)
//
// With options:
//
//	result, err := contour.Open("flyer.pdf").
//	    WithStrategy("visual").
//	    WithMaxPages(50).
//	    Result()
//
// For advanced use cases, the lower-level strategy, outline and model
// packages are also available.
package contour

import (
	"github.com/tsawler/contour/format"
	"github.com/tsawler/contour/model"
)

// Open opens a document file and returns an Extractor for fluent
// configuration. The format is detected from the filename extension.
//
// Example:
//
//	result, err := contour.Open("document.pdf").Result()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		format:   format.Detect(filename),
		options:  defaultOptions(),
	}
}

// OpenPDF opens a file as a native PDF regardless of its extension.
func OpenPDF(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		format:   format.PDF,
		options:  defaultOptions(),
	}
}

// OpenStext opens a file as MuPDF structured-text JSON regardless of its
// extension.
func OpenStext(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		format:   format.StextJSON,
		options:  defaultOptions(),
	}
}

// FromDocument creates an Extractor over an already-decoded document.
// This is useful when the document was produced by a custom backend.
//
// Example:
//
//	doc := buildDocument()
//	result, err := contour.FromDocument(doc).Result()
func FromDocument(doc *model.Document) *Extractor {
	return &Extractor{
		doc:       doc,
		docLoaded: true,
		options:   defaultOptions(),
	}
}
