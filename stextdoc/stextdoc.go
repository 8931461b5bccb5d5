// Package stextdoc decodes MuPDF structured-text JSON into the contour
// document model.
//
// The input is the JSON form of "mutool convert -F stext" output: pages of
// blocks of lines, each line carrying its font name, size and bounding box.
// Coordinates are already top-left-origin with Y increasing downward, so
// they map straight into model space. Structured text carries no embedded
// table of contents, so decoded documents never route to the TOC strategy.
package stextdoc

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tsawler/contour/model"
)

// stextJSON mirrors the wire shape of MuPDF structured-text JSON.
type stextJSON struct {
	Pages []stextPage `json:"pages"`
}

type stextPage struct {
	// Width and Height are emitted by newer mutool builds. When absent,
	// page dimensions are derived from the union of block boxes.
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Blocks []stextBlock `json:"blocks"`
}

type stextBlock struct {
	Type  string      `json:"type"`
	BBox  stextBBox   `json:"bbox"`
	Lines []stextLine `json:"lines"`
}

type stextBBox struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type stextLine struct {
	WMode int       `json:"wmode"`
	BBox  stextBBox `json:"bbox"`
	Font  stextFont `json:"font"`
	X     float64   `json:"x"`
	Y     float64   `json:"y"`
	Text  string    `json:"text"`
}

type stextFont struct {
	Name   string  `json:"name"`
	Family string  `json:"family"`
	Weight string  `json:"weight"`
	Style  string  `json:"style"`
	Size   float64 `json:"size"`
}

// Open decodes a structured-text JSON file into a document. Unreadable or
// malformed input yields a *model.DecodeError.
func Open(path string) (*model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &model.DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, &model.DecodeError{Path: path, Err: err}
	}
	return doc, nil
}

// Parse decodes structured-text JSON from a reader into a document.
func Parse(r io.Reader) (*model.Document, error) {
	var wire stextJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&wire); err != nil {
		return nil, fmt.Errorf("parse stext json: %w", err)
	}

	doc := model.NewDocument()
	for _, wp := range wire.Pages {
		doc.AddPage(buildPage(wp))
	}
	return doc, nil
}

func buildPage(wp stextPage) *model.Page {
	page := model.NewPage(wp.Width, wp.Height)
	for _, wb := range wp.Blocks {
		// Image and vector blocks carry no text and never enter the model.
		if wb.Type != "" && wb.Type != "text" {
			continue
		}
		block := buildBlock(wb)
		if len(block.Lines) == 0 {
			continue
		}
		page.AddBlock(block)
	}

	if page.Width == 0 || page.Height == 0 {
		fitPageToContent(page)
	}
	return page
}

func buildBlock(wb stextBlock) *model.Block {
	block := &model.Block{BBox: toBBox(wb.BBox)}
	for _, wl := range wb.Lines {
		if strings.TrimSpace(wl.Text) == "" {
			continue
		}
		bbox := toBBox(wl.BBox)
		// Lines without geometry cannot be banded or centered later.
		if bbox.IsEmpty() {
			continue
		}
		span := model.Span{
			Text: wl.Text,
			Font: wl.Font.Name,
			Size: wl.Font.Size,
			Bold: isBold(wl.Font),
			BBox: bbox,
		}
		block.Lines = append(block.Lines, model.Line{BBox: bbox, Spans: []model.Span{span}})
	}
	return block
}

// fitPageToContent sets page dimensions from the union of block boxes for
// inputs that predate mutool's width/height fields.
func fitPageToContent(page *model.Page) {
	for _, b := range page.Blocks {
		if b.BBox.Right() > page.Width {
			page.Width = b.BBox.Right()
		}
		if b.BBox.Bottom() > page.Height {
			page.Height = b.BBox.Bottom()
		}
	}
}

func toBBox(b stextBBox) model.BBox {
	return model.NewBBox(b.X, b.Y, b.W, b.H)
}

func isBold(f stextFont) bool {
	if strings.EqualFold(f.Weight, "bold") {
		return true
	}
	return model.IsBoldFont(f.Name)
}
