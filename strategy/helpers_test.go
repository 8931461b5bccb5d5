package strategy

import (
	"github.com/tsawler/contour/model"
)

// testBlock builds a single-line block whose bbox derives from the given
// position and font size.
func testBlock(x, y, width float64, size float64, font, content string) *model.Block {
	bbox := model.NewBBox(x, y, width, size+6)
	return &model.Block{
		BBox: bbox,
		Lines: []model.Line{{
			BBox: bbox,
			Spans: []model.Span{{
				Text: content,
				Font: font,
				Size: size,
				Bold: model.IsBoldFont(font),
				BBox: bbox,
			}},
		}},
	}
}

func testPage(width, height float64, blocks ...*model.Block) *model.Page {
	page := model.NewPage(width, height)
	for _, b := range blocks {
		page.AddBlock(b)
	}
	return page
}

func testDoc(pages ...*model.Page) *model.Document {
	doc := model.NewDocument()
	for _, p := range pages {
		doc.AddPage(p)
	}
	return doc
}

// bodyText is a run of ordinary prose long enough to dominate the font
// statistics of any test document it appears in.
const bodyText = "The experimental procedure follows the methodology outlined in previous chapters " +
	"and expands it with additional measurements collected over several sessions."
