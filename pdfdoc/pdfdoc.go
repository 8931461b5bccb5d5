// Package pdfdoc decodes native PDF files into the contour document model.
//
// Decoding uses two libraries with complementary strengths: pdfcpu
// validates the file and supplies page dimensions and embedded bookmarks,
// and ledongthuc/pdf supplies positioned text runs with font name and
// size. The runs are assembled into lines and blocks, and PDF's
// bottom-left-origin coordinates are flipped into the model's y-down page
// space.
package pdfdoc

import (
	"fmt"
	"io"
	"os"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfcpulib "github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	pdfcpumodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/tsawler/contour/model"
)

// Open decodes a PDF file into a document. Input that pdfcpu cannot
// validate yields a *model.DecodeError.
func Open(path string) (*model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &model.DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &model.DecodeError{Path: path, Err: err}
	}

	doc, err := OpenReader(f, info.Size())
	if err != nil {
		return nil, &model.DecodeError{Path: path, Err: err}
	}
	return doc, nil
}

// OpenReader decodes a PDF from a ReadSeeker that also supports ReaderAt
// (an *os.File or *bytes.Reader qualifies).
func OpenReader(rs io.ReadSeeker, size int64) (*model.Document, error) {
	ra, ok := rs.(io.ReaderAt)
	if !ok {
		return nil, fmt.Errorf("reader does not support ReadAt")
	}

	conf := pdfcpumodel.NewDefaultConfiguration()

	ctx, err := api.ReadValidateAndOptimize(rs, conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu validate: %w", err)
	}

	dims, err := ctx.PageDims()
	if err != nil {
		return nil, fmt.Errorf("pdfcpu page dims: %w", err)
	}

	toc := readTOC(rs, conf)

	reader, err := pdf.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("open pdf reader: %w", err)
	}

	doc := model.NewDocument()
	doc.TOC = toc

	asm := newAssembler(defaultAssembleConfig())
	for i := 1; i <= ctx.PageCount; i++ {
		width, height := dimFor(dims, i)
		page := model.NewPage(width, height)

		for _, block := range asm.assemble(pageRuns(reader, i), height) {
			page.AddBlock(block)
		}
		doc.AddPage(page)
	}
	return doc, nil
}

func dimFor(dims []types.Dim, pageNr int) (width, height float64) {
	// US Letter when the page tree is missing per-page media boxes.
	width, height = 612, 792
	if pageNr-1 < len(dims) {
		width, height = dims[pageNr-1].Width, dims[pageNr-1].Height
	}
	return width, height
}

// readTOC flattens the document's bookmark tree into TOC entries, one per
// bookmark, depth-first, with 0-based page indexes. Documents without an
// outline yield nil; bookmark errors are not decode failures.
func readTOC(rs io.ReadSeeker, conf *pdfcpumodel.Configuration) []model.TOCEntry {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil
	}
	bookmarks, err := api.Bookmarks(rs, conf)
	if err != nil {
		return nil
	}

	var entries []model.TOCEntry
	var walk func(bms []pdfcpulib.Bookmark, level int)
	walk = func(bms []pdfcpulib.Bookmark, level int) {
		for _, bm := range bms {
			page := bm.PageFrom - 1
			if page < 0 {
				page = 0
			}
			entries = append(entries, model.TOCEntry{
				Level: level,
				Title: bm.Title,
				Page:  page,
			})
			if len(bm.Kids) > 0 {
				walk(bm.Kids, level+1)
			}
		}
	}
	walk(bookmarks, 1)
	return entries
}

// pageRuns extracts the positioned text runs of one page. Malformed
// content streams make the underlying library panic; such pages decode as
// empty rather than failing the document.
func pageRuns(reader *pdf.Reader, pageNr int) (runs []pdf.Text) {
	defer func() {
		if r := recover(); r != nil {
			runs = nil
		}
	}()

	page := reader.Page(pageNr)
	if page.V.IsNull() {
		return nil
	}
	return page.Content().Text
}
