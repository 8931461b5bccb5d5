package model

import "strings"

// Document represents a decoded document: an ordered sequence of pages plus
// the embedded table of contents, when the source carries one. Documents are
// built once by a decoding backend and treated as read-only afterwards.
type Document struct {
	Pages []*Page
	TOC   []TOCEntry
}

// TOCEntry is one entry of an embedded table of contents.
type TOCEntry struct {
	Level int    // nesting depth, 1 is outermost
	Title string // raw entry text as stored in the document
	Page  int    // 0-based page index
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// AddPage adds a page to the document
func (d *Document) AddPage(page *Page) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// GetPage returns a page by number (1-indexed)
func (d *Document) GetPage(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// WordCount returns the number of whitespace-separated words across all
// pages.
func (d *Document) WordCount() int {
	total := 0
	for _, page := range d.Pages {
		total += page.WordCount()
	}
	return total
}

// Page represents a single page: its dimensions and the text blocks laid
// out on it, in top-to-bottom source order. Only text content enters the
// model; image and vector blocks are dropped at decode time.
type Page struct {
	Number int     // 1-indexed page number
	Width  float64 // Page width in points
	Height float64 // Page height in points
	Blocks []*Block
}

// NewPage creates a new page with given dimensions
func NewPage(width, height float64) *Page {
	return &Page{
		Width:  width,
		Height: height,
		Blocks: make([]*Block, 0),
	}
}

// AddBlock adds a block to the page
func (p *Page) AddBlock(b *Block) {
	p.Blocks = append(p.Blocks, b)
}

// PlainText returns the page text, one block per line.
func (p *Page) PlainText() string {
	var sb strings.Builder
	for i, b := range p.Blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.Text())
	}
	return sb.String()
}

// WordCount returns the number of whitespace-separated words on the page.
func (p *Page) WordCount() int {
	total := 0
	for _, b := range p.Blocks {
		total += len(strings.Fields(b.Text()))
	}
	return total
}

// Block is a paragraph-like group of lines with a bounding box.
type Block struct {
	BBox  BBox
	Lines []Line
}

// Text returns the raw block text: every span's text joined with single
// spaces, in document order. Callers normalize the result before scoring.
func (b *Block) Text() string {
	var parts []string
	for _, line := range b.Lines {
		for _, span := range line.Spans {
			parts = append(parts, span.Text)
		}
	}
	return strings.Join(parts, " ")
}

// FirstSpan returns the first span of the block in document order, or nil
// for a block with no spans.
func (b *Block) FirstSpan() *Span {
	for i := range b.Lines {
		if len(b.Lines[i].Spans) > 0 {
			return &b.Lines[i].Spans[0]
		}
	}
	return nil
}

// Spans returns all spans of the block in document order.
func (b *Block) Spans() []Span {
	var spans []Span
	for _, line := range b.Lines {
		spans = append(spans, line.Spans...)
	}
	return spans
}

// Line is a single laid-out line of spans.
type Line struct {
	BBox  BBox
	Spans []Span
}

// Span is a run of text sharing one font face and size.
type Span struct {
	Text string
	Font string  // font name as stored in the document
	Size float64 // font size in points
	Bold bool
	BBox BBox
}

// IsBoldFont reports whether a font name denotes a bold face. Backends use
// it to populate [Span.Bold] when the source has no explicit weight flag.
func IsBoldFont(name string) bool {
	return strings.Contains(strings.ToLower(name), "bold")
}
