package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

// ============================================================================
// Geometry Tests
// ============================================================================

func TestBBoxEdges(t *testing.T) {
	b := NewBBox(10, 20, 100, 50)

	if b.Left() != 10 {
		t.Errorf("Left() = %v, want 10", b.Left())
	}
	if b.Right() != 110 {
		t.Errorf("Right() = %v, want 110", b.Right())
	}
	if b.Top() != 20 {
		t.Errorf("Top() = %v, want 20", b.Top())
	}
	if b.Bottom() != 70 {
		t.Errorf("Bottom() = %v, want 70", b.Bottom())
	}
	if b.CenterX() != 60 {
		t.Errorf("CenterX() = %v, want 60", b.CenterX())
	}
}

func TestNewBBoxFromEdges(t *testing.T) {
	b := NewBBoxFromEdges(10, 20, 110, 70)
	want := BBox{X: 10, Y: 20, Width: 100, Height: 50}
	if b != want {
		t.Errorf("NewBBoxFromEdges() = %+v, want %+v", b, want)
	}
}

func TestBBoxUnion(t *testing.T) {
	a := NewBBox(0, 0, 10, 10)
	b := NewBBox(20, 5, 10, 10)
	got := a.Union(b)
	want := BBox{X: 0, Y: 0, Width: 30, Height: 15}
	if got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
}

func TestBBoxIsEmpty(t *testing.T) {
	if !NewBBox(0, 0, 0, 10).IsEmpty() {
		t.Error("zero-width box should be empty")
	}
	if NewBBox(0, 0, 1, 1).IsEmpty() {
		t.Error("1x1 box should not be empty")
	}
}

// ============================================================================
// Document Tests
// ============================================================================

func TestDocumentAddPage(t *testing.T) {
	doc := NewDocument()
	doc.AddPage(NewPage(612, 792))
	doc.AddPage(NewPage(612, 792))

	if doc.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", doc.PageCount())
	}
	if doc.Pages[0].Number != 1 || doc.Pages[1].Number != 2 {
		t.Errorf("page numbers = %d, %d, want 1, 2", doc.Pages[0].Number, doc.Pages[1].Number)
	}
	if doc.GetPage(2) != doc.Pages[1] {
		t.Error("GetPage(2) did not return the second page")
	}
	if doc.GetPage(3) != nil {
		t.Error("GetPage(3) should return nil for missing page")
	}
}

func makeBlock(y float64, texts ...string) *Block {
	line := Line{BBox: NewBBox(50, y, 200, 12)}
	for _, txt := range texts {
		line.Spans = append(line.Spans, Span{Text: txt, Font: "Helvetica", Size: 11})
	}
	return &Block{BBox: line.BBox, Lines: []Line{line}}
}

func TestBlockText(t *testing.T) {
	b := makeBlock(100, "Hello", "world")
	if got := b.Text(); got != "Hello world" {
		t.Errorf("Text() = %q, want %q", got, "Hello world")
	}
}

func TestBlockFirstSpan(t *testing.T) {
	b := &Block{Lines: []Line{
		{Spans: nil},
		{Spans: []Span{{Text: "first"}, {Text: "second"}}},
	}}
	span := b.FirstSpan()
	if span == nil || span.Text != "first" {
		t.Errorf("FirstSpan() = %+v, want span with text %q", span, "first")
	}

	empty := &Block{Lines: []Line{{Spans: nil}}}
	if empty.FirstSpan() != nil {
		t.Error("FirstSpan() on spanless block should be nil")
	}
}

func TestPageWordCount(t *testing.T) {
	p := NewPage(612, 792)
	p.AddBlock(makeBlock(10, "one two three"))
	p.AddBlock(makeBlock(40, "four", "five"))

	if got := p.WordCount(); got != 5 {
		t.Errorf("WordCount() = %d, want 5", got)
	}
}

func TestPagePlainText(t *testing.T) {
	p := NewPage(612, 792)
	p.AddBlock(makeBlock(10, "Application Form"))
	p.AddBlock(makeBlock(40, "Name:"))

	want := "Application Form\nName:"
	if got := p.PlainText(); got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
}

func TestIsBoldFont(t *testing.T) {
	tests := []struct {
		font string
		want bool
	}{
		{"Helvetica-Bold", true},
		{"Arial-BoldMT", true},
		{"TimesNewRoman,Bold", true},
		{"Helvetica", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsBoldFont(tt.font); got != tt.want {
			t.Errorf("IsBoldFont(%q) = %v, want %v", tt.font, got, tt.want)
		}
	}
}

// ============================================================================
// Result Tests
// ============================================================================

func TestLevelNameClamps(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "H1"},
		{1, "H1"},
		{2, "H2"},
		{3, "H3"},
		{7, "H3"},
	}

	for _, tt := range tests {
		if got := LevelName(tt.n); got != tt.want {
			t.Errorf("LevelName(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestLevelNumber(t *testing.T) {
	if got := LevelNumber("H2"); got != 2 {
		t.Errorf("LevelNumber(H2) = %d, want 2", got)
	}
	if got := LevelNumber("bogus"); got != MaxLevel {
		t.Errorf("LevelNumber(bogus) = %d, want %d", got, MaxLevel)
	}
}

func TestEmptyResultJSON(t *testing.T) {
	data, err := json.Marshal(EmptyResult())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"title":"","outline":[]}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestResultRoundTrip(t *testing.T) {
	in := Result{
		Title: "Überblick",
		Outline: []OutlineItem{
			{Level: "H1", Text: "1 Einführung", Page: 2},
			{Level: "H2", Text: "1.1 Ziele", Page: 3},
		},
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var out Result
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if out.Title != in.Title {
		t.Errorf("Title = %q, want %q", out.Title, in.Title)
	}
	if len(out.Outline) != len(in.Outline) {
		t.Fatalf("Outline length = %d, want %d", len(out.Outline), len(in.Outline))
	}
	for i := range in.Outline {
		if out.Outline[i] != in.Outline[i] {
			t.Errorf("Outline[%d] = %+v, want %+v", i, out.Outline[i], in.Outline[i])
		}
	}
}

// ============================================================================
// Error Tests
// ============================================================================

func TestErrorUnwrapping(t *testing.T) {
	cause := fmt.Errorf("bad xref table")

	tests := []struct {
		name string
		err  error
	}{
		{"decode", &DecodeError{Path: "a.pdf", Err: cause}},
		{"resource", &ResourceError{Path: "a.pdf", Limit: "pages", Err: cause}},
		{"unexpected", &UnexpectedError{Path: "a.pdf", Err: cause}},
		{"write", &WriteError{Path: "a.json", Err: cause}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, cause) {
				t.Errorf("errors.Is failed to find cause in %v", tt.err)
			}
			if tt.err.Error() == "" {
				t.Error("Error() returned empty string")
			}
		})
	}
}

func TestErrorsAs(t *testing.T) {
	var err error = fmt.Errorf("processing: %w", &DecodeError{Path: "x.pdf", Err: errors.New("truncated")})

	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatal("errors.As failed to match DecodeError")
	}
	if de.Path != "x.pdf" {
		t.Errorf("Path = %q, want %q", de.Path, "x.pdf")
	}
}
