package pdfdoc

import (
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
)

// run builds a text run in y-up PDF coordinates with uniform glyph widths.
func run(s string, x, y, size float64, font string) pdf.Text {
	return pdf.Text{
		S:        s,
		X:        x,
		Y:        y,
		W:        float64(len(s)) * size * 0.5,
		Font:     font,
		FontSize: size,
	}
}

func TestAssemble_SingleLine(t *testing.T) {
	asm := newAssembler(defaultAssembleConfig())

	// "Hello" and "world" on one baseline with a word-sized gap.
	runs := []pdf.Text{
		run("Hello", 72, 700, 12, "Helvetica"),
		run("world", 72 + 5*6 + 4, 700, 12, "Helvetica"),
	}

	blocks := asm.assemble(runs, 792)
	if len(blocks) != 1 {
		t.Fatalf("len(blocks) = %d, want 1", len(blocks))
	}
	block := blocks[0]
	if len(block.Lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(block.Lines))
	}
	if got := block.Text(); got != "Hello world" {
		t.Errorf("block text = %q, want %q", got, "Hello world")
	}

	// Same font and size merge into one span.
	if spans := block.Spans(); len(spans) != 1 {
		t.Errorf("len(spans) = %d, want 1", len(spans))
	}
}

func TestAssemble_FontChangeSplitsSpans(t *testing.T) {
	asm := newAssembler(defaultAssembleConfig())

	runs := []pdf.Text{
		run("Bold", 72, 700, 12, "Helvetica-Bold"),
		run("plain", 110, 700, 12, "Helvetica"),
	}

	blocks := asm.assemble(runs, 792)
	if len(blocks) != 1 {
		t.Fatalf("len(blocks) = %d, want 1", len(blocks))
	}
	spans := blocks[0].Spans()
	if len(spans) != 2 {
		t.Fatalf("len(spans) = %d, want 2", len(spans))
	}
	if !spans[0].Bold {
		t.Errorf("span %q should be bold (font %s)", spans[0].Text, spans[0].Font)
	}
	if spans[1].Bold {
		t.Errorf("span %q should not be bold", spans[1].Text)
	}
}

func TestAssemble_BlockBreakOnGap(t *testing.T) {
	asm := newAssembler(defaultAssembleConfig())

	// Heading well above two tightly-spaced body lines.
	runs := []pdf.Text{
		run("Introduction", 72, 700, 18, "Helvetica-Bold"),
		run("Body text line one.", 72, 640, 11, "Times-Roman"),
		run("Body text line two.", 72, 627, 11, "Times-Roman"),
	}

	blocks := asm.assemble(runs, 792)
	if len(blocks) != 2 {
		t.Fatalf("len(blocks) = %d, want 2", len(blocks))
	}
	if got := blocks[0].Text(); got != "Introduction" {
		t.Errorf("first block = %q, want heading", got)
	}
	if got := blocks[1].Text(); !strings.Contains(got, "line one") || !strings.Contains(got, "line two") {
		t.Errorf("second block = %q, want both body lines", got)
	}
}

func TestAssemble_FlipsIntoTopDownOrder(t *testing.T) {
	asm := newAssembler(defaultAssembleConfig())

	// In y-up coordinates the larger Y sits higher on the page.
	runs := []pdf.Text{
		run("lower", 72, 100, 12, "Helvetica"),
		run("upper", 72, 700, 12, "Helvetica"),
	}

	blocks := asm.assemble(runs, 792)
	if len(blocks) != 2 {
		t.Fatalf("len(blocks) = %d, want 2", len(blocks))
	}
	if blocks[0].Text() != "upper" {
		t.Errorf("first block = %q, want %q", blocks[0].Text(), "upper")
	}
	if blocks[0].BBox.Top() >= blocks[1].BBox.Top() {
		t.Errorf("blocks not in y-down order: %g vs %g",
			blocks[0].BBox.Top(), blocks[1].BBox.Top())
	}
	if blocks[0].BBox.Top() < 0 {
		t.Errorf("flipped top is negative: %g", blocks[0].BBox.Top())
	}
}

func TestAssemble_EmptyAndWhitespaceRuns(t *testing.T) {
	asm := newAssembler(defaultAssembleConfig())

	if blocks := asm.assemble(nil, 792); blocks != nil {
		t.Errorf("assemble(nil) = %v, want nil", blocks)
	}

	runs := []pdf.Text{
		run("   ", 72, 700, 12, "Helvetica"),
		run("\n", 72, 680, 12, "Helvetica"),
	}
	if blocks := asm.assemble(runs, 792); blocks != nil {
		t.Errorf("whitespace-only runs produced %d blocks", len(blocks))
	}
}
