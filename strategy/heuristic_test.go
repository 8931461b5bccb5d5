package strategy

import (
	"testing"

	"github.com/tsawler/contour/model"
)

func TestScoreHeading(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		style    model.Style
		bodySize int
		want     int
	}{
		{
			// size 35 + bold 10 + short 10 + no terminator 5 + numbered 30
			name:     "numbered bold heading",
			text:     "3.2 Methodology",
			style:    model.Style{Size: 18, Bold: true},
			bodySize: 11,
			want:     90,
		},
		{
			// short 10 + no terminator 5
			name:     "plain short text",
			text:     "just a label",
			style:    model.Style{Size: 11, Bold: false},
			bodySize: 11,
			want:     15,
		},
		{
			// appendix numbering: 10 + 5 + 30
			name:     "appendix heading",
			text:     "Appendix B Supplementary Data",
			style:    model.Style{Size: 11, Bold: false},
			bodySize: 11,
			want:     45,
		},
		{
			// long sentence: no short bonus, ends in '.', internal dots,
			// word count over the prose limit
			name: "prose paragraph",
			text: "This sentence goes on to describe the experimental setup in detail, " +
				"mentions several instruments, references prior work, and finally concludes " +
				"with a short summary of the findings.",
			style:    model.Style{Size: 11, Bold: false},
			bodySize: 11,
			want:     -20,
		},
		{
			// trailing colon forfeits the terminator bonus: 10 + 10 = 20
			name:     "label with colon",
			text:     "Ingredients:",
			style:    model.Style{Size: 12, Bold: true},
			bodySize: 12,
			want:     20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scoreHeading(tt.text, tt.style, tt.bodySize); got != tt.want {
				t.Errorf("scoreHeading(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestInternalDot(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"3.2 Methodology", true},
		{"No dots here", false},
		{"Ends with.", false},
		{".Starts with", false},
		{"a.b", true},
		{"ab", false},
	}

	for _, tt := range tests {
		if got := internalDot(tt.input); got != tt.want {
			t.Errorf("internalDot(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestHeuristicFindsBoldNumberedHeading(t *testing.T) {
	doc := testDoc(testPage(612, 792,
		testBlock(72, 200, 250, 18, "Helvetica-Bold", "3.2 Methodology"),
		testBlock(72, 400, 450, 11, "Helvetica", bodyText),
	))

	result := NewHeuristic().Extract(doc)

	if len(result.Outline) != 1 {
		t.Fatalf("outline has %d items, want 1: %+v", len(result.Outline), result.Outline)
	}
	want := model.OutlineItem{Level: "H2", Text: "3.2 Methodology", Page: 1}
	if result.Outline[0] != want {
		t.Errorf("item = %+v, want %+v", result.Outline[0], want)
	}
}

func TestHeuristicSkipsMarginBands(t *testing.T) {
	doc := testDoc(testPage(612, 792,
		testBlock(72, 20, 250, 18, "Helvetica-Bold", "3.2 Methodology"),
		testBlock(72, 760, 250, 18, "Helvetica-Bold", "4.1 Results"),
		testBlock(72, 400, 450, 11, "Helvetica", bodyText),
	))

	result := NewHeuristic().Extract(doc)

	if len(result.Outline) != 0 {
		t.Errorf("headings in margin bands should be skipped, got %+v", result.Outline)
	}
}

func TestHeuristicIgnoresBodyProse(t *testing.T) {
	doc := testDoc(testPage(612, 792,
		testBlock(72, 300, 450, 11, "Helvetica", bodyText),
		testBlock(72, 500, 450, 11, "Helvetica", bodyText),
	))

	result := NewHeuristic().Extract(doc)

	if len(result.Outline) != 0 {
		t.Errorf("plain prose should not produce headings, got %+v", result.Outline)
	}
}

func TestHeuristicEmptyDocument(t *testing.T) {
	result := NewHeuristic().Extract(model.NewDocument())

	if result.Title != "" {
		t.Errorf("title = %q, want empty", result.Title)
	}
	if len(result.Outline) != 0 {
		t.Errorf("outline = %+v, want empty", result.Outline)
	}
}

func TestHeuristicExtractsTitle(t *testing.T) {
	doc := testDoc(testPage(612, 792,
		testBlock(150, 80, 300, 24, "Helvetica-Bold", "Annual Energy Review"),
		testBlock(72, 400, 450, 11, "Helvetica", bodyText),
	))

	result := NewHeuristic().Extract(doc)

	if result.Title != "Annual Energy Review" {
		t.Errorf("title = %q, want %q", result.Title, "Annual Energy Review")
	}
}
