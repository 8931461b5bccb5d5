package model

import "fmt"

// Outline levels. Headings deeper than H3 are clamped during structuring.
const (
	LevelH1 = "H1"
	LevelH2 = "H2"
	LevelH3 = "H3"
)

// MaxLevel is the deepest heading level an outline may contain.
const MaxLevel = 3

// LevelName returns the outline level label for a numeric depth, clamping
// to the H1..H3 range.
func LevelName(n int) string {
	if n < 1 {
		n = 1
	}
	if n > MaxLevel {
		n = MaxLevel
	}
	return fmt.Sprintf("H%d", n)
}

// LevelNumber returns the numeric depth of a level label ("H2" -> 2).
// Unrecognized labels return MaxLevel.
func LevelNumber(level string) int {
	if len(level) == 2 && level[0] == 'H' && level[1] >= '1' && level[1] <= '9' {
		return int(level[1] - '0')
	}
	return MaxLevel
}

// Style is the typographic identity of a heading candidate: its rounded
// font size and bold flag. Candidates sharing a style are assumed to sit at
// the same outline depth.
type Style struct {
	Size int
	Bold bool
}

// HeadingCandidate is a scored block that crossed a strategy's threshold.
// Candidates exist only between scoring and structuring.
type HeadingCandidate struct {
	Text  string // cleaned block text
	Page  int    // 0-based page index
	Style Style
	BBox  BBox
	Score int
}

// OutlineItem is a finalized heading.
type OutlineItem struct {
	Level string `json:"level"` // "H1", "H2" or "H3"
	Text  string `json:"text"`
	Page  int    `json:"page"` // 1-based page number
}

// Result is the output record for one document.
type Result struct {
	Title   string        `json:"title"`
	Outline []OutlineItem `json:"outline"`
}

// EmptyResult returns the default result substituted for documents that
// fail to process. The outline is non-nil so it serializes as [].
func EmptyResult() Result {
	return Result{Title: "", Outline: []OutlineItem{}}
}
