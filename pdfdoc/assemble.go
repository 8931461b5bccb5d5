package pdfdoc

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/contour/model"
)

// assembleConfig controls how positioned text runs group into lines and
// blocks.
type assembleConfig struct {
	// RowTolerance is the baseline Y difference within which runs belong
	// to the same line.
	RowTolerance float64
	// WordSpaceMultiplier, as a fraction of font size, is the horizontal
	// gap between adjacent runs that reads as a word break.
	WordSpaceMultiplier float64
	// BlockGapMultiplier, as a fraction of the taller line's height, is
	// the vertical gap between consecutive lines that starts a new block.
	BlockGapMultiplier float64
}

func defaultAssembleConfig() assembleConfig {
	return assembleConfig{
		RowTolerance:        3.0,
		WordSpaceMultiplier: 0.3,
		BlockGapMultiplier:  1.5,
	}
}

type assembler struct {
	config assembleConfig
}

func newAssembler(config assembleConfig) *assembler {
	return &assembler{config: config}
}

// assemble groups a page's text runs into model blocks. Runs arrive in
// PDF's bottom-left-origin space; the result is in the model's y-down
// space. Reading order is top to bottom, then left to right within a line.
func (a *assembler) assemble(runs []pdf.Text, pageHeight float64) []*model.Block {
	filtered := make([]pdf.Text, 0, len(runs))
	for _, r := range runs {
		if strings.TrimSpace(r.S) != "" {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return nil
	}

	lines := a.groupLines(filtered, pageHeight)
	return a.groupBlocks(lines)
}

// groupLines buckets runs by baseline and builds one model line per
// bucket, merging same-styled adjacent runs into spans.
func (a *assembler) groupLines(runs []pdf.Text, pageHeight float64) []model.Line {
	// Sort by baseline descending (top of page first in y-up coordinates),
	// then left to right.
	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].Y != runs[j].Y {
			return runs[i].Y > runs[j].Y
		}
		return runs[i].X < runs[j].X
	})

	var lines []model.Line
	var current []pdf.Text
	for _, r := range runs {
		if len(current) > 0 && current[0].Y-r.Y > a.config.RowTolerance {
			lines = append(lines, a.buildLine(current, pageHeight))
			current = current[:0]
		}
		current = append(current, r)
	}
	if len(current) > 0 {
		lines = append(lines, a.buildLine(current, pageHeight))
	}
	return lines
}

// buildLine merges one baseline's runs into spans. Consecutive runs in the
// same font and size join into a single span, with a space inserted when
// the horizontal gap between them reads as a word break.
func (a *assembler) buildLine(runs []pdf.Text, pageHeight float64) model.Line {
	sort.SliceStable(runs, func(i, j int) bool { return runs[i].X < runs[j].X })

	var spans []model.Span
	var sb strings.Builder
	flush := func(font string, size, left, right float64) {
		if sb.Len() == 0 {
			return
		}
		spans = append(spans, model.Span{
			Text: sb.String(),
			Font: font,
			Size: size,
			Bold: model.IsBoldFont(font),
			BBox: flipBBox(left, right, runs[0].Y, size, pageHeight),
		})
		sb.Reset()
	}

	font := runs[0].Font
	size := runs[0].FontSize
	left := runs[0].X
	prevRight := runs[0].X
	for _, r := range runs {
		if r.Font != font || r.FontSize != size {
			flush(font, size, left, prevRight)
			font, size, left = r.Font, r.FontSize, r.X
		} else if r.X-prevRight > a.config.WordSpaceMultiplier*size {
			sb.WriteByte(' ')
		}
		sb.WriteString(r.S)
		prevRight = r.X + r.W
	}
	flush(font, size, left, prevRight)

	line := model.Line{Spans: spans}
	if len(spans) > 0 {
		line.BBox = spans[0].BBox
		for _, s := range spans[1:] {
			line.BBox = line.BBox.Union(s.BBox)
		}
	}
	return line
}

// groupBlocks merges consecutive lines into blocks, breaking where the
// vertical gap exceeds the configured multiple of line height.
func (a *assembler) groupBlocks(lines []model.Line) []*model.Block {
	var blocks []*model.Block
	var current *model.Block
	for i, line := range lines {
		if current != nil {
			gap := line.BBox.Top() - lines[i-1].BBox.Bottom()
			limit := a.config.BlockGapMultiplier * maxHeight(line.BBox, lines[i-1].BBox)
			if gap > limit {
				blocks = append(blocks, current)
				current = nil
			}
		}
		if current == nil {
			bbox := line.BBox
			current = &model.Block{BBox: bbox}
		} else {
			current.BBox = current.BBox.Union(line.BBox)
		}
		current.Lines = append(current.Lines, line)
	}
	if current != nil {
		blocks = append(blocks, current)
	}
	return blocks
}

// flipBBox converts a run's y-up baseline geometry into a y-down box. The
// box top sits one font size above the baseline, approximating the ascent.
func flipBBox(left, right, baseline, size, pageHeight float64) model.BBox {
	top := pageHeight - baseline - size
	if top < 0 {
		top = 0
	}
	return model.NewBBox(left, top, right-left, size*1.2)
}

func maxHeight(a, b model.BBox) float64 {
	if a.Height > b.Height {
		return a.Height
	}
	return b.Height
}
