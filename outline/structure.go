package outline

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tsawler/contour/model"
)

var leadingNumbering = regexp.MustCompile(`^(\d+(\.\d+)*)`)

// Structure turns scored heading candidates into a finalized outline.
//
// Candidates are sorted into reading order (page, then vertical position).
// Levels come from the candidate's leading section numbering when it has
// one ("2.1" nests two deep); otherwise from the rank of its typographic
// style, where distinct styles order descending by size then boldness.
// Duplicate (text, page) pairs collapse to their first occurrence, and the
// result passes through CorrectHierarchy.
func Structure(candidates []model.HeadingCandidate) []model.OutlineItem {
	if len(candidates) == 0 {
		return []model.OutlineItem{}
	}

	ordered := make([]model.HeadingCandidate, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Page != ordered[j].Page {
			return ordered[i].Page < ordered[j].Page
		}
		return ordered[i].BBox.Top() < ordered[j].BBox.Top()
	})

	ranks := styleRanks(ordered)

	items := make([]model.OutlineItem, 0, len(ordered))
	for _, c := range ordered {
		level := model.MaxLevel
		if m := leadingNumbering.FindStringSubmatch(c.Text); m != nil {
			level = min(strings.Count(m[1], ".")+1, model.MaxLevel)
		} else if rank, ok := ranks[c.Style]; ok {
			level = min(rank+1, model.MaxLevel)
		}
		items = append(items, model.OutlineItem{
			Level: model.LevelName(level),
			Text:  c.Text,
			Page:  c.Page + 1,
		})
	}

	return CorrectHierarchy(dedupe(items))
}

// styleRanks orders the distinct candidate styles descending by (size,
// bold) and maps each style to its position. Rank 0 is the most prominent
// style on the document and becomes H1.
func styleRanks(candidates []model.HeadingCandidate) map[model.Style]int {
	seen := make(map[model.Style]bool)
	var styles []model.Style
	for _, c := range candidates {
		if !seen[c.Style] {
			seen[c.Style] = true
			styles = append(styles, c.Style)
		}
	}

	sort.Slice(styles, func(i, j int) bool {
		if styles[i].Size != styles[j].Size {
			return styles[i].Size > styles[j].Size
		}
		return styles[i].Bold && !styles[j].Bold
	})

	ranks := make(map[model.Style]int, len(styles))
	for i, s := range styles {
		ranks[s] = i
	}
	return ranks
}

func dedupe(items []model.OutlineItem) []model.OutlineItem {
	type key struct {
		text string
		page int
	}
	seen := make(map[key]bool, len(items))
	unique := items[:0:0]
	for _, item := range items {
		k := key{item.Text, item.Page}
		if !seen[k] {
			seen[k] = true
			unique = append(unique, item)
		}
	}
	return unique
}

// CorrectHierarchy enforces the level invariant: an item may sit at most
// one level deeper than the item retained immediately before it. Deeper
// jumps clamp to previous+1. The first item is kept as-is.
func CorrectHierarchy(items []model.OutlineItem) []model.OutlineItem {
	if len(items) == 0 {
		return []model.OutlineItem{}
	}

	corrected := make([]model.OutlineItem, 0, len(items))
	corrected = append(corrected, items[0])
	for _, item := range items[1:] {
		prev := model.LevelNumber(corrected[len(corrected)-1].Level)
		if model.LevelNumber(item.Level) > prev+1 {
			item.Level = model.LevelName(prev + 1)
		}
		corrected = append(corrected, item)
	}
	return corrected
}
