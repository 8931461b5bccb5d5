// Package layout provides the document-level typographic and spatial
// measurements the extraction strategies score against.
//
// # Font Statistics
//
// [ComputeFontStats] tallies rounded font sizes across a whole document,
// weighted by character count, and [FontStats.BodySize] reports the modal
// size. That size is the "body text" baseline a heading has to stand out
// from:
//
//	stats := layout.ComputeFontStats(doc)
//	body := stats.BodySize()
//
// # Spatial Predicates
//
// [InMarginBand] identifies blocks inside the header/footer bands that
// heading scoring skips. [IsCentered] tests horizontal centering against a
// tolerance expressed as a fraction of the page's half-width.
package layout
