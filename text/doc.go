// Package text provides the normalization and classification helpers the
// extraction strategies apply to raw span text.
//
// # Normalization
//
// [Clean] is the single normalization entry point. It applies Unicode NFKC
// normalization, repairs the ligature artifacts common in extracted PDF
// text, collapses whitespace runs and trims:
//
//	text.Clean("ﬁnancial  report\n") // "financial report"
//
// Clean is idempotent: Clean(Clean(s)) == Clean(s) for all inputs.
//
// # Classification
//
// The remaining helpers answer the small questions scoring asks of a piece
// of text: how many words it has, whether it is all caps, whether it is
// purely numeric.
package text
