// Package model provides the intermediate representation for decoded
// document content and the outline records produced from it.
//
// This package defines the contract between decoding backends and the
// extraction strategies. Backends parse a source format and produce these
// types; strategies only ever read them.
//
// # Document Structure
//
// A [Document] is an ordered list of pages plus the embedded table of
// contents, when present:
//
//	doc := model.NewDocument()
//	doc.AddPage(page)
//
// Each [Page] carries its dimensions and an ordered list of [Block] values.
// Blocks group [Line] values, which group [Span] values, the smallest unit:
// a run of text in a single font face and size.
//
// # Geometry
//
// [BBox] is the geometric primitive. Coordinates live in page space: origin
// at the top-left corner, Y increasing downward. Backends decoding y-up
// sources are responsible for flipping.
//
// # Results
//
// [Result] is the output record for one document: a title and an ordered
// list of [OutlineItem] values with levels H1 through H3 and 1-based page
// numbers.
//
// # Errors
//
// The error types [DecodeError], [ResourceError], [UnexpectedError] and
// [WriteError] classify failures at the per-document boundary. All of them
// wrap an underlying cause and work with errors.As.
package model
