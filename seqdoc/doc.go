// Package seqdoc implements the pure document model for seqpad.
//
// A Document is an ordered collection of single-unit Symbols with a live
// caret and selection. Positions are 0-based logical indices; spans are
// half-open selections in logical coordinates: [Start, End).
package seqdoc
