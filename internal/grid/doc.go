// Package grid provides a rectangular byte grid addressed by row and column,
// together with the direction offsets used to walk it.
//
// A Grid is built from input lines with New, which rejects empty and
// non-rectangular input with ErrEmptyGrid and ErrNonRectangular. Cells are
// mutable through Set so that simulations (tilting rocks, flood fills) can
// work in place; Clone makes an independent copy.
package grid
