// Package puzzle defines the building blocks every pack is made of: solver
// units, days and packs.
//
// A Unit is a pure function from input lines to an answer string. A Day is an
// ordered group of units solving the parts of one puzzle, and a Pack is a
// named collection of days plus the file layout its inputs live in.
//
// Solvers state their assumptions about the input explicitly through Must,
// MustInt and Assertf. A violated assumption panics with a *PreconditionError,
// which the command entrypoint reports as a fatal diagnostic.
package puzzle
