// Package registry provides the central "glue" between the compiled-in
// puzzle packs and the dispatcher.
//
// The Registry maps pack names to their puzzle.Pack. It is populated once at
// startup by the modules listed in the app package and then validated, so a
// malformed pack or a settings file naming a unit that does not exist is
// caught before any input is read.
package registry
