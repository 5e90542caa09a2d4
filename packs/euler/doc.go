// Package euler is the pack of Project Euler solvers, registered under the
// name "euler". Each problem reads its parameter, such as the upper limit of a
// sum, from the single line of its input file, so the published examples run
// against the same code as the real problems.
package euler
