// Package aoc23 is the pack of Advent of Code 2023 solvers, registered
// under the name "aoc23" with one day per puzzle, day01 to day25.
package aoc23
