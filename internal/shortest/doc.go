// Package shortest implements breadth-first search and Dijkstra's algorithm
// over implicit graphs whose vertices are arbitrary comparable states.
//
// Dijkstra uses a container/heap priority queue with the lazy decrease-key
// strategy: improved distances push a fresh entry and stale entries are
// skipped when popped.
package shortest
