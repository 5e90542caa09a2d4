package shortest

// BFS returns the unweighted distance from start to every state reachable
// through next. Exploration stops at maxDepth when maxDepth is non-negative.
func BFS[S comparable](start S, next func(S) []S, maxDepth int) map[S]int {
	dist := map[S]int{start: 0}
	frontier := []S{start}
	for depth := 1; len(frontier) > 0; depth++ {
		if maxDepth >= 0 && depth > maxDepth {
			break
		}
		var nextFrontier []S
		for _, s := range frontier {
			for _, n := range next(s) {
				if _, seen := dist[n]; seen {
					continue
				}
				dist[n] = depth
				nextFrontier = append(nextFrontier, n)
			}
		}
		frontier = nextFrontier
	}
	return dist
}
