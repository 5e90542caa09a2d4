package shortest

import "container/heap"

// Edge is a weighted transition to another state.
type Edge[S comparable] struct {
	To   S
	Cost int
}

// Dijkstra returns the cheapest cost from any of the starts to a state
// accepted by goal, and false when no such state is reachable. Edge costs
// must be non-negative.
func Dijkstra[S comparable](starts []S, next func(S) []Edge[S], goal func(S) bool) (int, bool) {
	dist := make(map[S]int, len(starts))
	done := make(map[S]bool)
	pq := &queue[S]{}
	heap.Init(pq)
	for _, s := range starts {
		dist[s] = 0
		heap.Push(pq, item[S]{state: s, dist: 0})
	}

	for pq.Len() > 0 {
		it := heap.Pop(pq).(item[S])
		if done[it.state] {
			continue
		}
		done[it.state] = true
		if goal(it.state) {
			return it.dist, true
		}
		for _, e := range next(it.state) {
			nd := it.dist + e.Cost
			if d, ok := dist[e.To]; ok && d <= nd {
				continue
			}
			dist[e.To] = nd
			heap.Push(pq, item[S]{state: e.To, dist: nd})
		}
	}
	return 0, false
}

type item[S comparable] struct {
	state S
	dist  int
}

// queue is a min-heap of items ordered by distance.
type queue[S comparable] []item[S]

func (q queue[S]) Len() int           { return len(q) }
func (q queue[S]) Less(i, j int) bool { return q[i].dist < q[j].dist }
func (q queue[S]) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *queue[S]) Push(x any) { *q = append(*q, x.(item[S])) }

func (q *queue[S]) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}
