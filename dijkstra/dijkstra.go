// SPDX-License-Identifier: MIT

// Search notes:
//
//   - A "lazy" decrease-key strategy: improved distances push duplicates into
//     the heap and stale entries are skipped when popped.
//   - Vertices at +Inf are never pushed, so an empty heap means every
//     remaining unvisited vertex is unreachable.
//   - Every finalized vertex counts as one round; more than N+1 rounds is an
//     invariant violation reported as ErrRoundLimit.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/fieldsim/matrix"
)

// SingleSource computes shortest distances from source to every vertex of adj.
//
// Preconditions and validation (in order):
//  1. adj must be non-nil (ErrNilAdjacency).
//  2. source must be in 0..N-1 (ErrSourceOutOfRange).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func SingleSource(adj *matrix.Adjacency, source int) (VertexDistance, error) {
	if adj == nil {
		return VertexDistance{}, ErrNilAdjacency
	}
	n := adj.Order()
	if source < 0 || source >= n {
		return VertexDistance{}, fmt.Errorf("%w: source %d, order %d", ErrSourceOutOfRange, source, n)
	}

	return search(adj, source, n+1)
}

// search runs one bounded Dijkstra from source allowing at most limit rounds.
func search(adj *matrix.Adjacency, source, limit int) (VertexDistance, error) {
	n := adj.Order()
	r := &runner{
		adj:     adj,
		source:  source,
		limit:   limit,
		dist:    make([]float64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return VertexDistance{}, err
	}

	return VertexDistance{Source: source, Dist: r.dist}, nil
}

// AllPairs runs SingleSource for every vertex and gathers the results by
// source id. With WithParallel/WithWorkers the sources are fanned out across a
// fixed worker pool; the result is identical either way.
//
// If any source fails, the error of the lowest failing source id is returned.
func AllPairs(adj *matrix.Adjacency, opts ...Option) (GraphDistance, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if adj == nil {
		return nil, ErrNilAdjacency
	}

	n := adj.Order()
	if !cfg.Parallel || cfg.Workers <= 1 || n <= 1 {
		out := make(GraphDistance, n)
		for s := 0; s < n; s++ {
			vd, err := SingleSource(adj, s)
			if err != nil {
				return nil, err
			}
			out[s] = vd
		}
		return out, nil
	}

	return allPairsParallel(adj, n, cfg.Workers)
}

// allPairsParallel feeds source ids to a fixed pool and gathers by index.
func allPairsParallel(adj *matrix.Adjacency, n, workers int) (GraphDistance, error) {
	type result struct {
		source int
		vd     VertexDistance
		err    error
	}

	if workers > n {
		workers = n
	}
	jobs := make(chan int)
	results := make(chan result, n)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for s := range jobs {
				vd, err := SingleSource(adj, s)
				results <- result{source: s, vd: vd, err: err}
			}
		}()
	}

	for s := 0; s < n; s++ {
		jobs <- s
	}
	close(jobs)

	wg.Wait()
	close(results)

	out := make(GraphDistance, n)
	firstErr := -1
	errs := make([]error, n)
	for res := range results {
		if res.err != nil {
			errs[res.source] = res.err
			if firstErr < 0 || res.source < firstErr {
				firstErr = res.source
			}
			continue
		}
		out[res.source] = res.vd
	}
	if firstErr >= 0 {
		return nil, errs[firstErr]
	}

	return out, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	adj     *matrix.Adjacency // read-only input
	source  int               // search origin
	limit   int               // maximum rounds, N+1 in production
	dist    []float64         // current best distance per vertex
	visited []bool            // finalized flags
	pq      nodePQ            // lazy min-heap
	rounds  int               // finalized vertices so far
}

// init sets every distance to +Inf except the source, which is pushed at 0.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
	}
	r.dist[r.source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.source, dist: 0})
}

// process repeatedly finalizes the closest unvisited vertex and relaxes its
// arcs until the heap is exhausted.
func (r *runner) process() error {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] || item.dist > r.dist[item.id] {
			continue // stale entry
		}

		r.rounds++
		if r.rounds > r.limit {
			return fmt.Errorf("%w: source %d after %d rounds (order %d)",
				ErrRoundLimit, r.source, r.rounds, len(r.dist))
		}

		r.visited[item.id] = true
		r.relax(item.id)
	}

	return nil
}

// relax updates every unvisited neighbor of u whose candidate distance
// through u is strictly smaller than its current tentative distance.
func (r *runner) relax(u int) {
	var cand float64
	for _, arc := range r.adj.Arcs(u) {
		if r.visited[arc.To] {
			continue
		}
		cand = r.dist[u] + arc.Weight
		if cand >= r.dist[arc.To] {
			continue
		}
		r.dist[arc.To] = cand
		heap.Push(&r.pq, &nodeItem{id: arc.To, dist: cand})
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties broken by id so the
// extraction order is deterministic.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
