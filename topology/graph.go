// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/fieldsim/dijkstra"
	"github.com/katalvlaran/fieldsim/matrix"
	"github.com/katalvlaran/fieldsim/neighborhood"
)

// Graph is the immutable (Neighborhood, Distance, Adjacency) triple of one
// spatial level. All three describe the same vertex set 0..Order()-1.
type Graph struct {
	Spec         Spec
	Adjacency    *matrix.Adjacency
	Distance     dijkstra.GraphDistance
	Neighborhood neighborhood.GraphNeighborhood

	components int
}

// Build derives the distance and neighborhood tables of adj.
//
// Steps:
//  1. All-pairs Dijkstra (worker pool unless the order is trivial).
//  2. Distance → neighborhood conversion.
//  3. Weak connectivity via gonum's ConnectedComponents.
//
// A disconnected graph is not an error; it is logged and reported by
// Components.
func Build(adj *matrix.Adjacency, opts ...Option) (*Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if adj == nil {
		return nil, ErrNilGraph
	}

	start := time.Now()
	var dopts []dijkstra.Option
	if cfg.Parallel {
		dopts = append(dopts, dijkstra.WithWorkers(cfg.Workers))
	}
	dist, err := dijkstra.AllPairs(adj, dopts...)
	if err != nil {
		return nil, fmt.Errorf("topology: build %s: %w", cfg.Spec.Key(), err)
	}

	g := &Graph{
		Spec:         cfg.Spec,
		Adjacency:    adj,
		Distance:     dist,
		Neighborhood: neighborhood.Convert(dist),
		components:   len(topo.ConnectedComponents(graph.Undirect{G: adj.Gonum()})),
	}

	log := cfg.Logger.With("graph", cfg.Spec.Key())
	log.Debug("topology built",
		"vertices", humanize.Comma(int64(adj.Order())),
		"edges", humanize.Comma(int64(adj.EdgeCount())),
		"elapsed", time.Since(start))
	if g.components > 1 {
		log.Warn("topology is disconnected", "components", g.components)
	}

	return g, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.Adjacency.Order() }

// Components returns the number of weakly connected components.
func (g *Graph) Components() int { return g.components }

// Connected reports whether every vertex reaches every other one.
func (g *Graph) Connected() bool { return g.components <= 1 }

// Between returns the shortest distance u→v (+Inf when unreachable or out of range).
func (g *Graph) Between(u, v int) float64 { return g.Distance.Between(u, v) }

// Neighbors returns the sorted vertices within the snapped radius interval
// around v. See neighborhood.VertexNeighborhood.Query.
func (g *Graph) Neighbors(v int, opts ...neighborhood.QueryOption) []int {
	return g.Neighborhood.Query(v, opts...)
}

// Equal reports whether both graphs share spec, adjacency and derived tables.
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}

	return g.Spec == other.Spec &&
		g.Adjacency.Equal(other.Adjacency) &&
		g.Distance.Equal(other.Distance) &&
		g.Neighborhood.Equal(other.Neighborhood)
}
