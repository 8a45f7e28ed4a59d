// SPDX-License-Identifier: MIT

package space

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxDepth bounds the number of nested levels a Location can address.
const MaxDepth = 4

// Location identifies a position as one vertex per level, coarsest first.
// The zero value is the empty (depth 0) location. Locations are comparable.
type Location struct {
	depth    uint8
	vertices [MaxDepth]int32
}

// At builds a Location from vertex ids, coarsest first. Panics when more than
// MaxDepth vertices are given or a vertex is negative.
func At(vertices ...int) Location {
	loc, err := FromVertices(vertices)
	if err != nil {
		panic(err)
	}
	return loc
}

// FromVertices builds a Location from vertex ids, coarsest first.
func FromVertices(vertices []int) (Location, error) {
	var loc Location
	var err error
	for _, v := range vertices {
		if loc, err = loc.Extend(v); err != nil {
			return Location{}, err
		}
	}
	return loc, nil
}

// Depth returns the number of levels addressed.
func (l Location) Depth() int { return int(l.depth) }

// Level returns the index of the deepest addressed level, -1 when empty.
func (l Location) Level() int { return int(l.depth) - 1 }

// Vertex returns the vertex at level, or -1 beyond the location's depth.
func (l Location) Vertex(level int) int {
	if level < 0 || level >= int(l.depth) {
		return -1
	}
	return int(l.vertices[level])
}

// Last returns the vertex of the deepest level, or -1 when empty.
func (l Location) Last() int { return l.Vertex(l.Level()) }

// Vertices returns a copy of the addressed vertex ids.
func (l Location) Vertices() []int {
	out := make([]int, l.depth)
	for i := range out {
		out[i] = int(l.vertices[i])
	}
	return out
}

// Prefix returns the first depth levels of l; depth is clamped to 0..Depth().
func (l Location) Prefix(depth int) Location {
	if depth < 0 {
		depth = 0
	}
	if depth >= int(l.depth) {
		return l
	}
	p := Location{depth: uint8(depth)}
	copy(p.vertices[:depth], l.vertices[:depth])
	return p
}

// Parent returns l without its deepest level.
func (l Location) Parent() Location { return l.Prefix(int(l.depth) - 1) }

// Extend returns l with v appended as the next deeper level.
func (l Location) Extend(v int) (Location, error) {
	if int(l.depth) >= MaxDepth {
		return Location{}, fmt.Errorf("%w: extend %s", ErrTooDeep, l)
	}
	if v < 0 {
		return Location{}, fmt.Errorf("%w: negative vertex %d", ErrInvalidLocation, v)
	}
	if v > math.MaxInt32 {
		return Location{}, fmt.Errorf("%w: vertex %d exceeds %d", ErrInvalidLocation, v, math.MaxInt32)
	}
	l.vertices[l.depth] = int32(v)
	l.depth++
	return l, nil
}

// IsPrefixOf reports whether l addresses an enclosing area of o (or o itself).
func (l Location) IsPrefixOf(o Location) bool {
	return l.depth <= o.depth && o.Prefix(int(l.depth)) == l
}

// String renders the location as "(v0,v1,...)".
func (l Location) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < int(l.depth); i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(l.vertices[i])))
	}
	sb.WriteByte(')')
	return sb.String()
}
