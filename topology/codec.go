// SPDX-License-Identifier: MIT

package topology

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/fieldsim/matrix"
)

// Encoded layout (little endian):
//
//	magic   [4]byte "FSTG"
//	version uint16
//	kindLen uint16, kind [kindLen]byte
//	rows, cols uint32
//	torus   uint8
//	order   uint32
//	count   uint32
//	count × (i uint32, j uint32, weight float64)   // non-zero entries, row-major
const (
	// CodecVersion is written into every encoded graph.
	CodecVersion uint16 = 1

	magic = "FSTG"

	// maxOrder bounds the vertex count accepted by Decode.
	maxOrder = 1 << 16
)

var byteOrder = binary.LittleEndian

type header struct {
	Version uint16
	KindLen uint16
}

type shape struct {
	Rows  uint32
	Cols  uint32
	Torus uint8
	Order uint32
	Count uint32
}

type entry struct {
	I, J   uint32
	Weight float64
}

// Encode writes the Spec and the non-zero adjacency entries of g to w.
func Encode(w io.Writer, g *Graph) error {
	if g == nil || g.Adjacency == nil {
		return ErrNilGraph
	}

	n := g.Order()
	entries := make([]entry, 0, 2*g.Adjacency.EdgeCount())
	for i := 0; i < n; i++ {
		for _, arc := range g.Adjacency.Arcs(i) {
			entries = append(entries, entry{I: uint32(i), J: uint32(arc.To), Weight: arc.Weight})
		}
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(magic); err != nil {
		return fmt.Errorf("topology: encode: %w", err)
	}
	torus := uint8(0)
	if g.Spec.Torus {
		torus = 1
	}
	parts := []any{
		header{Version: CodecVersion, KindLen: uint16(len(g.Spec.Kind))},
		[]byte(g.Spec.Kind),
		shape{
			Rows:  uint32(g.Spec.Rows),
			Cols:  uint32(g.Spec.Cols),
			Torus: torus,
			Order: uint32(n),
			Count: uint32(len(entries)),
		},
		entries,
	}
	for _, p := range parts {
		if err := binary.Write(bw, byteOrder, p); err != nil {
			return fmt.Errorf("topology: encode: %w", err)
		}
	}

	return bw.Flush()
}

// Decode reads a graph written by Encode and rebuilds its distance and
// neighborhood tables with opts. Any WithSpec option is overridden by the
// encoded Spec.
func Decode(r io.Reader, opts ...Option) (*Graph, error) {
	br := bufio.NewReader(r)

	var m [4]byte
	if _, err := io.ReadFull(br, m[:]); err != nil {
		return nil, fmt.Errorf("%w: magic: %v", ErrCorrupt, err)
	}
	if string(m[:]) != magic {
		return nil, fmt.Errorf("%w: %q", ErrBadMagic, m[:])
	}

	var h header
	if err := binary.Read(br, byteOrder, &h); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrCorrupt, err)
	}
	if h.Version != CodecVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrVersion, h.Version, CodecVersion)
	}
	kind := make([]byte, h.KindLen)
	if _, err := io.ReadFull(br, kind); err != nil {
		return nil, fmt.Errorf("%w: kind: %v", ErrCorrupt, err)
	}

	var s shape
	if err := binary.Read(br, byteOrder, &s); err != nil {
		return nil, fmt.Errorf("%w: shape: %v", ErrCorrupt, err)
	}
	n := int(s.Order)
	if n < 1 || n > maxOrder || uint64(s.Count) > uint64(n)*uint64(n) {
		return nil, fmt.Errorf("%w: order %d, %d entries", ErrCorrupt, s.Order, s.Count)
	}

	entries := make([]entry, s.Count)
	if err := binary.Read(br, byteOrder, entries); err != nil {
		return nil, fmt.Errorf("%w: entries: %v", ErrCorrupt, err)
	}

	mat, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	for _, e := range entries {
		if math.IsNaN(e.Weight) {
			return nil, fmt.Errorf("%w: NaN weight at (%d,%d)", ErrCorrupt, e.I, e.J)
		}
		if err = mat.Set(int(e.I), int(e.J), e.Weight); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
	}
	adj, err := matrix.FromDense(mat)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	spec := Spec{Kind: string(kind), Rows: int(s.Rows), Cols: int(s.Cols), Torus: s.Torus != 0}
	return Build(adj, append(opts, WithSpec(spec))...)
}

// Marshal is Encode into a fresh byte slice.
func Marshal(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal is Decode from a byte slice.
func Unmarshal(data []byte, opts ...Option) (*Graph, error) {
	return Decode(bytes.NewReader(data), opts...)
}
