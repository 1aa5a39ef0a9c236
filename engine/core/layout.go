package core

import "fmt"

// AttribType is the component type of a vertex attribute as stored in the
// vertex buffer.
type AttribType int

const (
	AttribFloat32 AttribType = iota
	AttribUint8
)

// ByteSize returns the size of one component in bytes.
func (t AttribType) ByteSize() int {
	switch t {
	case AttribFloat32:
		return 4
	case AttribUint8:
		return 1
	}
	return 0
}

// VertexAttrib associates a shader input name with its representation in the
// vertex buffer. Normalized integer attributes are fetched as floats in [0,1].
type VertexAttrib struct {
	Name       string
	Location   uint32
	Size       int32 // components, 1..4
	Type       AttribType
	Normalized bool
	Offset     int // bytes from the start of the vertex
}

// VertexLayout is the protocol between application vertex memory and shader
// inputs: a fixed association list of name, representation, and position.
// It is validated twice, once against the vertex buffer at mesh build and
// once against the active attributes at program build.
type VertexLayout struct {
	Stride     int // bytes per vertex
	Attributes []VertexAttrib
}

// Validate checks that every attribute fits inside the declared stride.
func (l VertexLayout) Validate() error {
	if l.Stride <= 0 {
		return fmt.Errorf("vertex layout: stride %d must be positive", l.Stride)
	}
	if len(l.Attributes) == 0 {
		return fmt.Errorf("vertex layout: no attributes")
	}
	for _, a := range l.Attributes {
		if a.Name == "" {
			return fmt.Errorf("vertex layout: attribute at offset %d has no name", a.Offset)
		}
		if a.Size < 1 || a.Size > 4 {
			return fmt.Errorf("vertex layout: attribute %q has %d components, want 1..4", a.Name, a.Size)
		}
		end := a.Offset + int(a.Size)*a.Type.ByteSize()
		if a.Offset < 0 || end > l.Stride {
			return fmt.Errorf("vertex layout: attribute %q spans [%d,%d), outside stride %d", a.Name, a.Offset, end, l.Stride)
		}
	}
	return nil
}

// Topology describes how indices assemble drawable primitives.
type Topology int

const (
	// TriangleList groups indices in independent triples.
	TriangleList Topology = iota
)

// MeshDesc describes GPU-resident geometry: an interleaved vertex buffer plus
// an index buffer into it.
type MeshDesc struct {
	Vertices []byte
	Indices  []uint8
	Topology Topology
}

// VertexCount reports how many vertices the buffer holds under the layout.
func (d MeshDesc) VertexCount(layout VertexLayout) int {
	if layout.Stride <= 0 {
		return 0
	}
	return len(d.Vertices) / layout.Stride
}

// Validate checks the descriptor against the layout. Any index referencing a
// vertex outside the buffer fails construction.
func (d MeshDesc) Validate(layout VertexLayout) error {
	if err := layout.Validate(); err != nil {
		return err
	}
	if len(d.Vertices) == 0 || len(d.Vertices)%layout.Stride != 0 {
		return fmt.Errorf("mesh: vertex buffer is %d bytes, not a multiple of stride %d", len(d.Vertices), layout.Stride)
	}
	if d.Topology != TriangleList {
		return fmt.Errorf("mesh: unsupported topology %d", d.Topology)
	}
	if len(d.Indices) == 0 || len(d.Indices)%3 != 0 {
		return fmt.Errorf("mesh: %d indices do not form whole triangles", len(d.Indices))
	}
	count := d.VertexCount(layout)
	for i, idx := range d.Indices {
		if int(idx) >= count {
			return fmt.Errorf("mesh: index %d at position %d out of range (%d vertices)", idx, i, count)
		}
	}
	return nil
}
