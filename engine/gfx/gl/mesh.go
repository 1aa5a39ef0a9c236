package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/bryher/scribble/engine/core"
)

// Mesh is GPU-resident geometry: an interleaved vertex buffer, a u8 index
// buffer, and triangle-list topology.
type Mesh struct {
	vao, vbo, ibo uint32
	indexCount    int32
}

// BuildMesh validates the descriptor and uploads it. Indices stay u8 on the
// GPU; Draw reads the full range.
func BuildMesh(desc core.MeshDesc, layout core.VertexLayout) (*Mesh, error) {
	if err := desc.Validate(layout); err != nil {
		return nil, fmt.Errorf("build mesh: %w", err)
	}

	m := &Mesh{indexCount: int32(len(desc.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(desc.Vertices), gl.Ptr(desc.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(desc.Indices), gl.Ptr(desc.Indices), gl.STATIC_DRAW)

	stride := int32(layout.Stride)
	for _, attr := range layout.Attributes {
		gl.EnableVertexAttribArray(attr.Location)
		gl.VertexAttribPointerWithOffset(attr.Location, attr.Size, glAttribType(attr.Type), attr.Normalized, stride, uintptr(attr.Offset))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	return m, nil
}

// Draw issues one indexed draw over the full index range.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_BYTE, 0)
	gl.BindVertexArray(0)
}

func (m *Mesh) Release() {
	if m.ibo != 0 {
		gl.DeleteBuffers(1, &m.ibo)
		m.ibo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}

func glAttribType(t core.AttribType) uint32 {
	switch t {
	case core.AttribUint8:
		return gl.UNSIGNED_BYTE
	default:
		return gl.FLOAT
	}
}
