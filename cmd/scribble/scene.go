package main

import (
	"encoding/binary"
	"math"

	"github.com/bryher/scribble/engine/core"
)

// Vertex is one point of the static mesh: a clip-space position plus an RGB
// color stored as bytes and normalized to [0,1] on GPU fetch.
type Vertex struct {
	Pos [2]float32
	RGB [3]uint8
}

const vertexStride = 2*4 + 3 // packed: two float32 + three uint8

// Attribute names are the protocol with the shader sources below: "co" is the
// vec2 position, "color" the normalized vec3 color.
var vertexLayout = core.VertexLayout{
	Stride: vertexStride,
	Attributes: []core.VertexAttrib{
		{Name: "co", Location: 0, Size: 2, Type: core.AttribFloat32, Offset: 0},
		{Name: "color", Location: 1, Size: 3, Type: core.AttribUint8, Normalized: true, Offset: 8},
	},
}

// Two disjoint triangles: an RGB one and a purple one.
var triVertices = []Vertex{
	{Pos: [2]float32{0.5, -0.5}, RGB: [3]uint8{0, 255, 0}},
	{Pos: [2]float32{0.0, 0.5}, RGB: [3]uint8{0, 0, 255}},
	{Pos: [2]float32{-0.5, -0.5}, RGB: [3]uint8{255, 0, 0}},

	{Pos: [2]float32{-0.5, 0.5}, RGB: [3]uint8{255, 51, 255}},
	{Pos: [2]float32{0.0, -0.5}, RGB: [3]uint8{51, 255, 255}},
	{Pos: [2]float32{0.5, 0.5}, RGB: [3]uint8{51, 51, 255}},
}

// Each triple names one triangle's winding.
var triIndices = []uint8{
	0, 1, 2,
	3, 4, 5,
}

// packVertices interleaves the vertices to match vertexLayout.
func packVertices(verts []Vertex) []byte {
	out := make([]byte, 0, len(verts)*vertexStride)
	for _, v := range verts {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(v.Pos[0]))
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(v.Pos[1]))
		out = append(out, v.RGB[0], v.RGB[1], v.RGB[2])
	}
	return out
}

func sceneMeshDesc() core.MeshDesc {
	return core.MeshDesc{
		Vertices: packVertices(triVertices),
		Indices:  triIndices,
		Topology: core.TriangleList,
	}
}

const vertexSource = `
#version 330 core

in vec2 co;
in vec3 color;

out vec3 v_color;

void main() {
    gl_Position = vec4(co, 0.0, 1.0);
    v_color = color;
}
` + "\x00"

const fragmentSource = `
#version 330 core

in vec3 v_color;

out vec4 frag;

void main() {
    frag = vec4(v_color, 1.0);
}
` + "\x00"
