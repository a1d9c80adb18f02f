// Package gpu uploads geo meshes into OpenGL vertex arrays.
package gpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Echtzeit-Computergrafik-WS23/glance/pkg/geo"
)

// Locations maps attribute names to shader attribute locations.
type Locations map[string]uint32

// DefaultLocations matches the attribute order the viewer shaders bind.
var DefaultLocations = Locations{
	geo.AttrPosition: 0,
	geo.AttrNormal:   1,
	geo.AttrTexCoord: 2,
}

// AttribPointer describes one glVertexAttribPointer call.
type AttribPointer struct {
	Name     string
	Location uint32
	Size     int32   // components
	Stride   int32   // bytes
	Offset   uintptr // bytes
}

// AttribPointers lists the pointer setup for every layout attribute that
// has a location. Attributes without a location are left disabled.
func AttribPointers(layout geo.Layout, locations Locations) []AttribPointer {
	stride := int32(layout.StrideBytes())
	var ptrs []AttribPointer
	offset := 0
	for _, attr := range layout {
		if loc, ok := locations[attr.Name]; ok {
			ptrs = append(ptrs, AttribPointer{
				Name:     attr.Name,
				Location: loc,
				Size:     int32(attr.Components),
				Stride:   stride,
				Offset:   uintptr(offset * geo.BytesPerFloat),
			})
		}
		offset += attr.Components
	}
	return ptrs
}

// Mesh is a mesh resident on the GPU.
type Mesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// Upload validates m and copies it into a new VAO with its VBO and EBO.
func Upload(m *geo.Mesh, locations Locations) (*Mesh, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}
	if len(m.Indices) == 0 {
		return nil, fmt.Errorf("upload: %w: no triangles", geo.ErrMalformedMesh)
	}

	g := &Mesh{indexCount: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Attributes)*geo.BytesPerFloat, gl.Ptr(m.Attributes), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	for _, p := range AttribPointers(m.Layout, locations) {
		gl.EnableVertexAttribArray(p.Location)
		gl.VertexAttribPointerWithOffset(p.Location, p.Size, gl.FLOAT, false, p.Stride, p.Offset)
	}

	gl.BindVertexArray(0)
	return g, nil
}

// Draw issues the indexed draw call.
func (g *Mesh) Draw() {
	gl.BindVertexArray(g.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Delete frees the GPU objects.
func (g *Mesh) Delete() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
	}
	*g = Mesh{}
}
