// Package geo generates and loads triangle meshes as flat, interleaved
// vertex buffers with matching index buffers, ready for GPU upload.
//
// Every generator is a pure function. The attribute order of each buffer is
// described by its Layout; renderers bind vertex inputs from it.
package geo

import (
	"fmt"
	"strings"

	"github.com/Echtzeit-Computergrafik-WS23/glance/pkg/math"
)

// Attribute names used by the generators.
const (
	AttrPosition = "position"
	AttrNormal   = "normal"
	AttrTexCoord = "texcoord"
)

// BytesPerFloat is the size of one attribute component in a GPU buffer.
const BytesPerFloat = 4

// Attribute is one named per-vertex channel of an interleaved buffer.
type Attribute struct {
	Name       string
	Components int
}

// Layout lists the attributes of an interleaved buffer in storage order.
type Layout []Attribute

// Standard layouts.
var (
	// LayoutPNT is position, normal, texcoord: cubes, cylinders and spheres.
	LayoutPNT = Layout{{AttrPosition, 3}, {AttrNormal, 3}, {AttrTexCoord, 2}}
	// LayoutPUN is position, texcoord, normal: expanded OBJ files.
	LayoutPUN = Layout{{AttrPosition, 3}, {AttrTexCoord, 2}, {AttrNormal, 3}}
	// LayoutP is position only: skyboxes.
	LayoutP = Layout{{AttrPosition, 3}}
)

// Stride returns the number of floats per vertex.
func (l Layout) Stride() int {
	stride := 0
	for _, a := range l {
		stride += a.Components
	}
	return stride
}

// StrideBytes returns the vertex stride in bytes.
func (l Layout) StrideBytes() int {
	return l.Stride() * BytesPerFloat
}

// Offset returns the float offset of the named attribute within a vertex.
func (l Layout) Offset(name string) (int, bool) {
	offset := 0
	for _, a := range l {
		if a.Name == name {
			return offset, true
		}
		offset += a.Components
	}
	return 0, false
}

// Components returns the component count of the named attribute, or 0.
func (l Layout) Components(name string) int {
	for _, a := range l {
		if a.Name == name {
			return a.Components
		}
	}
	return 0
}

// Has reports whether the layout contains the named attribute.
func (l Layout) Has(name string) bool {
	_, ok := l.Offset(name)
	return ok
}

// String formats the layout as e.g. "position(3) normal(3) texcoord(2)".
func (l Layout) String() string {
	parts := make([]string, len(l))
	for i, a := range l {
		parts[i] = fmt.Sprintf("%s(%d)", a.Name, a.Components)
	}
	return strings.Join(parts, " ")
}

// Mesh holds an interleaved attribute buffer and a triangle index list.
type Mesh struct {
	Attributes []float32
	Indices    []uint32
	Layout     Layout
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// VertexCount returns the number of vertices in the attribute buffer.
func (m *Mesh) VertexCount() int {
	stride := m.Layout.Stride()
	if stride == 0 {
		return 0
	}
	return len(m.Attributes) / stride
}

// TriangleCount returns the number of index triples.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Channel extracts the named attribute into its own flat array.
func (m *Mesh) Channel(name string) ([]float32, error) {
	return Deinterleave(m.Attributes, m.Layout, name)
}

// Bounds returns the bounding box of the position attribute.
// An empty mesh or one without positions has zero bounds.
func (m *Mesh) Bounds() Bounds {
	offset, ok := m.Layout.Offset(AttrPosition)
	stride := m.Layout.Stride()
	if !ok || m.VertexCount() == 0 {
		return Bounds{}
	}

	vertex := func(i int) math.Vec3 {
		p := m.Attributes[i*stride+offset:]
		return math.Vec3{X: p[0], Y: p[1], Z: p[2]}
	}
	b := Bounds{Min: vertex(0), Max: vertex(0)}
	for i := 1; i < m.VertexCount(); i++ {
		v := vertex(i)
		b.Min = b.Min.Min(v)
		b.Max = b.Max.Max(v)
	}
	return b
}

// Validate checks that the buffer divides into whole vertices, that the
// indices form whole triangles and that every index names a vertex.
func (m *Mesh) Validate() error {
	stride := m.Layout.Stride()
	if stride == 0 {
		return fmt.Errorf("%w: empty layout", ErrMalformedMesh)
	}
	if len(m.Attributes)%stride != 0 {
		return fmt.Errorf("%w: %d floats do not divide into stride %d", ErrMalformedMesh, len(m.Attributes), stride)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices do not form whole triangles", ErrMalformedMesh, len(m.Indices))
	}
	vertices := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= vertices {
			return fmt.Errorf("%w: index %d at position %d, mesh has %d vertices", ErrIndexOutOfRange, idx, i, vertices)
		}
	}
	return nil
}
