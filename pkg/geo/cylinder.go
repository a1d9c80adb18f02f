package geo

import "github.com/chewxy/math32"

// DefaultCapInset is how far the top cap is pulled below the top edge of
// the mantle to keep the two from z-fighting. It is tuned for the demo
// scene's depth range and does not rule out artifacts at other scales.
const DefaultCapInset = 0.002

// CylinderOptions configures an upright cylinder centered on the origin.
//
// A zero CapInset is honoured and leaves the top cap flush with the
// mantle. Start from DefaultCylinderOptions to get DefaultCapInset.
type CylinderOptions struct {
	Radius float32
	Height float32
	// RadialSegments is the number of bands around the cylinder.
	RadialSegments int
	// HeightSegments is the number of vertical steps along the mantle.
	HeightSegments int
	// CapInset lowers the top cap ring along the height axis. Zero is a
	// valid inset, not a request for the default.
	CapInset float32
}

// DefaultCylinderOptions returns a unit cylinder with 32 radial segments.
func DefaultCylinderOptions() CylinderOptions {
	return CylinderOptions{
		Radius:         1,
		Height:         1,
		RadialSegments: 32,
		HeightSegments: 1,
		CapInset:       DefaultCapInset,
	}
}

func (o CylinderOptions) resolve() CylinderOptions {
	o.RadialSegments = max(o.RadialSegments, 1)
	o.HeightSegments = max(o.HeightSegments, 1)
	return o
}

// CylinderVertexCount returns the number of vertices CylinderAttributes
// emits: a top ring, a bottom ring and HeightSegments-1 mantle rings, each
// with RadialSegments+1 vertices.
func CylinderVertexCount(opts CylinderOptions) int {
	opts = opts.resolve()
	return (opts.RadialSegments + 1) * (opts.HeightSegments + 1)
}

// CylinderAttributes returns the cylinder vertices laid out as LayoutPNT.
// Each ring repeats its first vertex at the end so the texture seam closes.
func CylinderAttributes(opts CylinderOptions) []float32 {
	opts = opts.resolve()
	rs := opts.RadialSegments
	hs := opts.HeightSegments

	n := CylinderVertexCount(opts)
	positions := make([]float32, 0, n*3)
	normals := make([]float32, 0, n*3)
	texCoords := make([]float32, 0, n*2)

	ring := func(y, v float32, normal func(sin, cos float32) [3]float32) {
		for x := 0; x <= rs; x++ {
			u := float32(x) / float32(rs)
			theta := u * 2 * math32.Pi
			sin, cos := math32.Sin(theta), math32.Cos(theta)
			nrm := normal(sin, cos)
			positions = append(positions, opts.Radius*sin, y, opts.Radius*cos)
			normals = append(normals, nrm[:]...)
			texCoords = append(texCoords, u, v)
		}
	}

	up := func(_, _ float32) [3]float32 { return [3]float32{0, 1, 0} }
	down := func(_, _ float32) [3]float32 { return [3]float32{0, -1, 0} }
	radial := func(sin, cos float32) [3]float32 { return [3]float32{sin, 0, cos} }

	ring(0.5*opts.Height-opts.CapInset, 0, up)
	ring(-0.5*opts.Height, 1, down)
	for y := 1; y < hs; y++ {
		v := float32(y) / float32(hs)
		ring((v-0.5)*opts.Height, v, radial)
	}

	return mustInterleave(
		Channel{positions, 3},
		Channel{normals, 3},
		Channel{texCoords, 2},
	)
}

// CylinderIndices returns the cylinder triangles. Each cap is a fan around
// the last vertex of its ring; the mantle rows are split into two triangles
// per segment, starting from the bottom ring.
func CylinderIndices(radialSegments, heightSegments int) []uint32 {
	rs := uint32(max(radialSegments, 1))
	hs := uint32(max(heightSegments, 1))

	indices := make([]uint32, 0, 6*rs+6*rs*(hs-1))
	for x := range rs {
		indices = append(indices, x, x+1, rs)
	}
	base := rs + 1
	for x := range rs {
		indices = append(indices, base+x, base+x+1, base+rs)
	}
	for y := uint32(1); y < hs; y++ {
		for x := range rs {
			first := base + (y-1)*(rs+1) + x
			second := first + rs + 1
			indices = append(indices,
				first, first+1, second,
				second, first+1, second+1,
			)
		}
	}
	return indices
}

// Cylinder returns the cylinder mesh for opts.
func Cylinder(opts CylinderOptions) *Mesh {
	return &Mesh{
		Attributes: CylinderAttributes(opts),
		Indices:    CylinderIndices(opts.RadialSegments, opts.HeightSegments),
		Layout:     LayoutPNT,
	}
}
