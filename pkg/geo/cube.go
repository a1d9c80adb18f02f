package geo

import "github.com/Echtzeit-Computergrafik-WS23/glance/pkg/math"

// CubeVertexCount and CubeIndexCount are fixed for every cube.
const (
	CubeVertexCount = 24
	CubeIndexCount  = 36
)

// CubeOptions configures a box centered on the origin.
// A zero Size or UVScale means 1 on every axis.
type CubeOptions struct {
	Size    math.Vec3
	UVScale math.Vec2
}

// NewCubeOptions returns options for a cube with the same size on all axes
// and the same texture coordinate scale on both axes.
func NewCubeOptions(size, uvScale float32) CubeOptions {
	return CubeOptions{
		Size:    math.Splat3(size),
		UVScale: math.Splat2(uvScale),
	}
}

func (o CubeOptions) resolve() CubeOptions {
	if o.Size.IsZero() {
		o.Size = math.Splat3(1)
	}
	if o.UVScale.IsZero() {
		o.UVScale = math.Splat2(1)
	}
	return o
}

// cubeNormals holds one normal per face in face order.
var cubeNormals = [6][3]float32{
	{0, 0, 1},  // front
	{0, 0, -1}, // back
	{0, 1, 0},  // top
	{0, -1, 0}, // bottom
	{1, 0, 0},  // right
	{-1, 0, 0}, // left
}

// CubeAttributes returns 24 vertices, four per face, laid out as LayoutPNT.
// Faces do not share vertices so each keeps its own flat normal.
func CubeAttributes(opts CubeOptions) []float32 {
	opts = opts.resolve()
	w := opts.Size.X / 2
	h := opts.Size.Y / 2
	d := opts.Size.Z / 2

	positions := []float32{
		// Front
		-w, -h, d,
		w, -h, d,
		w, h, d,
		-w, h, d,
		// Back
		w, -h, -d,
		-w, -h, -d,
		-w, h, -d,
		w, h, -d,
		// Top
		-w, h, d,
		w, h, d,
		w, h, -d,
		-w, h, -d,
		// Bottom
		-w, -h, -d,
		w, -h, -d,
		w, -h, d,
		-w, -h, d,
		// Right
		w, -h, d,
		w, -h, -d,
		w, h, -d,
		w, h, d,
		// Left
		-w, -h, -d,
		-w, -h, d,
		-w, h, d,
		-w, h, -d,
	}

	normals := make([]float32, 0, CubeVertexCount*3)
	for _, n := range cubeNormals {
		for range 4 {
			normals = append(normals, n[:]...)
		}
	}

	u, v := opts.UVScale.X, opts.UVScale.Y
	faceUVs := []float32{
		0, v, // top left
		u, v, // top right
		u, 0, // bottom right
		0, 0, // bottom left
	}
	texCoords := make([]float32, 0, CubeVertexCount*2)
	for range len(cubeNormals) {
		texCoords = append(texCoords, faceUVs...)
	}

	return mustInterleave(
		Channel{positions, 3},
		Channel{normals, 3},
		Channel{texCoords, 2},
	)
}

// CubeIndices returns two triangles per face, (0,1,2) and (0,2,3) offset by
// four vertices per face.
func CubeIndices() []uint32 {
	indices := make([]uint32, 0, CubeIndexCount)
	for face := range uint32(len(cubeNormals)) {
		base := face * 4
		indices = append(indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return indices
}

// Cube returns the cube mesh for opts.
func Cube(opts CubeOptions) *Mesh {
	return &Mesh{
		Attributes: CubeAttributes(opts),
		Indices:    CubeIndices(),
		Layout:     LayoutPNT,
	}
}
