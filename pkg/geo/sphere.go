package geo

import "github.com/chewxy/math32"

// SphereOptions configures a UV sphere centered on the origin.
//
// The zero value has neither normals nor texture coordinates. Start from
// DefaultSphereOptions to get both channels and 32x32 bands.
type SphereOptions struct {
	Radius float32
	// LatitudeBands is the number of bands from pole to pole.
	LatitudeBands int
	// LongitudeBands is the number of bands around the equator.
	LongitudeBands int
	// Normals and UVs select the optional channels; positions are always
	// emitted.
	Normals bool
	UVs     bool
}

// DefaultSphereOptions returns a unit sphere with 32x32 bands, normals and
// texture coordinates.
func DefaultSphereOptions() SphereOptions {
	return SphereOptions{
		Radius:         1,
		LatitudeBands:  32,
		LongitudeBands: 32,
		Normals:        true,
		UVs:            true,
	}
}

func (o SphereOptions) resolve() SphereOptions {
	o.LatitudeBands = max(o.LatitudeBands, 1)
	o.LongitudeBands = max(o.LongitudeBands, 1)
	return o
}

// Layout returns the attribute layout SphereAttributes produces for o.
func (o SphereOptions) Layout() Layout {
	layout := Layout{{AttrPosition, 3}}
	if o.Normals {
		layout = append(layout, Attribute{AttrNormal, 3})
	}
	if o.UVs {
		layout = append(layout, Attribute{AttrTexCoord, 2})
	}
	return layout
}

// SphereVertexCount returns (latitudeBands+1) * (longitudeBands+1).
func SphereVertexCount(opts SphereOptions) int {
	opts = opts.resolve()
	return (opts.LatitudeBands + 1) * (opts.LongitudeBands + 1)
}

// SphereAttributes returns the sphere vertices laid out as opts.Layout().
// theta runs over the polar angle and phi around the Y axis.
func SphereAttributes(opts SphereOptions) []float32 {
	opts = opts.resolve()
	lats := opts.LatitudeBands
	lons := opts.LongitudeBands

	n := SphereVertexCount(opts)
	positions := make([]float32, 0, n*3)
	normals := make([]float32, 0, n*3)
	texCoords := make([]float32, 0, n*2)

	for lat := 0; lat <= lats; lat++ {
		theta := float32(lat) * math32.Pi / float32(lats)
		sinTheta, cosTheta := math32.Sin(theta), math32.Cos(theta)
		for lon := 0; lon <= lons; lon++ {
			phi := float32(lon) * 2 * math32.Pi / float32(lons)
			x := math32.Cos(phi) * sinTheta
			y := cosTheta
			z := math32.Sin(phi) * sinTheta

			positions = append(positions, opts.Radius*x, opts.Radius*y, opts.Radius*z)
			normals = append(normals, x, y, z)
			texCoords = append(texCoords, 1-float32(lon)/float32(lons), float32(lat)/float32(lats))
		}
	}

	channels := []Channel{{positions, 3}}
	if opts.Normals {
		channels = append(channels, Channel{normals, 3})
	}
	if opts.UVs {
		channels = append(channels, Channel{texCoords, 2})
	}
	return mustInterleave(channels...)
}

// SphereIndices returns two triangles per latitude/longitude cell.
func SphereIndices(latitudeBands, longitudeBands int) []uint32 {
	lats := uint32(max(latitudeBands, 1))
	lons := uint32(max(longitudeBands, 1))

	indices := make([]uint32, 0, lats*lons*6)
	for lat := range lats {
		for lon := range lons {
			first := lat*(lons+1) + lon
			second := first + lons + 1
			indices = append(indices,
				first, first+1, second,
				second, first+1, second+1,
			)
		}
	}
	return indices
}

// Sphere returns the sphere mesh for opts.
func Sphere(opts SphereOptions) *Mesh {
	return &Mesh{
		Attributes: SphereAttributes(opts),
		Indices:    SphereIndices(opts.LatitudeBands, opts.LongitudeBands),
		Layout:     opts.Layout(),
	}
}
