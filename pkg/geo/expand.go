package geo

import "fmt"

// ExpandOBJ turns the independently indexed streams of an OBJ file into one
// interleaved buffer laid out as LayoutPUN. Corners with the same indices
// share a vertex; vertices appear in the order their corner first occurs.
func ExpandOBJ(obj *OBJData) (*Mesh, error) {
	var (
		positions []float32
		texCoords []float32
		normals   []float32
		indices   = make([]uint32, 0, len(obj.Corners))
	)

	known := make(map[Corner]uint32, len(obj.Corners))
	for i, c := range obj.Corners {
		if idx, ok := known[c]; ok {
			indices = append(indices, idx)
			continue
		}

		p, err := element(obj.Positions, c.Position, 3)
		if err != nil {
			return nil, fmt.Errorf("corner %d position: %w", i, err)
		}
		uv, err := element(obj.TexCoords, c.TexCoord, 2)
		if err != nil {
			return nil, fmt.Errorf("corner %d texcoord: %w", i, err)
		}
		n, err := element(obj.Normals, c.Normal, 3)
		if err != nil {
			return nil, fmt.Errorf("corner %d normal: %w", i, err)
		}

		idx := uint32(len(known))
		positions = append(positions, p...)
		texCoords = append(texCoords, uv...)
		normals = append(normals, n...)
		indices = append(indices, idx)
		known[c] = idx
	}

	attributes, err := Interleave(
		Channel{positions, 3},
		Channel{texCoords, 2},
		Channel{normals, 3},
	)
	if err != nil {
		return nil, err
	}

	return &Mesh{
		Attributes: attributes,
		Indices:    indices,
		Layout:     LayoutPUN,
	}, nil
}

func element(data []float32, index int32, components int) ([]float32, error) {
	start := int(index) * components
	if index < 0 || start+components > len(data) {
		return nil, fmt.Errorf("%w: element %d of %d", ErrIndexOutOfRange, index, len(data)/components)
	}
	return data[start : start+components], nil
}
