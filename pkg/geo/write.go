package geo

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteOBJ writes m as a single triangulated OBJ object named name, one
// v/vt/vn line per mesh vertex. A mesh without texture coordinates or
// normals gets one shared zero element for the missing stream, so the
// output can always be read back with ParseOBJ. A blank name is rejected
// with ErrMissingObjectName, since ParseOBJ requires one.
func WriteOBJ(w io.Writer, name string, m *Mesh) error {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return ErrMissingObjectName
	}
	if err := m.Validate(); err != nil {
		return err
	}
	positions, err := m.Channel(AttrPosition)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", m.VertexCount(), m.TriangleCount())
	fmt.Fprintf(bw, "o %s\n", name)

	writeElements(bw, "v", positions, m.Layout.Components(AttrPosition))
	uvShared := writeOptional(bw, m, "vt", AttrTexCoord, 2)
	normalShared := writeOptional(bw, m, "vn", AttrNormal, 3)

	corner := func(idx uint32) string {
		p := idx + 1
		uv, n := p, p
		if uvShared {
			uv = 1
		}
		if normalShared {
			n = 1
		}
		return fmt.Sprintf("%d/%d/%d", p, uv, n)
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		fmt.Fprintf(bw, "f %s %s %s\n", corner(m.Indices[i]), corner(m.Indices[i+1]), corner(m.Indices[i+2]))
	}
	return bw.Flush()
}

// writeOptional writes the named channel and reports whether a single
// shared zero element was written in its place.
func writeOptional(bw *bufio.Writer, m *Mesh, directive, name string, components int) bool {
	data, err := m.Channel(name)
	if err != nil {
		writeElements(bw, directive, make([]float32, components), components)
		return true
	}
	writeElements(bw, directive, data, m.Layout.Components(name))
	return false
}

func writeElements(bw *bufio.Writer, directive string, data []float32, components int) {
	if components == 0 {
		return
	}
	for i := 0; i+components <= len(data); i += components {
		bw.WriteString(directive)
		for _, f := range data[i : i+components] {
			bw.WriteByte(' ')
			bw.WriteString(strconv.FormatFloat(float64(f), 'g', -1, 32))
		}
		bw.WriteByte('\n')
	}
}
