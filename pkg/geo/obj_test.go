package geo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func parse(t *testing.T, text string) (*OBJData, error) {
	t.Helper()
	return ParseOBJ(strings.NewReader(text), nil)
}

func TestParseOBJFile(t *testing.T) {
	obj, err := ParseOBJFile("testdata/quad.obj", nil)
	require.NoError(t, err)

	assert.Equal(t, "Quad", obj.Name)
	assert.Len(t, obj.Positions, 12)
	assert.Len(t, obj.TexCoords, 8)
	assert.Equal(t, []float32{0, 1, 0}, obj.Normals)
	assert.Equal(t, []Corner{
		{1, 1, 0}, {2, 2, 0}, {0, 0, 0},
		{1, 1, 0}, {3, 3, 0}, {2, 2, 0},
	}, obj.Corners)
	assert.Empty(t, obj.Warnings)
}

func TestParseOBJEmptyObject(t *testing.T) {
	obj, err := parse(t, "o Empty\n")
	require.NoError(t, err)
	assert.Equal(t, "Empty", obj.Name)
	assert.Empty(t, obj.Positions)
	assert.Empty(t, obj.Normals)
	assert.Empty(t, obj.TexCoords)
	assert.Empty(t, obj.Corners)

	m, err := ExpandOBJ(obj)
	require.NoError(t, err)
	assert.Empty(t, m.Attributes)
	assert.Empty(t, m.Indices)
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
		line string
	}{
		{"duplicate name", "o A\nv 0 0 0\no B\n", ErrDuplicateObjectName, "line 3"},
		{"missing name", "v 0 0 0\nvt 0 0\n", ErrMissingObjectName, ""},
		{"empty file", "", ErrMissingObjectName, ""},
		{"bad number", "o A\nv 0 x 0\n", ErrMalformedLine, "line 2"},
		{"short position", "o A\nv 0 0\n", ErrMalformedLine, "line 2"},
		{"short texcoord", "o A\nvt 0\n", ErrMalformedLine, "line 2"},
		{"name without value", "o\n", ErrMalformedLine, "line 1"},
		{"quad face", "o A\nf 1/1/1 2/2/2 3/3/3 4/4/4\n", ErrUnsupportedFace, "line 2"},
		{"position only face", "o A\nv 0 0 0\nf 1 1 1\n", ErrUnsupportedFace, "line 3"},
		{"missing normal", "o A\nf 1/1 1/1 1/1\n", ErrUnsupportedFace, "line 2"},
		{"zero index", "o A\nf 0/1/1 1/1/1 1/1/1\n", ErrMalformedLine, "line 2"},
		{"relative index before data", "o A\nf -1/1/1 1/1/1 1/1/1\n", ErrMalformedLine, "line 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, err := parse(t, tt.text)
			assert.Nil(t, obj)
			assert.ErrorIs(t, err, tt.want)
			if tt.line != "" {
				assert.Contains(t, err.Error(), tt.line)
			}
		})
	}
}

func TestParseOBJIgnoredLines(t *testing.T) {
	text := strings.Join([]string{
		"# comment",
		"#tight comment",
		"mtllib scene.mtl",
		"",
		"   ",
		"g group",
		"usemtl Steel",
		"s 1",
		"o Thing",
	}, "\n")

	core, logs := observer.New(zap.WarnLevel)
	obj, err := ParseOBJ(strings.NewReader(text), zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, "Thing", obj.Name)
	assert.Empty(t, obj.Warnings)
	assert.Zero(t, logs.Len())
}

func TestParseOBJWarnsOnUnknownToken(t *testing.T) {
	text := "o Thing\nl 1 2\nv 1 2 3\ncstype bspline\n"

	core, logs := observer.New(zap.WarnLevel)
	obj, err := ParseOBJ(strings.NewReader(text), zap.New(core))
	require.NoError(t, err)

	assert.Equal(t, []float32{1, 2, 3}, obj.Positions)
	require.Len(t, obj.Warnings, 2)
	assert.Contains(t, obj.Warnings[0], `"l" on line 2`)
	assert.Contains(t, obj.Warnings[1], `"cstype" on line 4`)

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "l", entry.ContextMap()["token"])
	assert.Equal(t, int64(2), entry.ContextMap()["line"])
}

func TestParseOBJTolerantWhitespace(t *testing.T) {
	text := "o  Two Words\r\nv  1   2\t3\r\nvt 0.5 0.25 0\r\nvn 0 0 1\r\nf 1/1/1  1/1/1 1/1/1\r\n"
	obj, err := parse(t, text)
	require.NoError(t, err)
	assert.Equal(t, "Two Words", obj.Name)
	assert.Equal(t, []float32{1, 2, 3}, obj.Positions)
	assert.Equal(t, []float32{0.5, 0.25}, obj.TexCoords)
	assert.Len(t, obj.Corners, 3)
}

func TestParseOBJRelativeIndices(t *testing.T) {
	text := `o Rel
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vn 0 0 1
f -3/-1/-1 -2/-1/-1 -1/-1/-1
`
	obj, err := parse(t, text)
	require.NoError(t, err)
	assert.Equal(t, []Corner{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}, obj.Corners)
}

func TestExpandOBJSharesCorners(t *testing.T) {
	obj, err := ParseOBJFile("testdata/quad.obj", nil)
	require.NoError(t, err)

	m, err := ExpandOBJ(obj)
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	// Two triangles share the corners 2/2/1 and 3/3/1.
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, []uint32{0, 1, 2, 0, 3, 1}, m.Indices)
	assert.Equal(t, LayoutPUN, m.Layout)

	// Vertex 0 is the first corner seen: position 2, texcoord 2, normal 1.
	assert.Equal(t, []float32{1, 0, 1, 1, 0, 0, 1, 0}, m.Attributes[:8])
}

func TestExpandOBJDedupKey(t *testing.T) {
	obj := &OBJData{
		Name:      "Key",
		Positions: []float32{0, 0, 0, 0, 0, 0},
		TexCoords: []float32{0, 0},
		Normals:   []float32{0, 0, 1},
	}

	// Identical triples collapse into one vertex.
	obj.Corners = []Corner{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	m, err := ExpandOBJ(obj)
	require.NoError(t, err)
	assert.Equal(t, 1, m.VertexCount())
	assert.Equal(t, []uint32{0, 0, 0}, m.Indices)

	// Triples that differ in one index stay distinct even when the values
	// they resolve to are equal.
	obj.Corners = []Corner{{0, 0, 0}, {1, 0, 0}, {0, 0, 0}}
	m, err = ExpandOBJ(obj)
	require.NoError(t, err)
	assert.Equal(t, 2, m.VertexCount())
	assert.Equal(t, []uint32{0, 1, 0}, m.Indices)
}

func TestExpandOBJDistinctCorners(t *testing.T) {
	text := `o Tri
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
f 1/2/1 2/3/1 3/1/1
`
	obj, err := parse(t, text)
	require.NoError(t, err)
	m, err := ExpandOBJ(obj)
	require.NoError(t, err)
	assert.Equal(t, len(obj.Corners), m.VertexCount())
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, m.Indices)
}

func TestExpandOBJIndexOutOfRange(t *testing.T) {
	obj := &OBJData{
		Name:      "Broken",
		Positions: []float32{0, 0, 0},
		TexCoords: []float32{0, 0},
		Normals:   []float32{0, 0, 1},
		Corners:   []Corner{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}},
	}
	m, err := ExpandOBJ(obj)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Contains(t, err.Error(), "corner 1 texcoord")
}
