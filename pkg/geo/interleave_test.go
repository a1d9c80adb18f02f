package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterleave(t *testing.T) {
	positions := []float32{1, 2, 3, 4, 5, 6}
	uvs := []float32{7, 8, 9, 10}

	got, err := Interleave(Channel{positions, 3}, Channel{uvs, 2})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 7, 8, 4, 5, 6, 9, 10}, got)
}

func TestInterleaveRecoversBands(t *testing.T) {
	for _, tc := range []struct{ qa, qb, bands int }{
		{1, 1, 1}, {3, 2, 4}, {2, 3, 7}, {4, 1, 16}, {3, 3, 0},
	} {
		a := sequence(0, tc.qa*tc.bands)
		b := sequence(1000, tc.qb*tc.bands)

		out, err := Interleave(Channel{a, tc.qa}, Channel{b, tc.qb})
		require.NoError(t, err)
		require.Len(t, out, len(a)+len(b))

		stride := tc.qa + tc.qb
		for band := 0; band < tc.bands; band++ {
			assert.Equal(t, a[band*tc.qa:(band+1)*tc.qa], out[band*stride:band*stride+tc.qa], "band %d of a", band)
			assert.Equal(t, b[band*tc.qb:(band+1)*tc.qb], out[band*stride+tc.qa:(band+1)*stride], "band %d of b", band)
		}
	}
}

func TestInterleaveFastPaths(t *testing.T) {
	out, err := Interleave()
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	// A single channel is not validated.
	single := []float32{1, 2, 3, 4, 5}
	out, err = Interleave(Channel{single, 3})
	require.NoError(t, err)
	assert.Equal(t, single, out)

	out, err = InterleaveArrays(nil, 3)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = InterleaveArrays([][]float32{single}, 2, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, single, out)
}

func TestInterleaveErrors(t *testing.T) {
	tests := []struct {
		name     string
		channels []Channel
		want     error
	}{
		{
			name:     "zero quantity",
			channels: []Channel{{[]float32{1, 2, 3}, 3}, {[]float32{1}, 0}},
			want:     ErrInvalidQuantity,
		},
		{
			name:     "negative quantity first",
			channels: []Channel{{[]float32{1, 2, 3}, -1}, {[]float32{1}, 1}},
			want:     ErrInvalidQuantity,
		},
		{
			name:     "length not multiple",
			channels: []Channel{{[]float32{1, 2, 3}, 3}, {[]float32{1, 2, 3}, 2}},
			want:     ErrLengthNotMultiple,
		},
		{
			name:     "band mismatch",
			channels: []Channel{{[]float32{1, 2, 3, 4, 5, 6}, 3}, {[]float32{1, 2, 3, 4, 5, 6}, 2}},
			want:     ErrBandMismatch,
		},
		{
			name:     "band mismatch in third array",
			channels: []Channel{{[]float32{1, 2}, 1}, {[]float32{1, 2}, 1}, {[]float32{1}, 1}},
			want:     ErrBandMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Interleave(tt.channels...)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, out)
		})
	}
}

func TestInterleaveErrorNamesIndex(t *testing.T) {
	_, err := Interleave(Channel{[]float32{1, 2}, 2}, Channel{[]float32{1, 2, 3}, 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index 1")
}

func TestInterleaveArrays(t *testing.T) {
	a := []float32{1, 2}
	b := []float32{3, 4}

	out, err := InterleaveArrays([][]float32{a, b})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 3, 2, 4}, out, "default quantity is 1")

	out, err = InterleaveArrays([][]float32{a, b}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4}, out, "shared quantity")

	out, err = InterleaveArrays([][]float32{{1, 2, 3}, a}, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 1, 2}, out)

	_, err = InterleaveArrays([][]float32{a, b, a}, 1, 1)
	assert.ErrorIs(t, err, ErrQuantityCount)
}

func TestDeinterleave(t *testing.T) {
	data := []float32{
		1, 2, 3, 10, 11,
		4, 5, 6, 12, 13,
	}
	layout := Layout{{AttrPosition, 3}, {AttrTexCoord, 2}}

	uv, err := Deinterleave(data, layout, AttrTexCoord)
	require.NoError(t, err)
	assert.Equal(t, []float32{10, 11, 12, 13}, uv)

	pos, err := Deinterleave(data, layout, AttrPosition)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, pos)

	_, err = Deinterleave(data, layout, AttrNormal)
	assert.ErrorIs(t, err, ErrMissingAttribute)

	_, err = Deinterleave(data[:7], layout, AttrPosition)
	assert.ErrorIs(t, err, ErrMalformedMesh)
}

func sequence(start float32, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = start + float32(i)
	}
	return out
}
