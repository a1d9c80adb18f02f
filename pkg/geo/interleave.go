package geo

import "fmt"

// Channel is one flat per-vertex attribute array together with the number
// of components each vertex takes from it.
type Channel struct {
	Data       []float32
	Components int
}

// Bands returns the number of vertices described by the channel.
func (c Channel) Bands() int {
	if c.Components < 1 {
		return 0
	}
	return len(c.Data) / c.Components
}

// Interleave multiplexes the channels into one buffer. For every vertex the
// components of channel 0 come first, then those of channel 1, and so on.
//
// No channels yields an empty buffer and a single channel is returned as is.
// Otherwise every channel must have a positive component count, a length
// that is a multiple of it, and the same vertex count as channel 0.
func Interleave(channels ...Channel) ([]float32, error) {
	switch len(channels) {
	case 0:
		return []float32{}, nil
	case 1:
		return channels[0].Data, nil
	}

	bands := channels[0].Bands()
	stride := 0
	for i, c := range channels {
		if c.Components < 1 {
			return nil, fmt.Errorf("%w: quantity at index %d is %d", ErrInvalidQuantity, i, c.Components)
		}
		if len(c.Data)%c.Components != 0 {
			return nil, fmt.Errorf("%w: quantity at index %d is %d, array length is %d",
				ErrLengthNotMultiple, i, c.Components, len(c.Data))
		}
		if c.Bands() != bands {
			return nil, fmt.Errorf("%w: array %d of size %d holds %d bands of %d, array 0 holds %d bands of %d",
				ErrBandMismatch, i, len(c.Data), c.Bands(), c.Components, bands, channels[0].Components)
		}
		stride += c.Components
	}

	out := make([]float32, 0, bands*stride)
	for band := 0; band < bands; band++ {
		for _, c := range channels {
			out = append(out, c.Data[band*c.Components:(band+1)*c.Components]...)
		}
	}
	return out, nil
}

// InterleaveArrays is Interleave for bare arrays. Without quantities every
// array contributes one component per vertex; a single quantity is shared by
// all arrays; otherwise there must be exactly one quantity per array.
func InterleaveArrays(arrays [][]float32, quantities ...int) ([]float32, error) {
	if len(arrays) == 0 {
		return []float32{}, nil
	}
	if len(arrays) == 1 {
		return arrays[0], nil
	}

	switch len(quantities) {
	case 0:
		quantities = repeatInt(1, len(arrays))
	case 1:
		quantities = repeatInt(quantities[0], len(arrays))
	case len(arrays):
	default:
		return nil, fmt.Errorf("%w: %d quantities for %d arrays", ErrQuantityCount, len(quantities), len(arrays))
	}

	channels := make([]Channel, len(arrays))
	for i, a := range arrays {
		channels[i] = Channel{Data: a, Components: quantities[i]}
	}
	return Interleave(channels...)
}

// Deinterleave extracts the named attribute from an interleaved buffer.
func Deinterleave(data []float32, layout Layout, name string) ([]float32, error) {
	offset, ok := layout.Offset(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingAttribute, name)
	}
	stride := layout.Stride()
	if stride == 0 || len(data)%stride != 0 {
		return nil, fmt.Errorf("%w: %d floats do not divide into stride %d", ErrMalformedMesh, len(data), stride)
	}
	components := layout.Components(name)

	vertices := len(data) / stride
	out := make([]float32, 0, vertices*components)
	for v := 0; v < vertices; v++ {
		start := v*stride + offset
		out = append(out, data[start:start+components]...)
	}
	return out, nil
}

// mustInterleave is used by the generators, whose channels are consistent
// by construction.
func mustInterleave(channels ...Channel) []float32 {
	out, err := Interleave(channels...)
	if err != nil {
		panic(err)
	}
	return out
}

func repeatInt(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}
