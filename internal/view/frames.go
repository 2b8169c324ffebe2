package view

import (
	"fmt"

	"github.com/san-kum/butterfly/internal/lorenz"
)

// Frame identifies one reveal snapshot: the first PrefixLen samples of
// every series in the view. Frames are descriptors only; renderers slice
// the series data on demand.
type Frame struct {
	Index     int `json:"index"`
	PrefixLen int `json:"prefix_len"`
}

// BuildFrames produces the reveal sequence for n samples: frame k exposes
// min(1+k*stride, n) samples, and the final frame always exposes the full
// trajectory even when n is not a multiple of stride.
func BuildFrames(n, stride int) ([]Frame, error) {
	if stride < 1 {
		return nil, fmt.Errorf("%w: got %d", lorenz.ErrInvalidStride, stride)
	}
	if n <= 0 {
		return []Frame{}, nil
	}

	frames := make([]Frame, 0, n/stride+2)
	for k := 0; ; k++ {
		prefix := 1 + k*stride
		if prefix >= n {
			frames = append(frames, Frame{Index: k, PrefixLen: n})
			break
		}
		frames = append(frames, Frame{Index: k, PrefixLen: prefix})
	}
	return frames, nil
}
