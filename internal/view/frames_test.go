package view

import (
	"errors"
	"testing"

	"github.com/san-kum/butterfly/internal/lorenz"
)

func TestBuildFrames(t *testing.T) {
	frames, err := BuildFrames(1000, 40)
	if err != nil {
		t.Fatalf("BuildFrames: %v", err)
	}

	// Prefixes 1, 41, ..., 961, then the full 1000.
	if len(frames) != 26 {
		t.Fatalf("frame count = %d, want 26", len(frames))
	}
	if frames[0].PrefixLen != 1 {
		t.Errorf("first prefix = %d, want 1", frames[0].PrefixLen)
	}
	if last := frames[len(frames)-1]; last.PrefixLen != 1000 {
		t.Errorf("final prefix = %d, want 1000", last.PrefixLen)
	}

	for i := 1; i < len(frames); i++ {
		if frames[i].Index != i {
			t.Errorf("frame %d has index %d", i, frames[i].Index)
		}
		if frames[i].PrefixLen <= frames[i-1].PrefixLen {
			t.Fatalf("prefixes not strictly increasing at frame %d", i)
		}
		if frames[i].PrefixLen > 1000 {
			t.Fatalf("prefix %d exceeds sample count", frames[i].PrefixLen)
		}
	}
}

func TestBuildFrames_ExactMultiple(t *testing.T) {
	// 1+2*40 = 81 hits n exactly; no extra frame after it.
	frames, err := BuildFrames(81, 40)
	if err != nil {
		t.Fatalf("BuildFrames: %v", err)
	}
	want := []int{1, 41, 81}
	if len(frames) != len(want) {
		t.Fatalf("frames = %+v, want prefixes %v", frames, want)
	}
	for i, w := range want {
		if frames[i].PrefixLen != w {
			t.Errorf("prefix %d = %d, want %d", i, frames[i].PrefixLen, w)
		}
	}
}

func TestBuildFrames_SingleSample(t *testing.T) {
	frames, err := BuildFrames(1, 40)
	if err != nil {
		t.Fatalf("BuildFrames: %v", err)
	}
	if len(frames) != 1 || frames[0].PrefixLen != 1 {
		t.Errorf("frames = %+v, want one frame of prefix 1", frames)
	}
}

func TestBuildFrames_Empty(t *testing.T) {
	frames, err := BuildFrames(0, 40)
	if err != nil {
		t.Fatalf("BuildFrames: %v", err)
	}
	if len(frames) != 0 {
		t.Errorf("frames for n=0 = %+v, want none", frames)
	}
}

func TestBuildFrames_InvalidStride(t *testing.T) {
	for _, stride := range []int{0, -1} {
		_, err := BuildFrames(100, stride)
		if !errors.Is(err, lorenz.ErrInvalidStride) {
			t.Errorf("stride %d: error = %v, want ErrInvalidStride", stride, err)
		}
	}
}
