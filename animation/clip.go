package animation

import (
	"errors"
	"fmt"
	"image"
)

var (
	ErrFrameMismatch = errors.New("animation: frames and frame times differ in length")
	ErrBadFrameTime  = errors.New("animation: frame time must be positive")
	ErrEmptyClip     = errors.New("animation: clip has no frames")
)

// Clip is a sequence of sheet frames, each held for FrameTimes[i] ticks.
type Clip struct {
	Frames     []image.Rectangle
	FrameTimes []int
	Loop       bool

	total int
}

func NewClip(frames []image.Rectangle, frameTimes []int, loop bool) (*Clip, error) {
	if len(frames) == 0 {
		return nil, ErrEmptyClip
	}
	if len(frames) != len(frameTimes) {
		return nil, fmt.Errorf("%w: %d frames, %d times", ErrFrameMismatch, len(frames), len(frameTimes))
	}
	total := 0
	for i, t := range frameTimes {
		if t <= 0 {
			return nil, fmt.Errorf("%w: frame %d has %d", ErrBadFrameTime, i, t)
		}
		total += t
	}
	return &Clip{
		Frames:     append([]image.Rectangle(nil), frames...),
		FrameTimes: append([]int(nil), frameTimes...),
		Loop:       loop,
		total:      total,
	}, nil
}

// Duration is the summed frame time in ticks.
func (c *Clip) Duration() int {
	return c.total
}

// Index returns the frame shown at tick now for a clip started at start.
func (c *Clip) Index(start, now int) int {
	elapsed := now - start
	if elapsed < 0 {
		elapsed = 0
	}
	if c.Loop {
		elapsed %= c.total
	} else if elapsed >= c.total {
		return len(c.Frames) - 1
	}
	end := 0
	for i, t := range c.FrameTimes {
		end += t
		if elapsed < end {
			return i
		}
	}
	return len(c.Frames) - 1
}

func (c *Clip) Frame(start, now int) image.Rectangle {
	return c.Frames[c.Index(start, now)]
}

// Done reports whether a non-looping clip has shown its last frame in full.
func (c *Clip) Done(start, now int) bool {
	return !c.Loop && now-start >= c.total
}
