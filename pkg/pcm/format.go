package pcm

import (
	"fmt"
	"time"
)

// Defaults mirror a common raw dump: 44.1kHz stereo signed 16-bit.
const (
	DefaultFramesPerBuffer = 512
	DefaultSampleRate      = 44100
	DefaultSampleWidth     = 2
	DefaultChannels        = 2
)

// Shape is the fixed per-session sample layout. It is built once at startup
// and never mutated after the stream opens.
type Shape struct {
	FramesPerBuffer int
	SampleRate      int
	SampleWidth     int // bytes per sample: 1, 2 or 4
	Channels        int
}

func DefaultShape() Shape {
	return Shape{
		FramesPerBuffer: DefaultFramesPerBuffer,
		SampleRate:      DefaultSampleRate,
		SampleWidth:     DefaultSampleWidth,
		Channels:        DefaultChannels,
	}
}

// FrameBytes is the size of one frame: one sample per channel.
func (s Shape) FrameBytes() int {
	return s.SampleWidth * s.Channels
}

// BlockBytes is the size of one output buffer period.
func (s Shape) BlockBytes() int {
	return s.FramesPerBuffer * s.SampleWidth * s.Channels
}

// BytesPerSecond is the nominal playback rate in bytes.
func (s Shape) BytesPerSecond() int {
	return s.SampleRate * s.SampleWidth * s.Channels
}

// Duration converts a byte count into playback time under this shape.
func (s Shape) Duration(n int64) time.Duration {
	bps := s.BytesPerSecond()
	if bps == 0 {
		return 0
	}
	return time.Duration(n) * time.Second / time.Duration(bps)
}

func (s Shape) Validate() error {
	if s.FramesPerBuffer <= 0 {
		return fmt.Errorf("frames per buffer must be positive, got %d", s.FramesPerBuffer)
	}
	if s.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", s.SampleRate)
	}
	if s.SampleWidth != 1 && s.SampleWidth != 2 && s.SampleWidth != 4 {
		return fmt.Errorf("sample size must be 1, 2 or 4 bytes, got %d", s.SampleWidth)
	}
	if s.Channels <= 0 {
		return fmt.Errorf("channel count must be positive, got %d", s.Channels)
	}
	return nil
}
