package pcm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShapeBlockMath(t *testing.T) {
	s := Shape{FramesPerBuffer: 256, SampleRate: 44100, SampleWidth: 2, Channels: 2}

	assert.Equal(t, 4, s.FrameBytes())
	assert.Equal(t, 1024, s.BlockBytes())
	assert.Equal(t, 176400, s.BytesPerSecond())
}

func TestShapeDuration(t *testing.T) {
	s := Shape{FramesPerBuffer: 512, SampleRate: 44100, SampleWidth: 2, Channels: 2}

	assert.Equal(t, time.Second, s.Duration(176400))
	assert.Equal(t, time.Duration(0), s.Duration(0))
}

func TestShapeValidate(t *testing.T) {
	assert.NoError(t, DefaultShape().Validate())

	cases := []struct {
		name  string
		shape Shape
	}{
		{"zero frames per buffer", Shape{FramesPerBuffer: 0, SampleRate: 44100, SampleWidth: 2, Channels: 2}},
		{"negative sample rate", Shape{FramesPerBuffer: 512, SampleRate: -1, SampleWidth: 2, Channels: 2}},
		{"3-byte samples", Shape{FramesPerBuffer: 512, SampleRate: 44100, SampleWidth: 3, Channels: 2}},
		{"zero channels", Shape{FramesPerBuffer: 512, SampleRate: 44100, SampleWidth: 2, Channels: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.shape.Validate())
		})
	}
}
