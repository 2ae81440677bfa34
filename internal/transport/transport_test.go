package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"binplay/pkg/pcm"
)

func newTestTransport(size int64) *Transport {
	return New(size, pcm.Shape{FramesPerBuffer: 256, SampleRate: 44100, SampleWidth: 2, Channels: 2})
}

func TestNewDefaults(t *testing.T) {
	tr := newTestTransport(2048)

	assert.True(t, tr.Playing())
	assert.False(t, tr.Looping())
	assert.False(t, tr.Done())
	assert.Equal(t, int64(0), tr.Cursor())
	assert.Equal(t, 1.0, tr.Volume())
}

func TestCursorStaysInBoundsUnderAnySeekSequence(t *testing.T) {
	tr := newTestTransport(1000)

	deltas := []int64{-500, 300, 300, 300, 300, -10000, 50, 1 << 50, -1, 0}
	for _, d := range deltas {
		tr.Seek(d)
		c := tr.Cursor()
		assert.GreaterOrEqual(t, c, int64(0))
		assert.LessOrEqual(t, c, int64(1000))
	}
}

func TestSeekLeftAtZeroStaysZero(t *testing.T) {
	tr := newTestTransport(1000)

	tr.Seek(-200)

	// No underflow, no wrap to a huge value.
	assert.Equal(t, int64(0), tr.Cursor())
}

func TestSetCursorClamps(t *testing.T) {
	tr := newTestTransport(1000)

	tr.SetCursor(5000)
	assert.Equal(t, int64(1000), tr.Cursor())

	tr.SetCursor(-5)
	assert.Equal(t, int64(0), tr.Cursor())
}

func TestVolumeClampsLow(t *testing.T) {
	tr := newTestTransport(1000)

	// Hammer volume-down well past zero; it must clamp, never go negative.
	for i := 0; i < 30; i++ {
		tr.AdjustVolume(-0.05)
	}
	assert.Equal(t, 0.0, tr.Volume())
}

func TestVolumeClampsHigh(t *testing.T) {
	tr := newTestTransport(1000)

	for i := 0; i < 10; i++ {
		tr.AdjustVolume(0.05)
	}
	assert.Equal(t, 1.0, tr.Volume())

	tr.SetVolume(7.5)
	assert.Equal(t, 1.0, tr.Volume())
}

func TestTogglesAreIdempotentInPairs(t *testing.T) {
	tr := newTestTransport(1000)

	playing := tr.Playing()
	tr.TogglePlaying()
	tr.TogglePlaying()
	assert.Equal(t, playing, tr.Playing())

	looping := tr.Looping()
	tr.ToggleLooping()
	tr.ToggleLooping()
	assert.Equal(t, looping, tr.Looping())
}

func TestPercent(t *testing.T) {
	tr := newTestTransport(2048)

	assert.Equal(t, 0, tr.Percent())
	tr.SetCursor(1024)
	assert.Equal(t, 50, tr.Percent())
	tr.SetCursor(2048)
	assert.Equal(t, 100, tr.Percent())

	empty := newTestTransport(0)
	assert.Equal(t, 0, empty.Percent())
}

func TestFinish(t *testing.T) {
	tr := newTestTransport(1000)

	tr.Finish()

	assert.True(t, tr.Done())
}
