package transport

import (
	"math"
	"sync/atomic"

	"binplay/pkg/pcm"
)

// Transport is the single shared record of playback state. It is created once
// at session start and shared by exactly two actors: the control loop and the
// render callback. Every field both actors touch is an independently atomic
// word, so the callback never takes a lock and control writes never wait on
// the render thread. Torn multi-field snapshots are acceptable (at most one
// buffer of jitter on a seek); torn single fields are not, hence no composite
// struct crosses the boundary.
type Transport struct {
	size  int64
	shape pcm.Shape

	cursor  atomic.Int64
	playing atomic.Bool
	looping atomic.Bool
	volume  atomic.Uint64 // float64 bits, clamped to [0,1] on every store

	// done is written by the control loop to end itself; the render
	// callback never inspects it.
	done atomic.Bool
}

func New(size int64, shape pcm.Shape) *Transport {
	t := &Transport{size: size, shape: shape}
	t.playing.Store(true)
	t.SetVolume(1.0)
	return t
}

func (t *Transport) Size() int64 { return t.size }

func (t *Transport) Shape() pcm.Shape { return t.shape }

func (t *Transport) Cursor() int64 { return t.cursor.Load() }

// SetCursor clamps to [0, size] before storing, keeping the bound invariant
// exception-free no matter who calls.
func (t *Transport) SetCursor(n int64) {
	if n < 0 {
		n = 0
	} else if n > t.size {
		n = t.size
	}
	t.cursor.Store(n)
}

// Seek moves the cursor by delta bytes, clamped to [0, size].
func (t *Transport) Seek(delta int64) {
	t.SetCursor(t.cursor.Load() + delta)
}

func (t *Transport) Playing() bool { return t.playing.Load() }

func (t *Transport) SetPlaying(v bool) { t.playing.Store(v) }

func (t *Transport) TogglePlaying() { t.playing.Store(!t.playing.Load()) }

func (t *Transport) Looping() bool { return t.looping.Load() }

func (t *Transport) SetLooping(v bool) { t.looping.Store(v) }

func (t *Transport) ToggleLooping() { t.looping.Store(!t.looping.Load()) }

func (t *Transport) Volume() float64 {
	return math.Float64frombits(t.volume.Load())
}

// SetVolume clamps to [0, 1] before storing.
func (t *Transport) SetVolume(v float64) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	t.volume.Store(math.Float64bits(v))
}

// AdjustVolume moves the volume by step, clamped to [0, 1].
func (t *Transport) AdjustVolume(step float64) {
	t.SetVolume(t.Volume() + step)
}

func (t *Transport) Done() bool { return t.done.Load() }

func (t *Transport) Finish() { t.done.Store(true) }

// Percent reports cursor position as 0-100 for display.
func (t *Transport) Percent() int {
	if t.size == 0 {
		return 0
	}
	return int(100 * float64(t.Cursor()) / float64(t.size))
}
