package control

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"binplay/internal/transport"
	"binplay/pkg/pcm"
)

var testShape = pcm.Shape{FramesPerBuffer: 512, SampleRate: 44100, SampleWidth: 2, Channels: 2}

func newTestMachine(size int64) (*transport.Transport, *Machine) {
	tr := transport.New(size, testShape)
	return tr, NewMachine(tr, "test.raw", 100, 0.05)
}

func feedAll(d *KeyDecoder, bytes ...byte) Event {
	var ev Event
	for _, b := range bytes {
		ev = d.Feed(b)
	}
	return ev
}

func TestKeyDecoderSingleKeys(t *testing.T) {
	cases := []struct {
		name string
		in   byte
		want Event
	}{
		{"space toggles pause", 32, EventTogglePause},
		{"l toggles loop", 'l', EventToggleLoop},
		{"r resets", 'r', EventReset},
		{"e jumps to end", 'e', EventEnd},
		{"tab toggles help", '\t', EventToggleHelp},
		{"ctrl-d exits", 4, EventExit},
		{"unrecognized key is a no-op", 'x', EventNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d KeyDecoder
			assert.Equal(t, tc.want, d.Feed(tc.in))
		})
	}
}

func TestKeyDecoderArrowSequences(t *testing.T) {
	var d KeyDecoder

	assert.Equal(t, EventVolumeUp, feedAll(&d, 27, '[', 'A'))
	assert.Equal(t, EventVolumeDown, feedAll(&d, 27, '[', 'B'))
	assert.Equal(t, EventSeekRight, feedAll(&d, 27, '[', 'C'))
	assert.Equal(t, EventSeekLeft, feedAll(&d, 27, '[', 'D'))
}

func TestKeyDecoderAbandonedEscape(t *testing.T) {
	var d KeyDecoder

	assert.Equal(t, EventNone, feedAll(&d, 27, 'q'))
	// Decoder must be back in the idle state.
	assert.Equal(t, EventTogglePause, d.Feed(32))

	assert.Equal(t, EventNone, feedAll(&d, 27, '[', 'Z'))
	assert.Equal(t, EventToggleLoop, d.Feed('l'))
}

func TestApplyTogglePause(t *testing.T) {
	tr, m := newTestMachine(1000)

	m.Apply(EventTogglePause)
	assert.False(t, tr.Playing())
	m.Apply(EventTogglePause)
	assert.True(t, tr.Playing())
}

func TestApplyResetAndEnd(t *testing.T) {
	tr, m := newTestMachine(1000)
	tr.SetCursor(500)

	m.Apply(EventReset)
	assert.Equal(t, int64(0), tr.Cursor())

	m.Apply(EventEnd)
	assert.Equal(t, int64(1000), tr.Cursor())
}

func TestApplySeekClamps(t *testing.T) {
	tr, m := newTestMachine(1000)

	m.Apply(EventSeekLeft)
	assert.Equal(t, int64(0), tr.Cursor(), "seek-left at zero stays at zero")

	for i := 0; i < 20; i++ {
		m.Apply(EventSeekRight)
	}
	assert.Equal(t, int64(1000), tr.Cursor())

	m.Apply(EventSeekLeft)
	assert.Equal(t, int64(900), tr.Cursor())
}

func TestApplyVolumeClamps(t *testing.T) {
	tr, m := newTestMachine(1000)

	for i := 0; i < 30; i++ {
		m.Apply(EventVolumeDown)
	}
	assert.Equal(t, 0.0, tr.Volume())

	for i := 0; i < 30; i++ {
		m.Apply(EventVolumeUp)
	}
	assert.Equal(t, 1.0, tr.Volume())
}

func TestApplyHelpHasNoPlaybackEffect(t *testing.T) {
	tr, m := newTestMachine(1000)
	tr.SetCursor(123)

	m.Apply(EventToggleHelp)
	assert.True(t, m.ShowHelp())
	assert.Equal(t, int64(123), tr.Cursor())
	assert.True(t, tr.Playing())

	m.Apply(EventToggleHelp)
	assert.False(t, m.ShowHelp())
}

func TestApplyExit(t *testing.T) {
	tr, m := newTestMachine(1000)

	m.Apply(EventExit)

	assert.True(t, tr.Done())
	assert.True(t, m.Done())
}

func TestApplyNoneIsNoOp(t *testing.T) {
	tr, m := newTestMachine(1000)
	tr.SetCursor(42)

	m.Apply(EventNone)

	assert.Equal(t, int64(42), tr.Cursor())
	assert.True(t, tr.Playing())
	assert.False(t, tr.Done())
}

func TestStatusContents(t *testing.T) {
	tr, m := newTestMachine(2048)
	tr.SetCursor(1024)
	tr.SetLooping(true)

	s := m.Status()

	assert.Contains(t, s, "Currently playing: test.raw")
	assert.Contains(t, s, "[1024/2048] (50%)")
	assert.Contains(t, s, "[looping]")
	assert.Contains(t, s, "Volume: 100%")
	assert.Contains(t, s, "Sample rate: 44100")
	assert.Contains(t, s, "Frames per buffer: 512")
	assert.NotContains(t, s, "[paused]")
	assert.NotContains(t, s, "HELP MENU")
}

func TestStatusPausedAndHelp(t *testing.T) {
	tr, m := newTestMachine(2048)
	tr.SetPlaying(false)
	m.Apply(EventToggleHelp)

	s := m.Status()

	assert.Contains(t, s, "[paused]")
	assert.Contains(t, s, "HELP MENU")
	assert.Contains(t, s, "[SPACEBAR] - toggle pause")
}
