package engine

import (
	"binplay/internal/source"
	"binplay/internal/transport"
	"binplay/pkg/pcm"
)

// Engine turns transport state plus the sample source into output blocks.
// Render runs on the audio subsystem's callback thread: it allocates nothing,
// takes no locks, and touches shared state only through the transport's
// atomic fields.
type Engine struct {
	t       *transport.Transport
	src     *source.Source
	scratch []byte
}

func New(t *transport.Transport, src *source.Source) *Engine {
	return &Engine{
		t:       t,
		src:     src,
		scratch: make([]byte, t.Shape().BlockBytes()),
	}
}

// Render produces one buffer period into out. len(out) must equal the
// shape's BlockBytes; backends guarantee that.
func (e *Engine) Render(out []byte) {
	t := e.t
	if !t.Playing() {
		// Paused: silence, cursor untouched.
		pcm.Silence(out)
		return
	}

	cursor := t.Cursor()
	n, err := e.src.ReadBlock(cursor, e.scratch)
	if err != nil {
		// An I/O failure mid-stream behaves like end-of-file: the
		// short-read policy below stops or loops, nothing is retried.
		n = 0
	}

	pcm.Scale(out[:n], e.scratch[:n], t.Shape().SampleWidth, t.Volume())
	pcm.Silence(out[n:])

	// Advance by the requested block size to hold the nominal rate, then
	// decide the end-of-stream policy. The strict bound lets a file that
	// divides evenly into blocks play its last block before the following
	// invocation detects the zero-length read.
	cursor += int64(len(out))
	if n < len(out) || cursor > t.Size() {
		if t.Looping() {
			t.SetCursor(0)
		} else {
			t.SetCursor(t.Size())
			t.SetPlaying(false)
		}
		return
	}
	t.SetCursor(cursor)
}
