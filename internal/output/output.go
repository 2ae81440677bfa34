package output

import (
	"fmt"

	"binplay/pkg/pcm"
)

// Renderer produces one buffer period of interleaved samples. The engine
// implements it; fakes implement it in tests.
type Renderer interface {
	Render(out []byte)
}

// Stream is an opened output device driving a Renderer at a fixed cadence.
// Stop is synchronous: when it returns, no further callback runs, so state
// teardown may proceed.
type Stream interface {
	Start() error
	Stop() error
	Close() error
}

// Open sets up the named backend for the given shape. A shape the backend
// cannot express is a configuration error reported here, before playback.
func Open(backend string, shape pcm.Shape, r Renderer) (Stream, error) {
	switch backend {
	case "", "portaudio":
		return OpenPortAudio(shape, r)
	case "speaker":
		return OpenSpeaker(shape, r)
	}
	return nil, fmt.Errorf("unknown backend %q (want portaudio or speaker)", backend)
}
