package output

import (
	"encoding/binary"
	"fmt"

	"github.com/gordonklaus/portaudio"

	"binplay/pkg/pcm"
)

// PortAudioStream drives the renderer from portaudio's callback thread with
// a fixed frames-per-buffer, matching the device-negotiated sample format
// exactly. This is the default backend.
type PortAudioStream struct {
	stream *portaudio.Stream
	buf    []byte
}

// OpenPortAudio initializes portaudio and opens the default output device in
// the shape's native signed integer format. Failure here is fatal to the
// session; nothing is retried.
func OpenPortAudio(shape pcm.Shape, r Renderer) (*PortAudioStream, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("portaudio error: %w", err)
	}

	p := &PortAudioStream{buf: make([]byte, shape.BlockBytes())}

	var (
		stream *portaudio.Stream
		err    error
	)
	switch shape.SampleWidth {
	case 1:
		stream, err = portaudio.OpenDefaultStream(0, shape.Channels,
			float64(shape.SampleRate), shape.FramesPerBuffer, func(out []int8) {
				r.Render(p.buf)
				for i := range out {
					out[i] = int8(p.buf[i])
				}
			})
	case 2:
		stream, err = portaudio.OpenDefaultStream(0, shape.Channels,
			float64(shape.SampleRate), shape.FramesPerBuffer, func(out []int16) {
				r.Render(p.buf)
				for i := range out {
					out[i] = int16(binary.LittleEndian.Uint16(p.buf[2*i:]))
				}
			})
	case 4:
		stream, err = portaudio.OpenDefaultStream(0, shape.Channels,
			float64(shape.SampleRate), shape.FramesPerBuffer, func(out []int32) {
				r.Render(p.buf)
				for i := range out {
					out[i] = int32(binary.LittleEndian.Uint32(p.buf[4*i:]))
				}
			})
	default:
		err = fmt.Errorf("sample size %d not supported by portaudio backend", shape.SampleWidth)
	}
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("portaudio error: %w", err)
	}
	p.stream = stream
	return p, nil
}

func (p *PortAudioStream) Start() error {
	if err := p.stream.Start(); err != nil {
		return fmt.Errorf("portaudio error: %w", err)
	}
	return nil
}

// Stop blocks until pending buffers have played and the callback is
// guaranteed not to run again.
func (p *PortAudioStream) Stop() error {
	if err := p.stream.Stop(); err != nil {
		return fmt.Errorf("portaudio error: %w", err)
	}
	return nil
}

func (p *PortAudioStream) Close() error {
	err := p.stream.Close()
	portaudio.Terminate()
	if err != nil {
		return fmt.Errorf("portaudio error: %w", err)
	}
	return nil
}
