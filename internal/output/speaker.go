package output

import (
	"fmt"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"binplay/pkg/pcm"
)

// SpeakerStream is an alternate backend over beep's speaker for hosts without
// libportaudio. The speaker mixes stereo float64, so only 16-bit mono or
// stereo shapes can be expressed; anything else is a configuration error.
type SpeakerStream struct {
	shape pcm.Shape
	s     *blockStreamer
}

func OpenSpeaker(shape pcm.Shape, r Renderer) (*SpeakerStream, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.SampleWidth != 2 || shape.Channels > 2 {
		return nil, fmt.Errorf("speaker backend requires 16-bit mono or stereo, got %d-byte samples on %d channels",
			shape.SampleWidth, shape.Channels)
	}
	if err := speaker.Init(beep.SampleRate(shape.SampleRate), shape.FramesPerBuffer); err != nil {
		return nil, fmt.Errorf("speaker error: %w", err)
	}
	return &SpeakerStream{
		shape: shape,
		s: &blockStreamer{
			r:     r,
			shape: shape,
			buf:   make([]byte, shape.BlockBytes()),
			pos:   shape.FramesPerBuffer, // force a render on first pull
		},
	}, nil
}

func (s *SpeakerStream) Start() error {
	speaker.Play(s.s)
	return nil
}

// Stop detaches the streamer. Clear holds the speaker lock the mixer renders
// under, so once it returns no in-flight Stream call remains.
func (s *SpeakerStream) Stop() error {
	speaker.Clear()
	return nil
}

func (s *SpeakerStream) Close() error {
	speaker.Clear()
	return nil
}

// blockStreamer adapts the fixed-block renderer to beep's pull model: it
// renders whole blocks into buf and hands samples out as the mixer asks for
// them. It never reports end of stream; pause and auto-stop come out of the
// renderer as silence.
type blockStreamer struct {
	r     Renderer
	shape pcm.Shape
	buf   []byte
	pos   int // frames consumed from buf
}

func (b *blockStreamer) Stream(samples [][2]float64) (int, bool) {
	width := b.shape.SampleWidth
	for i := range samples {
		if b.pos >= b.shape.FramesPerBuffer {
			b.r.Render(b.buf)
			b.pos = 0
		}
		if b.shape.Channels == 1 {
			v := pcm.SampleAt(b.buf, b.pos, width)
			samples[i] = [2]float64{v, v}
		} else {
			samples[i] = [2]float64{
				pcm.SampleAt(b.buf, 2*b.pos, width),
				pcm.SampleAt(b.buf, 2*b.pos+1, width),
			}
		}
		b.pos++
	}
	return len(samples), true
}

func (b *blockStreamer) Err() error { return nil }
