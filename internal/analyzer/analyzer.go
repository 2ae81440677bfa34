package analyzer

import (
	"math"
	"strings"

	"github.com/mjibson/go-dsp/fft"

	"binplay/internal/source"
	"binplay/internal/transport"
	"binplay/pkg/pcm"
)

const numBands = 12

// Analyzer renders a level meter and coarse spectrum for the display refresh.
// It reads the block under the cursor straight from the sample source, so it
// never touches the render path; ReadBlock is offset-addressed and safe to
// call next to the callback's own reads.
type Analyzer struct {
	src   *source.Source
	t     *transport.Transport
	block []byte
}

func New(src *source.Source, t *transport.Transport) *Analyzer {
	return &Analyzer{
		src:   src,
		t:     t,
		block: make([]byte, t.Shape().BlockBytes()),
	}
}

// Snapshot measures the block at the current cursor. While paused the meter
// reflects the audio parked under the cursor, which is what a scrubbing user
// wants to see.
type Snapshot struct {
	Peak  float64 // 0..1
	RMS   float64 // 0..1
	Bands []float64
}

func (a *Analyzer) Snapshot() Snapshot {
	var snap Snapshot

	n, err := a.src.ReadBlock(a.t.Cursor(), a.block)
	if err != nil {
		return snap
	}
	width := a.t.Shape().SampleWidth
	count := pcm.SampleCount(a.block[:n], width)
	if count == 0 {
		return snap
	}

	var sum float64
	for i := 0; i < count; i++ {
		v := pcm.SampleAt(a.block, i, width)
		if av := math.Abs(v); av > snap.Peak {
			snap.Peak = av
		}
		sum += v * v
	}
	snap.RMS = math.Sqrt(sum / float64(count))

	// FFT over the largest power-of-two window the block allows.
	fftSize := 1
	for fftSize*2 <= count {
		fftSize *= 2
	}
	if fftSize < 2*numBands {
		return snap
	}
	window := make([]float64, fftSize)
	for i := 0; i < fftSize; i++ {
		window[i] = pcm.SampleAt(a.block, i, width)
	}
	coeffs := fft.FFTReal(window)

	half := fftSize / 2
	perBand := half / numBands
	snap.Bands = make([]float64, numBands)
	for b := 0; b < numBands; b++ {
		var mag float64
		for k := b * perBand; k < (b+1)*perBand; k++ {
			mag += math.Hypot(real(coeffs[k]), imag(coeffs[k]))
		}
		// Normalize against the window size so a full-scale tone lands
		// near 1.0 in its band.
		v := mag / float64(half)
		if v > 1 {
			v = 1
		}
		snap.Bands[b] = v
	}
	return snap
}

// MeterBar draws the peak level as a fixed-width bar.
func (s Snapshot) MeterBar(width int) string {
	fill := int(s.Peak * float64(width))
	if fill > width {
		fill = width
	}
	return "[" + strings.Repeat("#", fill) + strings.Repeat("-", width-fill) + "]"
}

var bandGlyphs = []byte(" .:-=+*#")

// SpectrumBar draws one glyph per band, quietest to loudest.
func (s Snapshot) SpectrumBar() string {
	if len(s.Bands) == 0 {
		return ""
	}
	out := make([]byte, len(s.Bands))
	for i, v := range s.Bands {
		idx := int(v * float64(len(bandGlyphs)))
		if idx >= len(bandGlyphs) {
			idx = len(bandGlyphs) - 1
		}
		out[i] = bandGlyphs[idx]
	}
	return "|" + string(out) + "|"
}
