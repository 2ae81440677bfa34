package pcm

import (
	"encoding/binary"
	"math"
)

// Scale copies src into dst, multiplying every sample by vol in the sample's
// native signed width. Results past the representable range are clamped, so a
// factor above 1.0 can never wrap. Samples are little-endian; src and dst may
// be the same slice. Trailing bytes that do not form a whole sample are copied
// unscaled.
func Scale(dst, src []byte, width int, vol float64) {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	switch width {
	case 1:
		for i := 0; i < n; i++ {
			v := float64(int8(src[i])) * vol
			if v > math.MaxInt8 {
				v = math.MaxInt8
			} else if v < math.MinInt8 {
				v = math.MinInt8
			}
			dst[i] = byte(int8(v))
		}
	case 2:
		for i := 0; i+2 <= n; i += 2 {
			v := float64(int16(binary.LittleEndian.Uint16(src[i:]))) * vol
			if v > math.MaxInt16 {
				v = math.MaxInt16
			} else if v < math.MinInt16 {
				v = math.MinInt16
			}
			binary.LittleEndian.PutUint16(dst[i:], uint16(int16(v)))
		}
		if n%2 != 0 {
			dst[n-1] = src[n-1]
		}
	case 4:
		for i := 0; i+4 <= n; i += 4 {
			v := float64(int32(binary.LittleEndian.Uint32(src[i:]))) * vol
			if v > math.MaxInt32 {
				v = math.MaxInt32
			} else if v < math.MinInt32 {
				v = math.MinInt32
			}
			binary.LittleEndian.PutUint32(dst[i:], uint32(int32(v)))
		}
		if r := n % 4; r != 0 {
			copy(dst[n-r:n], src[n-r:n])
		}
	default:
		copy(dst[:n], src[:n])
	}
}

// GainInt16 scales decoded samples in place with the same clamp rule.
func GainInt16(samples []int16, vol float64) {
	for i := range samples {
		v := float64(samples[i]) * vol
		if v > math.MaxInt16 {
			v = math.MaxInt16
		} else if v < math.MinInt16 {
			v = math.MinInt16
		}
		samples[i] = int16(v)
	}
}

// Silence zeroes an output block.
func Silence(dst []byte) {
	for i := range dst {
		dst[i] = 0
	}
}

// SampleCount reports how many whole samples b holds at the given width.
func SampleCount(b []byte, width int) int {
	if width <= 0 {
		return 0
	}
	return len(b) / width
}

// SampleAt decodes sample i as a float in [-1, 1].
func SampleAt(b []byte, i, width int) float64 {
	off := i * width
	switch width {
	case 1:
		return float64(int8(b[off])) / float64(math.MaxInt8+1)
	case 2:
		return float64(int16(binary.LittleEndian.Uint16(b[off:]))) / float64(math.MaxInt16+1)
	case 4:
		return float64(int32(binary.LittleEndian.Uint32(b[off:]))) / float64(math.MaxInt32+1)
	}
	return 0
}
