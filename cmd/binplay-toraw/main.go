package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const general_usage = "Usage: binplay-toraw <in.wav> <out.raw>"

// binplay-toraw strips a WAV file down to raw interleaved little-endian PCM
// and prints the flags that make binplay interpret the result correctly.
func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, general_usage)
		os.Exit(1)
	}
	if err := convert(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintf(os.Stderr, "binplay-toraw: %v\n", err)
		os.Exit(1)
	}
}

func convert(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	dec := wav.NewDecoder(in)
	dec.ReadInfo()
	if !dec.IsValidFile() {
		return fmt.Errorf("'%s' is not a valid wav file", inPath)
	}

	width := int(dec.BitDepth) / 8
	if width != 1 && width != 2 && width != 4 {
		return fmt.Errorf("unsupported bit depth %d", dec.BitDepth)
	}
	channels := int(dec.NumChans)
	rate := int(dec.SampleRate)

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()
	w := bufio.NewWriter(out)

	// Read about one second per cycle, in the decoder's own sample width.
	intBuf := &audio.IntBuffer{
		Data:   make([]int, rate*channels),
		Format: &audio.Format{NumChannels: channels, SampleRate: rate},
	}
	written := 0
	for {
		n, err := dec.PCMBuffer(intBuf)
		if err != nil {
			return err
		}
		if n == 0 {
			break
		}
		for i := 0; i < n; i++ {
			s := intBuf.Data[i]
			switch width {
			case 1:
				// wav stores 8-bit samples unsigned; raw playback
				// expects signed.
				w.WriteByte(byte(int8(s - 128)))
			case 2:
				var b [2]byte
				binary.LittleEndian.PutUint16(b[:], uint16(int16(s)))
				w.Write(b[:])
			case 4:
				var b [4]byte
				binary.LittleEndian.PutUint32(b[:], uint32(int32(s)))
				w.Write(b[:])
			}
		}
		written += n
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("Wrote %d samples to %s\n", written, outPath)
	fmt.Printf("Play it with:\n  binplay -sample-rate %d -channel-count %d -sample-size %d %s\n",
		rate, channels, width, outPath)
	return nil
}
