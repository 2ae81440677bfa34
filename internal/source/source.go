package source

import (
	"fmt"
	"io"
	"os"
)

// Source is an open handle to the file being played plus its total length.
// It holds no cursor of its own; every read takes an explicit offset, so
// concurrent reads never serialize through seek state.
type Source struct {
	f    *os.File
	name string
	size int64
}

// Open opens path for playback. The file is treated as opaque interleaved
// samples; no header is parsed or validated.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open '%s': %w", path, err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat '%s': %w", path, err)
	}
	return &Source{f: f, name: path, size: st.Size()}, nil
}

func (s *Source) Name() string { return s.name }

func (s *Source) Size() int64 { return s.size }

// ReadBlock fills buf from offset and returns the byte count actually read.
// A short count signals end-of-file, not an error. Offsets are clamped
// defensively: negative reads from 0, past-end reads return 0 bytes. A torn
// cursor value from a concurrent seek can therefore never reach the kernel
// out of bounds.
func (s *Source) ReadBlock(offset int64, buf []byte) (int, error) {
	if offset < 0 {
		offset = 0
	}
	if offset >= s.size {
		return 0, nil
	}
	n, err := s.f.ReadAt(buf, offset)
	if err == io.EOF {
		err = nil
	}
	return n, err
}

func (s *Source) Close() error {
	return s.f.Close()
}
