/*
 * This file is part of the binplay project.
 * This code is provided "as is", without warranty of any kind.
 */
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/chzyer/readline"

	"binplay/internal/analyzer"
	"binplay/internal/control"
	"binplay/internal/engine"
	"binplay/internal/output"
	"binplay/internal/source"
	"binplay/internal/transport"
	"binplay/pkg/pcm"
)

const (
	app_name      = "binplay"
	general_usage = "Usage: binplay [options] <file>"
	volume_step   = 0.05
)

func main() {
	framesPerBuffer := flag.Int("frames-per-buffer", pcm.DefaultFramesPerBuffer, "number of frames to handle per buffer")
	sampleSize := flag.Int("sample-size", pcm.DefaultSampleWidth, "size of each sample in the data buffer")
	channelCount := flag.Int("channel-count", pcm.DefaultChannels, "how many audio channels to use")
	sampleRate := flag.Int("sample-rate", pcm.DefaultSampleRate, "number of samples per second")
	volume := flag.Float64("volume", 1.0, "startup volume (values between 0.0 and 1.0 give optimal results)")
	seekSeconds := flag.Float64("seek-seconds", 5, "seconds moved per seek key")
	loop := flag.Bool("loop", true, "restart from the beginning when the end is reached")
	backend := flag.String("backend", "portaudio", "audio backend (portaudio or speaker)")
	socketPath := flag.String("socket", "", "unix socket for remote control (disabled when empty)")
	flag.Parse()

	fileName := flag.Arg(0)
	if fileName == "" {
		fileName = askFileName()
	}
	if fileName == "" {
		fmt.Fprintln(os.Stderr, "Expected filename, but none was specified")
		fmt.Fprintln(os.Stderr, general_usage)
		flag.PrintDefaults()
		os.Exit(1)
	}

	shape := pcm.Shape{
		FramesPerBuffer: *framesPerBuffer,
		SampleRate:      *sampleRate,
		SampleWidth:     *sampleSize,
		Channels:        *channelCount,
	}
	if err := shape.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", app_name, err)
		os.Exit(1)
	}

	if err := run(fileName, shape, *volume, *seekSeconds, *loop, *backend, *socketPath); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", app_name, err)
		os.Exit(1)
	}
}

func run(fileName string, shape pcm.Shape, volume, seekSeconds float64, loop bool, backend, socketPath string) error {
	src, err := source.Open(fileName)
	if err != nil {
		return err
	}
	defer src.Close()

	t := transport.New(src.Size(), shape)
	t.SetVolume(volume)
	t.SetLooping(loop)

	eng := engine.New(t, src)
	stream, err := output.Open(backend, shape, eng)
	if err != nil {
		return err
	}
	defer stream.Close()

	seekStep := int64(seekSeconds * float64(shape.BytesPerSecond()))
	m := control.NewMachine(t, fileName, seekStep, volume_step)
	an := analyzer.New(src, t)

	events := make(chan control.Event, 8)
	if socketPath != "" {
		ipc, err := control.StartIPC(socketPath, events, t)
		if err != nil {
			return err
		}
		defer ipc.Close()
	}

	initTerminal()
	defer cleanupTerminal()

	go readKeys(events)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		events <- control.EventExit
	}()

	if err := stream.Start(); err != nil {
		return err
	}

	// ==================================================
	// CONTROL LOOP (single writer of transport state)
	// ==================================================
	refresh := time.NewTicker(250 * time.Millisecond)
	defer refresh.Stop()

	draw(m, an)
	for !m.Done() {
		select {
		case ev := <-events:
			m.Apply(ev)
		case <-refresh.C:
		}
		draw(m, an)
	}

	// Stop the callback before the source or transport goes away.
	return stream.Stop()
}

// readKeys feeds decoded keystrokes into the events channel. The control
// loop's bounded poll lives in its select with the refresh ticker, so this
// goroutine may block on stdin indefinitely.
func readKeys(events chan<- control.Event) {
	var dec control.KeyDecoder
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}
		if ev := dec.Feed(buf[0]); ev != control.EventNone {
			events <- ev
		}
	}
}

func draw(m *control.Machine, an *analyzer.Analyzer) {
	snap := an.Snapshot()
	fmt.Print("\033[H\033[2J")
	fmt.Print(m.Status())
	fmt.Printf("\nLevel: %s %s\n", snap.MeterBar(20), snap.SpectrumBar())
}

// askFileName prompts for a path when none was given on the command line.
func askFileName() string {
	rl, err := readline.New("file to play> ")
	if err != nil {
		return ""
	}
	defer rl.Close()
	line, err := rl.Readline()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

// --- CORE UTILS ---

func initTerminal() {
	exec.Command("stty", "-F", "/dev/tty", "cbreak", "min", "1", "-echo").Run()
	fmt.Print("\033[?25l")
}

func cleanupTerminal() {
	exec.Command("stty", "-F", "/dev/tty", "sane").Run()
	fmt.Print("\033[?25h")
}
