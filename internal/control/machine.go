package control

import (
	"fmt"
	"strings"

	"binplay/internal/transport"
)

var keyHelp = []string{
	" KEY          DESCRIPTION",
	" [^D]       - exit",
	" [E]        - go to the (e)nd",
	" [R]        - go to the start and (r)eset",
	" [L]        - toggle (l)oop",
	" [SPACEBAR] - toggle pause",
	" [TAB]      - toggle help menu",
	" [LEFT]     - seek backward",
	" [RIGHT]    - seek forward",
	" [UP]       - volume up",
	" [DOWN]     - volume down",
}

// Machine applies validated transitions to the transport. It runs on a single
// goroutine (the control loop); remote commands reach it as events through
// the same channel as keystrokes, so it stays the sole writer of done.
type Machine struct {
	t        *transport.Transport
	fileName string
	seekStep int64   // bytes per seek key
	volStep  float64 // volume change per key
	showHelp bool
}

func NewMachine(t *transport.Transport, fileName string, seekStep int64, volStep float64) *Machine {
	return &Machine{
		t:        t,
		fileName: fileName,
		seekStep: seekStep,
		volStep:  volStep,
	}
}

// Apply performs at most one transition. Out-of-range results are clamped by
// the transport, never rejected.
func (m *Machine) Apply(ev Event) {
	switch ev {
	case EventTogglePause:
		m.t.TogglePlaying()
	case EventToggleLoop:
		m.t.ToggleLooping()
	case EventReset:
		m.t.SetCursor(0)
	case EventEnd:
		m.t.SetCursor(m.t.Size())
	case EventToggleHelp:
		m.showHelp = !m.showHelp
	case EventSeekLeft:
		m.t.Seek(-m.seekStep)
	case EventSeekRight:
		m.t.Seek(m.seekStep)
	case EventVolumeUp:
		m.t.AdjustVolume(m.volStep)
	case EventVolumeDown:
		m.t.AdjustVolume(-m.volStep)
	case EventExit:
		m.t.Finish()
	}
}

func (m *Machine) Done() bool { return m.t.Done() }

func (m *Machine) ShowHelp() bool { return m.showHelp }

// Status renders the transport for the terminal, one refresh at a time.
func (m *Machine) Status() string {
	t := m.t
	shape := t.Shape()

	playFlag := ""
	if !t.Playing() {
		playFlag = " [paused]"
	}
	loopFlag := ""
	if t.Looping() {
		loopFlag = " [looping]"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Currently playing: %s%s\n", m.fileName, playFlag)
	fmt.Fprintf(&sb, "Cursor: [%d/%d] (%d%%)%s\n", t.Cursor(), t.Size(), t.Percent(), loopFlag)
	fmt.Fprintf(&sb, "\n")
	fmt.Fprintf(&sb, "Volume: %d%%\n", int(100*t.Volume()))
	fmt.Fprintf(&sb, "Channel count: %d\n", shape.Channels)
	fmt.Fprintf(&sb, "Sample rate: %d\n", shape.SampleRate)
	fmt.Fprintf(&sb, "Sample size: %d\n", shape.SampleWidth)
	fmt.Fprintf(&sb, "Frames per buffer: %d\n", shape.FramesPerBuffer)

	if m.showHelp {
		fmt.Fprintf(&sb, "\nHELP MENU\n")
		for _, line := range keyHelp {
			fmt.Fprintf(&sb, "  %s\n", line)
		}
	}
	return sb.String()
}
