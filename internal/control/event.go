package control

// Event is one discrete control input, already stripped of its origin
// (keyboard or remote socket).
type Event int

const (
	EventNone Event = iota
	EventTogglePause
	EventToggleLoop
	EventReset
	EventEnd
	EventToggleHelp
	EventSeekLeft
	EventSeekRight
	EventVolumeUp
	EventVolumeDown
	EventExit
)

const (
	keyExit        = 4 // ^D
	keyEnd         = 'e'
	keyReset       = 'r'
	keyToggleLoop  = 'l'
	keyTogglePause = 32 // Space
	keyToggleHelp  = '\t'
	keyEscape      = 27
)

// KeyDecoder turns raw terminal bytes into events, carrying just enough
// state to recognize the three-byte arrow sequences (ESC '[' A..D).
// Unrecognized bytes decode to EventNone.
type KeyDecoder struct {
	esc int // 0 idle, 1 saw ESC, 2 saw ESC [
}

func (d *KeyDecoder) Feed(b byte) Event {
	switch d.esc {
	case 1:
		if b == '[' {
			d.esc = 2
			return EventNone
		}
		d.esc = 0
		return EventNone
	case 2:
		d.esc = 0
		switch b {
		case 'A':
			return EventVolumeUp
		case 'B':
			return EventVolumeDown
		case 'C':
			return EventSeekRight
		case 'D':
			return EventSeekLeft
		}
		return EventNone
	}

	switch b {
	case keyTogglePause:
		return EventTogglePause
	case keyToggleLoop:
		return EventToggleLoop
	case keyReset:
		return EventReset
	case keyEnd:
		return EventEnd
	case keyToggleHelp:
		return EventToggleHelp
	case keyExit:
		return EventExit
	case keyEscape:
		d.esc = 1
	}
	return EventNone
}
