/*
 * This file is part of the binplay project.
 * This code is provided "as is", without warranty of any kind.
 */
package control

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strings"

	"binplay/internal/transport"
)

const (
	serverName   = "binplay"
	versionMajor = 1
	versionMinor = 0
)

// IPC exposes the keyboard transitions over a unix socket so an external
// client can drive the same control loop. Commands are injected into the
// events channel; the socket goroutines never mutate transport state
// themselves apart from the atomic reads STATUS needs.
type IPC struct {
	ln     net.Listener
	path   string
	events chan<- Event
	t      *transport.Transport
}

func StartIPC(path string, events chan<- Event, t *transport.Transport) (*IPC, error) {
	_ = os.Remove(path)
	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on '%s': %w", path, err)
	}
	ipc := &IPC{ln: ln, path: path, events: events, t: t}
	go ipc.acceptLoop()
	return ipc, nil
}

func (ipc *IPC) Close() error {
	err := ipc.ln.Close()
	_ = os.Remove(ipc.path)
	return err
}

func (ipc *IPC) acceptLoop() {
	for {
		c, err := ipc.ln.Accept()
		if err != nil {
			return
		}
		go ipc.handleConn(c)
	}
}

var remoteVerbs = map[string]Event{
	"TOGGLE":      EventTogglePause,
	"LOOP":        EventToggleLoop,
	"RESET":       EventReset,
	"END":         EventEnd,
	"SEEK-LEFT":   EventSeekLeft,
	"SEEK-RIGHT":  EventSeekRight,
	"VOLUME-UP":   EventVolumeUp,
	"VOLUME-DOWN": EventVolumeDown,
	"QUIT":        EventExit,
}

func (ipc *IPC) handleConn(c net.Conn) {
	defer c.Close()

	sc := bufio.NewScanner(c)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		cmd := strings.ToUpper(line)

		// ==================================================
		// READ-ONLY COMMANDS
		// ==================================================
		switch cmd {
		case "PING":
			c.Write([]byte("Pong\n"))
			continue

		case "ABOUT":
			fmt.Fprintf(c, "%s V.%d.%d\n", serverName, versionMajor, versionMinor)
			continue

		case "STATUS":
			t := ipc.t
			resp := map[string]interface{}{
				"cursor":  t.Cursor(),
				"size":    t.Size(),
				"percent": t.Percent(),
				"playing": t.Playing(),
				"looping": t.Looping(),
				"volume":  t.Volume(),
			}
			j, _ := json.Marshal(resp)
			c.Write(append(j, '\n'))
			continue
		}

		// ==================================================
		// TRANSITIONS (same events as the keyboard)
		// ==================================================
		if ev, ok := remoteVerbs[cmd]; ok {
			ipc.events <- ev
			c.Write([]byte("OK\n"))
			continue
		}
		c.Write([]byte("ERR unknown command\n"))
	}
}
