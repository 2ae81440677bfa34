package main

import (
	"bufio"
	"flag"
	"fmt"
	"net"
	"os"
	"strings"
)

const (
	app_name      = "binplay-remote"
	version_major = 1
	version_minor = 0
)

func main() {
	socketPath := flag.String("socket", "/tmp/binplay.sock", "unix socket the player listens on")
	flag.Parse()

	fmt.Printf("%s V.%d.%d\n", app_name, version_major, version_minor)
	conn, err := net.Dial("unix", *socketPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", app_name, err)
		os.Exit(1)
	}
	defer conn.Close()

	fmt.Println("CONNECTED")
	fmt.Println("Commands: PING ABOUT STATUS TOGGLE LOOP RESET END")
	fmt.Println("          SEEK-LEFT SEEK-RIGHT VOLUME-UP VOLUME-DOWN QUIT")
	fmt.Println(`Type "EXIT" to leave the player running and disconnect`)
	fmt.Println()

	// ============================
	// STDIN → IPC (interactive)
	// ============================
	go func() {
		in := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("binplay> ")
			if !in.Scan() {
				os.Exit(0)
			}
			line := strings.TrimSpace(in.Text())
			if line == "" {
				continue
			}
			if strings.EqualFold(line, "EXIT") {
				fmt.Println("Bye.")
				os.Exit(0)
			}
			if _, err := conn.Write([]byte(line + "\n")); err != nil {
				fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
				os.Exit(1)
			}
		}
	}()

	// IPC → STDOUT
	sc := bufio.NewScanner(conn)
	for sc.Scan() {
		fmt.Printf("\r%s\nbinplay> ", sc.Text())
	}
}
