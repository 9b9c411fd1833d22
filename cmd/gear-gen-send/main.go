package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/tarm/serial"
)

func main() {
	device := flag.String("device", "", "Serial device of the controller, e.g. /dev/ttyUSB0.")
	baud := flag.Int("baud", 115200, "Serial baud rate.")
	wakeDelay := flag.Duration("wake-delay", 2*time.Second, "Wait this long after opening the port, for controllers that reset on connect.")
	quiet := flag.Bool("quiet", false, "Suppress progress output and controller chatter.")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gear-gen-send -device PORT [options] PROGRAM.gcode\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *device == "" {
		fmt.Fprintf(os.Stderr, "no serial device given; set -device\n")
		os.Exit(1)
	}

	in := os.Stdin
	args := flag.Args()
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "usage: gear-gen-send -device PORT PROGRAM.gcode\n")
		os.Exit(1)
	}
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	lines, err := readProgram(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if len(lines) == 0 {
		fmt.Fprintf(os.Stderr, "program is empty\n")
		os.Exit(1)
	}

	port, err := serial.OpenPort(&serial.Config{Name: *device, Baud: *baud})
	if err != nil {
		fmt.Fprintf(os.Stderr, "open %s: %v\n", *device, err)
		os.Exit(1)
	}
	defer port.Close()

	// most hobby controllers reset when the port opens
	time.Sleep(*wakeDelay)

	if err := sendProgram(port, lines, *quiet); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if !*quiet {
		fmt.Fprintf(os.Stderr, "   \rSending: done\n")
	}
}

func readProgram(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines, scanner.Err()
}

// sendProgram streams the program one line at a time, waiting for the
// controller to acknowledge each line with "ok" before sending the next.
// Anything else the controller says is chatter (banner, status reports)
// unless it is an error or alarm, which aborts the job.
func sendProgram(port io.ReadWriter, lines []string, quiet bool) error {
	responses := bufio.NewReader(port)

	for i, line := range lines {
		if _, err := fmt.Fprintf(port, "%s\n", line); err != nil {
			return fmt.Errorf("send line %d: %w", i+1, err)
		}

		for {
			resp, err := responses.ReadString('\n')
			if err != nil {
				return fmt.Errorf("line %d (%q): read response: %w", i+1, line, err)
			}
			resp = strings.TrimSpace(resp)

			if resp == "ok" {
				break
			}
			if strings.HasPrefix(resp, "error") || strings.HasPrefix(resp, "ALARM") {
				return fmt.Errorf("line %d (%q): controller said %q", i+1, line, resp)
			}
			if !quiet {
				fmt.Fprintf(os.Stderr, "%s\n", resp)
			}
		}

		if !quiet {
			fmt.Fprintf(os.Stderr, "   \rSending: %.0f%%", 100*float64(i+1)/float64(len(lines)))
		}
	}

	return nil
}
