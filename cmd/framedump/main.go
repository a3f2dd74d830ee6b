// Package main provides framedump, a small inspector for persisted frame
// records. It decodes the binary file a previous session wrote and prints the
// fields in readable form, which is handy when debugging why a startup chose
// splash over stand-in frame.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-drift/firstframe/pkg/framestate"
	"github.com/go-drift/firstframe/pkg/platform"
)

func main() {
	if len(os.Args) != 2 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		fmt.Fprintf(os.Stderr, "Usage: framedump <%s file>\n", framestate.FileName)
		os.Exit(2)
	}

	if err := run(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "framedump: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	info, err := framestate.Read(path)
	switch {
	case errors.Is(err, framestate.ErrNotFound):
		return fmt.Errorf("no record at %s", path)
	case errors.Is(err, framestate.ErrInvalidMarker):
		fmt.Println("marker:     invalid (record explicitly marked unusable)")
		return nil
	case errors.Is(err, framestate.ErrTruncated):
		return fmt.Errorf("truncated record at %s", path)
	case err != nil:
		return err
	}

	fmt.Println("marker:     valid")
	fmt.Printf("bounds:     %d,%d %dx%d (device space)\n",
		info.Bounds.X, info.Bounds.Y, info.Bounds.Width, info.Bounds.Height)
	fmt.Printf("background: #%08X\n", uint32(info.Background))
	fmt.Printf("fullScreen: %v\n", info.FullScreen)
	fmt.Printf("state:      %s\n", formatState(info.State))
	return nil
}

// formatState renders the window state bitmask symbolically.
func formatState(s platform.WindowState) string {
	if s == platform.StateNormal {
		return "normal"
	}
	var parts []string
	if s.IsIconified() {
		parts = append(parts, "iconified")
	}
	switch {
	case s.IsMaximized():
		parts = append(parts, "maximized")
	case s&platform.StateMaximizedHorizontal != 0:
		parts = append(parts, "maximized-horizontal")
	case s&platform.StateMaximizedVertical != 0:
		parts = append(parts, "maximized-vertical")
	}
	if len(parts) == 0 {
		return fmt.Sprintf("unknown (0x%X)", int(s))
	}
	return strings.Join(parts, "+")
}
