package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"donut/internal/term"
	"donut/internal/tui"
)

const farewell = "Thanks for watching the 3D donut! 🍩"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main with its exit status returned, so deferred cleanup always runs.
func run(args []string, stdout, stderr io.Writer) int {
	cfg := term.DefaultConfig()
	fs := flag.NewFlagSet("donut", flag.ContinueOnError)
	fs.SetOutput(stderr)
	plain := fs.Bool("plain", false, "draw straight to the terminal instead of the interactive view")
	fs.DurationVar(&cfg.FrameDelay, "delay", cfg.FrameDelay, "delay between frames")
	fs.Float64Var(&cfg.StepA, "da", cfg.StepA, "rotation step per frame about the x axis (radians)")
	fs.Float64Var(&cfg.StepB, "db", cfg.StepB, "rotation step per frame about the z axis (radians)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "goroutines sharing the surface sweep")
	fs.BoolVar(&cfg.Braille, "braille", cfg.Braille, "draw with braille dots")
	fs.IntVar(&cfg.Frames, "frames", cfg.Frames, "plain mode: stop after this many frames (0 = until interrupted)")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "plain mode: fixed frame width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "plain mode: fixed frame height")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if os.Getenv("DEBUG") != "" {
		f, err := tea.LogToFile("debug.log", "donut")
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	if *plain {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		var size term.SizeFunc
		if f, ok := stdout.(*os.File); ok {
			size = term.FdSize(int(f.Fd()))
		}
		if err := term.New(stdout, size, cfg).Run(ctx); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	} else if _, err := tea.NewProgram(tui.New(cfg), tea.WithAltScreen(), tea.WithOutput(stdout)).Run(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, farewell)
	return 0
}
