// Package term drives the renderer straight onto a terminal without a UI framework:
// clear the screen, write the frame, sleep, repeat.
package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	xterm "golang.org/x/term"

	"donut/internal/torus"
)

const (
	ClearScreen = "\x1b[2J\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"

	DefaultWidth  = 80
	DefaultHeight = 24
	MinRows       = 20
	marginRows    = 2
)

type Config struct {
	FrameDelay time.Duration
	StepA      float64
	StepB      float64
	Workers    int
	Frames     int // stop after this many frames, 0 runs until cancelled
	Width      int // fixed raster size, 0 queries the terminal
	Height     int
	Braille    bool
}

func DefaultConfig() Config {
	return Config{
		FrameDelay: 30 * time.Millisecond,
		StepA:      0.07,
		StepB:      0.03,
		Workers:    1,
	}
}

// SizeFunc reports the terminal size in columns and rows.
type SizeFunc func() (cols, rows int, err error)

// FdSize queries the terminal behind fd.
func FdSize(fd int) SizeFunc {
	return func() (int, int, error) { return xterm.GetSize(fd) }
}

// Usable turns a terminal size into raster dimensions: unknown sizes fall back to
// 80x24, and rows lose the margin but never drop below MinRows.
func Usable(cols, rows int, err error) (int, int) {
	if err != nil || cols <= 0 || rows <= 0 {
		cols, rows = DefaultWidth, DefaultHeight
	}
	return cols, max(MinRows, rows-marginRows)
}

// Frame renders one frame at (a, b) with the renderer cfg selects.
func Frame(ctx context.Context, cfg Config, a, b float64, w, h int) (string, error) {
	if cfg.Braille {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return torus.RenderBraille(a, b, w, h)
	}
	return torus.RenderParallel(ctx, a, b, w, h, cfg.Workers)
}

type runState int

const (
	running runState = iota
	stopping
)

type Driver struct {
	out   io.Writer
	size  SizeFunc
	cfg   Config
	state runState

	a, b   float64
	frames int
}

func New(out io.Writer, size SizeFunc, cfg Config) *Driver {
	return &Driver{out: out, size: size, cfg: cfg}
}

// Angles returns the orientation the next frame will be drawn at.
func (d *Driver) Angles() (float64, float64) { return d.a, d.b }

// Frames returns the number of frames written so far.
func (d *Driver) Frames() int { return d.frames }

func (d *Driver) dims() (int, int) {
	if d.cfg.Width > 0 && d.cfg.Height > 0 {
		return d.cfg.Width, d.cfg.Height
	}
	if d.size == nil {
		return Usable(0, 0, errors.New("term: no size query"))
	}
	return Usable(d.size())
}

// Run draws frames while the driver is running. Cancelling ctx or spending the
// frame budget moves it to stopping, which ends the loop after the current
// frame. The screen is cleared and the cursor restored on the way out.
func (d *Driver) Run(ctx context.Context) (err error) {
	d.state = running
	if _, err := io.WriteString(d.out, hideCursor+ClearScreen); err != nil {
		return fmt.Errorf("term: write: %w", err)
	}
	defer func() {
		if _, werr := io.WriteString(d.out, ClearScreen+showCursor); werr != nil && err == nil {
			err = fmt.Errorf("term: write: %w", werr)
		}
		log.Printf("term: stopped after %d frames", d.frames)
	}()

	for d.state == running {
		if ctx.Err() != nil {
			d.state = stopping
			break
		}
		w, h := d.dims()
		frame, err := Frame(ctx, d.cfg, d.a, d.b, w, h)
		if err != nil {
			if ctx.Err() != nil {
				d.state = stopping
				break
			}
			return err
		}
		if _, err := io.WriteString(d.out, ClearScreen+frame); err != nil {
			return fmt.Errorf("term: write: %w", err)
		}
		d.frames++
		d.a += d.cfg.StepA
		d.b += d.cfg.StepB
		if d.cfg.Frames > 0 && d.frames >= d.cfg.Frames {
			d.state = stopping
			break
		}
		select {
		case <-ctx.Done():
			d.state = stopping
		case <-time.After(d.cfg.FrameDelay):
		}
	}
	return nil
}
