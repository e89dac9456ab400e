package term

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestUsable(t *testing.T) {
	boom := errors.New("not a terminal")
	cases := []struct {
		cols, rows int
		err        error
		w, h       int
	}{
		{120, 40, nil, 120, 38},
		{80, 24, nil, 80, 22},
		{80, 10, nil, 80, 20},
		{0, 0, nil, 80, 22},
		{200, 60, boom, 80, 22},
	}
	for _, c := range cases {
		w, h := Usable(c.cols, c.rows, c.err)
		if w != c.w || h != c.h {
			t.Fatalf("Usable(%d,%d,%v) = %dx%d, want %dx%d", c.cols, c.rows, c.err, w, h, c.w, c.h)
		}
	}
}

func TestDriver_FrameBudget(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.FrameDelay = time.Millisecond
	cfg.Frames = 3
	size := func() (int, int, error) { return 60, 22, nil }
	d := New(&buf, size, cfg)
	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if d.Frames() != 3 {
		t.Fatalf("frames = %d, want 3", d.Frames())
	}
	a, b := d.Angles()
	if a < 0.2099 || a > 0.2101 || b < 0.0899 || b > 0.0901 {
		t.Fatalf("angles = %v, %v", a, b)
	}
	out := buf.String()
	if !strings.HasPrefix(out, hideCursor+ClearScreen) {
		t.Fatalf("output does not start by hiding the cursor and clearing")
	}
	if !strings.HasSuffix(out, ClearScreen+showCursor) {
		t.Fatalf("output does not end by clearing and restoring the cursor")
	}
	// one clear on start, one per frame, one on exit
	if n := strings.Count(out, ClearScreen); n != 5 {
		t.Fatalf("clear count = %d, want 5", n)
	}
}

func TestDriver_FixedSize(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Frames = 1
	cfg.Width, cfg.Height = 30, 21
	d := New(&buf, nil, cfg)
	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	frame := strings.TrimSuffix(strings.TrimPrefix(buf.String(), hideCursor+ClearScreen+ClearScreen), ClearScreen+showCursor)
	if rows := strings.Count(frame, "\n") + 1; rows != 21 {
		t.Fatalf("rows = %d, want 21", rows)
	}
}

func TestDriver_Cancelled(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := New(&buf, func() (int, int, error) { return 80, 24, nil }, DefaultConfig())
	if err := d.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
	if d.Frames() != 0 {
		t.Fatalf("frames = %d after cancel", d.Frames())
	}
	if d.state != stopping {
		t.Fatalf("driver not stopping after run")
	}
	if !strings.HasSuffix(buf.String(), showCursor) {
		t.Fatalf("cursor not restored")
	}
}

func TestDriver_StopsDuringDelay(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cfg := DefaultConfig()
	cfg.FrameDelay = time.Hour
	size := func() (int, int, error) {
		cancel()
		return 40, 20, nil
	}
	d := New(&buf, size, cfg)
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("driver kept waiting after cancel")
	}
	if d.Frames() > 1 {
		t.Fatalf("frames = %d, want at most 1", d.Frames())
	}
	if d.state != stopping {
		t.Fatalf("driver not stopping after cancel")
	}
}

func TestDriver_BudgetStops(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FrameDelay = time.Hour
	cfg.Frames = 1
	d := New(io.Discard, func() (int, int, error) { return 40, 20, nil }, cfg)
	if err := d.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if d.state != stopping || d.Frames() != 1 {
		t.Fatalf("state = %v frames = %d after budget", d.state, d.Frames())
	}
}

type failWriter struct{ n int }

func (f *failWriter) Write(p []byte) (int, error) {
	f.n++
	if f.n > 1 {
		return 0, errors.New("broken pipe")
	}
	return len(p), nil
}

func TestDriver_WriteError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Frames = 2
	d := New(&failWriter{}, func() (int, int, error) { return 40, 20, nil }, cfg)
	if err := d.Run(context.Background()); err == nil || !strings.Contains(err.Error(), "broken pipe") {
		t.Fatalf("want write error, got %v", err)
	}
}

func TestFrame_SelectsRenderer(t *testing.T) {
	cfg := DefaultConfig()
	plain, err := Frame(context.Background(), cfg, 0.4, 0.2, 40, 20)
	if err != nil {
		t.Fatalf("frame: %v", err)
	}
	cfg.Braille = true
	dots, err := Frame(context.Background(), cfg, 0.4, 0.2, 40, 20)
	if err != nil {
		t.Fatalf("braille frame: %v", err)
	}
	isBraille := func(r rune) bool { return r >= 0x2800 && r <= 0x28ff }
	if strings.ContainsFunc(plain, isBraille) {
		t.Fatalf("ascii frame contains braille cells")
	}
	if !strings.ContainsFunc(dots, isBraille) || strings.ContainsAny(dots, "@#$") {
		t.Fatalf("braille frame not drawn with braille cells")
	}
}
