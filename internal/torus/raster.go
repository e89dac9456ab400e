package torus

import "strings"

// raster holds the per-frame depth, glyph and colour buffers, indexed x + y*w.
type raster struct {
	w, h  int
	depth []float64 // inverse depth, 0 means empty
	glyph []string
	color []string
}

func newRaster(w, h int) *raster {
	n := w * h
	r := &raster{
		w:     w,
		h:     h,
		depth: make([]float64, n),
		glyph: make([]string, n),
		color: make([]string, n),
	}
	for i := 0; i < n; i++ {
		r.glyph[i] = " "
		r.color[i] = Reset
	}
	return r
}

// plot applies the depth test: the sample is kept only if it lies inside the
// raster and is strictly nearer than what the cell already holds.
func (r *raster) plot(s sample) bool {
	if s.x < 0 || s.x >= r.w || s.y < 0 || s.y >= r.h {
		return false
	}
	idx := s.x + s.y*r.w
	if s.ooz <= r.depth[idx] {
		return false
	}
	shade := Palette[s.shade]
	r.depth[idx] = s.ooz
	r.glyph[idx] = shade.Glyph
	r.color[idx] = shade.Color
	return true
}

// merge folds o into r cell by cell with the same strict depth test as plot.
// Merging worker rasters in sweep order yields the sequential result.
func (r *raster) merge(o *raster) {
	for i, d := range o.depth {
		if d > r.depth[i] {
			r.depth[i] = d
			r.glyph[i] = o.glyph[i]
			r.color[i] = o.color[i]
		}
	}
}

// String serialises the raster row by row. A colour token is written only where
// the colour changes from the previous column, and rows that end lit get a reset.
func (r *raster) String() string {
	var b strings.Builder
	// glyphs are at most 2 bytes; colour tokens are the rarer case
	b.Grow(r.w*r.h*3 + r.h)
	for y := 0; y < r.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		last := Reset
		row := y * r.w
		for i := row; i < row+r.w; i++ {
			if c := r.color[i]; c != last {
				b.WriteString(c)
				last = c
			}
			b.WriteString(r.glyph[i])
		}
		if last != Reset {
			b.WriteString(Reset)
		}
	}
	return b.String()
}
