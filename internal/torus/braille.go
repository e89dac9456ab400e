package torus

import (
	"fmt"
	"math"
)

// Each braille cell is a 2x4 grid of dots.
const (
	dotsX = 2
	dotsY = 4
)

type brailleBuf struct {
	w, h int     // in cells
	m    []uint8 // per-cell 8-bit dot mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	return &brailleBuf{w: w, h: h, m: make([]uint8, w*h)}
}

// setPixel sets a dot at dot coordinates and reports whether it was on the grid.
func (b *brailleBuf) setPixel(mx, my int) bool {
	if mx < 0 || my < 0 {
		return false
	}
	cx, rx := mx/dotsX, mx%dotsX
	cy, ry := my/dotsY, my%dotsY
	if cy >= b.h || cx >= b.w {
		return false
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cx+cy*b.w] |= bit
	return true
}

// stamp replaces the glyph of every lit cell in r with its braille pattern.
func (b *brailleBuf) stamp(r *raster) {
	for i, mask := range b.m {
		if mask != 0 {
			r.glyph[i] = string(rune(0x2800 + int(mask)))
		}
	}
}

// RenderBraille is Render at braille resolution: the torus is projected onto 2x4
// dots per cell and the sweep refines itself to the dot grid. A cell takes the
// colour of the nearest sample that landed in it.
func RenderBraille(a, b float64, width, height int) (string, error) {
	if err := validate(width, height); err != nil {
		return "", err
	}
	if width > math.MaxInt/dotsX || height > math.MaxInt/dotsY {
		return "", fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if err := validate(width*dotsX, height*dotsY); err != nil {
		return "", err
	}
	v := newView(a, b, width*dotsX, height*dotsY)
	v.sx, v.sy = scaleX*dotsX, scaleY*dotsY

	dots := newBrailleBuf(width, height)
	r := newRaster(width, height)
	v.sweep(0, thetaCount, func(s sample) bool {
		if !dots.setPixel(s.x, s.y) {
			return false
		}
		s.x, s.y = s.x/dotsX, s.y/dotsY
		return r.plot(s)
	})
	dots.stamp(r)
	return r.String(), nil
}
