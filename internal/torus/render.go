// Package torus renders a rotating torus into a coloured character frame.
package torus

import (
	"errors"
	"fmt"
	"math"
)

// Tuning constants. They have no derivation beyond looking right.
const (
	ThetaStep = 0.07 // sweep around the central axis
	PhiStep   = 0.02 // sweep around the tube cross-section

	tubeRadius   = 0.5
	ringRadius   = 1.0
	cameraOffset = 2.0
	scaleX       = 30.0
	scaleY       = 15.0

	// rest pose: the ring is tilted about x so the hole shows at A=B=0
	restTilt = math.Pi / 6

	// samples nearer than this are treated as having no defined inverse depth
	minDepth = 1e-9

	// largest gap, in cells, allowed between neighbouring samples on either axis
	maxSpan = 0.5
)

var ErrInvalidDimensions = errors.New("torus: invalid dimensions")

// light is the fixed world-space light direction, unit length.
var light = [3]float64{0, -1 / math.Sqrt2, -1 / math.Sqrt2}

// sample is one projected surface point ready for the depth test.
type sample struct {
	x, y  int
	ooz   float64
	shade int
}

// view caches the trigonometry of one orientation and the raster centre.
type view struct {
	sinA, cosA float64
	sinB, cosB float64
	cx, cy     float64
	sx, sy     float64
}

func newView(a, b float64, w, h int) view {
	sinA, cosA := math.Sincos(a + restTilt)
	sinB, cosB := math.Sincos(b)
	return view{
		sinA: sinA, cosA: cosA,
		sinB: sinB, cosB: cosB,
		cx: float64(w) / 2, cy: float64(h) / 2,
		sx: scaleX, sy: scaleY,
	}
}

// rotate applies the orientation: A about the x axis, then B about the z axis.
func (v view) rotate(x, y, z float64) (float64, float64, float64) {
	y, z = y*v.cosA-z*v.sinA, y*v.sinA+z*v.cosA
	x, y = x*v.cosB-y*v.sinB, x*v.sinB+y*v.cosB
	return x, y, z
}

// screen maps the surface point at (theta, phi) to unrounded raster coordinates
// and its inverse depth. ok is false when the point has no usable inverse depth.
func (v view) screen(theta, phi float64) (px, py, ooz float64, ok bool) {
	sinT, cosT := math.Sincos(theta)
	sinP, cosP := math.Sincos(phi)

	// cross-section circle, swept around the torus axis (z) by theta
	circleX := ringRadius + tubeRadius*cosP
	circleY := tubeRadius * sinP
	x, y, z := v.rotate(circleX*cosT, circleX*sinT, circleY)
	z += cameraOffset
	if z <= minDepth {
		return 0, 0, 0, false
	}
	ooz = 1 / z
	return v.cx + v.sx*ooz*x, v.cy + v.sy*ooz*y, ooz, true
}

// project maps the surface point at (theta, phi) to a raster cell and shade.
func (v view) project(theta, phi float64) (s sample, ok bool) {
	px, py, ooz, ok := v.screen(theta, phi)
	if !ok {
		return sample{}, false
	}
	sinT, cosT := math.Sincos(theta)
	sinP, cosP := math.Sincos(phi)
	nx, ny, nz := v.rotate(cosP*cosT, cosP*sinT, sinP)
	lum := nx*light[0] + ny*light[1] + nz*light[2]

	return sample{
		x:     int(px),
		y:     int(py),
		ooz:   ooz,
		shade: shadeIndex(lum),
	}, true
}

// span is the number of samples the stretch from (t0, p0) to (t1, p1) needs so
// that neighbouring samples land at most maxSpan cells apart.
func (v view) span(t0, p0, t1, p1 float64) int {
	x0, y0, _, ok0 := v.screen(t0, p0)
	x1, y1, _, ok1 := v.screen(t1, p1)
	if !ok0 || !ok1 {
		return 1
	}
	d := max(math.Abs(x1-x0), math.Abs(y1-y0))
	return max(1, int(math.Ceil(d/maxSpan)))
}

// refine returns how many theta and phi subdivisions the grid cell starting at
// (theta, phi) needs. Near the camera one ThetaStep covers several columns.
func (v view) refine(theta, phi float64) (nt, np int) {
	return v.span(theta, phi, theta+ThetaStep, phi), v.span(theta, phi, theta, phi+PhiStep)
}

// steps is the iteration count of a half-open sweep [start, end) with the given step.
func steps(start, end, step float64) int {
	return int(math.Ceil((end - start) / step))
}

var (
	thetaCount = steps(0, 2*math.Pi, ThetaStep)
	phiCount   = steps(0, 2*math.Pi, PhiStep)
)

func validate(w, h int) error {
	if w <= 0 || h <= 0 || w > math.MaxInt/h {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	return nil
}

// sweep samples theta rows [from, to) and hands every projected sample to plot.
// Each grid cell is subdivided until neighbouring samples are within maxSpan
// cells of each other, so the near side of the ring has no gaps.
func (v view) sweep(from, to int, plot func(sample) bool) {
	for i := from; i < to; i++ {
		theta := float64(i) * ThetaStep
		for j := 0; j < phiCount; j++ {
			phi := float64(j) * PhiStep
			nt, np := v.refine(theta, phi)
			for k := 0; k < nt; k++ {
				t := theta + float64(k)*ThetaStep/float64(nt)
				for l := 0; l < np; l++ {
					if s, ok := v.project(t, phi+float64(l)*PhiStep/float64(np)); ok {
						plot(s)
					}
				}
			}
		}
	}
}

// frame runs the full sweep into a fresh raster.
func frame(a, b float64, width, height int) *raster {
	r := newRaster(width, height)
	newView(a, b, width, height).sweep(0, thetaCount, r.plot)
	return r
}

// Render draws the torus at orientation (a, b) into a width x height frame.
// Rows are joined with "\n" and carry embedded colour escapes.
func Render(a, b float64, width, height int) (string, error) {
	if err := validate(width, height); err != nil {
		return "", err
	}
	return frame(a, b, width, height).String(), nil
}
