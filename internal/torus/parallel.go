package torus

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RenderParallel is Render with the theta sweep split across workers. Each worker
// fills a private raster over a contiguous theta range; the rasters are merged in
// range order, so the output is identical to Render.
func RenderParallel(ctx context.Context, a, b float64, width, height, workers int) (string, error) {
	if err := validate(width, height); err != nil {
		return "", err
	}
	if workers > thetaCount {
		workers = thetaCount
	}
	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return Render(a, b, width, height)
	}

	v := newView(a, b, width, height)
	parts := make([]*raster, workers)
	g, ctx := errgroup.WithContext(ctx)
	chunk := (thetaCount + workers - 1) / workers
	for k := 0; k < workers; k++ {
		from := k * chunk
		to := min(from+chunk, thetaCount)
		parts[k] = newRaster(width, height)
		r := parts[k]
		g.Go(func() error {
			for i := from; i < to; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				v.sweep(i, i+1, r.plot)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out.merge(p)
	}
	return out.String(), nil
}
