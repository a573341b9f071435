package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/salesman/points"
	"github.com/katalvlaran/salesman/render"
)

// instance is a city layout plus the seed that produced it (0 for fixed
// points from the config file).
type instance struct {
	set  points.Set
	seed int64
}

// buildInstance loads fixed points from cfg or generates cfg.Cities random
// ones. A zero seed is replaced by one from the clock and logged, so any run
// can be reproduced with --seed.
func buildInstance(ctx context.Context, cfg config) (instance, error) {
	logger := loggerFromContext(ctx)

	if pts := cfg.fixedPoints(); pts != nil {
		set, err := points.FromSlice(pts)
		if err != nil {
			return instance{}, fmt.Errorf("config points: %w", err)
		}
		logger.Debug("using fixed points", "cities", set.Len())
		return instance{set: set}, nil
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("generating cities", "cities", cfg.Cities, "width", cfg.Width, "height", cfg.Height, "seed", seed)

	set, err := points.Generate(cfg.Cities, cfg.Width, cfg.Height, points.WithSeed(seed))
	if err != nil {
		return instance{}, err
	}

	return instance{set: set, seed: seed}, nil
}

// newCanvas builds a canvas from the render section of cfg.
func newCanvas(cfg config) (*render.Canvas, error) {
	return render.NewCanvas(cfg.Render.CanvasWidth, cfg.Render.CanvasHeight,
		render.WithDotSize(cfg.Render.Dot),
		render.WithLabels(cfg.Render.Labels),
	)
}

// writePNG encodes c into path, reporting a close error if encoding worked.
func writePNG(path string, c *render.Canvas) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return c.EncodePNG(f)
}
