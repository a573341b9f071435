package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/salesman/points"
	"github.com/katalvlaran/salesman/tsp"
)

const (
	defaultCities       = 10
	defaultCanvasWidth  = 900
	defaultCanvasHeight = 600
	defaultDot          = 10
	defaultMaxTableMiB  = int(tsp.DefaultMaxTableBytes >> 20)
	// Cities are placed in the left half of the canvas (minus a margin) so
	// the split scene can draw the tour on the right half.
	defaultMargin = 20
)

// errInvalidConfig wraps every configuration problem.
var errInvalidConfig = errors.New("invalid configuration")

// config is the resolved run configuration: defaults, then the TOML file,
// then explicitly set flags.
type config struct {
	Cities    int           `toml:"cities"`
	Width     uint32        `toml:"width"`
	Height    uint32        `toml:"height"`
	Seed      int64         `toml:"seed"`
	MaxCities int           `toml:"max_cities"`
	MaxTable  int           `toml:"max_table_mib"`
	Render    renderConfig  `toml:"render"`
	Points    []pointConfig `toml:"point"`
}

type renderConfig struct {
	CanvasWidth  int  `toml:"canvas_width"`
	CanvasHeight int  `toml:"canvas_height"`
	Dot          int  `toml:"dot"`
	Labels       bool `toml:"labels"`
}

// pointConfig is one fixed city; its index in the list is its id.
type pointConfig struct {
	X uint32 `toml:"x"`
	Y uint32 `toml:"y"`
}

func defaultConfig() config {
	return config{
		Cities:    defaultCities,
		Width:     defaultCanvasWidth/2 - defaultMargin,
		Height:    defaultCanvasHeight - defaultDot,
		MaxCities: tsp.DefaultMaxCities,
		MaxTable:  defaultMaxTableMiB,
		Render: renderConfig{
			CanvasWidth:  defaultCanvasWidth,
			CanvasHeight: defaultCanvasHeight,
			Dot:          defaultDot,
		},
	}
}

// loadConfigFile decodes path over cfg. Keys the config does not know are
// rejected so typos do not pass silently.
func loadConfigFile(path string, cfg *config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: unknown keys %s: %w", path, strings.Join(keys, ", "), errInvalidConfig)
	}

	return nil
}

// validate rejects values the library packages would refuse or panic on.
func (c config) validate() error {
	switch {
	case c.Cities < 0:
		return fmt.Errorf("cities=%d must be >= 0: %w", c.Cities, errInvalidConfig)
	case c.MaxCities < 1 || c.MaxCities > tsp.HardMaxCities:
		return fmt.Errorf("max_cities=%d not in [1,%d]: %w", c.MaxCities, tsp.HardMaxCities, errInvalidConfig)
	case c.MaxTable <= 0:
		return fmt.Errorf("max_table_mib=%d must be positive: %w", c.MaxTable, errInvalidConfig)
	case c.Render.CanvasWidth <= 0 || c.Render.CanvasHeight <= 0:
		return fmt.Errorf("canvas %dx%d must be positive: %w", c.Render.CanvasWidth, c.Render.CanvasHeight, errInvalidConfig)
	case c.Render.Dot <= 0:
		return fmt.Errorf("dot=%d must be positive: %w", c.Render.Dot, errInvalidConfig)
	}
	for i, p := range c.Points {
		if p.X >= c.Width || p.Y >= c.Height {
			return fmt.Errorf("point %d at (%d,%d) outside %dx%d: %w", i, p.X, p.Y, c.Width, c.Height, errInvalidConfig)
		}
	}

	return nil
}

// checkCanvas rejects generation bounds larger than the canvas, so every dot
// and edge lands on (or next to) the frame before it is drawn.
func (c config) checkCanvas() error {
	if uint64(c.Width) > uint64(c.Render.CanvasWidth) || uint64(c.Height) > uint64(c.Render.CanvasHeight) {
		return fmt.Errorf("bounds %dx%d exceed canvas %dx%d: %w",
			c.Width, c.Height, c.Render.CanvasWidth, c.Render.CanvasHeight, errInvalidConfig)
	}

	return nil
}

// maxTableBytes converts the MiB budget for tsp.WithMaxTableBytes.
func (c config) maxTableBytes() uint64 {
	return uint64(c.MaxTable) << 20
}

// fixedPoints converts configured points, or returns nil if none are set.
func (c config) fixedPoints() []points.Point {
	if len(c.Points) == 0 {
		return nil
	}
	pts := make([]points.Point, len(c.Points))
	for i, p := range c.Points {
		pts[i] = points.Point{X: p.X, Y: p.Y}
	}

	return pts
}

// fixedPointsIgnore lists flags that only steer random generation.
var fixedPointsIgnore = []string{"cities", "seed"}

// instanceFlags holds the flags shared by every command that builds an
// instance. Values are only applied when the flag was set explicitly.
type instanceFlags struct {
	configPath string
	v          config
}

func (f *instanceFlags) register(cmd *cobra.Command) {
	d := defaultConfig()
	f.v = d

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "TOML config file")
	fs.IntVarP(&f.v.Cities, "cities", "n", d.Cities, "number of cities to generate")
	fs.Uint32Var(&f.v.Width, "width", d.Width, "generation bound on x (exclusive)")
	fs.Uint32Var(&f.v.Height, "height", d.Height, "generation bound on y (exclusive)")
	fs.Int64Var(&f.v.Seed, "seed", d.Seed, "random seed (0 picks one from the clock)")
	fs.IntVar(&f.v.MaxCities, "max-cities", d.MaxCities, "largest instance the exact solver accepts")
	fs.IntVar(&f.v.MaxTable, "max-table-mib", d.MaxTable, "memory budget for the solver tables in MiB")
	fs.IntVar(&f.v.Render.CanvasWidth, "canvas-width", d.Render.CanvasWidth, "PNG width in pixels")
	fs.IntVar(&f.v.Render.CanvasHeight, "canvas-height", d.Render.CanvasHeight, "PNG height in pixels")
	fs.IntVar(&f.v.Render.Dot, "dot", d.Render.Dot, "city dot size in pixels")
	fs.BoolVar(&f.v.Render.Labels, "labels", d.Render.Labels, "draw city ids next to dots")
}

// resolve merges defaults, the config file and explicitly set flags.
func (f *instanceFlags) resolve(cmd *cobra.Command) (config, error) {
	cfg := defaultConfig()
	if f.configPath != "" {
		if err := loadConfigFile(f.configPath, &cfg); err != nil {
			return config{}, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("cities") {
		cfg.Cities = f.v.Cities
	}
	if fs.Changed("width") {
		cfg.Width = f.v.Width
	}
	if fs.Changed("height") {
		cfg.Height = f.v.Height
	}
	if fs.Changed("seed") {
		cfg.Seed = f.v.Seed
	}
	if fs.Changed("max-cities") {
		cfg.MaxCities = f.v.MaxCities
	}
	if fs.Changed("max-table-mib") {
		cfg.MaxTable = f.v.MaxTable
	}
	if fs.Changed("canvas-width") {
		cfg.Render.CanvasWidth = f.v.Render.CanvasWidth
	}
	if fs.Changed("canvas-height") {
		cfg.Render.CanvasHeight = f.v.Render.CanvasHeight
	}
	if fs.Changed("dot") {
		cfg.Render.Dot = f.v.Render.Dot
	}
	if fs.Changed("labels") {
		cfg.Render.Labels = f.v.Render.Labels
	}

	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	if len(cfg.Points) > 0 {
		for _, name := range fixedPointsIgnore {
			if fs.Changed(name) {
				loggerFromContext(cmd.Context()).Warn("flag ignored: config has fixed points",
					"flag", name, "points", len(cfg.Points))
			}
		}
	}

	return cfg, nil
}
