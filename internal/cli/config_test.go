package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/points"
	"github.com/katalvlaran/salesman/tsp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "salesman.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// parsedFlags registers instance flags on a bare command and parses args.
func parsedFlags(t *testing.T, args ...string) (*cobra.Command, *instanceFlags) {
	t.Helper()
	var f instanceFlags
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	require.NoError(t, cmd.ParseFlags(args))

	return cmd, &f
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.validate())
	require.Equal(t, 10, cfg.Cities)
	require.Equal(t, uint32(430), cfg.Width)
	require.Equal(t, uint32(590), cfg.Height)
	require.Equal(t, tsp.DefaultMaxCities, cfg.MaxCities)
	require.Equal(t, tsp.DefaultMaxTableBytes, cfg.maxTableBytes())
	require.NoError(t, cfg.checkCanvas())
	require.Nil(t, cfg.fixedPoints())
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
cities = 7
width = 100
height = 50
seed = 9
max_cities = 12
max_table_mib = 64

[render]
dot = 4
labels = true

[[point]]
x = 0
y = 0

[[point]]
x = 10
y = 0
`)
	cfg := defaultConfig()
	require.NoError(t, loadConfigFile(path, &cfg))
	require.Equal(t, 7, cfg.Cities)
	require.Equal(t, uint32(100), cfg.Width)
	require.Equal(t, int64(9), cfg.Seed)
	require.Equal(t, 12, cfg.MaxCities)
	require.Equal(t, uint64(64<<20), cfg.maxTableBytes())
	require.Equal(t, 4, cfg.Render.Dot)
	require.True(t, cfg.Render.Labels)
	require.Equal(t, defaultCanvasWidth, cfg.Render.CanvasWidth, "unset keys keep defaults")
	require.Equal(t, []points.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}, cfg.fixedPoints())
}

func TestLoadConfigFile_Errors(t *testing.T) {
	cfg := defaultConfig()
	err := loadConfigFile(writeConfig(t, "citiez = 3\n"), &cfg)
	require.ErrorIs(t, err, errInvalidConfig)
	require.Contains(t, err.Error(), "citiez")

	require.Error(t, loadConfigFile(writeConfig(t, "cities = \n"), &cfg))
	require.Error(t, loadConfigFile(filepath.Join(t.TempDir(), "missing.toml"), &cfg))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config)
	}{
		{"negative cities", func(c *config) { c.Cities = -1 }},
		{"zero max cities", func(c *config) { c.MaxCities = 0 }},
		{"max cities above hard cap", func(c *config) { c.MaxCities = tsp.HardMaxCities + 1 }},
		{"zero canvas", func(c *config) { c.Render.CanvasWidth = 0 }},
		{"zero dot", func(c *config) { c.Render.Dot = 0 }},
		{"zero table budget", func(c *config) { c.MaxTable = 0 }},
		{"fixed point beyond width", func(c *config) {
			c.Points = []pointConfig{{X: 1, Y: 1}, {X: c.Width, Y: 0}}
		}},
		{"fixed point beyond height", func(c *config) {
			c.Points = []pointConfig{{X: 0, Y: 1 << 31}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.validate(), errInvalidConfig)
		})
	}
}

func TestCheckCanvas(t *testing.T) {
	cfg := defaultConfig()
	cfg.Width = uint32(cfg.Render.CanvasWidth)
	cfg.Height = uint32(cfg.Render.CanvasHeight)
	require.NoError(t, cfg.checkCanvas())

	cfg.Width++
	require.ErrorIs(t, cfg.checkCanvas(), errInvalidConfig)

	cfg = defaultConfig()
	cfg.Height = 1 << 31
	require.ErrorIs(t, cfg.checkCanvas(), errInvalidConfig)
}

func TestResolve_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "cities = 7\nwidth = 100\n")

	cmd, f := parsedFlags(t, "--config", path, "--cities", "5", "--labels")
	cfg, err := f.resolve(cmd)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Cities, "explicit flag wins")
	require.Equal(t, uint32(100), cfg.Width, "file value kept")
	require.Equal(t, uint32(590), cfg.Height, "default kept")
	require.True(t, cfg.Render.Labels)
}

func TestResolve_Invalid(t *testing.T) {
	cmd, f := parsedFlags(t, "--max-cities", "0")
	_, err := f.resolve(cmd)
	require.ErrorIs(t, err, errInvalidConfig)
}
