package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/salesman/distance"
	"github.com/katalvlaran/salesman/points"
	"github.com/katalvlaran/salesman/tsp"
)

const (
	sceneSplit = "split" // complete graph on the left, tour on the right
	sceneTour  = "tour"  // tour only
)

type solveOpts struct {
	png   string
	scene string
	json  bool
}

// solveResult is the --json output.
type solveResult struct {
	Cities int            `json:"cities"`
	Seed   int64          `json:"seed,omitempty"`
	Cost   uint64         `json:"cost"`
	Path   []points.City  `json:"path"`
	Points []points.Point `json:"points"`
}

// newSolveCmd creates the solve command: build an instance, run Held–Karp,
// print the tour and optionally render it.
func newSolveCmd() *cobra.Command {
	var (
		flags instanceFlags
		opts  = solveOpts{scene: sceneSplit}
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a random or configured instance exactly",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.scene != sceneSplit && opts.scene != sceneTour {
				return fmt.Errorf("unknown scene %q: want %s or %s", opts.scene, sceneSplit, sceneTour)
			}
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			if opts.png != "" {
				if err := cfg.checkCanvas(); err != nil {
					return err
				}
			}
			return runSolve(cmd, cfg, opts)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&opts.png, "png", "o", "", "write a PNG of the solution to this path")
	cmd.Flags().StringVar(&opts.scene, "scene", opts.scene, "PNG layout: split (graph + tour) or tour")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")

	return cmd
}

func runSolve(cmd *cobra.Command, cfg config, opts solveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	inst, err := buildInstance(ctx, cfg)
	if err != nil {
		return err
	}
	n := inst.set.Len()

	table := distance.Build(inst.set)
	logger.Debug("distance table built", "pairs", len(table), "dp_bytes", tsp.TableBytes(n))

	prog := newProgress(logger)
	sol, err := tsp.Solve(table, n,
		tsp.WithMaxCities(cfg.MaxCities),
		tsp.WithMaxTableBytes(cfg.maxTableBytes()),
	)
	if err != nil {
		return err
	}
	elapsed := prog.done(fmt.Sprintf("Solved %d cities", n), "cost", sol.Cost)

	if opts.png != "" {
		if err := renderSolution(cfg, inst.set, sol.Path, opts); err != nil {
			return err
		}
		logger.Debug("wrote image", "path", opts.png)
	}

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(solveResult{
			Cities: n,
			Seed:   inst.seed,
			Cost:   sol.Cost,
			Path:   sol.Path,
			Points: orderedPoints(inst.set),
		})
	}

	printTitle(out, "Held–Karp tour")
	printKeyNumber(out, "cities", n)
	if inst.seed != 0 {
		printKeyNumber(out, "seed", inst.seed)
	}
	printKeyNumber(out, "cost", sol.Cost)
	printKeyValue(out, "path", formatPath(sol.Path))
	printKeyValue(out, "dp tables", formatBytes(tsp.TableBytes(n)))
	printKeyValue(out, "elapsed", elapsed.String())
	if opts.png != "" {
		printSuccess(out, "Rendered")
		printFile(out, opts.png)
	}

	return nil
}

func renderSolution(cfg config, set points.Set, path []points.City, opts solveOpts) error {
	c, err := newCanvas(cfg)
	if err != nil {
		return err
	}
	switch opts.scene {
	case sceneTour:
		err = c.Tour(set, path)
	default:
		err = c.Split(set, path)
	}
	if err != nil {
		return err
	}

	return writePNG(opts.png, c)
}

// orderedPoints lists coordinates by city id.
func orderedPoints(set points.Set) []points.Point {
	ids := set.Sorted()
	pts := make([]points.Point, len(ids))
	for i, id := range ids {
		pts[i] = set[id]
	}

	return pts
}
