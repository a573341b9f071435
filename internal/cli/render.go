package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	modeGraph  = "graph"  // every pair connected
	modePoints = "points" // dots only
)

type renderOpts struct {
	output string
	mode   string
}

// newRenderCmd creates the render command: draw an instance without solving.
// The graph mode reproduces the complete-graph view of every city pair.
func newRenderCmd() *cobra.Command {
	var (
		flags instanceFlags
		opts  = renderOpts{output: "instance.png", mode: modeGraph}
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a random or configured instance to PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.mode != modeGraph && opts.mode != modePoints {
				return fmt.Errorf("unknown mode %q: want %s or %s", opts.mode, modeGraph, modePoints)
			}
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			if err := cfg.checkCanvas(); err != nil {
				return err
			}
			return runRender(cmd, cfg, opts)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "PNG output path")
	cmd.Flags().StringVar(&opts.mode, "mode", opts.mode, "what to draw: graph or points")

	return cmd
}

func runRender(cmd *cobra.Command, cfg config, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	inst, err := buildInstance(ctx, cfg)
	if err != nil {
		return err
	}

	c, err := newCanvas(cfg)
	if err != nil {
		return err
	}
	prog := newProgress(logger)
	if opts.mode == modePoints {
		c.Points(inst.set)
	} else {
		c.Graph(inst.set)
	}
	if err := writePNG(opts.output, c); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d cities", inst.set.Len()), "mode", opts.mode)

	out := cmd.OutOrStdout()
	printSuccess(out, "Rendered %s", opts.mode)
	printFile(out, opts.output)

	return nil
}
