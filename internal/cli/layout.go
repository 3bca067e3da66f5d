package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/den3110/pulsemap/pkg/pipeline"
	"github.com/den3110/pulsemap/pkg/topology"
)

// layoutCommand creates the layout command for computing fleet map layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var output string
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [topology.json]",
		Short: "Compute a fleet map layout from a topology file",
		Long: `Compute a fleet map layout from a topology file.

The layout command takes a topology.json file (produced by 'fetch') and runs
the force simulation to position every node on the canvas. The output is a
layout.json snapshot the control panel renders directly.

The same topology, canvas, and seed always produce the same layout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.Config.applyTo(&opts)
			return c.runLayout(cmd, args[0], opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	addLayoutFlags(cmd, &opts)

	return cmd
}

// addLayoutFlags registers the canvas and simulation flags shared by the
// layout, snapshot, and serve commands.
func addLayoutFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "canvas width")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "canvas height")
	cmd.Flags().Float64Var(&opts.Margin, "margin", opts.Margin, "canvas margin")
	cmd.Flags().IntVar(&opts.Iterations, "iterations", opts.Iterations, "simulation steps")
	cmd.Flags().Float64Var(&opts.Damping, "damping", opts.Damping, "velocity decay per step")
	cmd.Flags().Float64Var(&opts.Repulsion, "repulsion", opts.Repulsion, "node repulsion strength")
	cmd.Flags().Float64Var(&opts.Attraction, "attraction", opts.Attraction, "edge attraction strength")
	cmd.Flags().Float64Var(&opts.IdealEdgeLength, "edge-length", opts.IdealEdgeLength, "edge rest length")
	cmd.Flags().Float64Var(&opts.ServerRadius, "server-radius", opts.ServerRadius, "server placement circle radius")
	cmd.Flags().Float64Var(&opts.JitterRange, "jitter-range", opts.JitterRange, "seeding jitter range")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", opts.Seed, "random seed")
}

// runLayout loads the topology, computes the layout, and writes output.
func (c *CLI) runLayout(cmd *cobra.Command, input string, opts pipeline.Options, output string) error {
	ctx := cmd.Context()

	t, err := topology.ReadTopologyFile(input)
	if err != nil {
		return fmt.Errorf("load topology %s: %w", input, err)
	}

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	snapshot, stats, err := pipeline.GenerateLayout(ctx, t, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := topology.WriteLayoutFile(snapshot, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(stats.NodeCount, stats.EdgeCount, stats.DroppedEdges, false)

	return nil
}
