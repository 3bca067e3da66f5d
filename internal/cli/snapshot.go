package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/den3110/pulsemap/pkg/pipeline"
	"github.com/den3110/pulsemap/pkg/topology"
)

// snapshotCommand creates the snapshot command running the full pipeline.
func (c *CLI) snapshotCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		refresh bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Fetch the topology and compute a layout in one step",
		Long: `Fetch the fleet topology and compute a layout in one step.

Snapshot combines 'fetch' and 'layout': it downloads the topology from the
Pulse control plane (using the local cache when fresh) and immediately runs
the force simulation. The layout itself is always recomputed, so canvas and
force flags take effect even on a cache hit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.Config.applyTo(&opts)
			opts.Refresh = refresh
			return c.runSnapshot(cmd, opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "layout.json", "output file")
	cmd.Flags().StringVar(&opts.BaseURL, "base-url", "", "control plane base URL")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache and refetch")
	addLayoutFlags(cmd, &opts)

	return cmd
}

// runSnapshot executes the full fetch → layout pipeline.
func (c *CLI) runSnapshot(cmd *cobra.Command, opts pipeline.Options, output string, noCache bool) error {
	ctx := cmd.Context()

	runner, err := c.newRunner(cmd, opts, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	prog := newProgress(c.Logger)

	spinner := newSpinnerWithContext(ctx, "Building fleet map...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Snapshot failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := topology.WriteLayoutFile(result.Layout, output); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}
	prog.done(fmt.Sprintf("Placed %d nodes", result.Stats.NodeCount))

	printSuccess("Snapshot complete")
	printFile(output)
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.Stats.DroppedEdges, result.CacheInfo.FetchHit)
	if result.Stats.DroppedEdges > 0 {
		printWarning("%d edges referenced unknown nodes and were dropped", result.Stats.DroppedEdges)
	}

	return nil
}
