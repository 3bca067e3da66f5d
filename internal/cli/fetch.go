package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/den3110/pulsemap/pkg/pipeline"
	"github.com/den3110/pulsemap/pkg/topology"
)

// fetchCommand creates the fetch command for downloading the fleet topology.
func (c *CLI) fetchCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		refresh bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the fleet topology from the control plane",
		Long: `Download the fleet topology from the Pulse control plane.

The fetch command retrieves the raw node and edge document and saves it as
JSON. The result can be laid out later with 'layout', which works entirely
offline.

Fetched topologies are cached locally for faster subsequent runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.Config.applyTo(&opts)
			opts.Refresh = refresh
			return c.runFetch(cmd, opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "topology.json", "output file")
	cmd.Flags().StringVar(&opts.BaseURL, "base-url", "", "control plane base URL")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache and refetch")

	return cmd
}

// runFetch downloads the topology and writes it to the output file.
func (c *CLI) runFetch(cmd *cobra.Command, opts pipeline.Options, output string, noCache bool) error {
	ctx := cmd.Context()

	runner, err := c.newRunner(cmd, opts, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	t, info, err := c.fetchWithSpinner(ctx, runner, opts)
	if err != nil {
		return err
	}

	if err := topology.WriteTopologyFile(t, output); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess("Topology fetched")
	printFile(output)
	printStats(len(t.Nodes), len(t.Edges), 0, info.FetchHit)
	printNewline()
	printNextStep("Lay out", "pulsemap layout "+output)

	return nil
}

func (c *CLI) fetchWithSpinner(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) (topology.Topology, pipeline.CacheInfo, error) {
	spinner := newSpinnerWithContext(ctx, "Fetching topology...")
	spinner.Start()

	t, info, err := runner.Fetch(ctx, opts)
	if err != nil {
		spinner.StopWithError("Fetch failed")
		return topology.Topology{}, pipeline.CacheInfo{}, err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return topology.Topology{}, pipeline.CacheInfo{}, ctx.Err()
	}
	return t, info, nil
}
