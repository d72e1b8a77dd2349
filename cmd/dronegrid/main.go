// Command dronegrid is the collaborator CLI that wraps the routing engine
// (spec §6): it loads a YAML topology, runs router.Route, prints the
// turn-by-turn transcript, and exits 0 on success or 1 on any engine
// failure.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aeromesh/skyroute/config"
	"github.com/aeromesh/skyroute/router"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var topologyPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "dronegrid",
		Short: "Compute a sequential, capacity-aware drone schedule from a topology file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), topologyPath, verbose)
		},
	}

	cmd.Flags().StringVarP(&topologyPath, "topology", "t", "", "path to the YAML topology file (required)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log at Debug level, including TEG size and per-drone routing diagnostics")
	_ = cmd.MarkFlagRequired("topology")

	return cmd
}

func run(ctx context.Context, topologyPath string, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	runID := uuid.NewString()
	logger.Info("dronegrid: starting run", slog.String("run_id", runID), slog.String("topology", topologyPath))

	top, err := config.Load(topologyPath)
	if err != nil {
		logger.Error("dronegrid: failed to load topology", slog.String("run_id", runID), slog.String("error", err.Error()))
		return err
	}

	routes, sched, stats, err := router.Route(ctx, top)
	if err != nil {
		logger.Error("dronegrid: routing failed", slog.String("run_id", runID), slog.String("error", err.Error()))
		return err
	}

	logger.Debug("dronegrid: TEG built",
		slog.String("run_id", runID),
		slog.Int("nodes", stats.NodeCount),
		slog.Int("edges", stats.EdgeCount),
		slog.Int("move_edges", stats.MoveEdgeCount),
		slog.Int("wait_edges", stats.WaitEdgeCount),
	)
	for _, r := range routes {
		logger.Debug("dronegrid: drone routed",
			slog.String("run_id", runID),
			slog.Int("drone", r.Drone),
			slog.Int("steps", len(r.Steps)),
		)
	}

	logger.Info("dronegrid: routing succeeded",
		slog.String("run_id", runID),
		slog.Int("drones", len(routes)),
		slog.Int("transcript_lines", len(sched.Lines())),
	)

	fmt.Println(sched.String())
	return nil
}
