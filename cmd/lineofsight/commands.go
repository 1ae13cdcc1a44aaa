package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tropical32/line-of-sight/internal/fov"
	"github.com/tropical32/line-of-sight/internal/game"
	"github.com/tropical32/line-of-sight/internal/scenario"
)

var (
	verbose           bool
	appLogger         *zap.Logger
	shutdownTelemetry func(context.Context) error
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lineofsight",
		Short:         "Recursive shadowcasting field of view on a grid",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newScanCmd(), newExploreCmd(), newScenariosCmd())
	return root
}

// logger returns the configured logger, or a no-op one before PersistentPreRunE runs.
func logger() *zap.Logger {
	if appLogger == nil {
		return zap.NewNop()
	}
	return appLogger
}

func newScanCmd() *cobra.Command {
	var (
		id     string
		radius float32
		origin string
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Run one full scan over a scenario and print the grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := scenario.LoadRegistry()
			if err != nil {
				return err
			}
			def, err := registry.Lookup(id)
			if err != nil {
				return err
			}

			at := def.OriginPoint()
			if origin != "" {
				if at, err = parseOrigin(origin); err != nil {
					return err
				}
			}
			r := def.Radius
			if cmd.Flags().Changed("radius") {
				r = radius
			}

			return runScan(cmd.Context(), cmd.OutOrStdout(), def, at, r)
		},
	}

	cmd.Flags().StringVarP(&id, "scenario", "s", "reference", "scenario ID")
	cmd.Flags().Float32VarP(&radius, "radius", "r", 0, "sight radius (defaults to the scenario's)")
	cmd.Flags().StringVarP(&origin, "origin", "o", "", "viewer position as x,y (defaults to the scenario's)")
	return cmd
}

// runScan builds the scenario grid, scans it and writes the dump to w.
func runScan(ctx context.Context, w io.Writer, def *scenario.Def, origin fov.Point, radius float32) error {
	g, err := def.Build()
	if err != nil {
		return err
	}

	fov.NewEngine(g).FullScanContext(ctx, origin, radius)
	x, y := int(origin.X), int(origin.Y)
	if g.Get(x, y) != fov.Blocking {
		g.Set(x, y, fov.Viewer)
	}

	logger().Info("scan complete",
		zap.String("scenario", def.ID),
		zap.Float32("radius", radius),
		zap.Int("visible", g.Count(fov.Visible)),
	)
	return g.Dump(w)
}

// parseOrigin parses "x,y" into a scan origin.
func parseOrigin(s string) (fov.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return fov.Point{}, fmt.Errorf("invalid origin %q: want x,y", s)
	}

	var coords [2]float32
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return fov.Point{}, fmt.Errorf("invalid origin %q: %w", s, err)
		}
		coords[i] = float32(v)
	}
	return fov.Point{X: coords[0], Y: coords[1]}, nil
}

func newExploreCmd() *cobra.Command {
	var (
		id     string
		seed   int64
		radius float32
	)

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Walk a viewer around a scenario or generated dungeon",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := game.ConfigFromEnv()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("scenario") {
				cfg.Scenario = id
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("radius") {
				cfg.Radius = radius
			}

			registry, err := scenario.LoadRegistry()
			if err != nil {
				return err
			}
			palette, err := scenario.LoadPalette()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			session, err := game.NewSession(ctx, cfg, registry, logger())
			if err != nil {
				return err
			}

			g, err := game.New(session, palette, logger())
			if err != nil {
				return err
			}
			return g.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&id, "scenario", "s", "", "scenario ID (empty generates a dungeon)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "dungeon seed (0 picks one)")
	cmd.Flags().Float32VarP(&radius, "radius", "r", game.DefaultRadius, "sight radius")
	return cmd
}

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List embedded scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := scenario.LoadRegistry()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d scenarios\n", registry.Count())
			for _, def := range registry.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-16s %dx%d radius %.0f\n",
					def.ID, def.Name, def.Width, def.Height, def.Radius)
			}
			return nil
		},
	}
}
