package main

import (
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/citypath/config"
	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/finder"
	"github.com/katalvlaran/citypath/loader"
	"github.com/katalvlaran/citypath/logging"
	"github.com/katalvlaran/citypath/metrics"
)

// rootFlags are the persistent flags shared by every subcommand.
// Each one overrides its config value only when set.
type rootFlags struct {
	configPath  string
	dataPath    string
	logLevel    string
	logFormat   string
	metricsFile string
	maxHops     int
}

// app is the per-invocation wiring built from config and flags.
type app struct {
	cfg     config.Config
	log     *slog.Logger
	graph   *core.Graph
	reg     *prometheus.Registry
	metrics *metrics.Metrics
	finder  *finder.Finder
}

func newRootCmd() *cobra.Command {
	var rf rootFlags

	root := &cobra.Command{
		Use:   "citypath",
		Short: "Find routes between cities in a distance matrix",
		Long: `citypath loads a CSV matrix of road distances between cities
(99999 meaning "no direct road") and answers route queries with
breadth-first search, depth-first search, or both.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&rf.configPath, "config", "", "YAML config file")
	pf.StringVar(&rf.dataPath, "data", "", "distance matrix CSV (default from config)")
	pf.StringVar(&rf.logLevel, "log-level", "", "debug|info|warn|error")
	pf.StringVar(&rf.logFormat, "log-format", "", "text|json")
	pf.StringVar(&rf.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")
	pf.IntVar(&rf.maxHops, "max-hops", 0, "reject routes with more roads than this (0: no limit)")

	root.AddCommand(
		newFindCmd(&rf),
		newPromptCmd(&rf),
		newTUICmd(&rf),
		newCitiesCmd(&rf),
	)

	return root
}

// withApp builds the app for cmd, runs fn, and writes the metrics file
// if one is configured, whether or not fn failed.
func withApp(rf *rootFlags, fn func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, rf)
		if err != nil {
			return err
		}
		runErr := fn(cmd, a, args)

		if a.cfg.Metrics.File != "" {
			if err = prometheus.WriteToTextfile(a.cfg.Metrics.File, a.reg); err != nil {
				a.log.Error("write metrics", slog.String("file", a.cfg.Metrics.File), slog.Any("error", err))
				return errors.Join(runErr, err)
			}
		}

		return runErr
	}
}

func newApp(cmd *cobra.Command, rf *rootFlags) (*app, error) {
	cfg, err := config.Load(rf.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Data.Path = rf.dataPath
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = rf.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = rf.logFormat
	}
	if flags.Changed("metrics-file") {
		cfg.Metrics.File = rf.metricsFile
	}
	if flags.Changed("max-hops") {
		cfg.Query.MaxHops = rf.maxHops
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	log := logging.New(cfg.Logging, cmd.ErrOrStderr())

	opts := []loader.Option{loader.WithSentinel(cfg.Data.Sentinel)}
	if cfg.Data.StrictSymmetry {
		opts = append(opts, loader.WithStrictSymmetry())
	}
	g, err := loader.LoadFile(cfg.Data.Path, opts...)
	if err != nil {
		return nil, err
	}
	log.Info("graph loaded",
		slog.String("path", cfg.Data.Path),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()))

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.ObserveGraph(g.VertexCount(), g.EdgeCount())

	return &app{
		cfg:     cfg,
		log:     log,
		graph:   g,
		reg:     reg,
		metrics: m,
		finder:  finder.New(g,
			finder.WithLogger(log),
			finder.WithMetrics(m),
			finder.WithMaxHops(cfg.Query.MaxHops)),
	}, nil
}
