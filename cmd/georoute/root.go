package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/georoute/core"
	"github.com/katalvlaran/georoute/network"
	"github.com/katalvlaran/georoute/route"
)

// app carries the state shared by every subcommand of one root command.
type app struct {
	cfgFile   string
	network   string
	logLevel  string
	logFormat string

	cfg Config
	log *logrus.Logger
	net *network.Network
	g   *core.Graph
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "georoute",
		Short:        "Shortest paths over geographic road networks",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file")
	pf.StringVar(&a.network, "network", "", "network YAML file (default: embedded Peru network)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: trace|debug|info|warn|error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text|json")

	root.AddCommand(newRouteCmd(a))
	root.AddCommand(newCompareCmd(a))
	root.AddCommand(newNodesCmd(a))

	return root
}

// setup resolves configuration (defaults, then file, then flags), builds the
// logger and loads the network graph.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := defaultConfig()
	if a.cfgFile != "" {
		var err error
		if cfg, err = loadConfig(a.cfgFile); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("network") {
		cfg.Network = a.network
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	log, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	var n *network.Network
	if cfg.Network == "" {
		n, err = network.Peru()
	} else {
		n, err = network.LoadFile(cfg.Network)
	}
	if err != nil {
		return err
	}
	g, err := n.Graph()
	if err != nil {
		return err
	}

	a.cfg, a.log, a.net, a.g = cfg, log, n, g
	log.WithFields(logrus.Fields{
		"network": n.Name,
		"nodes":   g.VertexCount(),
		"links":   g.EdgeCount(),
	}).Debug("network loaded")

	return nil
}

// router returns a Router over the loaded graph.
func (a *app) router(opts ...route.RouterOption) (*route.Router, error) {
	return route.NewRouter(a.g, append([]route.RouterOption{route.WithLogger(a.log)}, opts...)...)
}
