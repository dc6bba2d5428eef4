// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdata/config"
	"github.com/katalvlaran/lvdata/dataio"
)

// app carries the state shared by every subcommand.
type app struct {
	configPath  string
	delimiter   string
	logLevel    string
	showMetrics bool

	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *dataio.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "lvdata",
		Short:         "Inspect tabular data, covariance and knowledge files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if !a.showMetrics {
				return nil
			}
			return a.dumpMetrics(cmd.ErrOrStderr())
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	f.StringVarP(&a.delimiter, "delimiter", "d", "", "cell delimiter (whitespace, tab, comma, ... or a regexp)")
	f.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	f.BoolVar(&a.showMetrics, "metrics", false, "print reader metrics to stderr on exit")

	cmd.AddCommand(
		a.describeCmd(),
		a.covarianceCmd(),
		a.knowledgeCmd(),
		a.convertCmd(),
	)
	return cmd
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(logOut io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.delimiter != "" {
		cfg.Reader.Delimiter = a.delimiter
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = cfg.NewLogger(logOut)
	a.registry = prometheus.NewRegistry()
	a.metrics = dataio.NewMetrics(a.registry)
	return nil
}

func (a *app) reader(extra ...dataio.Option) (*dataio.Reader, error) {
	opts, err := a.cfg.ReaderOptions(a.logger, a.metrics)
	if err != nil {
		return nil, err
	}
	return dataio.NewReader(append(opts, extra...)...), nil
}

func (a *app) dumpMetrics(w io.Writer) error {
	families, err := a.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			slices.Sort(labels)
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(w, "%s%v %g\n", mf.GetName(), labels, m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				fmt.Fprintf(w, "%s%v count=%d sum=%g\n", mf.GetName(), labels, h.GetSampleCount(), h.GetSampleSum())
			}
		}
	}
	return nil
}
