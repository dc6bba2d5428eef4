// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdata/covariance"
	"github.com/katalvlaran/lvdata/dataio"
	"github.com/katalvlaran/lvdata/dataset"
	"github.com/katalvlaran/lvdata/tokenizer"
)

func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <file>",
		Short: "Scan a tabular file and report its variables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.reader()
			if err != nil {
				return err
			}
			ds, err := r.ReadTabular(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return describe(cmd.OutOrStdout(), ds)
		},
	}
}

func describe(w io.Writer, ds *dataset.DataSet) error {
	fmt.Fprintf(w, "%s: %d rows, %d variables\n", ds.Name(), ds.NumRows(), ds.NumCols())
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tCATEGORIES")
	for _, v := range ds.Variables() {
		cats := "-"
		if v.IsDiscrete() {
			cats = strings.Join(v.Categories(), ",")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", v.Name(), v.Kind(), cats)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if ds.HasMultipliers() {
		fmt.Fprintln(w, "case multipliers: yes")
	}
	if k := ds.Knowledge(); !k.IsEmpty() {
		fmt.Fprintf(w, "knowledge: %d tiers, %d forbidden edges, %d required edges\n",
			k.NumTiers(), len(k.ForbiddenEdges()), len(k.RequiredEdges()))
	}
	return nil
}

func (a *app) covarianceCmd() *cobra.Command {
	var (
		pairwise bool
		fast     bool
	)
	cmd := &cobra.Command{
		Use:   "covariance <file>",
		Short: "Compute the covariance matrix of a continuous tabular file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.continuousData(cmd, args[0], fast)
			if err != nil {
				return err
			}
			opts := a.cfg.CovarianceOptions(a.logger)
			var c covariance.Covariances
			if pairwise {
				c, err = covariance.NewOnTheFly(cmd.Context(), ds, opts...)
			} else {
				c, err = covariance.FromDataSet(ds, opts...)
			}
			if err != nil {
				return err
			}
			return covariance.Write(cmd.OutOrStdout(), c)
		},
	}
	cmd.Flags().BoolVar(&pairwise, "pairwise", false, "use pairwise-complete lazy covariances")
	cmd.Flags().BoolVar(&fast, "fast", false, "read through the memory-mapped strict parser")
	return cmd
}

func (a *app) continuousData(cmd *cobra.Command, path string, fast bool) (*dataset.DataSet, error) {
	if !fast {
		r, err := a.reader()
		if err != nil {
			return nil, err
		}
		return r.ReadTabular(cmd.Context(), path)
	}
	d, err := a.cfg.Delimiter()
	if err != nil {
		return nil, err
	}
	b, ok := d.Byte()
	if !ok {
		return nil, errors.Wrapf(dataio.ErrUnsupportedDelimiter, "fast reads need a single-byte delimiter, got %s", d)
	}
	if d.Kind() == tokenizer.Whitespace {
		b = '\t'
	}
	fr, err := dataio.NewFastReader(b, dataio.WithFastLogger(a.logger), dataio.WithFastMetrics(a.metrics))
	if err != nil {
		return nil, err
	}
	return fr.ReadContinuous(cmd.Context(), path)
}

func (a *app) knowledgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "knowledge <file>",
		Short: "Parse a knowledge file and print it in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.reader()
			if err != nil {
				return err
			}
			k, err := r.ReadKnowledge(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), k.String())
			return err
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	var (
		to        string
		sheet     string
		variables bool
	)
	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Re-write a tabular or .xlsx file with another delimiter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := tokenizer.ParseDelimiter(to)
			if err != nil {
				return err
			}
			r, err := a.reader()
			if err != nil {
				return err
			}
			var ds *dataset.DataSet
			if strings.EqualFold(filepath.Ext(args[0]), ".xlsx") {
				ds, err = r.ReadExcel(cmd.Context(), args[0], sheet)
			} else {
				ds, err = r.ReadTabular(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}
			var wopts []dataio.WriteOption
			if variables {
				wopts = append(wopts, dataio.WithVariablesSection())
			}
			return dataio.WriteTabular(cmd.OutOrStdout(), ds, out, wopts...)
		},
	}
	cmd.Flags().StringVar(&to, "to", "tab", "output delimiter")
	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet of an .xlsx input (default: first)")
	cmd.Flags().BoolVar(&variables, "variables", false, "write a /variables section")
	return cmd
}
