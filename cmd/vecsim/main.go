// Package main provides the vecsim CLI entry point.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hupe1980/vecsim"
	"github.com/hupe1980/vecsim/bench"
	"github.com/hupe1980/vecsim/internal/simd"
	"github.com/hupe1980/vecsim/internal/vecfile"
	"github.com/hupe1980/vecsim/memory"
)

var version = "dev"

type globalFlags struct {
	logLevel  string
	logFormat string
}

func (g *globalFlags) logger() (*vecsim.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", g.logLevel, err)
	}
	switch strings.ToLower(g.logFormat) {
	case "text":
		return vecsim.NewTextLogger(level), nil
	case "json":
		return vecsim.NewJSONLogger(level), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q (want text or json)", g.logFormat)
	}
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "vecsim",
		Short: "vecsim - vector similarity and exact top-k search",
		Long: `vecsim computes cosine similarity, Euclidean distance and dot products
over fixed-dimension vectors and ranks flat vector sets by similarity.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)

	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&g.logFormat, "log-format", "text", "log format (text, json)")

	rootCmd.AddCommand(newInfoCmd(), newBenchCmd(g), newTopKCmd(g))
	return rootCmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the active kernel and runtime memory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Version:       %s\n", version)
			fmt.Fprintf(w, "Platform:      %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(w, "Kernel:        %s\n", simd.Active())
			fmt.Fprintf(w, "Overridden:    %v (%s)\n", simd.IsOverridden(), simd.EnvOverride)
			fmt.Fprintf(w, "AVX2+FMA:      %v\n", simd.HasAVX2())
			fmt.Fprintf(w, "ASIMD:         %v\n", simd.HasASIMD())
			fmt.Fprintf(w, "CPU features:  %s\n", strings.Join(simd.Features(), ", "))
			fmt.Fprintf(w, "Memory size:   %s\n", humanize.IBytes(memory.MemorySize()))
			return nil
		},
	}
}

func newBenchCmd(g *globalFlags) *cobra.Command {
	var (
		dim        int
		iterations int
		simdOnly   bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the similarity kernels",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := g.logger()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			if !simdOnly {
				r, err := bench.Operations(dim, iterations, vecsim.WithLogger(logger))
				if err != nil {
					return err
				}
				fmt.Fprintln(w, r)
			}

			s, err := bench.SIMD(dim, iterations, vecsim.WithLogger(logger))
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s (kernel %s, %s iterations)\n", s, s.Kernel, humanize.Comma(int64(iterations)))
			return nil
		},
	}

	cmd.Flags().IntVar(&dim, "dim", 384, "vector dimensionality")
	cmd.Flags().IntVar(&iterations, "iterations", 10000, "iterations per operation")
	cmd.Flags().BoolVar(&simdOnly, "simd", false, "only compare the single-precision kernel with the float64 path")
	return cmd
}

func newTopKCmd(g *globalFlags) *cobra.Command {
	var (
		file      string
		query     string
		k         int
		normalize bool
	)

	cmd := &cobra.Command{
		Use:   "topk",
		Short: "Rank the vectors of a file by cosine similarity to a query",
		Example: `  vecsim topk --file vectors.yaml --query 1,0,0 -k 2
  vecsim topk --file vectors.yaml.zst --query 0.3,0.1,0.9 -k 10 --normalize`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := g.logger()
			if err != nil {
				return err
			}

			set, err := vecfile.Load(file)
			if err != nil {
				return err
			}
			q, err := parseVector(query)
			if err != nil {
				return err
			}

			vs, err := vecsim.New(set.Dimensions, vecsim.WithLogger(logger))
			if err != nil {
				return err
			}
			if normalize {
				if err := vs.NormalizeVector(q); err != nil {
					return err
				}
			}

			ranked, err := vs.FindTopKScored(q, set.Flatten(), set.Len(), k)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-5s %-6s %-16s %s\n", "RANK", "INDEX", "LABEL", "SCORE")
			for i, r := range ranked {
				fmt.Fprintf(w, "%-5d %-6d %-16s %.6f\n", i+1, r.Index, set.Label(int(r.Index)), r.Score)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "vector file (.yaml/.json, optionally .zst or .lz4 compressed)")
	cmd.Flags().StringVar(&query, "query", "", "comma-separated query vector")
	cmd.Flags().IntVarP(&k, "k", "k", 10, "number of results")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "normalize the query before ranking")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("query")
	return cmd
}

func parseVector(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid query component %q: %w", p, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.New("empty query vector")
	}
	return out, nil
}
