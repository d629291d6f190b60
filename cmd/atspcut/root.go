// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/atspcut/branchcut"
	"github.com/katalvlaran/atspcut/flow"
)

// envPrefix namespaces environment overrides: ATSPCUT_<FLAG>, dashes as underscores.
const envPrefix = "ATSPCUT"

// app is the state shared by the commands of one invocation.
type app struct {
	v   *viper.Viper
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:   "atspcut",
		Short: "ATSP branch-and-cut with dynamic subtour elimination",
		Long: `atspcut solves Asymmetric TSP instances with the arc formulation and adds
subtour-elimination cuts on demand: lazily on integer candidates (mode lazy) or
in a cutting-plane loop over the LP relaxation (mode relax).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML config file with flag values")
	pf.Bool("verbose", false, "debug logging (every cut)")
	pf.String("format", "text", "output format: text|yaml")
	pf.Duration("time-limit", branchcut.DefaultTimeLimit, "wall-clock limit per solve")
	pf.Bool("node-cuts", false, "lazy mode: also separate fractional nodes with min cuts")
	pf.String("oracle", flow.AlgoDinic.String(), "min-cut algorithm: dinic|edmonds-karp")

	root.AddCommand(newSolveCmd(a), newBenchCmd(a))

	return root
}

// setup binds flags, environment and config file into viper, then builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	v := a.v
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}
	switch f := v.GetString("format"); f {
	case "text", "yaml":
	default:
		return fmt.Errorf("unknown format %q", f)
	}

	cfg := zap.NewProductionConfig()
	if v.GetBool("verbose") {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.log = log

	return nil
}

// options assembles solver options for mode from the bound configuration.
func (a *app) options(mode branchcut.Mode) (branchcut.Options, error) {
	algo, err := flow.ParseAlgorithm(a.v.GetString("oracle"))
	if err != nil {
		return branchcut.Options{}, err
	}
	opts := branchcut.DefaultOptions()
	opts.Mode = mode
	opts.TimeLimit = a.v.GetDuration("time-limit")
	opts.NodeCuts = a.v.GetBool("node-cuts")
	opts.Algorithm = algo
	opts.Logger = a.log

	return opts, nil
}

// splitList flattens comma- or space-separated list values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, f := range strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' }) {
			out = append(out, f)
		}
	}

	return out
}
