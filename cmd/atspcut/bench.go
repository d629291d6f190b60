// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/atspcut/branchcut"
	"github.com/katalvlaran/atspcut/instance"
)

func newBenchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench DIR",
		Short: "Solve every .atsp/.tsp file in DIR under each mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.bench(cmd, args[0])
		},
	}
	f := cmd.Flags()
	f.StringSlice("modes", []string{branchcut.ModeLazy.String(), branchcut.ModeRelaxation.String()}, "modes to run")
	f.Int("jobs", runtime.GOMAXPROCS(0), "concurrent solves")

	return cmd
}

// instanceFiles lists DIR's .atsp and .tsp files in name order.
func instanceFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".atsp", ".tsp":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)

	return files, nil
}

func (a *app) bench(cmd *cobra.Command, dir string) error {
	var (
		modes []branchcut.Mode
		opts  []branchcut.Options
	)
	for _, m := range splitList(a.v.GetStringSlice("modes")) {
		mode, err := branchcut.ParseMode(m)
		if err != nil {
			return err
		}
		o, err := a.options(mode)
		if err != nil {
			return err
		}
		modes = append(modes, mode)
		opts = append(opts, o)
	}
	if len(modes) == 0 {
		return fmt.Errorf("no modes given")
	}
	files, err := instanceFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .atsp or .tsp files in %s", dir)
	}

	// Each worker owns one row; Solvers are never shared.
	rows := make([]benchRow, len(files)*len(modes))
	g, ctx := errgroup.WithContext(cmd.Context())
	if jobs := a.v.GetInt("jobs"); jobs > 0 {
		g.SetLimit(jobs)
	}
	for fi, path := range files {
		for mi := range modes {
			idx := fi*len(modes) + mi
			path, mi := path, mi
			g.Go(func() error {
				rows[idx] = a.benchOne(ctx, path, opts[mi])
				return ctx.Err()
			})
		}
	}
	if err = g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if a.v.GetString("format") == "yaml" {
		err = writeYAML(out, rows)
	} else {
		err = writeBenchText(out, rows)
	}
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range rows {
		if r.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d runs failed", failed, len(rows))
	}

	return nil
}

// benchOne loads and solves one file; failures land in the row.
func (a *app) benchOne(ctx context.Context, path string, opts branchcut.Options) benchRow {
	name := filepath.Base(path)
	mode := opts.Mode
	fail := func(err error) benchRow {
		a.log.Warn("bench run failed", zap.String("instance", name), zap.Stringer("mode", mode), zap.Error(err))
		return benchRow{Instance: name, Mode: mode.String(), Obj: "NA", Bound: "NA", Error: err.Error()}
	}

	in, err := instance.Load(path)
	if err != nil {
		return fail(err)
	}
	s, err := branchcut.New(in, opts)
	if err != nil {
		return fail(err)
	}
	res, err := s.Solve(ctx)
	if err != nil {
		row := fail(err)
		row.N = in.N()
		return row
	}

	return newBenchRow(name, in.N(), mode, res)
}
