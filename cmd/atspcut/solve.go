// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/atspcut/branchcut"
	"github.com/katalvlaran/atspcut/instance"
	"github.com/katalvlaran/atspcut/mip"
	"github.com/katalvlaran/atspcut/tsp"
)

// errVerify is returned when --verify disagrees with the exact optimum.
var errVerify = errors.New("verification failed")

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve one TSPLIB ATSP instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd, args[0])
		},
	}
	f := cmd.Flags()
	f.String("mode", branchcut.ModeLazy.String(), "separation mode: lazy|relax")
	f.Bool("verify", false, "cross-check against Held–Karp (n ≤ 16)")
	f.Bool("summary", false, "print only the RESULT line")

	return cmd
}

func (a *app) solve(cmd *cobra.Command, path string) error {
	mode, err := branchcut.ParseMode(a.v.GetString("mode"))
	if err != nil {
		return err
	}
	opts, err := a.options(mode)
	if err != nil {
		return err
	}
	in, err := instance.Load(path)
	if err != nil {
		return err
	}
	s, err := branchcut.New(in, opts)
	if err != nil {
		return err
	}
	a.log.Debug("solving", zap.String("path", path), zap.Int("n", in.N()), zap.Stringer("mode", mode))

	res, err := s.Solve(cmd.Context())
	if err != nil {
		return err
	}

	rep := solveReport{Instance: in.String(), N: in.N(), Result: res}
	var verr error
	if a.v.GetBool("verify") {
		rep.Verify, verr = verify(in, res)
	}

	out := cmd.OutOrStdout()
	if a.v.GetString("format") == "yaml" {
		err = writeYAML(out, rep)
	} else {
		err = writeSolveText(out, rep, a.v.GetBool("summary"))
	}
	if err != nil {
		return err
	}

	return verr
}

// verify compares res with the Held–Karp optimum. Any bound must stay below
// it; a lazy solve proven optimal must match it.
func verify(in *instance.Instance, res branchcut.Result) (string, error) {
	exact, err := tsp.HeldKarp(in.Matrix())
	if errors.Is(err, tsp.ErrTooLarge) {
		return fmt.Sprintf("skipped (n > %d)", tsp.MaxHeldKarp), nil
	}
	if err != nil {
		return "", err
	}
	tol := 1e-6 * (1 + math.Abs(exact.Cost))
	if res.Bound > exact.Cost+tol {
		msg := fmt.Sprintf("bound %s above optimum %s", num(res.Bound), num(exact.Cost))
		return msg, fmt.Errorf("%w: %s", errVerify, msg)
	}
	if res.Mode == branchcut.ModeLazy && res.Status == mip.Optimal && math.Abs(res.Objective-exact.Cost) > tol {
		msg := fmt.Sprintf("objective %s differs from optimum %s", num(res.Objective), num(exact.Cost))
		return msg, fmt.Errorf("%w: %s", errVerify, msg)
	}

	return fmt.Sprintf("ok (held-karp %s)", num(exact.Cost)), nil
}
