// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/atspcut/branchcut"
)

// solveReport is what `solve` prints.
type solveReport struct {
	Instance         string `yaml:"instance"`
	N                int    `yaml:"n"`
	branchcut.Result `yaml:",inline"`
	Verify           string `yaml:"verify,omitempty"`
}

// benchRow is one (instance, mode) run of `bench`.
type benchRow struct {
	Instance string `yaml:"instance"`
	N        int    `yaml:"n,omitempty"`
	Mode     string `yaml:"mode"`
	Status   string `yaml:"status,omitempty"`
	Obj      string `yaml:"obj"`
	Bound    string `yaml:"bound"`
	Nodes    int    `yaml:"nodes"`
	Cuts     int    `yaml:"cuts"`
	Seconds  string `yaml:"time"`
	Error    string `yaml:"error,omitempty"`
}

// num prints a value rounded to 1e-6, "NA" for non-finite values.
func num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "NA"
	}

	return strconv.FormatFloat(math.Round(v*1e6)/1e6, 'f', -1, 64)
}

func objective(r branchcut.Result) string {
	if !r.HasSolution {
		return "NA"
	}

	return num(r.Objective)
}

// resultLine is the one-line summary consumed by result scripts.
func resultLine(r branchcut.Result) string {
	return fmt.Sprintf("RESULT obj=%s bound=%s nodes=%d status=%s time=%.3f cuts=%d",
		objective(r), num(r.Bound), r.Nodes, r.Status, r.Runtime.Seconds(), r.Cuts())
}

func newBenchRow(name string, n int, mode branchcut.Mode, r branchcut.Result) benchRow {
	return benchRow{
		Instance: name,
		N:        n,
		Mode:     mode.String(),
		Status:   r.Status.String(),
		Obj:      objective(r),
		Bound:    num(r.Bound),
		Nodes:    r.Nodes,
		Cuts:     r.Cuts(),
		Seconds:  fmt.Sprintf("%.3f", r.Runtime.Seconds()),
	}
}

func writeSolveText(w io.Writer, rep solveReport, summary bool) error {
	if !summary {
		r := rep.Result
		tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
		fmt.Fprintf(tw, "instance:\t%s\n", rep.Instance)
		fmt.Fprintf(tw, "mode:\t%s\n", r.Mode)
		fmt.Fprintf(tw, "status:\t%s\n", r.Status)
		fmt.Fprintf(tw, "objective:\t%s\n", objective(r))
		fmt.Fprintf(tw, "bound:\t%s\n", num(r.Bound))
		if r.Tour != nil {
			fmt.Fprintf(tw, "tour:\t%v\n", r.Tour)
		}
		fmt.Fprintf(tw, "cuts:\tlazy=%d user=%d\n", r.LazyCuts, r.UserCuts)
		fmt.Fprintf(tw, "nodes:\t%d\n", r.Nodes)
		fmt.Fprintf(tw, "iterations:\t%d\n", r.Iterations)
		fmt.Fprintf(tw, "time:\t%s\n", r.Runtime)
		if rep.Verify != "" {
			fmt.Fprintf(tw, "verify:\t%s\n", rep.Verify)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, resultLine(rep.Result))

	return err
}

func writeBenchText(w io.Writer, rows []benchRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INSTANCE\tN\tMODE\tSTATUS\tOBJ\tBOUND\tNODES\tCUTS\tTIME\tERROR")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			r.Instance, r.N, r.Mode, r.Status, r.Obj, r.Bound, r.Nodes, r.Cuts, r.Seconds, r.Error)
	}

	return tw.Flush()
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
