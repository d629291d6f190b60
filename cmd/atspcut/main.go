// SPDX-License-Identifier: MIT

// Command atspcut solves ATSP instances in TSPLIB FULL_MATRIX format with
// branch-and-cut over dynamically separated subtour-elimination constraints.
//
//	atspcut solve data/br17.atsp --mode lazy --summary
//	atspcut bench data/ --modes lazy,relax --jobs 4 --format yaml
//
// Every flag can also come from the environment (ATSPCUT_TIME_LIMIT=60s) or
// from a YAML file passed with --config.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
