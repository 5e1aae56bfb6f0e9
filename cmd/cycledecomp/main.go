// SPDX-License-Identifier: MIT

// Command cycledecomp loads or generates an undirected graph and splits it
// into edge-disjoint cycles, printing each cycle as it is found.
//
//	cycledecomp -f graph.yaml
//	cycledecomp -g complete:7 --require-full
//	cycledecomp -f graph.yaml --watch --metrics-file /var/lib/node_exporter/cycledecomp.prom
package main

import (
	"context"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	code := 0
	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		code = 1
	}
	stop()
	os.Exit(code)
}
