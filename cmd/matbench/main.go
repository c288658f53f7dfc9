// SPDX-License-Identifier: MIT

// Command matbench compares single-goroutine and row-partitioned parallel
// integer matrix multiplication over a fixed list of square sizes.
//
// Usage:
//
//	matbench
//
// There are no flags. The report (size, both timings, speedup per block) is
// written to stdout; structured progress logs go to stderr. The exit code is
// always 0: failures are logged, not turned into a process status.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/katalvlaran/matbench/bench"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "matbench: zap logger unavailable, logging disabled: %v\n", err)
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, err = bench.Run(ctx,
		bench.WithSizes(bench.DefaultSizes()...),
		bench.WithThreads(bench.DefaultThreads),
		bench.WithLogger(logger),
		bench.WithOutput(os.Stdout),
	)
	if err != nil {
		logger.Error("benchmark aborted", zap.Error(err))
	}
}
