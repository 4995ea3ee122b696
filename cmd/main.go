// Copyright (c) 2023-2026, KNS Group LLC ("YADRO").
// All Rights Reserved.
// This software contains the intellectual property of YADRO
// or is licensed to YADRO from third parties. Use of this
// software and the intellectual property contained therein is expressly
// limited to the terms and conditions of the License Agreement under which
// it is provided by YADRO.
//

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"phone_billing/internal/model"
	"phone_billing/internal/repo/avl"
	"phone_billing/internal/report"
	billing "phone_billing/internal/service"
)

func main() {
	out := flag.String("out", env("BILLING_OUT", "."), "directory for generated cdr and invoice files")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()

	ratesPath := flag.Arg(0)
	callsPath := flag.Arg(1)

	for _, p := range []string{ratesPath, callsPath} {
		if !strings.HasSuffix(p, ".csv") {
			logger.Fatal().Str("path", p).Msg("please provide a valid csv file")
		}
	}

	if err := run(context.Background(), logger, ratesPath, callsPath, *out); err != nil {
		logger.Fatal().Err(err).Msg("billing run failed")
	}
}

func run(ctx context.Context, logger zerolog.Logger, ratesPath, callsPath, outDir string) error {
	start := time.Now()

	rates := avl.NewRateTree()
	subs := avl.NewSubscriberTree()
	defer rates.Release()
	defer subs.Release()

	svc := billing.New(rates, subs, time.UTC, logger)

	ratesFile, err := os.Open(ratesPath)
	if err != nil {
		return fmt.Errorf("open rates: %w", err)
	}
	defer ratesFile.Close()

	if err := svc.LoadRates(ctx, ratesFile); err != nil {
		return fmt.Errorf("load rates: %w", err)
	}

	callsFile, err := os.Open(callsPath)
	if err != nil {
		return fmt.Errorf("open calls: %w", err)
	}
	defer callsFile.Close()

	if err := svc.LoadCalls(ctx, callsFile); err != nil {
		return fmt.Errorf("load calls: %w", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	w := report.NewWriter(outDir, logger)

	for sub := range subs.Traverse(model.OrderPre) {
		months := svc.MonthlyBreakdown(sub)
		if err := w.WriteSubscriber(sub.Number(), months); err != nil {
			return fmt.Errorf("report for %s: %w", sub.Number(), err)
		}
	}

	totals := svc.Totals()
	logger.Info().
		Int64("total_calls", totals.Calls).
		Int64("total_duration_sec", totals.Duration).
		Str("total_price", model.FormatPrice(totals.Price)).
		Int("subscribers", subs.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("billing run complete")

	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] <rates.csv> <calls.csv>\n", os.Args[0])
	flag.PrintDefaults()
}

func env(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
