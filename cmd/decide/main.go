package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"robotchallenge/internal/config"
	"robotchallenge/internal/robot"
	"robotchallenge/internal/script"
	"robotchallenge/internal/strategy"
)

func main() {
	var cfgPath, snapPath, scriptPath, out, level string
	var index int
	var all bool
	flag.StringVar(&cfgPath, "config", "", "tuning YAML (empty = built-in defaults)")
	flag.StringVar(&snapPath, "snapshot", "", "turn snapshot YAML")
	flag.StringVar(&scriptPath, "script", "", "Lua strategy to run instead of the built-in heuristic")
	flag.StringVar(&out, "out", "", "write JSON report to file; empty prints to stdout")
	flag.StringVar(&level, "log-level", "info", "debug, info, warn or error")
	flag.IntVar(&index, "index", -1, "acting robot index (-1 = take it from the snapshot)")
	flag.BoolVar(&all, "all", false, "decide for every robot in the snapshot")
	flag.Parse()

	logger := newLogger(os.Stderr, level)

	if snapPath == "" {
		logger.Fatal("missing -snapshot")
	}
	tuning, err := config.LoadTuning(cfgPath)
	if err != nil {
		logger.Fatal("load tuning", "err", err)
	}
	snap, err := config.LoadSnapshot(snapPath)
	if err != nil {
		logger.Fatal("load snapshot", "err", err)
	}

	var alg robot.Algorithm = strategy.New(*tuning, logger)
	if scriptPath != "" {
		if alg, err = script.Load(tuning.Author, scriptPath); err != nil {
			logger.Fatal("load script", "err", err)
		}
	}

	rep := Evaluate(alg, snap, index, all)
	for _, t := range rep.Turns {
		if t.Error != "" {
			logger.Warn("turn failed", "index", t.Index, "err", t.Error)
		}
	}

	b := MarshalPretty(rep)
	if out == "" {
		fmt.Println(string(b))
		return
	}
	if err := os.WriteFile(out, b, 0644); err != nil {
		logger.Fatal("write report", "path", out, "err", err)
	}
	logger.Info("report written", "author", rep.Author, "turns", len(rep.Turns), "out", out)
}

// newLogger falls back to info on an unknown level and says so.
func newLogger(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "decide",
		ReportTimestamp: true,
	})
	if err != nil {
		logger.Warn("unknown log level, using info", "log-level", level)
	}
	return logger
}
