package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"robotchallenge/internal/config"
	"robotchallenge/internal/robot"
	"robotchallenge/internal/strategy"
)

const turnDoc = `
acting: 0
robots:
  - {owner: Korolchuk Volodymyr, energy: 100, pos: [21, 15]}
  - {owner: Korolchuk Volodymyr, energy: 100, pos: [30, 30]}
  - {owner: rival, energy: 10, pos: [20, 20]}
stations:
  - {energy: 50, pos: [20, 20]}
  - {energy: 50, pos: [30, 30]}
  - {energy: 50, pos: [40, 10]}
`

func TestEvaluateActingRobot(t *testing.T) {
	snap, err := config.ParseSnapshot([]byte(turnDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	alg := strategy.New(config.DefaultTuning(), nil)

	rep := Evaluate(alg, snap, -1, false)
	if rep.Author != config.DefaultAuthor {
		t.Fatalf("unexpected author %q", rep.Author)
	}
	if len(rep.Turns) != 1 {
		t.Fatalf("expected one turn, got %d", len(rep.Turns))
	}
	// Both nearer stations are occupied, so robot 0 heads for (40,10).
	turn := rep.Turns[0]
	if turn.Kind != "move" || turn.Target == nil {
		t.Fatalf("expected move, got %+v", turn)
	}
	if *turn.Target != (robot.Position{X: 30, Y: 13}) {
		t.Fatalf("expected halfway step to (30,13), got %v", *turn.Target)
	}
}

func TestEvaluateAll(t *testing.T) {
	snap, err := config.ParseSnapshot([]byte(turnDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	rep := Evaluate(strategy.New(config.DefaultTuning(), nil), snap, -1, true)
	if len(rep.Turns) != 3 {
		t.Fatalf("expected three turns, got %d", len(rep.Turns))
	}
	if rep.Turns[1].Kind != "collect" {
		t.Fatalf("robot on its station should collect, got %+v", rep.Turns[1])
	}
	if rep.Turns[2].Kind != "collect" {
		t.Fatalf("rival on its station should collect, got %+v", rep.Turns[2])
	}
}

func TestEvaluateReportsErrors(t *testing.T) {
	snap, err := config.ParseSnapshot([]byte(turnDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	rep := Evaluate(strategy.New(config.DefaultTuning(), nil), snap, 7, false)
	if len(rep.Turns) != 1 || rep.Turns[0].Error == "" {
		t.Fatalf("expected an error turn, got %+v", rep.Turns)
	}

	var decoded map[string]any
	if err := json.Unmarshal(MarshalPretty(rep), &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if !strings.Contains(string(MarshalPretty(rep)), "invalid acting robot") {
		t.Fatal("expected error text in report")
	}
}

func TestEvaluateBundledSnapshot(t *testing.T) {
	tuning, err := config.LoadTuning(filepath.Join("..", "..", "assets", "tuning.yaml"))
	if err != nil {
		t.Fatalf("tuning: %v", err)
	}
	snap, err := config.LoadSnapshot(filepath.Join("..", "..", "assets", "snapshots", "opening.yaml"))
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	rep := Evaluate(strategy.New(*tuning, nil), snap, -1, true)
	kinds := []string{rep.Turns[0].Kind, rep.Turns[1].Kind, rep.Turns[2].Kind}
	if kinds[0] != "move" || kinds[1] != "create" || kinds[2] != "collect" {
		t.Fatalf("unexpected decisions %v", kinds)
	}
	if *rep.Turns[0].Target != (robot.Position{X: 20, Y: 20}) {
		t.Fatalf("expected move to (20,20), got %v", *rep.Turns[0].Target)
	}
}

func TestNewLoggerWarnsOnUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "verbose")
	out := buf.String()
	if !strings.Contains(out, "unknown log level") || !strings.Contains(out, "verbose") {
		t.Fatalf("expected warning naming the bad level, got %q", out)
	}
	if logger.GetLevel() != log.InfoLevel {
		t.Fatalf("expected info level, got %v", logger.GetLevel())
	}

	buf.Reset()
	logger = newLogger(&buf, "debug")
	if buf.Len() != 0 {
		t.Fatalf("expected no warning for a valid level, got %q", buf.String())
	}
	if logger.GetLevel() != log.DebugLevel {
		t.Fatalf("expected debug level, got %v", logger.GetLevel())
	}
}
