package main

import (
	"encoding/json"

	"robotchallenge/internal/config"
	"robotchallenge/internal/robot"
)

type Turn struct {
	Index  int             `json:"index"`
	Robot  robot.Robot     `json:"robot"`
	Kind   string          `json:"kind,omitempty"`
	Target *robot.Position `json:"target,omitempty"`
	Error  string          `json:"error,omitempty"`
}

type Report struct {
	Author string `json:"author"`
	Turns  []Turn `json:"turns"`
}

// Evaluate asks alg for one command per requested index against the same
// snapshot. index < 0 falls back to the snapshot's acting robot.
func Evaluate(alg robot.Algorithm, snap *config.Snapshot, index int, all bool) Report {
	robots := snap.RobotList()
	m := snap.Map()

	indices := []int{snap.Acting}
	if index >= 0 {
		indices = []int{index}
	}
	if all {
		indices = indices[:0]
		for i := range robots {
			indices = append(indices, i)
		}
	}

	rep := Report{Author: alg.Author(), Turns: make([]Turn, 0, len(indices))}
	for _, i := range indices {
		turn := Turn{Index: i}
		if i < len(robots) {
			turn.Robot = robots[i]
		}
		cmd, err := alg.DoStep(robots, i, m)
		if err != nil {
			turn.Error = err.Error()
			rep.Turns = append(rep.Turns, turn)
			continue
		}
		turn.Kind = cmd.Kind()
		if to, ok := robot.Target(cmd); ok {
			turn.Target = &to
		}
		rep.Turns = append(rep.Turns, turn)
	}
	return rep
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
