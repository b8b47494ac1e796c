package config

import (
	"fmt"

	"robotchallenge/internal/robot"
)

// Snapshot is one turn of host state as written to disk.
type Snapshot struct {
	Acting   int          `yaml:"acting"`
	Robots   []RobotDef   `yaml:"robots"`
	Stations []StationDef `yaml:"stations"`
}

type RobotDef struct {
	Owner  string `yaml:"owner"`
	Energy int    `yaml:"energy"`
	Pos    []int  `yaml:"pos"`
}

type StationDef struct {
	Energy int   `yaml:"energy"`
	Pos    []int `yaml:"pos"`
}

func (s *Snapshot) Validate() error {
	if len(s.Robots) == 0 {
		return fmt.Errorf("snapshot has no robots")
	}
	if s.Acting < 0 || s.Acting >= len(s.Robots) {
		return fmt.Errorf("acting index %d out of range [0,%d)", s.Acting, len(s.Robots))
	}
	for i, r := range s.Robots {
		if len(r.Pos) != 2 {
			return fmt.Errorf("robot %d: pos must be [x, y], got %v", i, r.Pos)
		}
	}
	for i, st := range s.Stations {
		if len(st.Pos) != 2 {
			return fmt.Errorf("station %d: pos must be [x, y], got %v", i, st.Pos)
		}
	}
	return nil
}

func toPosition(p []int) robot.Position {
	return robot.Position{X: p[0], Y: p[1]}
}

func (s *Snapshot) RobotList() []robot.Robot {
	out := make([]robot.Robot, 0, len(s.Robots))
	for _, r := range s.Robots {
		out = append(out, robot.Robot{
			Owner:    r.Owner,
			Energy:   r.Energy,
			Position: toPosition(r.Pos),
		})
	}
	return out
}

func (s *Snapshot) Map() robot.Map {
	m := robot.Map{Stations: make([]robot.EnergyStation, 0, len(s.Stations))}
	for _, st := range s.Stations {
		m.Stations = append(m.Stations, robot.EnergyStation{
			Energy:   st.Energy,
			Position: toPosition(st.Pos),
		})
	}
	return m
}
