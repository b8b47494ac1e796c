package strategy

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"robotchallenge/internal/config"
	"robotchallenge/internal/robot"
)

var (
	ErrNoFreeStation = errors.New("no free energy station")
	ErrInvalidRobot  = errors.New("invalid acting robot")
)

// Algorithm is the station-harvesting heuristic. It holds no per-turn
// state; every call works from the snapshot it is handed.
type Algorithm struct {
	Tuning config.Tuning
	Log    *log.Logger
}

var _ robot.Algorithm = (*Algorithm)(nil)

var discard = log.New(io.Discard)

func New(t config.Tuning, logger *log.Logger) *Algorithm {
	if logger == nil {
		logger = discard
	}
	return &Algorithm{Tuning: t, Log: logger}
}

// logger tolerates an Algorithm built as a literal without Log.
func (a *Algorithm) logger() *log.Logger {
	if a.Log == nil {
		return discard
	}
	return a.Log
}

func (a *Algorithm) Author() string { return a.Tuning.Author }

// DoStep picks one command for robots[index]: spawn when rich and a free
// station is nearby, otherwise head for the nearest free station.
func (a *Algorithm) DoStep(robots []robot.Robot, index int, m robot.Map) (robot.Command, error) {
	if index < 0 || index >= len(robots) {
		return nil, fmt.Errorf("%w: index %d, %d robots", ErrInvalidRobot, index, len(robots))
	}
	cur := robots[index]
	logger := a.logger().With("index", index, "pos", cur.Position, "energy", cur.Energy)

	if cur.Energy >= a.Tuning.SpawnEnergy && a.IsCreationAdvisable(index, robots, m) {
		logger.Debug("decide", "kind", "create")
		return robot.CreateNewRobot{}, nil
	}

	station, ok := a.FindNearestAvailableStation(index, robots, m)
	if !ok {
		logger.Warn("no free station", "stations", len(m.Stations))
		return nil, fmt.Errorf("robot %d: %w", index, ErrNoFreeStation)
	}
	if cur.Position == station.Position {
		logger.Debug("decide", "kind", "collect", "station", station.Position)
		return robot.CollectEnergy{}, nil
	}

	step := a.CalculateOptimalStep(index, robots, station)
	if step == cur.Position {
		logger.Debug("decide", "kind", "collect", "station", station.Position, "reason", "hold")
		return robot.CollectEnergy{}, nil
	}
	logger.Debug("decide", "kind", "move", "to", step, "station", station.Position)
	return robot.Move{To: step}, nil
}
