package strategy

import "robotchallenge/internal/robot"

// Box is an inclusive axis-aligned rectangle on the grid.
type Box struct {
	Min, Max robot.Position
}

func (b Box) Contains(p robot.Position) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Neighborhood is the square of half-width NeighborhoodRadius around center,
// clamped to the grid.
func (a *Algorithm) Neighborhood(center robot.Position) Box {
	r := a.Tuning.NeighborhoodRadius
	return Box{
		Min: robot.Position{X: a.clamp(center.X - r), Y: a.clamp(center.Y - r)},
		Max: robot.Position{X: a.clamp(center.X + r), Y: a.clamp(center.Y + r)},
	}
}

func (a *Algorithm) clamp(v int) int {
	return min(max(v, a.Tuning.GridMin), a.Tuning.GridMax)
}

// IsCreationAdvisable is false once the author's population exceeds the cap;
// otherwise it needs a free station inside the robot's neighborhood.
func (a *Algorithm) IsCreationAdvisable(self int, robots []robot.Robot, m robot.Map) bool {
	if robot.Owned(robots, a.Tuning.Author) > a.Tuning.PopulationCap {
		return false
	}
	box := a.Neighborhood(robots[self].Position)
	for _, st := range m.Stations {
		if box.Contains(st.Position) && IsStationFree(self, robots, st.Position) {
			return true
		}
	}
	return false
}
