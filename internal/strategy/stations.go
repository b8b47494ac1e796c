package strategy

import (
	"math"

	"robotchallenge/internal/robot"
)

// IsStationFree reports whether no robot other than robots[self] stands on
// pos. A negative self makes every robot count as an occupant.
func IsStationFree(self int, robots []robot.Robot, pos robot.Position) bool {
	for i, r := range robots {
		if i == self {
			continue
		}
		if r.Position == pos {
			return false
		}
	}
	return true
}

// FindNearestAvailableStation returns the cheapest free station for
// robots[self]. Ties go to the station listed first.
func (a *Algorithm) FindNearestAvailableStation(self int, robots []robot.Robot, m robot.Map) (robot.EnergyStation, bool) {
	from := robots[self].Position
	best := -1
	minCost := math.MaxInt
	for i, st := range m.Stations {
		if !IsStationFree(self, robots, st.Position) {
			continue
		}
		if c := EnergyCost(from, st.Position); c < minCost {
			minCost = c
			best = i
		}
	}
	if best < 0 {
		return robot.EnergyStation{}, false
	}
	return m.Stations[best], true
}
