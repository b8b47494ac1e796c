package strategy

import "robotchallenge/internal/robot"

// CalculateOptimalStep returns the farthest affordable point toward station
// found by halving the offset from robots[self]. It returns the robot's own
// position when the author is crowded and the trip is too expensive.
func (a *Algorithm) CalculateOptimalStep(self int, robots []robot.Robot, station robot.EnergyStation) robot.Position {
	cur := robots[self]
	from, to := cur.Position, station.Position
	cost := EnergyCost(from, to)

	if robot.Owned(robots, a.Tuning.Author) > a.Tuning.CongestionCap &&
		float64(cost) >= float64(cur.Energy)*a.Tuning.CongestionFactor {
		a.logger().Debug("step throttled", "from", from, "station", to, "cost", cost, "energy", cur.Energy)
		return from
	}

	dir := to.Sub(from).Sign()
	pos := to
	for iter := 1; cost >= cur.Energy; {
		iter++
		if iter > a.Tuning.MaxHalvings {
			pos = from.Add(dir)
			a.logger().Debug("step fallback", "from", from, "to", pos, "energy", cur.Energy)
			break
		}
		pos = halve(from, pos)
		cost = EnergyCost(from, pos)
	}
	return pos
}

// halve moves p halfway back toward from on each axis, truncating toward from.
func halve(from, p robot.Position) robot.Position {
	d := p.Sub(from)
	return robot.Position{X: from.X + d.X/2, Y: from.Y + d.Y/2}
}
