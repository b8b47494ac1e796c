package strategy

import "robotchallenge/internal/robot"

// Distance is the squared Euclidean distance between a and b.
func Distance(a, b robot.Position) int {
	return a.Sub(b).SqLen()
}

// EnergyCost is what a direct move from a to b costs. It shares the
// distance formula.
func EnergyCost(a, b robot.Position) int {
	return b.Sub(a).SqLen()
}
