package util

import (
	"math/rand"

	"robotchallenge/internal/robot"
)

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// RandomPosition draws a position with both coordinates in [lo, hi].
func RandomPosition(rng *rand.Rand, lo, hi int) robot.Position {
	span := hi - lo + 1
	return robot.Position{X: lo + rng.Intn(span), Y: lo + rng.Intn(span)}
}

// RandomRoster builds n robots owned by owner with energy in [0, maxEnergy).
func RandomRoster(rng *rand.Rand, n int, owner string, maxEnergy int, lo, hi int) []robot.Robot {
	out := make([]robot.Robot, n)
	for i := range out {
		out[i] = robot.Robot{
			Owner:    owner,
			Energy:   rng.Intn(maxEnergy),
			Position: RandomPosition(rng, lo, hi),
		}
	}
	return out
}
