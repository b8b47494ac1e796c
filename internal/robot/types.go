package robot

type Robot struct {
	Owner    string   `json:"owner"`
	Energy   int      `json:"energy"`
	Position Position `json:"position"`
}

type EnergyStation struct {
	Position Position `json:"position"`
	Energy   int      `json:"energy"`
}

// Map keeps stations in insertion order; iteration order is used for tie-breaks.
type Map struct {
	Stations []EnergyStation `json:"stations"`
}

// Owned counts robots attributed to author.
func Owned(robots []Robot, author string) int {
	n := 0
	for _, r := range robots {
		if r.Owner == author {
			n++
		}
	}
	return n
}
