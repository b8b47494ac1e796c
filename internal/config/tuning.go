package config

import "errors"

const DefaultAuthor = "Korolchuk Volodymyr"

// Tuning holds the heuristic's thresholds.
type Tuning struct {
	Author             string  `yaml:"author"`
	SpawnEnergy        int     `yaml:"spawn_energy"`
	NeighborhoodRadius int     `yaml:"neighborhood_radius"`
	GridMin            int     `yaml:"grid_min"`
	GridMax            int     `yaml:"grid_max"`
	PopulationCap      int     `yaml:"population_cap"`
	CongestionCap      int     `yaml:"congestion_cap"`
	CongestionFactor   float64 `yaml:"congestion_factor"`
	MaxHalvings        int     `yaml:"max_halvings"`
}

func DefaultTuning() Tuning {
	return Tuning{
		Author:             DefaultAuthor,
		SpawnEnergy:        250,
		NeighborhoodRadius: 20,
		GridMin:            0,
		GridMax:            99,
		PopulationCap:      60,
		CongestionCap:      30,
		CongestionFactor:   1.1,
		MaxHalvings:        50,
	}
}

func (t Tuning) Validate() error {
	switch {
	case t.Author == "":
		return errors.New("author must not be empty")
	case t.SpawnEnergy <= 0:
		return errors.New("spawn_energy must be positive")
	case t.NeighborhoodRadius < 0:
		return errors.New("neighborhood_radius must not be negative")
	case t.GridMax < t.GridMin:
		return errors.New("grid_max must not be below grid_min")
	case t.PopulationCap <= 0:
		return errors.New("population_cap must be positive")
	case t.CongestionCap <= 0:
		return errors.New("congestion_cap must be positive")
	case t.CongestionFactor <= 0:
		return errors.New("congestion_factor must be positive")
	case t.MaxHalvings < 1:
		return errors.New("max_halvings must be at least 1")
	}
	return nil
}
