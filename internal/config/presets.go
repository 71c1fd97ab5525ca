package config

var Presets = map[string]map[string]*Config{
	"lorenz": {
		"classic": {
			System: "lorenz", Dt: 0.01, Speed: 1.0, Steps: 10000, Trail: DefaultLorenzTrail,
			Params: map[string]float64{"sigma": 10.0, "rho": 28.0, "beta": 8.0 / 3.0},
		},
		"gentle": {
			// Below rho=24.74 the attractor collapses to a fixed point.
			System: "lorenz", Dt: 0.01, Speed: 1.0, Steps: 10000, Trail: DefaultLorenzTrail,
			Params: map[string]float64{"sigma": 10.0, "rho": 14.0, "beta": 8.0 / 3.0},
		},
		"fast": {
			System: "lorenz", Dt: 0.01, Speed: 2.0, Steps: 5000, Trail: DefaultLorenzTrail,
			Params: map[string]float64{"sigma": 10.0, "rho": 28.0, "beta": 8.0 / 3.0},
		},
	},
	"brusselator": {
		"oscillating": {
			System: "brusselator", Dt: 0.01, Speed: 1.0, Steps: 10000, Trail: DefaultBrusselatorTrail,
			Params: map[string]float64{"a": 1.0, "b": 3.0, "k1": 1, "k2": 1, "k3": 1, "k4": 1},
		},
		"damped": {
			System: "brusselator", Dt: 0.01, Speed: 1.0, Steps: 10000, Trail: DefaultBrusselatorTrail,
			Params: map[string]float64{"a": 1.0, "b": 1.5, "k1": 1, "k2": 1, "k3": 1, "k4": 1},
		},
		"driven": {
			System: "brusselator", Dt: 0.01, Speed: 1.0, Steps: 10000, Trail: DefaultBrusselatorTrail,
			Params: map[string]float64{"a": 2.0, "b": 5.5, "k1": 1, "k2": 1, "k3": 1, "k4": 1},
		},
	},
	"logistic": {
		"stable": {
			System:   "logistic",
			Logistic: LogisticConfig{R: 2.0, K: DefaultCarryingCapacity, P0: DefaultInitialPop, Years: DefaultYears},
		},
		"period2": {
			System:   "logistic",
			Logistic: LogisticConfig{R: 3.2, K: DefaultCarryingCapacity, P0: DefaultInitialPop, Years: DefaultYears},
		},
		"chaos": {
			System:   "logistic",
			Logistic: LogisticConfig{R: 3.8, K: DefaultCarryingCapacity, P0: DefaultInitialPop, Years: DefaultYears},
		},
	},
}

func GetPreset(system, preset string) *Config {
	systemPresets, ok := Presets[system]
	if !ok {
		return nil
	}
	cfg, ok := systemPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(system string) []string {
	systemPresets, ok := Presets[system]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(systemPresets))
	for name := range systemPresets {
		names = append(names, name)
	}
	return names
}
