package config

// Presets are ready-made comparison scenarios for the CLI.
var Presets = map[string]*Config{
	// The dashboard defaults: same coefficients, swapped coordinates.
	"dashboard": DefaultConfig(),

	// Textbook chaotic regime with a barely perturbed twin, the cleanest
	// butterfly-effect demonstration.
	"twins": {
		PathA:   Run{Sigma: 10, Rho: 28, Beta: 8.0 / 3.0, X0: 0, Y0: 1, Z0: 0},
		PathB:   Run{Sigma: 10, Rho: 28, Beta: 8.0 / 3.0, X0: 0, Y0: 1.0001, Z0: 0},
		T0:      0,
		Tf:      21,
		Dt:      0.01,
		Strides: DefaultConfig().Strides,
	},

	// Below the chaotic threshold both runs settle onto fixed points;
	// useful as a non-chaotic control.
	"calm": {
		PathA:   Run{Sigma: 10, Rho: 14, Beta: 8.0 / 3.0, X0: 0, Y0: 1, Z0: 0},
		PathB:   Run{Sigma: 10, Rho: 14, Beta: 8.0 / 3.0, X0: 1, Y0: 0, Z0: 1},
		T0:      0,
		Tf:      21,
		Dt:      0.01,
		Strides: DefaultConfig().Strides,
	},
}

// GetPreset returns a copy of the named preset, so callers can layer
// overrides without mutating the shared table.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
