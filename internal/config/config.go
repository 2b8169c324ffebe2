package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/butterfly/internal/lorenz"
	"github.com/san-kum/butterfly/internal/solver"
	"github.com/san-kum/butterfly/internal/view"
)

// Defaults mirror the dashboard this pipeline was built for: two runs with
// identical parameters and swapped initial coordinates, 21 seconds at 10ms.
const (
	DefaultSigma = 10.0
	DefaultRho   = 28.0
	DefaultBeta  = 2.3
	DefaultT0    = 0.0
	DefaultTf    = 21.0
	DefaultDt    = 0.01
)

// Run configures one chaotic path: vector field coefficients plus the
// initial state.
type Run struct {
	Sigma float64 `yaml:"sigma"`
	Rho   float64 `yaml:"rho"`
	Beta  float64 `yaml:"beta"`
	X0    float64 `yaml:"x0"`
	Y0    float64 `yaml:"y0"`
	Z0    float64 `yaml:"z0"`
}

func (r Run) Params() lorenz.Params {
	return lorenz.Params{Sigma: r.Sigma, Rho: r.Rho, Beta: r.Beta}
}

func (r Run) Initial() lorenz.State {
	return lorenz.State{X: r.X0, Y: r.Y0, Z: r.Z0}
}

// Config is one full generate request: two runs, the shared grid, and the
// per-view animation strides.
type Config struct {
	PathA   Run          `yaml:"path_a"`
	PathB   Run          `yaml:"path_b"`
	T0      float64      `yaml:"t0"`
	Tf      float64      `yaml:"tf"`
	Dt      float64      `yaml:"dt"`
	Strides view.Strides `yaml:"strides"`
}

func (c *Config) Grid() solver.TimeGrid {
	return solver.TimeGrid{T0: c.T0, Tf: c.Tf, Dt: c.Dt}
}

func DefaultConfig() *Config {
	return &Config{
		PathA:   Run{Sigma: DefaultSigma, Rho: DefaultRho, Beta: DefaultBeta, X0: 0, Y0: 1, Z0: 0},
		PathB:   Run{Sigma: DefaultSigma, Rho: DefaultRho, Beta: DefaultBeta, X0: 1, Y0: 0, Z0: 1},
		T0:      DefaultT0,
		Tf:      DefaultTf,
		Dt:      DefaultDt,
		Strides: view.DefaultStrides(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
