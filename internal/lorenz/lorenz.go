package lorenz

import "math"

// Params holds the coefficients of the Lorenz vector field for one run.
// A Params value is immutable for the lifetime of a run; copy by value.
type Params struct {
	Sigma float64 `yaml:"sigma" json:"sigma"`
	Rho   float64 `yaml:"rho" json:"rho"`
	Beta  float64 `yaml:"beta" json:"beta"`
}

// Classic returns the textbook chaotic parameter set.
func Classic() Params { return Params{Sigma: 10, Rho: 28, Beta: 8.0 / 3.0} }

// State is a point (x, y, z) in phase space.
type State struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

// Derive evaluates the Lorenz derivatives at s:
//
//	dx/dt = sigma*(y - x)
//	dy/dt = x*(rho - z) - y
//	dz/dt = x*y - beta*z
func (p Params) Derive(s State) State {
	return State{
		X: p.Sigma * (s.Y - s.X),
		Y: s.X*(p.Rho-s.Z) - s.Y,
		Z: s.X*s.Y - p.Beta*s.Z,
	}
}

func (s State) Add(o State) State     { return State{s.X + o.X, s.Y + o.Y, s.Z + o.Z} }
func (s State) Sub(o State) State     { return State{s.X - o.X, s.Y - o.Y, s.Z - o.Z} }
func (s State) Scale(f float64) State { return State{s.X * f, s.Y * f, s.Z * f} }
func (s State) Norm() float64         { return math.Sqrt(s.X*s.X + s.Y*s.Y + s.Z*s.Z) }
func (s State) Dist(o State) float64  { return s.Sub(o).Norm() }

// IsFinite reports whether every coordinate is a finite number.
func (s State) IsFinite() bool {
	for _, v := range [3]float64{s.X, s.Y, s.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
