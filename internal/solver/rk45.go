package solver

import (
	"math"

	"github.com/san-kum/butterfly/internal/lorenz"
)

// Dormand-Prince coefficients (RK45)
var (
	a2 = 1.0 / 5.0
	a3 = 3.0 / 10.0
	a4 = 4.0 / 5.0
	a5 = 8.0 / 9.0

	b21 = 1.0 / 5.0
	b31 = 3.0 / 40.0
	b32 = 9.0 / 40.0
	b41 = 44.0 / 45.0
	b42 = -56.0 / 15.0
	b43 = 32.0 / 9.0
	b51 = 19372.0 / 6561.0
	b52 = -25360.0 / 2187.0
	b53 = 64448.0 / 6561.0
	b54 = -212.0 / 729.0
	b61 = 9017.0 / 3168.0
	b62 = -355.0 / 33.0
	b63 = 46732.0 / 5247.0
	b64 = 49.0 / 176.0
	b65 = -5103.0 / 18656.0

	c1 = 35.0 / 384.0
	c3 = 500.0 / 1113.0
	c4 = 125.0 / 192.0
	c5 = -2187.0 / 6784.0
	c6 = 11.0 / 84.0

	dc1 = c1 - 5179.0/57600.0
	dc3 = c3 - 7571.0/16695.0
	dc4 = c4 - 393.0/640.0
	dc5 = c5 - -92097.0/339200.0
	dc6 = c6 - 187.0/2100.0
	dc7 = -1.0 / 40.0
)

// rk45Step advances s by dt and returns the fifth-order solution together
// with the scaled embedded error estimate (already divided by the
// per-component tolerance scale, so the caller compares it to tol directly).
func rk45Step(p lorenz.Params, s lorenz.State, dt float64) (lorenz.State, float64) {
	k1 := p.Derive(s)
	k2 := p.Derive(s.Add(k1.Scale(dt * b21)))
	k3 := p.Derive(s.Add(k1.Scale(dt * b31)).Add(k2.Scale(dt * b32)))
	k4 := p.Derive(s.Add(k1.Scale(dt * b41)).Add(k2.Scale(dt * b42)).Add(k3.Scale(dt * b43)))
	k5 := p.Derive(s.Add(k1.Scale(dt * b51)).Add(k2.Scale(dt * b52)).Add(k3.Scale(dt * b53)).Add(k4.Scale(dt * b54)))
	k6 := p.Derive(s.Add(k1.Scale(dt * b61)).Add(k2.Scale(dt * b62)).Add(k3.Scale(dt * b63)).Add(k4.Scale(dt * b64)).Add(k5.Scale(dt * b65)))

	next := s.
		Add(k1.Scale(dt * c1)).
		Add(k3.Scale(dt * c3)).
		Add(k4.Scale(dt * c4)).
		Add(k5.Scale(dt * c5)).
		Add(k6.Scale(dt * c6))

	k7 := p.Derive(next)

	est := k1.Scale(dc1).
		Add(k3.Scale(dc3)).
		Add(k4.Scale(dc4)).
		Add(k5.Scale(dc5)).
		Add(k6.Scale(dc6)).
		Add(k7.Scale(dc7)).
		Scale(dt)

	errMax := 0.0
	for _, c := range [3][3]float64{
		{est.X, s.X, k1.X},
		{est.Y, s.Y, k1.Y},
		{est.Z, s.Z, k1.Z},
	} {
		scale := math.Abs(c[1]) + math.Abs(dt*c[2]) + 1e-10
		errMax = math.Max(errMax, math.Abs(c[0])/scale)
	}

	return next, errMax
}
