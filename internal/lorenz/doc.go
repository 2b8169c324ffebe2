// Package lorenz defines the Lorenz vector field and the shared domain
// types for comparing two chaotic runs:
//
//   - [Params]: the sigma/rho/beta coefficients of one run
//   - [State]: a point (x, y, z) in phase space
//   - sentinel errors for invalid configuration and numerical blow-up
//
// The derivative evaluation is a pure function; integration, bounds and
// view composition live in the solver and view packages.
package lorenz
