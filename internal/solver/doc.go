// Package solver advances a Lorenz run across a uniform time grid.
//
// Internally it steps with an adaptive Dormand-Prince RK45 pair, clamping
// the step so that every uniform grid time is hit exactly. Two runs that
// share a [TimeGrid] are therefore comparable sample-for-sample, which is
// what the comparison views depend on.
package solver
