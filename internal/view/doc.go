// Package view turns two sampled trajectories into renderer-agnostic
// comparison views: per-coordinate time series, pairwise phase planes and a
// 3-D phase portrait. Bounds are computed jointly across both runs so every
// panel keeps the two paths on the same visual scale, and each view carries
// a progressive-reveal frame list for animation.
//
// A [ViewSpec] is plain data (panels, series, bounds, frames). Color, font
// and layout belong to whatever renders it.
package view
