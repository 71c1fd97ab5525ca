// Package logistic implements the discrete logistic map and its
// bifurcation sweep.
//
// The map P' = r*P*(1 - P/K) models bounded population growth and is the
// classic example of period-doubling into chaos as r grows. [Next] is the
// single-generation primitive, [Model.Series] a year-by-year run, and
// [Sweep] the growth-rate sweep that samples the long-run attractor per
// rate after a settling period. [System] wraps the map so the tick
// clock can drive it a generation at a time.
package logistic
