// Package physics provides the continuous-time system models.
//
// Each model implements the [dynamo.System] interface, defining the
// differential equations governing the system's evolution:
//
//   - [Lorenz]: butterfly attractor, stepped with explicit Euler
//   - [Brusselator]: autocatalytic chemical oscillator, stepped with RK4
//
// Both models implement [dynamo.Configurable] for runtime parameter
// adjustment; the Brusselator additionally implements [dynamo.Constrained]
// to keep concentrations non-negative. The per-system stepper choice is
// deliberate: Euler is plenty for a trail that is consumed visually, while
// the Brusselator's limit cycle distorts badly under first-order stepping.
package physics
