// Package dynamo provides core simulation primitives for dynamical systems.
//
// The package defines the fundamental interfaces and types shared by the
// continuous-time engines:
//
//   - [State]: vector representing system state
//   - [System]: interface for autonomous ODE systems (dX/dt = f(X, t))
//   - [Stepper]: fixed-step numerical integrator interface
//   - [Configurable]: live parameter adjustment between steps
//   - [Constrained]: post-step projection onto the admissible region
//
// # Thread Safety
//
// Nothing in this package is thread-safe. The simulation loop is
// tick-driven and single-threaded by contract: exactly one tick is in
// flight at a time and all consumers read published snapshots.
package dynamo
