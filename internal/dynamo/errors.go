package dynamo

import "errors"

// Domain errors for simulation configuration.
var (
	// ErrUnknownParam indicates a SetParam name the system does not expose.
	ErrUnknownParam = errors.New("dynamo: unknown parameter")

	// ErrUnknownSystem indicates a system name with no registered model.
	ErrUnknownSystem = errors.New("dynamo: unknown system")

	// ErrUnknownStepper indicates a stepper name with no implementation.
	ErrUnknownStepper = errors.New("dynamo: unknown stepper")

	// ErrCarryingCapacity indicates a non-positive logistic carrying capacity.
	ErrCarryingCapacity = errors.New("dynamo: carrying capacity must be positive")

	// ErrBufferCapacity indicates a non-positive trajectory buffer capacity.
	ErrBufferCapacity = errors.New("dynamo: buffer capacity must be positive")

	// ErrStepSize indicates a non-positive integration step.
	ErrStepSize = errors.New("dynamo: step size must be positive")
)
