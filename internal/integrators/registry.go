package integrators

import (
	"fmt"

	"github.com/jsperk/chaoslab/internal/dynamo"
)

// ForName returns a fresh stepper for a config/CLI name.
func ForName(name string) (dynamo.Stepper, error) {
	switch name {
	case "euler":
		return NewEuler(), nil
	case "rk4":
		return NewRK4(), nil
	default:
		return nil, fmt.Errorf("%w: %s", dynamo.ErrUnknownStepper, name)
	}
}
