package physics

import (
	"fmt"

	"github.com/jsperk/chaoslab/internal/dynamo"
)

// ForName returns a fresh system for a config/CLI name.
func ForName(name string) (dynamo.System, error) {
	switch name {
	case "lorenz":
		return NewLorenz(), nil
	case "brusselator":
		return NewBrusselator(), nil
	default:
		return nil, fmt.Errorf("%w: %s", dynamo.ErrUnknownSystem, name)
	}
}

// Names lists the registered system names.
func Names() []string {
	return []string{"brusselator", "lorenz"}
}
