package drone

import (
	"fmt"
	"slices"

	"dronefleet/internal/pkg/errs"
)

// Model is the weight class a drone is registered with. It is descriptive
// only; capacity comes from the drone's own weight limit.
type Model string

const (
	Lightweight   Model = "Lightweight"
	Middleweight  Model = "Middleweight"
	Cruiserweight Model = "Cruiserweight"
	Heavyweight   Model = "Heavyweight"
)

var allModels = []Model{Lightweight, Middleweight, Cruiserweight, Heavyweight}

// Models lists the supported weight classes.
func Models() []Model {
	return slices.Clone(allModels)
}

func (m Model) Validate() error {
	if !slices.Contains(allModels, m) {
		return errs.NewValueIsInvalidErrorWithCause("model", fmt.Errorf("%q is not a drone model", string(m)))
	}
	return nil
}

func (m Model) String() string {
	return string(m)
}
