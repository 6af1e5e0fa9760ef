package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned when a configuration value is outside
	// the domain an engine is defined on (negative iterations, k < 1, ...).
	ErrInvalidParameter = errors.New("model: invalid parameter")
	// ErrEmptyDataset is returned when an engine needs at least one sample.
	ErrEmptyDataset = errors.New("model: empty dataset")
	// ErrNotTrained is returned by predictors used before Fit.
	ErrNotTrained = errors.New("model: not trained")
)

func invalidParam(name string, v any) error {
	return fmt.Errorf("%w: %s=%v", ErrInvalidParameter, name, v)
}
