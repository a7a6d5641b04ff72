// Package generators assembles complete cabinets from body panels and the
// interior, front, back and trim sub-generators.
package generators

import (
	"errors"
	"fmt"

	"furniture-configurator/internal/configurator/models"
)

var (
	ErrTypeMismatch        = errors.New("cabinet type mismatch")
	ErrUnknownCabinetType  = errors.New("unknown cabinet type")
	ErrMissingCornerConfig = errors.New("corner cabinet without cornerConfig")
)

func checkType(params models.CabinetParams, want models.CabinetType) error {
	if params.Type != want {
		return fmt.Errorf("%w: expected %s, got %q", ErrTypeMismatch, want, params.Type)
	}
	return nil
}
