package service

import (
	"errors"
	"fmt"
	"regexp"

	"furniture-configurator/internal/configurator/generators"
	"furniture-configurator/internal/configurator/materials"
	"furniture-configurator/internal/configurator/models"

	"github.com/google/uuid"
)

// ============================================================
// Configurator
// ============================================================

var ErrInvalidParams = errors.New("invalid cabinet params")

// Cabinet ids end up in export file names.
var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// CabinetRequest is the input of one cabinet build. Empty ids get a uuid.
type CabinetRequest struct {
	CabinetID   string                  `json:"cabinetId"`
	FurnitureID string                  `json:"furnitureId"`
	Params      models.CabinetParams    `json:"params"`
	Materials   models.CabinetMaterials `json:"materials"`
}

// Configurator resolves materials from the catalog and runs the generators.
type Configurator struct {
	catalog *materials.Catalog
}

func NewConfigurator(catalog *materials.Catalog) *Configurator {
	return &Configurator{catalog: catalog}
}

func (s *Configurator) Catalog() *materials.Catalog {
	return s.catalog
}

// Build генерирует детали одного шкафа.
func (s *Configurator) Build(req CabinetRequest) (models.Assembly, error) {
	if err := validate(req.Params); err != nil {
		return models.Assembly{}, err
	}
	if req.CabinetID != "" && !idPattern.MatchString(req.CabinetID) {
		return models.Assembly{}, fmt.Errorf("%w: cabinetId %q must match %s", ErrInvalidParams, req.CabinetID, idPattern)
	}

	body, back, err := s.catalog.Resolve(req.Materials)
	if err != nil {
		return models.Assembly{}, err
	}
	if req.CabinetID == "" {
		req.CabinetID = uuid.NewString()
	}
	if req.FurnitureID == "" {
		req.FurnitureID = req.CabinetID
	}

	return generators.Generate(req.CabinetID, req.FurnitureID, req.Params, req.Materials, body, back)
}

func validate(p models.CabinetParams) error {
	if p.Width <= 0 || p.Height <= 0 || p.Depth <= 0 {
		return fmt.Errorf("%w: width, height and depth must be positive (got %vx%vx%v)", ErrInvalidParams, p.Width, p.Height, p.Depth)
	}
	if p.BackOverlapRatio < 0 || p.BackOverlapRatio > 1 {
		return fmt.Errorf("%w: backOverlapRatio must be within [0, 1], got %v", ErrInvalidParams, p.BackOverlapRatio)
	}
	return nil
}

// IsClientError reports whether err comes from bad input rather than a
// server fault.
func IsClientError(err error) bool {
	for _, target := range []error{
		ErrInvalidParams,
		materials.ErrUnknownMaterial,
		generators.ErrTypeMismatch,
		generators.ErrUnknownCabinetType,
		generators.ErrMissingCornerConfig,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
