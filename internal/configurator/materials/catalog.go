// Package materials loads the board catalog and resolves the material
// references of a cabinet into concrete materials.
package materials

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"furniture-configurator/internal/configurator/models"

	"gopkg.in/yaml.v3"
)

// ============================================================
// Catalog
// ============================================================

var (
	ErrUnknownMaterial = errors.New("unknown material")
	ErrEmptyCatalog    = errors.New("material catalog is empty")
)

type catalogFile struct {
	Materials []models.Material `yaml:"materials"`
}

// Catalog is an immutable set of materials keyed by id.
type Catalog struct {
	byID  map[string]models.Material
	order []string
}

// Load читает каталог материалов из YAML файла.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML. Ids must be unique and thickness positive.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(file.Materials) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{byID: make(map[string]models.Material, len(file.Materials))}
	for i, m := range file.Materials {
		if m.ID == "" {
			return nil, fmt.Errorf("material #%d: missing id", i)
		}
		if m.Thickness <= 0 {
			return nil, fmt.Errorf("material %q: thickness must be positive, got %v", m.ID, m.Thickness)
		}
		if _, dup := c.byID[m.ID]; dup {
			return nil, fmt.Errorf("material %q: duplicate id", m.ID)
		}
		c.byID[m.ID] = m
		c.order = append(c.order, m.ID)
	}
	return c, nil
}

// Lookup returns the material with the given id.
func (c *Catalog) Lookup(id string) (models.Material, error) {
	m, ok := c.byID[id]
	if !ok {
		return models.Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, id)
	}
	return m, nil
}

// All returns materials in file order.
func (c *Catalog) All() []models.Material {
	out := make([]models.Material, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// ByCategory groups materials by category; categories are sorted.
func (c *Catalog) ByCategory() map[string][]models.Material {
	out := map[string][]models.Material{}
	for _, m := range c.All() {
		out[m.Category] = append(out[m.Category], m)
	}
	for _, list := range out {
		sort.SliceStable(list, func(i, j int) bool { return list[i].Thickness < list[j].Thickness })
	}
	return out
}

// Resolve looks up the body material and, when referenced, the back material.
// The body material must exist; an empty back reference yields a nil back.
// A front reference is only validated.
func (c *Catalog) Resolve(refs models.CabinetMaterials) (body models.Material, back *models.Material, err error) {
	body, err = c.Lookup(refs.BodyMaterialID)
	if err != nil {
		return models.Material{}, nil, fmt.Errorf("body: %w", err)
	}
	if refs.FrontMaterialID != "" {
		if _, err := c.Lookup(refs.FrontMaterialID); err != nil {
			return models.Material{}, nil, fmt.Errorf("front: %w", err)
		}
	}
	if refs.BackMaterialID == "" {
		return body, nil, nil
	}
	b, err := c.Lookup(refs.BackMaterialID)
	if err != nil {
		return models.Material{}, nil, fmt.Errorf("back: %w", err)
	}
	return body, &b, nil
}
