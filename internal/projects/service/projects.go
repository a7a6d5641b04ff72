package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"furniture-configurator/internal/configurator/cutlist"
	configurator "furniture-configurator/internal/configurator/models"
	"furniture-configurator/internal/configurator/render"
	cfgservice "furniture-configurator/internal/configurator/service"
	"furniture-configurator/internal/projects/models"
	"furniture-configurator/internal/projects/repository"

	"github.com/google/uuid"
)

// ============================================================
// Project Service
// ============================================================

var ErrInvalidProject = errors.New("invalid project")

type ProjectService struct {
	repo         *repository.Repository
	configurator *cfgservice.Configurator
	renders      *RenderCache
	exports      *ExportStorage
}

func NewProjectService(repo *repository.Repository, configurator *cfgservice.Configurator, renders *RenderCache, exports *ExportStorage) *ProjectService {
	return &ProjectService{
		repo:         repo,
		configurator: configurator,
		renders:      renders,
		exports:      exports,
	}
}

func (s *ProjectService) CreateProject(ctx context.Context, name, description string) (*models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", ErrInvalidProject)
	}
	return s.repo.CreateProject(ctx, models.Project{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
	})
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.repo.ListProjects(ctx)
}

// GetProject возвращает проект вместе со списком шкафов.
func (s *ProjectService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	p, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Cabinets, err = s.repo.ListCabinets(ctx, id)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// AddCabinet generates a cabinet, gives every part a uuid and stores both.
// The configurator assigns the cabinet id when the request has none.
func (s *ProjectService) AddCabinet(ctx context.Context, projectID string, req cfgservice.CabinetRequest) (*models.Cabinet, []models.StoredPart, error) {
	if _, err := s.repo.GetProject(ctx, projectID); err != nil {
		return nil, nil, err
	}

	asm, err := s.configurator.Build(req)
	if err != nil {
		return nil, nil, err
	}

	cab := models.Cabinet{
		ID:          asm.CabinetID,
		ProjectID:   projectID,
		FurnitureID: asm.FurnitureID,
		Type:        asm.Type,
		Frame:       asm.Frame,
		Width:       asm.Width,
		Height:      asm.Height,
		Depth:       asm.Depth,
		Params:      req.Params,
		Materials:   req.Materials,
		PartCount:   len(asm.Parts),
	}
	parts := AssignPartIDs(projectID, asm)

	if err := s.repo.SaveCabinet(ctx, cab, parts); err != nil {
		return nil, nil, err
	}
	return &cab, parts, nil
}

// AssignPartIDs wraps generated parts with fresh uuids, keeping their order.
func AssignPartIDs(projectID string, asm configurator.Assembly) []models.StoredPart {
	out := make([]models.StoredPart, len(asm.Parts))
	for i, p := range asm.Parts {
		out[i] = models.StoredPart{
			ID:        uuid.NewString(),
			ProjectID: projectID,
			CabinetID: asm.CabinetID,
			Seq:       i,
			Part:      p,
		}
	}
	return out
}

func (s *ProjectService) Parts(ctx context.Context, projectID, cabinetID string) ([]models.StoredPart, error) {
	if _, err := s.repo.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.repo.ListParts(ctx, projectID, cabinetID)
}

// CutList builds one cut list over all cabinets of the project.
func (s *ProjectService) CutList(ctx context.Context, projectID string, wastePercent float64) (cutlist.CutList, error) {
	stored, err := s.Parts(ctx, projectID, "")
	if err != nil {
		return cutlist.CutList{}, err
	}
	parts := make([]configurator.Part, len(stored))
	for i, p := range stored {
		parts[i] = p.Part
	}
	return cutlist.Build(parts, wastePercent), nil
}

// Elevation renders a stored cabinet, reusing earlier renders.
func (s *ProjectService) Elevation(ctx context.Context, projectID, cabinetID string, opts render.Options) ([]byte, error) {
	if svg, ok := s.renders.Get(projectID, cabinetID, opts); ok {
		return svg, nil
	}

	asm, err := s.assembly(ctx, projectID, cabinetID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := render.FrontElevation(&buf, asm, opts); err != nil {
		return nil, err
	}
	s.renders.Put(projectID, cabinetID, opts, buf.Bytes())
	return buf.Bytes(), nil
}

func (s *ProjectService) assembly(ctx context.Context, projectID, cabinetID string) (configurator.Assembly, error) {
	cabinets, err := s.repo.ListCabinets(ctx, projectID)
	if err != nil {
		return configurator.Assembly{}, err
	}
	for _, c := range cabinets {
		if c.ID != cabinetID {
			continue
		}
		stored, err := s.repo.ListParts(ctx, projectID, cabinetID)
		if err != nil {
			return configurator.Assembly{}, err
		}
		asm := configurator.Assembly{
			CabinetID:   c.ID,
			FurnitureID: c.FurnitureID,
			Type:        c.Type,
			Frame:       c.Frame,
			Width:       c.Width,
			Height:      c.Height,
			Depth:       c.Depth,
			Parts:       make([]configurator.Part, len(stored)),
		}
		for i, p := range stored {
			asm.Parts[i] = p.Part
		}
		return asm, nil
	}
	return configurator.Assembly{}, fmt.Errorf("cabinet %s: %w", cabinetID, repository.ErrNotFound)
}

// Export пишет cutlist.csv и фронтальные виды всех шкафов в папку проекта.
func (s *ProjectService) Export(ctx context.Context, projectID string, wastePercent float64) ([]string, error) {
	list, err := s.CutList(ctx, projectID, wastePercent)
	if err != nil {
		return nil, err
	}

	var csvBuf bytes.Buffer
	if err := cutlist.WriteCSV(&csvBuf, list); err != nil {
		return nil, err
	}
	files := []string{s.exports.CutListPath(projectID)}
	if err := s.exports.SaveFile(files[0], csvBuf.Bytes()); err != nil {
		return nil, err
	}

	cabinets, err := s.repo.ListCabinets(ctx, projectID)
	if err != nil {
		return nil, err
	}
	for _, c := range cabinets {
		svg, err := s.Elevation(ctx, projectID, c.ID, render.Options{ShowDimensions: true})
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", c.ID, err)
		}
		target := s.exports.ElevationPath(projectID, c.ID)
		if err := s.exports.SaveFile(target, svg); err != nil {
			return nil, err
		}
		files = append(files, target)
	}
	return files, nil
}
