package models

import (
	configurator "furniture-configurator/internal/configurator/models"
)

// ============================================================
// Project Model
// ============================================================

type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   string    `json:"created_at"`
	Cabinets    []Cabinet `json:"cabinets,omitempty"`
}

// Cabinet is one generated cabinet of a project. Width, Height and Depth
// are the assembly extents; Params and Materials are kept so the cabinet
// can be regenerated.
type Cabinet struct {
	ID          string                        `json:"id"`
	ProjectID   string                        `json:"project_id"`
	FurnitureID string                        `json:"furniture_id"`
	Type        configurator.CabinetType      `json:"type"`
	Frame       configurator.CoordinateFrame  `json:"frame"`
	Width       float64                       `json:"width"`
	Height      float64                       `json:"height"`
	Depth       float64                       `json:"depth"`
	Params      configurator.CabinetParams    `json:"params"`
	Materials   configurator.CabinetMaterials `json:"materials"`
	PartCount   int                           `json:"part_count"`
	CreatedAt   string                        `json:"created_at"`
}

// StoredPart is a generated part with its persistent id.
type StoredPart struct {
	ID        string            `json:"id"`
	ProjectID string            `json:"project_id"`
	CabinetID string            `json:"cabinet_id"`
	Seq       int               `json:"seq"`
	Part      configurator.Part `json:"part"`
}
