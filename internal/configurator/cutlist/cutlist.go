// Package cutlist turns generated parts into a workshop cut list: one row
// per distinct board, edge-banding totals and the hardware that is bought
// rather than cut.
package cutlist

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"furniture-configurator/internal/configurator/models"
)

// Row is one line of the cut list. Length is always the longer side.
type Row struct {
	CabinetID      string           `json:"cabinetId"`
	Name           string           `json:"name"`
	Role           models.PartRole  `json:"role"`
	MaterialID     string           `json:"materialId"`
	Shape          models.ShapeType `json:"shape"`
	Length         float64          `json:"length"`
	Width          float64          `json:"width"`
	Thickness      float64          `json:"thickness"`
	Quantity       int              `json:"quantity"`
	Edges          string           `json:"edges"`
	BandingPerUnit float64          `json:"bandingPerUnit"`
	BandingTotal   float64          `json:"bandingTotal"`
}

// Hardware is a bought-in item such as a leg.
type Hardware struct {
	CabinetID string          `json:"cabinetId"`
	Role      models.PartRole `json:"role"`
	Shape     models.LegShape `json:"shape,omitempty"`
	Finish    string          `json:"finish,omitempty"`
	Height    float64         `json:"height"`
	Diameter  float64         `json:"diameter"`
	Quantity  int             `json:"quantity"`
}

// EdgeBandingSummary holds the banding requirements for a whole list.
type EdgeBandingSummary struct {
	TotalLinearMM    float64 `json:"totalLinearMm"`
	TotalLinearM     float64 `json:"totalLinearM"`
	WastePercent     float64 `json:"wastePercent"`
	TotalWithWasteMM float64 `json:"totalWithWasteMm"`
	TotalWithWasteM  float64 `json:"totalWithWasteM"`
	PartCount        int     `json:"partCount"`
	EdgeCount        int     `json:"edgeCount"`
}

// MaterialUsage is the board area consumed per material.
type MaterialUsage struct {
	MaterialID string  `json:"materialId"`
	Pieces     int     `json:"pieces"`
	AreaM2     float64 `json:"areaM2"`
}

type CutList struct {
	Rows      []Row              `json:"rows"`
	Hardware  []Hardware         `json:"hardware"`
	Banding   EdgeBandingSummary `json:"banding"`
	Materials []MaterialUsage    `json:"materials"`
}

// Build groups identical boards of the same cabinet into one row. Parts
// without a material (legs) are listed as hardware.
func Build(parts []models.Part, wastePercent float64) CutList {
	var list CutList
	rowIndex := map[string]int{}
	hwIndex := map[string]int{}

	for _, p := range parts {
		if p.CabinetMetadata.Role == models.RoleLeg || p.MaterialID == "" {
			addHardware(&list, hwIndex, p)
			continue
		}

		row := rowFor(p)
		key := rowKey(row)
		if i, ok := rowIndex[key]; ok {
			list.Rows[i].Quantity++
			list.Rows[i].BandingTotal += row.BandingPerUnit
			continue
		}
		rowIndex[key] = len(list.Rows)
		list.Rows = append(list.Rows, row)
	}

	list.Banding = Summarize(list.Rows, wastePercent)
	list.Materials = usage(list.Rows)
	return list
}

func rowFor(p models.Part) Row {
	length, width := p.Width, p.Height
	if width > length {
		length, width = width, length
	}
	perUnit := BandingLength(p)
	return Row{
		CabinetID:      p.CabinetMetadata.CabinetID,
		Name:           p.Name,
		Role:           p.CabinetMetadata.Role,
		MaterialID:     p.MaterialID,
		Shape:          p.ShapeType,
		Length:         round1(length),
		Width:          round1(width),
		Thickness:      p.Depth,
		Quantity:       1,
		Edges:          EdgeLabel(p.EdgeBanding),
		BandingPerUnit: perUnit,
		BandingTotal:   perUnit,
	}
}

func rowKey(r Row) string {
	return fmt.Sprintf("%s|%s|%s|%s|%.1f|%.1f|%.1f|%s",
		r.CabinetID, r.Role, r.MaterialID, r.Shape, r.Length, r.Width, r.Thickness, r.Edges)
}

func addHardware(list *CutList, index map[string]int, p models.Part) {
	hw := Hardware{
		CabinetID: p.CabinetMetadata.CabinetID,
		Role:      p.CabinetMetadata.Role,
		Height:    p.Height,
		Diameter:  p.Width,
		Quantity:  1,
	}
	if m := p.CabinetMetadata.LegMetadata; m != nil {
		hw.Shape = m.Shape
		hw.Finish = m.Finish
		hw.Height = m.Height
		hw.Diameter = m.Diameter
	}
	key := fmt.Sprintf("%s|%s|%s|%s|%.1f|%.1f", hw.CabinetID, hw.Role, hw.Shape, hw.Finish, hw.Height, hw.Diameter)
	if i, ok := index[key]; ok {
		list.Hardware[i].Quantity++
		return
	}
	index[key] = len(list.Hardware)
	list.Hardware = append(list.Hardware, hw)
}

// ============================================================
// Edge banding
// ============================================================

// BandingLength returns the banded edge length of one part in millimetres.
// Rect banding uses the local outline; generic banding measures the listed
// polygon edges.
func BandingLength(p models.Part) float64 {
	b := p.EdgeBanding
	if b.Type == models.EdgeBandingGeneric {
		pts := p.ShapeParams.Points
		total := 0.0
		for _, i := range b.Edges {
			if i < 0 || i >= len(pts) {
				continue
			}
			a, c := pts[i], pts[(i+1)%len(pts)]
			total += math.Hypot(c.X-a.X, c.Y-a.Y)
		}
		return total
	}

	total := 0.0
	if b.Top {
		total += p.Width
	}
	if b.Bottom {
		total += p.Width
	}
	if b.Left {
		total += p.Height
	}
	if b.Right {
		total += p.Height
	}
	return total
}

// EdgeLabel renders banded edges as "T+B+L+R" or "E0+E2" for polygons.
func EdgeLabel(b models.EdgeBanding) string {
	var edges []string
	if b.Type == models.EdgeBandingGeneric {
		for _, i := range b.Edges {
			edges = append(edges, fmt.Sprintf("E%d", i))
		}
	} else {
		for _, e := range []struct {
			on    bool
			label string
		}{{b.Top, "T"}, {b.Bottom, "B"}, {b.Left, "L"}, {b.Right, "R"}} {
			if e.on {
				edges = append(edges, e.label)
			}
		}
	}
	if len(edges) == 0 {
		return "-"
	}
	return strings.Join(edges, "+")
}

// Summarize totals the banding of all rows. wastePercent is added on top
// (10 means 10%) and the result is rounded up to whole millimetres.
func Summarize(rows []Row, wastePercent float64) EdgeBandingSummary {
	var totalMM float64
	var partCount, edgeCount int

	for _, r := range rows {
		if r.BandingPerUnit == 0 {
			continue
		}
		totalMM += r.BandingTotal
		partCount += r.Quantity
		edgeCount += edgeCountOf(r.Edges) * r.Quantity
	}

	withWaste := math.Ceil(totalMM * (1 + wastePercent/100))
	return EdgeBandingSummary{
		TotalLinearMM:    totalMM,
		TotalLinearM:     totalMM / 1000,
		WastePercent:     wastePercent,
		TotalWithWasteMM: withWaste,
		TotalWithWasteM:  withWaste / 1000,
		PartCount:        partCount,
		EdgeCount:        edgeCount,
	}
}

func edgeCountOf(label string) int {
	if label == "" || label == "-" {
		return 0
	}
	return strings.Count(label, "+") + 1
}

func usage(rows []Row) []MaterialUsage {
	byID := map[string]*MaterialUsage{}
	for _, r := range rows {
		u, ok := byID[r.MaterialID]
		if !ok {
			u = &MaterialUsage{MaterialID: r.MaterialID}
			byID[r.MaterialID] = u
		}
		u.Pieces += r.Quantity
		u.AreaM2 += r.Length * r.Width * float64(r.Quantity) / 1e6
	}

	out := make([]MaterialUsage, 0, len(byID))
	for _, u := range byID {
		u.AreaM2 = math.Round(u.AreaM2*1000) / 1000
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MaterialID < out[j].MaterialID })
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
