package cutlist

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var csvHeader = []string{
	"cabinet", "name", "role", "material", "shape",
	"length_mm", "width_mm", "thickness_mm", "quantity",
	"edges", "banding_per_unit_mm", "banding_total_mm",
}

// WriteCSV writes the board rows followed by one line per hardware item.
// Hardware lines leave the board columns empty and use "hardware" as material.
func WriteCSV(w io.Writer, list CutList) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range list.Rows {
		record := []string{
			r.CabinetID, r.Name, string(r.Role), r.MaterialID, string(r.Shape),
			num(r.Length), num(r.Width), num(r.Thickness), strconv.Itoa(r.Quantity),
			r.Edges, num(r.BandingPerUnit), num(r.BandingTotal),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %q: %w", r.Name, err)
		}
	}

	for _, h := range list.Hardware {
		name := string(h.Role)
		if h.Shape != "" {
			name = fmt.Sprintf("%s %s", h.Shape, h.Role)
		}
		record := []string{
			h.CabinetID, name, string(h.Role), "hardware", "",
			num(h.Height), num(h.Diameter), "", strconv.Itoa(h.Quantity),
			h.Finish, "", "",
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write hardware %q: %w", name, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
