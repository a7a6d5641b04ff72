package interior

import (
	"errors"
	"fmt"

	"furniture-configurator/internal/configurator/calc"
	"furniture-configurator/internal/configurator/models"
)

// ============================================================
// Tree rebuild operations
// ============================================================
//
// Every operation returns a new root. Nodes on the edited path are copied,
// untouched subtrees are shared, and the input tree is never modified.

var (
	ErrInvalidPath = errors.New("invalid zone path")
	ErrNotNested   = errors.New("zone is not nested")
	ErrMaxDepth    = errors.New("maximum zone depth reached")
)

// ZoneAt returns the zone at path (child indices from the root).
func ZoneAt(root models.InteriorZone, path []int) (models.InteriorZone, bool) {
	zone := root
	for _, i := range path {
		if i < 0 || i >= len(zone.Children) {
			return models.InteriorZone{}, false
		}
		zone = zone.Children[i]
	}
	return zone, true
}

// ReplaceAt swaps the zone at path for zone.
func ReplaceAt(root models.InteriorZone, path []int, zone models.InteriorZone) (models.InteriorZone, error) {
	return update(root, path, 0, func(models.InteriorZone) (models.InteriorZone, error) {
		return zone, nil
	})
}

// InsertChild adds child to the NESTED zone at path before index. A disabled
// partition is added so partitions stay one shorter than children.
func InsertChild(root models.InteriorZone, path []int, index int, child models.InteriorZone) (models.InteriorZone, error) {
	return update(root, path, 0, func(z models.InteriorZone) (models.InteriorZone, error) {
		if z.ContentType != models.ZoneNested {
			return z, ErrNotNested
		}
		if index < 0 || index > len(z.Children) {
			return z, fmt.Errorf("insert at %d: %w", index, ErrInvalidPath)
		}
		children := make([]models.InteriorZone, 0, len(z.Children)+1)
		children = append(children, z.Children[:index]...)
		children = append(children, child)
		children = append(children, z.Children[index:]...)
		z.Children = children
		z.Partitions = resizePartitions(z.Partitions, len(children), index)
		return z, nil
	})
}

// RemoveChild drops the child at index. A NESTED zone left without children
// becomes EMPTY.
func RemoveChild(root models.InteriorZone, path []int, index int) (models.InteriorZone, error) {
	return update(root, path, 0, func(z models.InteriorZone) (models.InteriorZone, error) {
		if z.ContentType != models.ZoneNested {
			return z, ErrNotNested
		}
		if index < 0 || index >= len(z.Children) {
			return z, fmt.Errorf("remove %d: %w", index, ErrInvalidPath)
		}
		children := make([]models.InteriorZone, 0, len(z.Children)-1)
		children = append(children, z.Children[:index]...)
		children = append(children, z.Children[index+1:]...)

		partitions := make([]models.PartitionConfig, 0, len(z.Partitions))
		drop := index
		if drop >= len(z.Partitions) {
			drop = len(z.Partitions) - 1
		}
		for i, p := range z.Partitions {
			if i != drop {
				partitions = append(partitions, p)
			}
		}

		z.Children = children
		z.Partitions = resizePartitions(partitions, len(children), len(partitions))
		if len(children) == 0 {
			z.ContentType = models.ZoneEmpty
			z.Children = nil
			z.Partitions = nil
		}
		return z, nil
	})
}

// Split turns the leaf at path into a NESTED zone with count equal children.
// The leaf's content moves into the first child.
func Split(root models.InteriorZone, path []int, direction models.Direction, count int) (models.InteriorZone, error) {
	if count < 2 {
		return root, fmt.Errorf("split into %d: %w", count, ErrInvalidPath)
	}
	if len(path) >= calc.MaxZoneDepth {
		return root, ErrMaxDepth
	}
	return update(root, path, 0, func(z models.InteriorZone) (models.InteriorZone, error) {
		if !z.IsLeaf() {
			return z, fmt.Errorf("split non-leaf: %w", ErrInvalidPath)
		}
		first := z
		first.HeightConfig = models.HeightConfig{Mode: models.HeightRatio, Ratio: 1}
		first.WidthConfig = nil
		if direction == models.DivisionVertical {
			first.WidthConfig = &models.WidthConfig{Mode: models.WidthProportional, Ratio: 1}
		}

		children := []models.InteriorZone{first}
		for i := 1; i < count; i++ {
			child := models.InteriorZone{
				ContentType:  models.ZoneEmpty,
				HeightConfig: first.HeightConfig,
			}
			if first.WidthConfig != nil {
				wc := *first.WidthConfig
				child.WidthConfig = &wc
			}
			children = append(children, child)
		}

		return models.InteriorZone{
			ID:                z.ID,
			ContentType:       models.ZoneNested,
			HeightConfig:      z.HeightConfig,
			WidthConfig:       z.WidthConfig,
			DivisionDirection: direction,
			Children:          children,
			Partitions:        make([]models.PartitionConfig, count-1),
			Depth:             z.Depth,
		}, nil
	})
}

// SetContent changes what the leaf at path holds. Shelf and drawer settings
// that do not belong to the new content type are cleared.
func SetContent(root models.InteriorZone, path []int, content models.ZoneContentType, shelves *models.ShelfConfig, drawers *models.DrawerConfiguration) (models.InteriorZone, error) {
	if content == models.ZoneNested {
		return root, fmt.Errorf("use Split to nest: %w", ErrInvalidPath)
	}
	return update(root, path, 0, func(z models.InteriorZone) (models.InteriorZone, error) {
		if !z.IsLeaf() {
			return z, fmt.Errorf("set content on non-leaf: %w", ErrInvalidPath)
		}
		z.ContentType = content
		z.ShelvesConfig = nil
		z.DrawerConfig = nil
		switch content {
		case models.ZoneShelves:
			z.ShelvesConfig = shelves
		case models.ZoneDrawers:
			z.DrawerConfig = drawers
		}
		return z, nil
	})
}

// SetPartition replaces partition i of the NESTED zone at path.
func SetPartition(root models.InteriorZone, path []int, i int, partition models.PartitionConfig) (models.InteriorZone, error) {
	return update(root, path, 0, func(z models.InteriorZone) (models.InteriorZone, error) {
		if z.ContentType != models.ZoneNested {
			return z, ErrNotNested
		}
		if i < 0 || i >= len(z.Children)-1 {
			return z, fmt.Errorf("partition %d: %w", i, ErrInvalidPath)
		}
		partitions := resizePartitions(z.Partitions, len(z.Children), len(z.Partitions))
		partitions[i] = partition
		z.Partitions = partitions
		return z, nil
	})
}

func update(zone models.InteriorZone, path []int, depth int, fn func(models.InteriorZone) (models.InteriorZone, error)) (models.InteriorZone, error) {
	if len(path) == 0 {
		updated, err := fn(zone)
		if err != nil {
			return zone, err
		}
		return withDepth(updated, depth), nil
	}
	i := path[0]
	if i < 0 || i >= len(zone.Children) {
		return zone, fmt.Errorf("child %d at depth %d: %w", i, depth, ErrInvalidPath)
	}
	child, err := update(zone.Children[i], path[1:], depth+1, fn)
	if err != nil {
		return zone, err
	}
	children := make([]models.InteriorZone, len(zone.Children))
	copy(children, zone.Children)
	children[i] = child
	zone.Children = children
	return zone, nil
}

// withDepth returns zone with Depth fields renumbered from depth downward.
func withDepth(zone models.InteriorZone, depth int) models.InteriorZone {
	zone.Depth = depth
	if len(zone.Children) == 0 {
		return zone
	}
	children := make([]models.InteriorZone, len(zone.Children))
	for i, c := range zone.Children {
		children[i] = withDepth(c, depth+1)
	}
	zone.Children = children
	return zone
}

// resizePartitions returns a fresh slice of length max(0, childCount-1),
// inserting a disabled partition at insertAt when it grows.
func resizePartitions(partitions []models.PartitionConfig, childCount, insertAt int) []models.PartitionConfig {
	want := childCount - 1
	if want < 0 {
		want = 0
	}
	out := make([]models.PartitionConfig, 0, want)
	out = append(out, partitions...)
	for len(out) < want {
		at := insertAt
		if at > len(out) {
			at = len(out)
		}
		out = append(out, models.PartitionConfig{})
		copy(out[at+1:], out[at:])
		out[at] = models.PartitionConfig{}
	}
	return out[:want]
}
