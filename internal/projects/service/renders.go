package service

import (
	"fmt"
	"sync"

	"furniture-configurator/internal/configurator/render"
)

// ============================================================
// Render Cache
// ============================================================

// RenderCache keeps rendered elevations of stored cabinets. Stored cabinets
// never change, so entries stay valid for the life of the process.
type RenderCache struct {
	mu      sync.Mutex
	entries map[string][]byte // project/cabinet/options -> svg
}

func NewRenderCache() *RenderCache {
	return &RenderCache{
		entries: make(map[string][]byte),
	}
}

func renderKey(projectID, cabinetID string, opts render.Options) string {
	return fmt.Sprintf("%s/%s/%g/%d/%t/%t", projectID, cabinetID, opts.Scale, opts.Padding, opts.ShowDimensions, opts.HideDrawerBoxes)
}

func (c *RenderCache) Put(projectID, cabinetID string, opts render.Options, svg []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[renderKey(projectID, cabinetID, opts)] = svg
}

func (c *RenderCache) Get(projectID, cabinetID string, opts render.Options) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	svg, ok := c.entries[renderKey(projectID, cabinetID, opts)]
	return svg, ok
}

func (c *RenderCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
