package entity

import (
	"fmt"

	"github.com/pixl9/sidebrawl/assets"
	"github.com/pixl9/sidebrawl/ecs"
	"github.com/pixl9/sidebrawl/ecs/component"
	"github.com/pixl9/sidebrawl/prefabs"
)

// NewBackgrounds builds one entity per parallax layer.
func NewBackgrounds(w *ecs.World) ([]ecs.Entity, error) {
	spec, err := prefabs.LoadBackgroundSpec()
	if err != nil {
		return nil, fmt.Errorf("background: load spec: %w", err)
	}

	entities := make([]ecs.Entity, 0, len(spec.Layers))
	for i, layer := range spec.Layers {
		entity := ecs.CreateEntity(w)
		fill := parseHexColor(layer.Fill)
		bg := &component.Background{
			Factor:  layer.Factor,
			OffsetY: layer.OffsetY,
			Fill:    fill,
		}
		if layer.Image != "" {
			img, err := assets.LoadImage(layer.Image)
			if err == nil {
				bg.Image = img
			}
			// a missing layer image keeps the flat fill
		}
		if err := ecs.Add(w, entity, component.BackgroundComponent.Kind(), bg); err != nil {
			return nil, fmt.Errorf("background: add layer %d: %w", i, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
