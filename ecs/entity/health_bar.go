package entity

import (
	"fmt"

	"github.com/pixl9/sidebrawl/ecs"
	"github.com/pixl9/sidebrawl/ecs/component"
	"github.com/pixl9/sidebrawl/prefabs"
)

func NewHealthBar(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadHealthBarSpec()
	if err != nil {
		return ecs.NilEntity, fmt.Errorf("health bar: load spec: %w", err)
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.HealthBarComponent.Kind(), &component.HealthBar{
		TargetName: spec.Target,
		X:          spec.X,
		Y:          spec.Y,
		Width:      spec.Width,
		Height:     spec.Height,
		Fill:       1,
		LastFill:   1,
	}); err != nil {
		return ecs.NilEntity, fmt.Errorf("health bar: add health bar: %w", err)
	}

	return entity, nil
}
