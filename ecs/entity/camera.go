package entity

import (
	"fmt"

	"github.com/pixl9/sidebrawl/ecs"
	"github.com/pixl9/sidebrawl/ecs/component"
	"github.com/pixl9/sidebrawl/prefabs"
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return ecs.NilEntity, fmt.Errorf("camera: load spec: %w", err)
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return ecs.NilEntity, fmt.Errorf("camera: add camera tag: %w", err)
	}

	cam := &component.Camera{
		TargetName: spec.Target,
		Zoom:       spec.Zoom,
		Smoothing:  spec.Smoothness,
	}
	if spec.Bounds != nil {
		cam.HasBounds = true
		cam.BoundsLeft = spec.Bounds.Left
		cam.BoundsRight = spec.Bounds.Right
	}
	if err := ecs.Add(w, entity, component.CameraComponent.Kind(), cam); err != nil {
		return ecs.NilEntity, fmt.Errorf("camera: add camera: %w", err)
	}

	return entity, nil
}
