package entity

import (
	"fmt"
	"image/color"

	"github.com/pixl9/sidebrawl/assets"
	"github.com/pixl9/sidebrawl/ecs"
	"github.com/pixl9/sidebrawl/ecs/component"
	"github.com/pixl9/sidebrawl/prefabs"
)

var playerPlaceholderFill = color.RGBA{R: 0x3a, G: 0x8f, B: 0xd0, A: 0xff}

// PlayerOverrides adjusts the prefab with level data.
type PlayerOverrides struct {
	X, Y          *float64
	BoundaryLeft  *float64
	BoundaryRight *float64
}

func NewPlayer(w *ecs.World, overrides PlayerOverrides) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return ecs.NilEntity, fmt.Errorf("player: load spec: %w", err)
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return ecs.NilEntity, fmt.Errorf("player: add player tag: %w", err)
	}

	x, y := spec.Transform.X, spec.Transform.Y
	if overrides.X != nil {
		x = *overrides.X
	}
	if overrides.Y != nil {
		y = *overrides.Y
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		X:      x,
		Y:      y,
		ScaleX: spec.Transform.ScaleX,
		ScaleY: spec.Transform.ScaleY,
	}); err != nil {
		return ecs.NilEntity, fmt.Errorf("player: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.CharacterComponent.Kind(), &component.Character{
		State:        component.StateIdle,
		Clips:        clipSetFromSpec(spec.Animation),
		WalkSpeed:    spec.WalkSpeed,
		RunSpeed:     spec.RunSpeed,
		AttackDamage: spec.AttackDamage,
		AttackRadius: spec.AttackRadius,
		AttackReach:  spec.AttackReach,
	}); err != nil {
		return ecs.NilEntity, fmt.Errorf("player: add character: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{
		Current: spec.Health,
		Max:     spec.Health,
	}); err != nil {
		return ecs.NilEntity, fmt.Errorf("player: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return ecs.NilEntity, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, entity, component.IntentComponent.Kind(), &component.Intent{}); err != nil {
		return ecs.NilEntity, fmt.Errorf("player: add intent: %w", err)
	}

	boundary := &component.Boundary{}
	if spec.Boundary != nil {
		boundary.Left = spec.Boundary.Left
		boundary.Right = spec.Boundary.Right
	}
	if overrides.BoundaryLeft != nil {
		boundary.Left = *overrides.BoundaryLeft
	}
	if overrides.BoundaryRight != nil {
		boundary.Right = *overrides.BoundaryRight
	}
	if err := ecs.Add(w, entity, component.BoundaryComponent.Kind(), boundary); err != nil {
		return ecs.NilEntity, fmt.Errorf("player: add boundary: %w", err)
	}

	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:   spec.Collider.Width,
		Height:  spec.Collider.Height,
		OffsetX: spec.Collider.OffsetX,
		OffsetY: spec.Collider.OffsetY,
		Mass:    spec.Collider.Mass,
	}); err != nil {
		return ecs.NilEntity, fmt.Errorf("player: add physics body: %w", err)
	}

	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{
		Image:   assets.LoadImageOrPlaceholder(spec.Sprite.Image, 48, 48, playerPlaceholderFill),
		OriginX: spec.Sprite.OriginX,
		OriginY: spec.Sprite.OriginY,
	}); err != nil {
		return ecs.NilEntity, fmt.Errorf("player: add sprite: %w", err)
	}

	if err := ecs.Add(w, entity, component.AnimationComponent.Kind(), animationFromSpec(spec.Animation, playerPlaceholderFill)); err != nil {
		return ecs.NilEntity, fmt.Errorf("player: add animation: %w", err)
	}

	if err := ecs.Add(w, entity, component.RenderLayerComponent.Kind(), &component.RenderLayer{
		Index: spec.RenderLayer.Index,
	}); err != nil {
		return ecs.NilEntity, fmt.Errorf("player: add render layer: %w", err)
	}

	if err := ecs.Add(w, entity, component.AudioComponent.Kind(), audioFromSpecs(spec.Audio)); err != nil {
		return ecs.NilEntity, fmt.Errorf("player: add audio: %w", err)
	}

	return entity, nil
}
