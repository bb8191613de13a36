package entity

import (
	"fmt"
	"image/color"

	"github.com/pixl9/sidebrawl/assets"
	"github.com/pixl9/sidebrawl/ecs"
	"github.com/pixl9/sidebrawl/ecs/component"
	"github.com/pixl9/sidebrawl/prefabs"
)

var enemyPlaceholderFill = color.RGBA{R: 0xc0, G: 0x44, B: 0x38, A: 0xff}

// EnemyOverrides adjusts the prefab with level spawn data.
type EnemyOverrides struct {
	X, Y          *float64
	BoundaryLeft  *float64
	BoundaryRight *float64
	Script        string
}

func NewEnemy(w *ecs.World, overrides EnemyOverrides) (ecs.Entity, error) {
	spec, err := prefabs.LoadEnemySpec()
	if err != nil {
		return ecs.NilEntity, fmt.Errorf("enemy: load spec: %w", err)
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.EnemyTagComponent.Kind(), &component.EnemyTag{}); err != nil {
		return ecs.NilEntity, fmt.Errorf("enemy: add enemy tag: %w", err)
	}

	script := spec.AI.Script
	if overrides.Script != "" {
		script = overrides.Script
	}
	if err := ecs.Add(w, entity, component.AIComponent.Kind(), &component.AI{
		DetectionRange: spec.AI.DetectionRange,
		AttackRange:    spec.AI.AttackRange,
		AttackCooldown: spec.AI.AttackCooldown,
		AttackDamage:   spec.AI.AttackDamage,
		IdleMin:        spec.AI.IdleMin,
		IdleMax:        spec.AI.IdleMax,
		WanderMin:      spec.AI.WanderMin,
		WanderMax:      spec.AI.WanderMax,
		Script:         script,
	}); err != nil {
		return ecs.NilEntity, fmt.Errorf("enemy: add ai: %w", err)
	}

	if err := ecs.Add(w, entity, component.AIRuntimeComponent.Kind(), &component.AIRuntime{}); err != nil {
		return ecs.NilEntity, fmt.Errorf("enemy: add ai runtime: %w", err)
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
		return ecs.NilEntity, fmt.Errorf("enemy: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.CharacterComponent.Kind(), &component.Character{
		State:        component.StateIdle,
		Clips:        clipSetFromSpec(spec.Animation),
		WalkSpeed:    spec.WalkSpeed,
		RunSpeed:     spec.RunSpeed,
		AttackDamage: spec.AI.AttackDamage,
		AttackRadius: spec.AttackRadius,
		AttackReach:  spec.AttackReach,
	}); err != nil {
		return ecs.NilEntity, fmt.Errorf("enemy: add character: %w", err)
	}

	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{
		Current: spec.Health,
		Max:     spec.Health,
	}); err != nil {
		return ecs.NilEntity, fmt.Errorf("enemy: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.IntentComponent.Kind(), &component.Intent{}); err != nil {
		return ecs.NilEntity, fmt.Errorf("enemy: add intent: %w", err)
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
		return ecs.NilEntity, fmt.Errorf("enemy: add boundary: %w", err)
	}

	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:   spec.Collider.Width,
		Height:  spec.Collider.Height,
		OffsetX: spec.Collider.OffsetX,
		OffsetY: spec.Collider.OffsetY,
		Mass:    spec.Collider.Mass,
	}); err != nil {
		return ecs.NilEntity, fmt.Errorf("enemy: add physics body: %w", err)
	}

	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{
		Image:   assets.LoadImageOrPlaceholder(spec.Sprite.Image, 48, 48, enemyPlaceholderFill),
		OriginX: spec.Sprite.OriginX,
		OriginY: spec.Sprite.OriginY,
	}); err != nil {
		return ecs.NilEntity, fmt.Errorf("enemy: add sprite: %w", err)
	}

	if err := ecs.Add(w, entity, component.AnimationComponent.Kind(), animationFromSpec(spec.Animation, enemyPlaceholderFill)); err != nil {
		return ecs.NilEntity, fmt.Errorf("enemy: add animation: %w", err)
	}

	if err := ecs.Add(w, entity, component.RenderLayerComponent.Kind(), &component.RenderLayer{
		Index: spec.RenderLayer.Index,
	}); err != nil {
		return ecs.NilEntity, fmt.Errorf("enemy: add render layer: %w", err)
	}

	if err := ecs.Add(w, entity, component.AudioComponent.Kind(), audioFromSpecs(spec.Audio)); err != nil {
		return ecs.NilEntity, fmt.Errorf("enemy: add audio: %w", err)
	}

	return entity, nil
}
