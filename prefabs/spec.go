// Package prefabs loads entity definitions from YAML. Files on disk take
// priority over the embedded defaults so designers can edit prefabs while
// the game runs; the watcher reports which files changed.
package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec decodes a prefab file into the given spec type.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

type PlayerSpec struct {
	Name         string          `yaml:"name"`
	WalkSpeed    float64         `yaml:"walk_speed"`
	RunSpeed     float64         `yaml:"run_speed"`
	Health       int             `yaml:"health"`
	AttackDamage int             `yaml:"attack_damage"`
	AttackRadius float64         `yaml:"attack_radius"`
	AttackReach  float64         `yaml:"attack_reach"`
	Transform    TransformSpec   `yaml:"transform"`
	Collider     ColliderSpec    `yaml:"collider"`
	Boundary     *BoundarySpec   `yaml:"boundary"`
	Sprite       SpriteSpec      `yaml:"sprite"`
	Animation    AnimationSpec   `yaml:"animation"`
	RenderLayer  RenderLayerSpec `yaml:"render_layer"`
	Audio        []AudioSpec     `yaml:"audio"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type EnemySpec struct {
	Name         string          `yaml:"name"`
	WalkSpeed    float64         `yaml:"walk_speed"`
	RunSpeed     float64         `yaml:"run_speed"`
	Health       int             `yaml:"health"`
	AttackRadius float64         `yaml:"attack_radius"`
	AttackReach  float64         `yaml:"attack_reach"`
	AI           AISpec          `yaml:"ai"`
	Transform    TransformSpec   `yaml:"transform"`
	Collider     ColliderSpec    `yaml:"collider"`
	Boundary     *BoundarySpec   `yaml:"boundary"`
	Sprite       SpriteSpec      `yaml:"sprite"`
	Animation    AnimationSpec   `yaml:"animation"`
	RenderLayer  RenderLayerSpec `yaml:"render_layer"`
	Audio        []AudioSpec     `yaml:"audio"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CameraSpec struct {
	Name       string        `yaml:"name"`
	Target     string        `yaml:"target"`
	Zoom       float64       `yaml:"zoom"`
	Smoothness float64       `yaml:"smoothness"`
	Bounds     *BoundarySpec `yaml:"bounds"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type BackgroundSpec struct {
	Layers []BackgroundLayerSpec `yaml:"layers"`
}

type BackgroundLayerSpec struct {
	Image   string  `yaml:"image"`
	Factor  float64 `yaml:"factor"`
	OffsetY float64 `yaml:"offset_y"`
	Fill    string  `yaml:"fill"`
}

func LoadBackgroundSpec() (*BackgroundSpec, error) {
	spec, err := LoadSpec[BackgroundSpec]("background.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type HealthBarSpec struct {
	Target string  `yaml:"target"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func LoadHealthBarSpec() (*HealthBarSpec, error) {
	spec, err := LoadSpec[HealthBarSpec]("health_bar.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type AISpec struct {
	DetectionRange float64 `yaml:"detection_range"`
	AttackRange    float64 `yaml:"attack_range"`
	AttackCooldown float64 `yaml:"attack_cooldown"`
	AttackDamage   int     `yaml:"attack_damage"`
	IdleMin        float64 `yaml:"idle_min"`
	IdleMax        float64 `yaml:"idle_max"`
	WanderMin      float64 `yaml:"wander_min"`
	WanderMax      float64 `yaml:"wander_max"`
	Script         string  `yaml:"script"`
}

type TransformSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`
}

type ColliderSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Mass    float64 `yaml:"mass"`
}

type BoundarySpec struct {
	Left  float64 `yaml:"left"`
	Right float64 `yaml:"right"`
}

type SpriteSpec struct {
	Image   string  `yaml:"image"`
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
}

type AnimationSpec struct {
	Sheet string              `yaml:"sheet"`
	Clips map[string]ClipSpec `yaml:"clips"`
}

type ClipSpec struct {
	Row        int     `yaml:"row"`
	ColStart   int     `yaml:"col_start"`
	FrameCount int     `yaml:"frame_count"`
	FrameW     int     `yaml:"frame_w"`
	FrameH     int     `yaml:"frame_h"`
	FrameRate  float64 `yaml:"frame_rate"`
	Loop       bool    `yaml:"loop"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
	Loop   bool    `yaml:"loop"`
	State  string  `yaml:"state"`
}
