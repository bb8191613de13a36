// Package entity builds game entities from prefab specs.
package entity

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/pixl9/sidebrawl/assets"
	"github.com/pixl9/sidebrawl/ecs/component"
	"github.com/pixl9/sidebrawl/prefabs"
)

func clipSetFromSpec(spec prefabs.AnimationSpec) component.ClipSet {
	clips := make(component.ClipSet, len(spec.Clips))
	for name, c := range spec.Clips {
		state, ok := component.ParseCharacterState(name)
		if !ok {
			continue
		}
		clips[state] = component.Clip{
			FrameCount: c.FrameCount,
			FrameRate:  c.FrameRate,
			Loop:       c.Loop,
		}
	}
	return clips
}

func animationFromSpec(spec prefabs.AnimationSpec, placeholderFill color.RGBA) *component.Animation {
	anim := &component.Animation{
		Defs: make(map[component.CharacterState]component.FrameDef, len(spec.Clips)),
	}
	frameW, frameH := 48, 48
	for name, c := range spec.Clips {
		state, ok := component.ParseCharacterState(name)
		if !ok {
			continue
		}
		anim.Defs[state] = component.FrameDef{
			Row:      c.Row,
			ColStart: c.ColStart,
			FrameW:   c.FrameW,
			FrameH:   c.FrameH,
		}
		if c.FrameW > 0 {
			frameW = c.FrameW
		}
		if c.FrameH > 0 {
			frameH = c.FrameH
		}
	}
	if spec.Sheet != "" {
		// a sheet placeholder must be big enough for any source rect
		anim.Sheet = assets.LoadImageOrPlaceholder(spec.Sheet, frameW*12, frameH*8, placeholderFill)
	}
	return anim
}

func audioFromSpecs(specs []prefabs.AudioSpec) *component.Audio {
	a := &component.Audio{
		ClipFor: make(map[component.CharacterState]string, len(specs)),
	}
	for _, s := range specs {
		a.Names = append(a.Names, s.Name)
		a.Players = append(a.Players, assets.LoadAudioPlayerOrNil(s.File))
		a.Volume = append(a.Volume, s.Volume)
		a.Loop = append(a.Loop, s.Loop)
		a.Play = append(a.Play, false)
		a.Stop = append(a.Stop, false)
		if s.State != "" {
			if state, ok := component.ParseCharacterState(s.State); ok {
				a.ClipFor[state] = s.Name
			}
		}
	}
	return a
}

// parseHexColor decodes "#rrggbb" with an opaque alpha. Bad input returns
// the zero color.
func parseHexColor(s string) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
}
