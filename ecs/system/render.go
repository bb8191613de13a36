package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/pixl9/sidebrawl/ecs"
	"github.com/pixl9/sidebrawl/ecs/component"
)

// Render draws parallax background layers, layered sprites, and screen
// space health bars. It runs no per-tick logic.
type Render struct{}

func NewRender() *Render {
	return &Render{}
}

func (s *Render) Update(_ *ecs.World) {}

func (s *Render) Draw(w *ecs.World, screen *ebiten.Image, camX, camY, zoom float64) {
	if zoom <= 0 {
		zoom = 1
	}
	s.drawBackgrounds(w, screen, camX)
	s.drawSprites(w, screen, camX, camY, zoom)
	s.drawHealthBars(w, screen)
}

func (s *Render) drawBackgrounds(w *ecs.World, screen *ebiten.Image, camX float64) {
	type layer struct {
		bg *component.Background
	}
	var layers []layer
	ecs.ForEach(w, component.BackgroundComponent.Kind(), func(_ ecs.Entity, bg *component.Background) {
		layers = append(layers, layer{bg: bg})
	})
	// far layers (small factor) draw first
	sort.SliceStable(layers, func(i, j int) bool {
		return layers[i].bg.Factor < layers[j].bg.Factor
	})

	sw := float64(screen.Bounds().Dx())
	for _, l := range layers {
		bg := l.bg
		if bg.Image == nil {
			screen.Fill(bg.Fill)
			continue
		}
		iw := float64(bg.Image.Bounds().Dx())
		if iw <= 0 {
			continue
		}
		offset := math.Mod(camX*bg.Factor, iw)
		if offset < 0 {
			offset += iw
		}
		for x := -offset; x < sw; x += iw {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, bg.OffsetY)
			screen.DrawImage(bg.Image, op)
		}
	}
}

func (s *Render) drawSprites(w *ecs.World, screen *ebiten.Image, camX, camY, zoom float64) {
	type drawable struct {
		t      *component.Transform
		sprite *component.Sprite
		layer  int
	}
	var items []drawable
	ecs.ForEach2(w,
		component.TransformComponent.Kind(),
		component.SpriteComponent.Kind(),
		func(e ecs.Entity, t *component.Transform, sprite *component.Sprite) {
			if sprite.Image == nil {
				return
			}
			layer := 0
			if rl, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
				layer = rl.Index
			}
			items = append(items, drawable{t: t, sprite: sprite, layer: layer})
		})
	sort.SliceStable(items, func(i, j int) bool { return items[i].layer < items[j].layer })

	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())

	for _, it := range items {
		img := it.sprite.Image
		if it.sprite.UseSource {
			sub := img.SubImage(it.sprite.Source)
			var ok bool
			if img, ok = sub.(*ebiten.Image); !ok {
				continue
			}
		}

		scaleX := it.t.ScaleX
		scaleY := it.t.ScaleY
		if scaleX == 0 {
			scaleX = 1
		}
		if scaleY == 0 {
			scaleY = 1
		}

		op := &ebiten.DrawImageOptions{}
		if it.sprite.FacingLeft {
			op.GeoM.Scale(-scaleX, scaleY)
			op.GeoM.Translate(float64(img.Bounds().Dx())*scaleX, 0)
		} else {
			op.GeoM.Scale(scaleX, scaleY)
		}
		op.GeoM.Translate(it.t.X-it.sprite.OriginX, it.t.Y-it.sprite.OriginY)

		// world to screen
		op.GeoM.Translate(-camX, -camY)
		op.GeoM.Scale(zoom, zoom)
		op.GeoM.Translate(sw/2, sh/2)

		screen.DrawImage(img, op)
	}
}

func (s *Render) drawHealthBars(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach(w, component.HealthBarComponent.Kind(), func(_ ecs.Entity, bar *component.HealthBar) {
		if bar.Width <= 0 || bar.Height <= 0 {
			return
		}
		x := float32(bar.X)
		y := float32(bar.Y)
		bw := float32(bar.Width)
		bh := float32(bar.Height)

		vector.DrawFilledRect(screen, x-1, y-1, bw+2, bh+2, color.RGBA{A: 0xff}, false)
		vector.DrawFilledRect(screen, x, y, bw, bh, color.RGBA{R: 0x40, G: 0x10, B: 0x10, A: 0xff}, false)
		fill := bar.Fill
		if fill < 0 {
			fill = 0
		}
		if fill > 1 {
			fill = 1
		}
		if fill > 0 {
			vector.DrawFilledRect(screen, x, y, bw*fill, bh, color.RGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0xff}, false)
		}
	})
}
