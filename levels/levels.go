// Package levels loads Tiled maps and exposes the pieces the game cares
// about: world size, spawn points, and movement boundaries.
package levels

import (
	"embed"
	"fmt"

	"github.com/lafriks/go-tiled"
)

//go:embed *.tmx
var levelsFS embed.FS

// Spawn is a character spawn point from the map's "spawns" object layer.
type Spawn struct {
	Name   string
	X, Y   float64
	Script string
}

// Level is the decoded gameplay data of one map.
type Level struct {
	Width  float64 // pixels
	Height float64

	PlayerSpawn   *Spawn
	EnemySpawns   []Spawn
	BoundaryLeft  float64
	BoundaryRight float64
}

// Load reads an embedded map by file name.
func Load(name string) (*Level, error) {
	m, err := tiled.LoadFile(name, tiled.WithFileSystem(levelsFS))
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	return fromMap(m)
}

func fromMap(m *tiled.Map) (*Level, error) {
	lvl := &Level{
		Width:  float64(m.Width * m.TileWidth),
		Height: float64(m.Height * m.TileHeight),
	}
	// a map without an explicit boundary object lets characters roam the
	// full level width
	lvl.BoundaryLeft = 0
	lvl.BoundaryRight = lvl.Width

	for _, group := range m.ObjectGroups {
		switch group.Name {
		case "spawns":
			for _, o := range group.Objects {
				spawn := Spawn{
					Name:   o.Name,
					X:      o.X,
					Y:      o.Y,
					Script: o.Properties.GetString("script"),
				}
				switch o.Type {
				case "player":
					s := spawn
					lvl.PlayerSpawn = &s
				case "enemy":
					lvl.EnemySpawns = append(lvl.EnemySpawns, spawn)
				}
			}
		case "boundaries":
			for _, o := range group.Objects {
				if o.Width <= 0 {
					continue
				}
				lvl.BoundaryLeft = o.X
				lvl.BoundaryRight = o.X + o.Width
			}
		}
	}

	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("levels: map has no size")
	}
	return lvl, nil
}
