package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/pixl9/sidebrawl/config"
	"github.com/pixl9/sidebrawl/ecs"
	"github.com/pixl9/sidebrawl/ecs/component"
	"github.com/pixl9/sidebrawl/ecs/entity"
	"github.com/pixl9/sidebrawl/ecs/system"
	"github.com/pixl9/sidebrawl/levels"
	"github.com/pixl9/sidebrawl/prefabs"
	"github.com/pixl9/sidebrawl/settings"
)

type Game struct {
	cfg   *config.Config
	world *ecs.World
	level *levels.Level

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI

	watcher *prefabs.Watcher
	store   *settings.Store
	prefs   *settings.Settings
	audio   *system.Audio

	debug  bool
	frames int
}

func NewGame(cfg *config.Config, debug bool) (*Game, error) {
	lvl, err := levels.Load(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	world := ecs.NewWorld()
	world.SetPhysicsWorld(ecs.NewPhysicsWorld(lvl.Width, lvl.Height))

	dt := cfg.Dt()
	viewW := float64(cfg.WindowWidth)
	viewH := float64(cfg.WindowHeight)

	audioSys := system.NewAudio()

	world.AddSystem(system.NewInput())
	world.AddSystem(system.NewPlayerController())
	world.AddSystem(system.NewAI(dt, rng))
	world.AddSystem(system.NewMovement(dt))
	world.AddSystem(system.NewCombat())
	world.AddSystem(system.NewPhysics(dt))
	world.AddSystem(system.NewAnimation(dt))
	world.AddSystem(system.NewCamera(viewW, viewH))
	world.AddSystem(system.NewHealthBar(dt))
	world.AddSystem(audioSys)
	world.AddSystem(system.NewRender())

	g := &Game{
		cfg:   cfg,
		world: world,
		level: lvl,
		store: settings.Open("sidebrawl"),
		audio: audioSys,
		debug: debug,
	}
	g.prefs = g.store.Load()
	ebiten.SetFullscreen(g.prefs.Fullscreen)
	g.audio.SetMasterVolume(cfg.MasterVolume * g.prefs.MasterVolume)
	g.audio.SetMuted(g.prefs.Muted)

	if err := g.spawnAll(); err != nil {
		return nil, err
	}

	g.pauseUI = NewPauseUI(g)

	if cfg.WatchPrefabs {
		watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

// spawnAll builds the whole scene from prefabs and level data.
func (g *Game) spawnAll() error {
	if _, err := entity.NewBackgrounds(g.world); err != nil {
		return fmt.Errorf("game: %w", err)
	}

	playerOv := entity.PlayerOverrides{
		BoundaryLeft:  &g.level.BoundaryLeft,
		BoundaryRight: &g.level.BoundaryRight,
	}
	if s := g.level.PlayerSpawn; s != nil {
		playerOv.X = &s.X
		playerOv.Y = &s.Y
	}
	if _, err := entity.NewPlayer(g.world, playerOv); err != nil {
		return fmt.Errorf("game: %w", err)
	}

	for i := range g.level.EnemySpawns {
		spawn := g.level.EnemySpawns[i]
		if _, err := entity.NewEnemy(g.world, entity.EnemyOverrides{
			X:             &spawn.X,
			Y:             &spawn.Y,
			BoundaryLeft:  &g.level.BoundaryLeft,
			BoundaryRight: &g.level.BoundaryRight,
			Script:        spawn.Script,
		}); err != nil {
			return fmt.Errorf("game: %w", err)
		}
	}

	if _, err := entity.NewCamera(g.world); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if _, err := entity.NewHealthBar(g.world); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	return nil
}

// despawnAll tears the scene down, detaching physics bodies before the
// entities go away.
func (g *Game) despawnAll() {
	pw := g.world.PhysicsWorld()
	ecs.ForEach(g.world, component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, pb *component.PhysicsBody) {
		pw.RemoveBody(pb)
	})
	for _, e := range ecs.Entities(g.world) {
		ecs.DestroyEntity(g.world, e)
	}
}

// reload rebuilds the scene after a prefab edit.
func (g *Game) reload(changed string) {
	log.Printf("game: %s changed, reloading scene", changed)
	g.despawnAll()
	if err := g.spawnAll(); err != nil {
		log.Printf("game: reload failed: %v", err)
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++

	if g.watcher != nil {
		select {
		case name, ok := <-g.watcher.Events:
			if ok {
				g.reload(name)
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("game: prefab watcher: %v", err)
			}
		default:
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.world.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	camX, camY, zoom := g.cameraView()
	g.world.Draw(screen, camX, camY, zoom)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
	}
}

func (g *Game) cameraView() (x, y, zoom float64) {
	zoom = 1
	e, ok := g.world.First(component.CameraComponent.Kind())
	if !ok {
		return 0, 0, zoom
	}
	cam, ok := ecs.Get(g.world, e, component.CameraComponent.Kind())
	if !ok {
		return 0, 0, zoom
	}
	if cam.Zoom > 0 {
		zoom = cam.Zoom
	}
	return cam.X, cam.Y, zoom
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}

// toggleMute flips the saved preference and applies it immediately. The
// pause menu rebuilds so its label reflects the new state.
func (g *Game) toggleMute() {
	g.prefs.Muted = !g.prefs.Muted
	g.audio.SetMuted(g.prefs.Muted)
	g.pauseUI = NewPauseUI(g)
}

// Close releases the watcher and persists settings.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.prefs.Fullscreen = ebiten.IsFullscreen()
	g.store.Save(g.prefs)
}
