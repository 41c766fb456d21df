package main

import (
	"fmt"
	"log"
	"math/rand"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/magnetfisher/ecs"
	"github.com/milk9111/magnetfisher/ecs/component"
	"github.com/milk9111/magnetfisher/ecs/entity"
	"github.com/milk9111/magnetfisher/ecs/render"
	"github.com/milk9111/magnetfisher/ecs/system"
	"github.com/milk9111/magnetfisher/prefabs"
	"golang.org/x/image/colornames"
)

type Game struct {
	cfg   *prefabs.GameConfig
	world *ecs.World
	scene *entity.Scene
	rng   *rand.Rand

	scheduler *ecs.Scheduler
	winch     *system.Winch
	physics   *system.PhysicsSystem
	magnets   *system.MagnetSystem
	ropes     *system.RopeSystem
	eels      *system.EelSystem
	loot      *system.LootSystem
	days      *system.DayCycleSystem
	water     *system.WaterColorSystem

	renderer *render.Renderer
	watcher  *prefabs.Watcher

	debug  bool
	frames int
}

func NewGame(debug, watch bool) (*Game, error) {
	cfg, err := prefabs.LoadGameConfig(prefabs.GameConfigFile)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		cfg:      cfg,
		world:    ecs.NewWorld(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		renderer: render.NewRenderer(),
		debug:    debug,
	}

	g.scene, err = entity.BuildScene(g.world, cfg)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if _, err := entity.SpawnLoot(g.world, cfg, g.rng); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g.winch = system.NewWinch(g.world, g.scene.Magnet)
	g.physics = system.NewPhysicsSystem(cfg)
	g.magnets = system.NewMagnetSystem(cfg)
	g.ropes = system.NewRopeSystem(cfg.Rope.Params())
	g.eels = system.NewEelSystem(cfg, g.winch, entity.SpawnEel, g.rng)
	g.loot = system.NewLootSystem(cfg, g.winch)
	g.days = system.NewDayCycleSystem(cfg, g.winch, g.newDay)
	g.water = system.NewWaterColorSystem(cfg)

	dt := cfg.World.DT()
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(deviceInput{}),
		g.days,
		system.NewUpgradeSystem(g.winch),
		system.NewPlayerMovementSystem(),
		g.physics,
		g.magnets,
		g.ropes,
		g.eels,
		g.loot,
		system.NewWheelSystem(g.winch, dt),
		system.NewBoatRockingSystem(dt),
		g.water,
		system.NewCameraSystem(g.scene.Magnet),
	)

	if watch {
		g.watcher, err = prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("game: watch prefabs: %v", err)
		}
	}

	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
	}
}

func (g *Game) Update() error {
	g.frames++
	g.reload()

	g.scheduler.Update(g.world)

	if in, ok := ecs.Get(g.world, g.scene.Magnet, component.InputComponent.Kind()); ok && in.DebugPressed {
		g.debug = !g.debug
	}
	return nil
}

// newDay restocks the water after the boat docks.
func (g *Game) newDay(w *ecs.World) {
	n, err := entity.SpawnLoot(w, g.cfg, g.rng)
	if err != nil {
		log.Printf("game: spawn loot: %v", err)
		return
	}
	log.Printf("game: new day, %d items in the water", n)
}

// reload applies an edited game.yaml. A config that fails to parse or
// validate is logged and the running one is kept.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("game: watch prefabs: %v", err)
		}
	default:
	}

	if !slices.Contains(g.watcher.Poll(), prefabs.GameConfigFile) {
		return
	}
	cfg, err := prefabs.LoadGameConfig(prefabs.GameConfigFile)
	if err != nil {
		log.Printf("game: reload: %v", err)
		return
	}

	g.cfg = cfg
	g.physics.SetGravity(cfg.World.Gravity)
	g.ropes.SetParams(g.world, cfg.Rope.Params())
	g.eels.SetConfig(cfg)
	g.loot.SetConfig(cfg)
	g.days.SetConfig(cfg)
	g.water.SetConfig(cfg)
	if pb, ok := ecs.Get(g.world, g.scene.Magnet, component.PhysicsBodyComponent.Kind()); ok {
		pb.LinearDamping = cfg.Magnet.LinearDamping
	}
	if pm, ok := ecs.Get(g.world, g.scene.Magnet, component.PlayerMovementComponent.Kind()); ok {
		pm.MoveForce = cfg.Magnet.MoveForce
	}
	log.Printf("game: reloaded %s", prefabs.GameConfigFile)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Lightskyblue)
	g.renderer.Draw(g.world, screen)

	if g.debug {
		render.DrawPhysicsDebug(g.physics.Space(), g.world, screen)
		render.DrawRopeDebug(g.world, screen)
	}

	ebitenutil.DebugPrintAt(screen, g.hud(), 10, 10)
}

func (g *Game) hud() string {
	text := fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS())

	if day, ok := ecs.Get(g.world, g.scene.Day, component.DayCycleComponent.Kind()); ok {
		text += fmt.Sprintf("\nDay %d (%s)", day.Day, day.Phase)
		if day.Phase == component.DayFishing {
			text += fmt.Sprintf("  %.0fs left", max(0, day.Duration-day.Elapsed))
		}
		text += fmt.Sprintf("\nHaul: %.0f  Bank: %.0f  Holding: %.0f", day.Haul, day.Bank, g.loot.Attached())
	}

	if m, ok := g.winch.State(); ok {
		text += fmt.Sprintf("\nRope: %.0f / %.0f  Winch: %.0f", m.RopeLength, m.PlayerRopeLength, m.WinchSpeed)
		if m.Electrocuted {
			text += fmt.Sprintf("\nSHOCKED %.1fs", m.ElectrocutedTimer)
		}
	}

	if g.debug {
		if r, ok := ecs.Get(g.world, g.scene.Rope, component.RopeComponent.Kind()); ok {
			text += fmt.Sprintf("\nRope segments: %d", r.Chain.Segments())
		}
	}
	return text
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.World.ScreenWidth, g.cfg.World.ScreenHeight
}
