package main

import (
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/scrollin/ecs"
	"github.com/milk9111/scrollin/ecs/component"
	"github.com/milk9111/scrollin/ecs/entity"
	"github.com/milk9111/scrollin/ecs/system"
	"github.com/milk9111/scrollin/prefabs"
	"github.com/sirupsen/logrus"
)

type Game struct {
	spec *prefabs.GameSpec
	log  *logrus.Logger
	dt   float64

	world     *ecs.World
	scheduler *ecs.Scheduler
	player    ecs.Entity

	physicsDebug *system.PhysicsDebugSystem

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
}

func NewGame(spec *prefabs.GameSpec, log *logrus.Logger) (*Game, error) {
	level, err := prefabs.LoadLevelSpec(spec.Level)
	if err != nil {
		return nil, err
	}
	playerSpec, err := prefabs.LoadPlayerSpec(spec.Player)
	if err != nil {
		return nil, err
	}
	cameraSpec, err := prefabs.LoadCameraSpec(spec.Camera)
	if err != nil {
		return nil, err
	}

	g := &Game{
		spec:  spec,
		log:   log,
		dt:    1 / float64(spec.TPS),
		world: ecs.NewWorld(),
	}

	if _, err := entity.BuildLevel(g.world, level); err != nil {
		return nil, err
	}
	g.player, err = entity.BuildPlayer(g.world, playerSpec, level, g.dt, log)
	if err != nil {
		return nil, err
	}
	if _, err := entity.BuildCamera(g.world, cameraSpec, level.Spawn.Vec3()); err != nil {
		return nil, err
	}
	if _, err := entity.BuildStaminaBar(g.world, &playerSpec.HUD.StaminaBar); err != nil {
		return nil, err
	}
	if playerSpec.Companion != nil {
		if _, err := entity.BuildCompanion(g.world, playerSpec.Companion, level.Spawn.Vec3()); err != nil {
			return nil, err
		}
	}

	physics := system.NewPhysicsSystem(g.dt, log)
	g.physicsDebug = system.NewPhysicsDebugSystem(physics)
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewLocomotionSystem(),
		physics,
		system.NewHazardSystem(log),
		system.NewCameraSystem(g.dt),
		system.NewFollowerSystem(g.dt),
		system.NewStaminaBarSystem(g.dt),
		system.NewRenderSystem(level.Background.Color),
		g.physicsDebug,
	)
	g.pauseUI = NewPauseUI(g)

	log.WithFields(logrus.Fields{
		"level":  level.Name,
		"player": playerSpec.Name,
		"tps":    spec.TPS,
		"boxes":  len(level.Boxes),
	}).Info("game ready")
	return g, nil
}

// Watch hot-reloads the player tuning whenever a file in dir changes.
func (g *Game) Watch(dir string) error {
	w, err := prefabs.NewWatcher(dir)
	if err != nil {
		return err
	}
	g.watcher = w
	return nil
}

// Close stops the watcher and releases the player's controller. It is
// safe to call more than once.
func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.log.WithError(err).Warn("close watcher")
		}
		g.watcher = nil
	}
	if loco, ok := ecs.Get(g.world, g.player, component.LocomotionComponent); ok {
		loco.Release()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.physicsDebug.Enabled = !g.physicsDebug.Enabled
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scheduler.Draw(g.world, screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.spec.Window.Width, g.spec.Window.Height
}

func (g *Game) setPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	system.PauseCooldowns(g.world, paused)
	g.log.WithField("paused", paused).Debug("pause toggled")
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if name == g.spec.Player {
				g.reloadTuning()
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.log.WithError(err).Warn("prefab watcher")
			}
		default:
			return
		}
	}
}

// reloadTuning rebuilds the player controller from the current player spec.
func (g *Game) reloadTuning() {
	spec, err := prefabs.LoadPlayerSpec(g.spec.Player)
	if err == nil {
		err = entity.RetunePlayer(g.world, g.player, spec, g.dt, g.log)
	}
	if err != nil {
		g.log.WithError(err).Errorf("reload %s", g.spec.Player)
		return
	}
	g.log.WithField("spec", g.spec.Player).Info("player tuning reloaded")
}
