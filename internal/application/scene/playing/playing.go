// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/spellsword/internal/application/replay"
	"github.com/younwookim/spellsword/internal/application/scene"
	"github.com/younwookim/spellsword/internal/application/state"
	"github.com/younwookim/spellsword/internal/application/system"
	"github.com/younwookim/spellsword/internal/application/world"
	"github.com/younwookim/spellsword/internal/domain/entity"
	"github.com/younwookim/spellsword/internal/infrastructure/assets"
	"github.com/younwookim/spellsword/internal/infrastructure/config"
	"github.com/younwookim/spellsword/internal/infrastructure/logger"
)

// Options configures a Playing session
type Options struct {
	// Seed drives every random choice in the session. Zero picks one from the clock.
	Seed int64
	// RecordPath enables input recording when not empty
	RecordPath string
	// Input defaults to live keyboard and mouse input
	Input InputSource
	// Assets defaults to a resolver that only serves placeholders
	Assets *assets.Resolver
}

// Playing is the main gameplay scene
type Playing struct {
	cfg   *config.GameConfig
	level *config.LevelConfig
	world *world.Map
	state state.GameState

	input  InputSource
	assets *assets.Resolver
	hud    *HUD
	render *worldRenderer
	menu   *CharacterMenu

	screenW int
	screenH int

	seed  int64
	frame int

	recorder   *replay.Recorder
	recordPath string

	defeated int
	log      *logrus.Entry
}

// New creates a new Playing scene for one level
func New(cfg *config.GameConfig, level *config.LevelConfig, opts Options) (*Playing, error) {
	if cfg == nil || cfg.Settings == nil {
		return nil, errors.New("playing: settings are required")
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	input := opts.Input
	if input == nil {
		input = NewLiveInput()
	}
	resolver := opts.Assets
	if resolver == nil {
		resolver = assets.NewResolver(nil)
	}

	display := cfg.Settings.Display
	hud, err := NewHUD(cfg.Settings.HUD, cfg.Settings.Combat.DamageLogWindow, resolver, display.ScreenWidth, display.ScreenHeight)
	if err != nil {
		return nil, err
	}

	p := &Playing{
		cfg:        cfg,
		level:      level,
		input:      input,
		assets:     resolver,
		hud:        hud,
		render:     newWorldRenderer(resolver, display.ScreenWidth, display.ScreenHeight),
		menu:       NewCharacterMenu(),
		screenW:    display.ScreenWidth,
		screenH:    display.ScreenHeight,
		recordPath: opts.RecordPath,
		log:        logger.Component("playing"),
	}
	if err := p.Restart(seed); err != nil {
		return nil, err
	}
	return p, nil
}

// Restart rebuilds the level from scratch with the given seed
func (p *Playing) Restart(seed int64) error {
	m, err := world.Build(p.cfg, p.level, seed)
	if err != nil {
		return err
	}
	m.OnEnemyDefeated = func(e *entity.Enemy) {
		p.defeated++
	}
	m.OnPlayerDamaged = func(amount int) {
		p.log.WithFields(logrus.Fields{"amount": amount, "frame": p.frame}).Debug("player damaged")
	}
	m.OnDoorOpened = func(door *entity.Tile) {
		p.log.WithField("door", door.ID).Debug("door opened")
	}

	p.world = m
	p.seed = seed
	p.frame = 0
	p.defeated = 0
	p.state = state.StatePlaying
	p.menu = NewCharacterMenu()

	if p.recordPath != "" {
		p.recorder = replay.NewRecorder(seed, p.level.Name)
		p.log.WithFields(logrus.Fields{"seed": seed, "path": p.recordPath}).Info("recording enabled")
	}
	return nil
}

// Update reads one frame of input and advances the session (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	switch p.state {
	case state.StateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			p.fire(state.EventRestart)
			if err := p.Restart(time.Now().UnixNano()); err != nil {
				return nil, err
			}
		}
		return nil, nil
	case state.StateCharacterMenu:
		p.menu.Handle(readMenuInput(), p.world.Player(), p.cfg.Items)
	}

	in, ok := p.input.GetInput()
	if !ok {
		p.log.WithField("frames", p.frame).Info("input exhausted")
		return nil, scene.ErrQuit
	}
	p.Step(in, dt)
	return nil, nil
}

// Step applies one frame of input. It is the whole per-frame game logic
// and needs no window, so replays can drive it headless.
func (p *Playing) Step(in system.InputState, dt float64) {
	if p.state == state.StateGameOver {
		return
	}
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}
	p.frame++

	if in.Pause {
		p.fire(state.EventPause)
	}
	if in.Menu {
		before := p.state
		p.fire(state.EventToggleMenu)
		if before != state.StateCharacterMenu && p.state == state.StateCharacterMenu {
			p.menu.Open()
		}
	}
	if !p.state.Simulating() {
		return
	}

	cmd := in.Command()
	p.world.Update(cmd, dt)

	if pl := p.world.Player(); pl == nil || !pl.Alive() {
		p.fire(state.EventPlayerDied)
		p.log.WithFields(logrus.Fields{
			"frame":    p.frame,
			"defeated": p.defeated,
		}).Info("player died")
		p.saveRecording()
	}
}

func (p *Playing) fire(ev state.Event) {
	next := p.state.Next(ev)
	if next == p.state {
		return
	}
	p.log.WithFields(logrus.Fields{"from": p.state, "to": next}).Debug("state changed")
	p.state = next
}

// saveRecording writes the recording to disk. An empty recording is skipped.
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}
	err := p.recorder.Save(p.recordPath)
	switch {
	case errors.Is(err, replay.ErrNoFrames):
		return
	case err != nil:
		p.log.WithError(err).Error("failed to save recording")
	default:
		p.log.WithFields(logrus.Fields{
			"path":   p.recordPath,
			"frames": p.recorder.FrameCount(),
		}).Info("recording saved")
	}
}

// State returns the current session state
func (p *Playing) State() state.GameState { return p.state }

// World returns the live map
func (p *Playing) World() *world.Map { return p.world }

// Frame returns the number of frames stepped since the last restart
func (p *Playing) Frame() int { return p.frame }

// Seed returns the seed of the current run
func (p *Playing) Seed() int64 { return p.seed }

// Defeated returns how many enemies died this run
func (p *Playing) Defeated() int { return p.defeated }

// Recorder returns the active recorder, nil when not recording
func (p *Playing) Recorder() *replay.Recorder { return p.recorder }

// Menu returns the character menu
func (p *Playing) Menu() *CharacterMenu { return p.menu }

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	snap := p.world.Snapshot()

	if p.state == state.StateCharacterMenu {
		p.menu.Draw(screen, p.hud.Face(), snap, p.cfg.Items, p.screenW, p.screenH)
		return
	}

	p.render.Draw(screen, snap)
	p.hud.Draw(screen, snap)

	switch p.state {
	case state.StatePaused:
		drawOverlay(screen, p.hud, "PAUSED", "Press Esc to resume", p.screenW, p.screenH)
	case state.StateGameOver:
		drawOverlay(screen, p.hud, "GAME OVER", "Press R to restart", p.screenW, p.screenH)
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.log.WithFields(logrus.Fields{"level": p.level.Name, "seed": p.seed}).Info("session started")
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.recorder != nil {
		p.recorder.Stop()
	}
}

// Layout returns the logical screen size
func (p *Playing) Layout(_, _ int) (int, int) {
	return p.screenW, p.screenH
}
