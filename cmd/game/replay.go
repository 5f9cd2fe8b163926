package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/spellsword/internal/application/game"
	"github.com/younwookim/spellsword/internal/application/scene/playing"
	"github.com/younwookim/spellsword/internal/application/state"
	"github.com/younwookim/spellsword/internal/infrastructure/config"
	"github.com/younwookim/spellsword/internal/infrastructure/logger"
)

// Summary describes how a headless replay ended
type Summary struct {
	Level     string
	Seed      int64
	Frames    int
	Time      float64
	State     state.GameState
	Health    int
	XP        int
	Defeated  int
	Remaining int
}

func (s Summary) String() string {
	return fmt.Sprintf("level=%s seed=%d frames=%d time=%.2fs state=%s health=%d xp=%d defeated=%d remaining=%d",
		s.Level, s.Seed, s.Frames, s.Time, s.State, s.Health, s.XP, s.Defeated, s.Remaining)
}

// RunHeadless steps a session with opts.Input until the input runs out or
// the player dies. No window is opened and nothing is drawn.
func RunHeadless(cfg *config.GameConfig, level *config.LevelConfig, opts playing.Options) (Summary, error) {
	if opts.Input == nil {
		return Summary{}, errors.New("headless run needs an input source")
	}
	p, err := playing.New(cfg, level, opts)
	if err != nil {
		return Summary{}, err
	}

	tps := cfg.Settings.Display.Framerate
	if tps <= 0 {
		tps = game.DefaultFramerate
	}
	dt := 1.0 / float64(tps)

	for p.State() != state.StateGameOver {
		in, ok := opts.Input.GetInput()
		if !ok {
			break
		}
		p.Step(in, dt)
	}

	s := Summary{
		Level:     level.Name,
		Seed:      p.Seed(),
		Frames:    p.Frame(),
		Time:      p.World().Now(),
		State:     p.State(),
		Defeated:  p.Defeated(),
		Remaining: len(p.World().Enemies()),
	}
	if pl := p.World().Player(); pl != nil {
		s.Health = pl.Health
		s.XP = pl.XP
	}
	logger.Component("replay").WithFields(logrus.Fields{
		"frames": s.Frames,
		"state":  s.State,
	}).Info("headless replay finished")
	return s, nil
}
