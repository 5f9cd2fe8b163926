package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/spellsword/internal/application/game"
	"github.com/younwookim/spellsword/internal/application/replay"
	"github.com/younwookim/spellsword/internal/application/scene/playing"
	"github.com/younwookim/spellsword/internal/infrastructure/assets"
	"github.com/younwookim/spellsword/internal/infrastructure/config"
	"github.com/younwookim/spellsword/internal/infrastructure/logger"
)

type flags struct {
	record   string
	replay   string
	level    string
	seed     int64
	configs  string
	assets   string
	headless bool
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.record, "record", "", "Record input to file (e.g., -record replay.json, or auto for a timestamped name)")
	flag.StringVar(&f.replay, "replay", "", "Play back a recorded input file")
	flag.StringVar(&f.level, "level", "", "Level to load (defaults to map.startLevel)")
	flag.Int64Var(&f.seed, "seed", 0, "Random seed (0 picks one from the clock)")
	flag.StringVar(&f.configs, "configs", "", "Config directory (defaults to the embedded configs)")
	flag.StringVar(&f.assets, "assets", "assets", "Image directory; missing images use a placeholder")
	flag.BoolVar(&f.headless, "headless", false, "With -replay, simulate without a window and print a summary")
	flag.Parse()
	return f
}

// newConfigLoader reads from dir, or from the embedded configs when dir is empty
func newConfigLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded configs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func main() {
	f := parseFlags()
	logger.Init()
	log := logger.Component("main")

	loader, err := newConfigLoader(f.configs)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if f.record == "auto" {
		f.record = replay.GenerateFilename()
	}
	opts := playing.Options{Seed: f.seed, RecordPath: f.record}
	levelName := f.level
	if f.replay != "" {
		data, err := replay.LoadReplay(f.replay)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		r := replay.NewReplayer(*data)
		log.WithFields(logrus.Fields{
			"file":   f.replay,
			"frames": r.TotalFrames(),
			"seed":   r.Seed(),
		}).Info("replay loaded")
		opts.Seed = r.Seed()
		opts.Input = r
		opts.RecordPath = ""
		if levelName == "" {
			levelName = r.Level()
		}
	}
	if levelName == "" {
		levelName = cfg.Settings.Map.StartLevel
	}

	level, err := loader.LoadLevel(levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	if f.headless {
		if f.replay == "" {
			log.Fatal("-headless requires -replay")
		}
		summary, err := RunHeadless(cfg, level, opts)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		fmt.Fprintln(os.Stdout, summary)
		return
	}

	if _, err := os.Stat(f.assets); err == nil {
		opts.Assets = assets.NewResolver(assets.NewFSLoader(os.DirFS(f.assets)))
	} else {
		log.WithField("dir", f.assets).Warn("asset directory not found, using placeholders")
		opts.Assets = assets.NewResolver(nil)
	}

	session, err := playing.New(cfg, level, opts)
	if err != nil {
		log.Fatalf("Failed to start level: %v", err)
	}

	display := cfg.Settings.Display
	scale := display.Scale
	if scale <= 0 {
		scale = 1
	}
	tps := display.Framerate
	if tps <= 0 {
		tps = game.DefaultFramerate
	}
	g := game.New(session, display.ScreenWidth, display.ScreenHeight, tps)

	ebiten.SetWindowSize(display.ScreenWidth*scale, display.ScreenHeight*scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
