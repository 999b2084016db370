package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/scrollin/prefabs"
	"github.com/sirupsen/logrus"
)

type options struct {
	level    string
	logLevel string
	watch    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.level, "level", "", "level spec in prefabs/ (overrides game.yaml)")
	flag.StringVar(&opts.logLevel, "log-level", "", "logrus level (overrides game.yaml)")
	flag.BoolVar(&opts.watch, "watch", true, "reload tuning when files under prefabs/ change")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := run(opts, log); err != nil {
		log.WithError(err).Error("scrollin")
		os.Exit(1)
	}
}

// run owns every resource the game opens and releases them before
// returning, including on error.
func run(opts options, log *logrus.Logger) error {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return err
	}
	if opts.level != "" {
		spec.Level = opts.level
	}
	if opts.logLevel != "" {
		spec.LogLevel = opts.logLevel
	}
	if spec.LogLevel != "" {
		lvl, err := logrus.ParseLevel(spec.LogLevel)
		if err != nil {
			log.WithError(err).Warn("unknown log level, keeping info")
		} else {
			log.SetLevel(lvl)
		}
	}

	game, err := NewGame(spec, log)
	if err != nil {
		return err
	}
	defer game.Close()

	if opts.watch {
		if _, err := os.Stat(prefabs.Dir); err == nil {
			if err := game.Watch(prefabs.Dir); err != nil {
				log.WithError(err).Warn("prefab watcher disabled")
			}
		}
	}

	ebiten.SetTPS(spec.TPS)
	ebiten.SetWindowSize(spec.Window.Width, spec.Window.Height)
	ebiten.SetWindowTitle(spec.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
