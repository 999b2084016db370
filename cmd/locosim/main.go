// Command locosim runs a scenario script against the locomotion controller
// on flat ground and prints one line per tick.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/milk9111/scrollin/locomotion"
	"github.com/milk9111/scrollin/prefabs"
	"github.com/milk9111/scrollin/scenario"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

func main() {
	scriptName := flag.String("script", "walk_and_jump", "scenario script in prefabs/scripts (name or path)")
	playerName := flag.String("player", "player.yaml", "player spec in prefabs/")
	format := flag.String("format", "text", "output format: text or yaml")
	logLevel := flag.String("log-level", "warn", "logrus level")
	list := flag.Bool("list", false, "list embedded scripts and exit")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if lvl, err := logrus.ParseLevel(*logLevel); err == nil {
		log.SetLevel(lvl)
	} else {
		log.WithError(err).Warn("unknown log level")
	}

	if *list {
		for _, name := range prefabs.Scripts() {
			fmt.Println(name)
		}
		return
	}

	if err := run(os.Stdout, *scriptName, *playerName, *format, log); err != nil {
		log.WithError(err).Fatal("locosim")
	}
}

func run(out io.Writer, scriptName, playerName, format string, log *logrus.Logger) error {
	src, err := prefabs.LoadScript(scriptName)
	if err != nil {
		return fmt.Errorf("load script %s: %w", scriptName, err)
	}
	script, err := scenario.Load(src)
	if err != nil {
		return err
	}
	spec, err := prefabs.LoadPlayerSpec(playerName)
	if err != nil {
		return err
	}

	frames, err := scenario.Run(script, spec.LocomotionConfig(locomotion.DefaultTimestep), scenario.NewFlatGround(0), log)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"script": scriptName, "ticks": len(frames)}).Info("scenario finished")

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(frames)
	case "text":
		for _, f := range frames {
			fmt.Fprintf(out, "%4d %-8s x=%7.3f y=%7.3f grounded=%-5t stamina=%6.2f sprint=%-5t exhausted=%-5t cooldown=%t\n",
				f.Tick, f.State, f.X, f.Y, f.Grounded, f.Stamina, f.Sprinting, f.Exhausted, f.CoolingDown)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
