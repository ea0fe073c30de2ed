package main

import (
	"flag"
	"log"
	"time"

	"github.com/lixenwraith/zracer/config"
	"github.com/lixenwraith/zracer/constants"
)

// options holds the command line; only flags given explicitly override the config file
type options struct {
	configPath string
	debug      bool
	mute       bool

	players   int
	length    int
	width     int
	minimal   int
	carSize   int
	speedBase int
	rocks     float64
	turns     float64
	sharing   string
	split     string
	character string
	delay     time.Duration
	seed      int64
}

func registerFlags(fs *flag.FlagSet) *options {
	o := &options{}
	fs.StringVar(&o.configPath, "config", "", "TOML config file (default "+config.DefaultPath()+")")
	fs.BoolVar(&o.debug, "debug", false, "write debug log to "+logDir+"/"+logFileName)
	fs.BoolVar(&o.mute, "mute", false, "disable sound")

	fs.IntVar(&o.players, "players", constants.DefaultPlayers, "number of players (1-2)")
	fs.IntVar(&o.length, "length", constants.DefaultRaceLength, "race length in rows")
	fs.IntVar(&o.width, "width", 0, "race width in columns, 0 fits the screen")
	fs.IntVar(&o.minimal, "minimal", 0, "minimal road width, 0 derives it from the car size")
	fs.IntVar(&o.carSize, "car", constants.DefaultCarSize, "car size in cells")
	fs.IntVar(&o.speedBase, "speed", constants.DefaultSpeedBase, "speed base, higher is slower")
	fs.Float64Var(&o.rocks, "rocks", constants.DefaultRockChance, "chance of a rock per row")
	fs.Float64Var(&o.turns, "turns", constants.DefaultTurnChance, "chance of a kerb turning per row")
	fs.StringVar(&o.sharing, "sharing", config.SharingShared.String(), "track sharing: independent, similar, shared")
	fs.StringVar(&o.split, "split", config.SplitVertical.String(), "screen split: vertical, horizontal")
	fs.StringVar(&o.character, "char", constants.DefaultCarCharacter, "character drawing the cars")
	fs.DurationVar(&o.delay, "delay", constants.DefaultTickDelay, "delay between race ticks")
	fs.Int64Var(&o.seed, "seed", 0, "track seed, 0 picks one from the clock")
	return o
}

// apply overlays every flag set on fs onto cfg
func (o *options) apply(fs *flag.FlagSet, cfg config.Config) (config.Config, error) {
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "players":
			cfg.Players = o.players
		case "length":
			cfg.RaceLength = o.length
		case "width":
			cfg.RaceWidth = o.width
		case "minimal":
			cfg.MinimalWidth = o.minimal
		case "car":
			cfg.CarSize = o.carSize
		case "speed":
			cfg.SpeedBase = o.speedBase
		case "rocks":
			cfg.RockChance = o.rocks
		case "turns":
			cfg.TurnChance = o.turns
		case "sharing":
			if e := cfg.Sharing.UnmarshalText([]byte(o.sharing)); e != nil {
				err = config.Wrap("sharing", e)
			}
		case "split":
			if e := cfg.Split.UnmarshalText([]byte(o.split)); e != nil {
				err = config.Wrap("split", e)
			}
		case "char":
			cfg.Character = o.character
		case "delay":
			cfg.Delay = config.Duration(o.delay)
		case "seed":
			cfg.Seed = o.seed
		}
	})
	if err != nil {
		return config.Config{}, err
	}
	return cfg, cfg.Validate()
}

// loadConfig reads the explicit config file, or the default one when present
func (o *options) loadConfig() (config.Config, error) {
	if o.configPath != "" {
		log.Printf("config: loading %s", o.configPath)
		return config.LoadFile(o.configPath, config.Default())
	}
	path := config.DefaultPath()
	cfg, found, err := config.LoadOptional(path, config.Default())
	if found {
		log.Printf("config: loaded %s", path)
	} else if err == nil {
		log.Printf("config: no file at %q, using defaults", path)
	}
	return cfg, err
}
