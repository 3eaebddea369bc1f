package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"snake-arcade/game/types"
)

// Config holds the command-line settings for one run of the program.
type Config struct {
	TickInterval time.Duration
	FPS          int
	AssetsDir    string
	Seed         uint64
	Mute         bool
	Verbose      bool
	CellSize     int
	Grid         types.Grid
}

// Parse reads flags from args, fills in defaults and validates the result.
func Parse(args []string) (Config, error) {
	cfg := Config{
		CellSize: types.CellSize,
		Grid:     types.DefaultGrid,
	}

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.DurationVar(&cfg.TickInterval, "tick", 150*time.Millisecond, "Interval between snake moves")
	fs.IntVar(&cfg.FPS, "fps", 60, "Frame rate cap")
	fs.StringVar(&cfg.AssetsDir, "assets", ".", "Directory holding Graphics/, Sound/ and Font/")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "Fruit placement seed (0 = from clock)")
	fs.BoolVar(&cfg.Mute, "mute", false, "Run without opening an audio device")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Show raylib info logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return errors.New("tick interval must be positive")
	}
	if c.FPS <= 0 {
		return errors.New("fps must be positive")
	}
	if c.AssetsDir == "" {
		return errors.New("assets directory is empty")
	}
	return nil
}

// WindowSize is the side of the square window in pixels.
func (c Config) WindowSize() int32 {
	return int32(c.Grid.Width * c.CellSize)
}
