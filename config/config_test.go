package config

import (
	"errors"
	"flag"
	"testing"
	"time"

	"snake-arcade/game/types"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.TickInterval != 150*time.Millisecond {
		t.Errorf("TickInterval %v, want 150ms", cfg.TickInterval)
	}
	if cfg.FPS != 60 {
		t.Errorf("FPS %d, want 60", cfg.FPS)
	}
	if cfg.AssetsDir != "." {
		t.Errorf("AssetsDir %q, want .", cfg.AssetsDir)
	}
	if cfg.Seed == 0 {
		t.Error("Seed should be filled from the clock")
	}
	if cfg.Grid != types.DefaultGrid {
		t.Errorf("Grid %+v", cfg.Grid)
	}
	if cfg.WindowSize() != 800 {
		t.Errorf("WindowSize %d, want 800", cfg.WindowSize())
	}
}

func TestParse_Flags(t *testing.T) {
	cfg, err := Parse([]string{"-tick", "80ms", "-fps", "30", "-assets", "/tmp/a", "-seed", "9", "-mute", "-verbose"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.TickInterval != 80*time.Millisecond || cfg.FPS != 30 || cfg.AssetsDir != "/tmp/a" {
		t.Errorf("cfg %+v", cfg)
	}
	if cfg.Seed != 9 || !cfg.Mute || !cfg.Verbose {
		t.Errorf("cfg %+v", cfg)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := [][]string{
		{"-tick", "0s"},
		{"-tick", "-1s"},
		{"-fps", "0"},
		{"-assets", ""},
	}
	for _, args := range tests {
		if _, err := Parse(args); err == nil {
			t.Errorf("Parse(%v) should fail", args)
		}
	}
}

func TestParse_Help(t *testing.T) {
	_, err := Parse([]string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("err %v, want flag.ErrHelp", err)
	}
}
