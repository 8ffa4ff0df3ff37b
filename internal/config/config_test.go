package config

import (
	"testing"

	"github.com/atomicstack/canopy/internal/app"
	"github.com/google/go-cmp/cmp"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := app.Config{Mouse: true, Demo: app.DemoPanes}
	if diff := cmp.Diff(want, cfg.App); diff != "" {
		t.Fatalf("unexpected defaults (-want +got):\n%s", diff)
	}
	if cfg.Logging != (Logging{}) {
		t.Fatalf("expected logging off by default, got %+v", cfg.Logging)
	}
}

func TestLoadArgsEnvironment(t *testing.T) {
	env := []string{
		"CANOPY_WIDTH=100",
		"CANOPY_HEIGHT=30",
		"CANOPY_MOUSE=false",
		"CANOPY_TRACE=1",
		"CANOPY_LOG_FILE=/tmp/canopy.log",
		"CANOPY_DEMO=inspect",
		"CANOPY_IGNORED",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{
		App:     app.Config{Width: 100, Height: 30, Mouse: false, Demo: app.DemoInspect},
		Logging: Logging{FilePath: "/tmp/canopy.log", Trace: true},
		Flags: map[string]string{
			"width":   "100",
			"height":  "30",
			"mouse":   "false",
			"trace":   "true",
			"logFile": "/tmp/canopy.log",
			"demo":    "inspect",
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"-width", "40", "-mouse=true"}, []string{"CANOPY_WIDTH=100", "CANOPY_MOUSE=false", "CANOPY_HEIGHT=oops"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Width != 40 || !cfg.App.Mouse {
		t.Fatalf("expected flags to win, got %+v", cfg.App)
	}
	if cfg.App.Height != 0 {
		t.Fatalf("expected unparsable env to fall back, got %d", cfg.App.Height)
	}
	if diff := cmp.Diff([]string{"-width", "40", "-mouse=true"}, cfg.Args); diff != "" {
		t.Fatalf("unexpected args (-want +got):\n%s", diff)
	}
}

func TestLoadArgsErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-width", "-1"},
		{"-height", "-5"},
		{"-nope"},
	} {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestValidate(t *testing.T) {
	cfg, err := LoadArgs([]string{"-demo", "inspect"}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
	cfg.App.Demo = "bogus"
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected unknown demo to fail validation")
	}
	cfg.App.Demo = app.DemoPanes
	cfg.App.Width = 70000
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected oversized width to fail validation")
	}
}
