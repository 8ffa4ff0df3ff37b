package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/canopy/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth   = "CANOPY_WIDTH"
	envHeight  = "CANOPY_HEIGHT"
	envMouse   = "CANOPY_MOUSE"
	envTrace   = "CANOPY_TRACE"
	envLogFile = "CANOPY_LOG_FILE"
	envDemo    = "CANOPY_DEMO"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Flags take
// precedence over the environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("canopy", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "fixed screen width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "fixed screen height in rows (0 uses terminal height)")
	mouse := fs.Bool("mouse", envOrBool(env, envMouse, true), "enable mouse input")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	demo := fs.String("demo", envOrDefault(env, envDemo, app.DemoPanes), "demo to run: panes or inspect")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Width:  *width,
			Height: *height,
			Mouse:  *mouse,
			Demo:   *demo,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"mouse":   strconv.FormatBool(*mouse),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
			"demo":    *demo,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks values the flag parser cannot.
func Validate(cfg Config) error {
	switch cfg.App.Demo {
	case app.DemoPanes, app.DemoInspect:
	default:
		return fmt.Errorf("unknown demo %q (want %s or %s)", cfg.App.Demo, app.DemoPanes, app.DemoInspect)
	}
	if cfg.App.Width > 0xffff || cfg.App.Height > 0xffff {
		return fmt.Errorf("screen size %dx%d is too large", cfg.App.Width, cfg.App.Height)
	}
	return nil
}
