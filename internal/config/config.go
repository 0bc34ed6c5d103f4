package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"spine-flexion-renderer/internal/scene"
	"spine-flexion-renderer/internal/spine"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SPINE_"

// Config holds output paths and render settings.
type Config struct {
	// Scene
	Scene      string  `json:"scene" yaml:"scene"`
	FPS        float64 `json:"fps" yaml:"fps"`
	Duration   float64 `json:"duration" yaml:"duration"` // seconds; 0 means one period
	HideLabels bool    `json:"hide_labels" yaml:"hide_labels"`

	// Paths
	OutputDir   string `json:"output_dir" yaml:"output_dir"`
	BackdropDir string `json:"backdrop_dir" yaml:"backdrop_dir"`
	Backdrop    string `json:"backdrop" yaml:"backdrop"`

	// Render settings
	RenderSize  int `json:"render_size" yaml:"render_size"`
	Supersample int `json:"supersample" yaml:"supersample"`
	Workers     int `json:"workers" yaml:"workers"`

	// Logging
	LogLevel  string `json:"log_level" yaml:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format"`
}

// Load reads a JSON or YAML config file, picked by extension.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".json", "":
		err = json.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("config: %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	EnvFile     string // dotenv file; "" tries ./.env
	Scene       string
	OutputDir   string
	BackdropDir string
	Backdrop    string
	Size        int
	Supersample int
	FPS         float64
	Duration    float64
	Workers     int
	HideLabels  bool
	LogLevel    string
	LogFormat   string
}

// Resolve layers the environment (including a dotenv file) and then CLI
// flags over the file values, and fills whatever is still empty with
// defaults. Problems that do not stop resolution, such as an unreadable env
// file or an unparsable env value, are returned as warnings for the caller
// to log once logging is configured.
func (c *Config) Resolve(flags Flags) (warnings []error) {
	if err := loadDotEnv(flags.EnvFile); err != nil {
		warnings = append(warnings, err)
	}
	warnings = append(warnings, c.applyEnv()...)

	// CLI flags override config file and environment
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.BackdropDir != "" {
		c.BackdropDir = flags.BackdropDir
	}
	if flags.Backdrop != "" {
		c.Backdrop = flags.Backdrop
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Duration > 0 {
		c.Duration = flags.Duration
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.HideLabels {
		c.HideLabels = true
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.LogFormat != "" {
		c.LogFormat = flags.LogFormat
	}

	c.applyDefaults()
	return warnings
}

func (c *Config) applyDefaults() {
	if c.Scene == "" {
		c.Scene = spine.HeroScene
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.FPS <= 0 {
		c.FPS = 30
	}
	// Negative durations are left for Validate to reject.
	if c.Duration == 0 {
		c.Duration = spine.Period
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
}

// Validate reports the first setting that cannot be rendered.
func (c Config) Validate() error {
	if _, err := scene.PresetByName(c.Scene); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.RenderSize <= 0 {
		return errors.New("config: render_size must be positive")
	}
	if c.Supersample <= 0 {
		return errors.New("config: supersample must be positive")
	}
	if c.FPS <= 0 {
		return errors.New("config: fps must be positive")
	}
	if c.Duration < 0 {
		return errors.New("config: duration must not be negative")
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("config: unknown log_format %q", c.LogFormat)
	}
	return nil
}

func loadDotEnv(path string) error {
	if path == "" {
		// Optional: a missing ./.env is normal.
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: env file %s not loaded: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() []error {
	envString("SCENE", &c.Scene)
	envString("OUTPUT_DIR", &c.OutputDir)
	envString("BACKDROP_DIR", &c.BackdropDir)
	envString("BACKDROP", &c.Backdrop)
	envString("LOG_LEVEL", &c.LogLevel)
	envString("LOG_FORMAT", &c.LogFormat)

	var errs []error
	for _, err := range []error{
		envParse("SIZE", &c.RenderSize, strconv.Atoi),
		envParse("SUPERSAMPLE", &c.Supersample, strconv.Atoi),
		envParse("WORKERS", &c.Workers, strconv.Atoi),
		envParse("FPS", &c.FPS, parseFloat),
		envParse("DURATION", &c.Duration, parseFloat),
		envParse("HIDE_LABELS", &c.HideLabels, strconv.ParseBool),
	} {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func envString(key string, dst *string) {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		*dst = v
	}
}

// envParse sets dst from the env value of key. An unparsable value leaves
// dst untouched and is reported.
func envParse[T any](key string, dst *T, parse func(string) (T, error)) error {
	v := os.Getenv(EnvPrefix + key)
	if v == "" {
		return nil
	}
	parsed, err := parse(v)
	if err != nil {
		return fmt.Errorf("config: ignoring invalid env value %s=%q", EnvPrefix+key, v)
	}
	*dst = parsed
	return nil
}

func parseFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }
