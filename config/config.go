package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/slink/builder"
	"github.com/katalvlaran/slink/prim_kruskal"
	"github.com/katalvlaran/slink/singlelink"
)

// ErrInvalid is returned by Validate for any setting out of range.
var ErrInvalid = errors.New("config: invalid setting")

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config is the full configuration of a clustering run.
type Config struct {
	// Input is the path of the ARFF dataset.
	Input string `yaml:"input"`
	// K is the cluster count of a single run; 0 means "ask".
	K int `yaml:"k"`
	// Sweep lists the cluster counts of a sweep.
	Sweep []int `yaml:"sweep"`

	Method      string `yaml:"method"`
	Metric      string `yaml:"metric"`
	Standardize bool   `yaml:"standardize"`
	Workers     int    `yaml:"workers"`

	// Output is OutputText or OutputJSON.
	Output string `yaml:"output"`

	Log LogConfig `yaml:"log"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Method: prim_kruskal.MethodKruskal,
		Metric: builder.Euclidean.String(),
		Output: OutputText,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load returns Default() overlaid with the YAML file at path. Keys absent
// from the file keep their defaults; unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	if err := cfg.Decode(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}

	return cfg, nil
}

// Decode overlays YAML from r onto c. An empty document is not an error.
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// ApplyEnv overrides settings from SLINK_* variables looked up with getenv
// (os.Getenv in production). Unparsable numbers are reported.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("SLINK_INPUT"); v != "" {
		c.Input = v
	}
	if v := getenv("SLINK_K"); v != "" {
		k, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SLINK_K=%q: %w", v, ErrInvalid)
		}
		c.K = k
	}
	if v := getenv("SLINK_METHOD"); v != "" {
		c.Method = v
	}
	if v := getenv("SLINK_METRIC"); v != "" {
		c.Metric = v
	}
	if v := getenv("SLINK_STANDARDIZE"); v != "" {
		c.Standardize = strings.EqualFold(v, "true") || v == "1"
	}
	if v := getenv("SLINK_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("SLINK_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}

	return nil
}

// Validate checks every setting except Input, whose existence is checked
// when the file is read.
func (c *Config) Validate() error {
	if c.K < 0 {
		return fmt.Errorf("k=%d must be >= 0: %w", c.K, ErrInvalid)
	}
	for _, k := range c.Sweep {
		if k <= 0 {
			return fmt.Errorf("sweep value %d must be > 0: %w", k, ErrInvalid)
		}
	}
	switch c.Method {
	case prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim, singlelink.MethodPrimDense:
	default:
		return fmt.Errorf("method %q: %w", c.Method, ErrInvalid)
	}
	if _, err := builder.ParseMetric(c.Metric); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalid)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers=%d must be >= 0: %w", c.Workers, ErrInvalid)
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("output %q: %w", c.Output, ErrInvalid)
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log format %q: %w", c.Log.Format, ErrInvalid)
	}

	return nil
}

func (l LogConfig) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", l.Level, ErrInvalid)
	}

	return lvl, nil
}

// Logger returns a slog.Logger writing to w as configured. Call Validate
// first; an invalid level falls back to info.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	lvl, err := c.Log.level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// PipelineOptions translates c into singlelink options. Call Validate first.
func (c *Config) PipelineOptions(logger *slog.Logger) []singlelink.Option {
	metric, _ := builder.ParseMetric(c.Metric)
	opts := []singlelink.Option{
		singlelink.WithMethod(c.Method),
		singlelink.WithMetric(metric),
		singlelink.WithStandardize(c.Standardize),
	}
	if c.Workers > 0 {
		opts = append(opts, singlelink.WithWorkers(c.Workers))
	}
	if logger != nil {
		opts = append(opts, singlelink.WithLogger(logger))
	}

	return opts
}
