package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/georoute/route"
)

var (
	errBadLogFormat   = errors.New("config: log_format must be text or json")
	errBadParallelism = errors.New("config: parallelism must be positive")
)

// Config is the on-disk CLI configuration. Command-line flags override it.
type Config struct {
	Network     string `yaml:"network"`     // path to a network YAML file, empty for the embedded Peru network
	Algorithm   string `yaml:"algorithm"`   // default engine for route
	LogLevel    string `yaml:"log_level"`   // logrus level name
	LogFormat   string `yaml:"log_format"`  // text | json
	Parallelism int    `yaml:"parallelism"` // worker limit for compare
}

func defaultConfig() Config {
	return Config{
		Algorithm:   string(route.Dijkstra),
		LogLevel:    logrus.InfoLevel.String(),
		LogFormat:   "text",
		Parallelism: runtime.NumCPU(),
	}
}

// loadConfig reads path on top of the defaults. Keys missing from the file
// keep their default value; unknown keys are an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// validate checks the values that have no natural fallback.
func (c Config) validate() error {
	if _, err := route.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: %q", errBadLogFormat, c.LogFormat)
	}
	if c.Parallelism <= 0 {
		return fmt.Errorf("%w: %d", errBadParallelism, c.Parallelism)
	}

	return nil
}

// newLogger builds a logger writing to out with the configured level and formatter.
func newLogger(c Config, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)
	switch c.LogFormat {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	default:
		return nil, fmt.Errorf("%w: %q", errBadLogFormat, c.LogFormat)
	}

	return log, nil
}
