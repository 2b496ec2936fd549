package datesort

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v2"
)

const DefaultConfigName = "datesort.yml"

type Config struct {
	Title  string         `yaml:"title"`
	Input  string         `yaml:"input"`
	Format string         `yaml:"format"`
	Color  bool           `yaml:"color"`
	Dates  []CalendarDate `yaml:"dates"`
}

func DefaultConfig() *Config {
	return &Config{
		Title:  "Sorted dates",
		Format: DefaultLayout,
	}
}

// ReadConfig reads a YAML config file. A missing or empty file yields
// DefaultConfig.
func ReadConfig(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	defer f.Close()

	cfg := DefaultConfig()
	err = yaml.NewDecoder(f).Decode(cfg)
	if err != nil && err != io.EOF {
		return nil, err
	}

	if cfg.Format == "" {
		cfg.Format = DefaultLayout
	}

	return cfg, nil
}
