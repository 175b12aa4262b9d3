package settings

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	CONFIG_ENV  = "RPAL_CONFIG"
	CONFIG_FILE = "rpal.yaml"
)

type Trace struct {
	Lexer        bool `yaml:"lexer"`
	Parser       bool `yaml:"parser"`
	Standardizer bool `yaml:"standardizer"`
	Compiler     bool `yaml:"compiler"`
	Runtime      bool `yaml:"runtime"`
}

// Any returns true if any of the stages is being traced.
func (t Trace) Any() bool {
	return t.Lexer || t.Parser || t.Standardizer || t.Compiler || t.Runtime
}

type History struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type Repl struct {
	Prompt string `yaml:"prompt"`
}

type Config struct {
	Trace   Trace   `yaml:"trace"`
	History History `yaml:"history"`
	Repl    Repl    `yaml:"repl"`
	Color   *bool   `yaml:"color"`
}

// Default returns the configuration given by the constants in settings.go.
func Default() *Config {
	color := COLOR
	return &Config{
		Trace: Trace{
			Lexer:        SHOW_LEXER,
			Parser:       SHOW_PARSER,
			Standardizer: SHOW_STANDARDIZER,
			Compiler:     SHOW_COMPILER,
			Runtime:      SHOW_RUNTIME,
		},
		History: History{Driver: HISTORY_DRIVER},
		Color:   &color,
	}
}

func (c *Config) UseColor() bool {
	return c.Color == nil || *c.Color
}

// Locate finds the config file to use: the path given on the command line if any, then the
// one named by $RPAL_CONFIG, then rpal.yaml in the working directory. An empty result means
// that there isn't one and the defaults apply.
func Locate(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if envPath := os.Getenv(CONFIG_ENV); envPath != "" {
		return envPath
	}
	if _, e := os.Stat(CONFIG_FILE); e == nil {
		return CONFIG_FILE
	}
	return ""
}

// Load reads a YAML config file over the defaults. Fields it doesn't know about are an error,
// since they're most likely misspellings.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	absPath, e := filepath.Abs(path)
	if e != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, e)
	}
	file, e := os.Open(absPath)
	if e != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, e)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if e := decoder.Decode(cfg); e != nil {
		if errors.Is(e, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: parse %s: %w", absPath, e)
	}
	if cfg.History.Driver != "" && cfg.History.DSN == "" && cfg.History.Driver != "sqlite" {
		return nil, fmt.Errorf("config: history driver %q needs a dsn", cfg.History.Driver)
	}
	return cfg, nil
}
