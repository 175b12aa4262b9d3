package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "rpal.yaml")
	if e := os.WriteFile(path, []byte(contents), 0o644); e != nil {
		t.Fatal(e)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, e := Load("")
	if e != nil {
		t.Fatal(e)
	}
	if cfg.Trace.Any() || !cfg.UseColor() || cfg.History.Driver != "" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
trace:
  standardizer: true
  runtime: true
history:
  driver: sqlite
  dsn: runs.db
repl:
  prompt: "rpal> "
color: false
`)
	cfg, e := Load(path)
	if e != nil {
		t.Fatal(e)
	}
	if !cfg.Trace.Standardizer || !cfg.Trace.Runtime || cfg.Trace.Lexer {
		t.Fatalf("trace settings wrong: %+v", cfg.Trace)
	}
	if cfg.History.Driver != "sqlite" || cfg.History.DSN != "runs.db" {
		t.Fatalf("history settings wrong: %+v", cfg.History)
	}
	if cfg.Repl.Prompt != "rpal> " || cfg.UseColor() {
		t.Fatalf("repl settings wrong: %+v", cfg)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, e := Load(writeConfig(t, ""))
	if e != nil {
		t.Fatal(e)
	}
	if cfg.Trace.Any() {
		t.Fatalf("empty file should give defaults")
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, e := Load(writeConfig(t, "trace:\n  lexr: true\n"))
	if e == nil || !strings.Contains(e.Error(), "config: parse") {
		t.Fatalf("wanted a parse error, got %v", e)
	}
}

func TestLoadRejectsMissingDSN(t *testing.T) {
	_, e := Load(writeConfig(t, "history:\n  driver: postgres\n"))
	if e == nil {
		t.Fatalf("wanted an error for a driver with no dsn")
	}
}

func TestLocate(t *testing.T) {
	if Locate("given.yaml") != "given.yaml" {
		t.Fatalf("flag path should win")
	}
	t.Setenv(CONFIG_ENV, "from-env.yaml")
	if Locate("") != "from-env.yaml" {
		t.Fatalf("environment should be consulted")
	}
}
