package test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hoopsim/league-service/internal/config"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestConfigLoad_FromYAMLAndEnv(t *testing.T) {
	// Minimal YAML; the connection string comes from ENV
	yaml := `
app:
  name: league-service
  version: 0.1.0
  env: test
  port: 18080

logger:
  level: info
  format: json
  time_format: rfc3339

mongo:
  database: league_test
  connect_timeout: 5

sim:
  possessions: 40
`
	path := writeTempConfig(t, yaml)

	t.Setenv("APP_MONGO_URI", "mongodb://127.0.0.1:27017")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.App.Port != 18080 {
		t.Fatalf("expected app.port 18080, got %d", cfg.App.Port)
	}
	if cfg.Mongo.URI != "mongodb://127.0.0.1:27017" {
		t.Fatalf("env override not applied: got uri=%q", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "league_test" || cfg.Mongo.ConnectTimeout != 5 {
		t.Fatalf("yaml values not loaded as expected: db=%q timeout=%d", cfg.Mongo.Database, cfg.Mongo.ConnectTimeout)
	}
	if cfg.Sim.Possessions != 40 {
		t.Fatalf("expected sim.possessions 40, got %d", cfg.Sim.Possessions)
	}
}

func TestConfigLoad_EnvWinsOverYAML(t *testing.T) {
	yaml := `
app:
  name: league-service
  env: test
  port: 18080

logger:
  level: info

mongo:
  database: from_file
`
	path := writeTempConfig(t, yaml)

	t.Setenv("APP_MONGO_DATABASE", "from_env")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mongo.Database != "from_env" {
		t.Fatalf("expected env to win, got db=%q", cfg.Mongo.Database)
	}
}

func TestConfigLoad_Defaults(t *testing.T) {
	yaml := `
app:
  name: league-service
  env: test

logger:
  level: info
`
	path := writeTempConfig(t, yaml)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.App.Port)
	}
	if cfg.Mongo.Database != "league" {
		t.Fatalf("expected default database, got %q", cfg.Mongo.Database)
	}
	if cfg.Mongo.ConnectTimeout != 10 {
		t.Fatalf("expected default connect_timeout 10, got %d", cfg.Mongo.ConnectTimeout)
	}
	if cfg.Sim.Possessions != 111 {
		t.Fatalf("expected default possessions 111, got %d", cfg.Sim.Possessions)
	}
}

func TestConfigLoad_MissingFileFails(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "no-such.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing config file, got nil")
	}
}
