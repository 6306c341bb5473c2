package config

import (
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Driver: DriverValkey,
			Addrs:  []string{"localhost:6379"},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingValkeyAddrs(t *testing.T) {
	for _, driver := range []string{DriverValkey, DriverRedis} {
		cfg := validConfig()
		cfg.Database.Driver = driver
		cfg.Database.Addrs = []string{}

		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected error for missing %s addrs", driver)
		}
	}
}

func TestValidate_SQLite(t *testing.T) {
	cfg := validConfig()
	cfg.Database = DatabaseConfig{Driver: DriverSQLite, Path: "data/test.db"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Database.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing sqlite path")
	}
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Driver = "postgres"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}
	expected := `database.driver must be one of valkey, redis, sqlite, got "postgres"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_NegativeRate(t *testing.T) {
	cfg := validConfig()
	cfg.LLM.RequestsPerSecond = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative rate")
	}
}

func TestValidate_EmptySynonym(t *testing.T) {
	cfg := validConfig()
	cfg.Search.Synonyms = map[string]string{"hygge": " "}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty canonical term")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.Driver != DriverValkey {
		t.Errorf("expected Driver=valkey, got %q", cfg.Database.Driver)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Database.Path != "" {
		t.Errorf("expected no sqlite path for valkey, got %q", cfg.Database.Path)
	}
	if cfg.Storage.KeyPrefix != "thriftfind:" {
		t.Errorf("expected KeyPrefix='thriftfind:', got %q", cfg.Storage.KeyPrefix)
	}
	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("expected Model=gpt-4o-mini, got %q", cfg.LLM.Model)
	}
	if cfg.LLM.Temperature != 0.1 {
		t.Errorf("expected Temperature=0.1, got %v", cfg.LLM.Temperature)
	}
	if cfg.LLM.MaxTokens != 300 {
		t.Errorf("expected MaxTokens=300, got %d", cfg.LLM.MaxTokens)
	}
	if cfg.LLM.TimeoutMs != 5000 {
		t.Errorf("expected TimeoutMs=5000, got %d", cfg.LLM.TimeoutMs)
	}
	if cfg.LLM.Burst != 0 {
		t.Errorf("expected no burst without a rate, got %d", cfg.LLM.Burst)
	}
	if cfg.LLM.CacheTTLSec != 86400 {
		t.Errorf("expected CacheTTLSec=86400, got %d", cfg.LLM.CacheTTLSec)
	}
	if cfg.Search.FetchTimeoutMs != 3000 {
		t.Errorf("expected FetchTimeoutMs=3000, got %d", cfg.Search.FetchTimeoutMs)
	}
}

func TestApplyDefaults_AnthropicModel(t *testing.T) {
	cfg := Config{LLM: LLMConfig{Provider: ProviderAnthropic}}
	cfg.ApplyDefaults()

	if !cfg.LLM.IsAnthropic() {
		t.Fatal("expected anthropic provider")
	}
	if cfg.LLM.Model != "claude-3-5-haiku-20241022" {
		t.Errorf("expected claude default model, got %q", cfg.LLM.Model)
	}

	cfg = Config{LLM: LLMConfig{Provider: ProviderAnthropic, Model: "claude-sonnet-4-5"}}
	cfg.ApplyDefaults()
	if cfg.LLM.Model != "claude-sonnet-4-5" {
		t.Errorf("expected explicit model kept, got %q", cfg.LLM.Model)
	}
}

func TestApplyDefaults_SQLitePath(t *testing.T) {
	cfg := Config{Database: DatabaseConfig{Driver: DriverSQLite}}
	cfg.ApplyDefaults()

	if cfg.Database.Path != "data/thriftfind.db" {
		t.Errorf("expected default sqlite path, got %q", cfg.Database.Path)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Database: DatabaseConfig{ReadinessTimeout: 15},
		LLM:      LLMConfig{Model: "custom", RequestsPerSecond: 2, Burst: 4},
		Search:   SearchConfig{FetchTimeoutMs: 500},
		Storage:  StorageConfig{KeyPrefix: "custom:"},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.LLM.Model != "custom" {
		t.Errorf("expected Model=custom, got %q", cfg.LLM.Model)
	}
	if cfg.LLM.Burst != 4 {
		t.Errorf("expected Burst=4, got %d", cfg.LLM.Burst)
	}
	if cfg.Search.FetchTimeoutMs != 500 {
		t.Errorf("expected FetchTimeoutMs=500, got %d", cfg.Search.FetchTimeoutMs)
	}
	if cfg.Storage.KeyPrefix != "custom:" {
		t.Errorf("expected KeyPrefix='custom:', got %q", cfg.Storage.KeyPrefix)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("TF_SET", "value")
	t.Setenv("TF_EMPTY", "")

	in := "a: ${TF_SET}\nb: ${TF_EMPTY:-fallback}\nc: ${TF_UNSET_FOR_TEST:-x}\nd: ${TF_UNSET_FOR_TEST}"
	got := string(expandEnvVars([]byte(in)))
	want := "a: value\nb: fallback\nc: x\nd: "
	if got != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestLoad_Local(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/thriftfind-test.db")

	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.HTTP.Port)
	}
	if !cfg.Database.IsSQL() || cfg.Database.Path != "/tmp/thriftfind-test.db" {
		t.Errorf("unexpected database config: %+v", cfg.Database)
	}
	if cfg.Search.Synonyms["hygge"] != "cozy" {
		t.Errorf("expected synonyms from file, got %v", cfg.Search.Synonyms)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("does-not-exist")
	if err == nil || !strings.Contains(err.Error(), "failed to read config") {
		t.Fatalf("expected read error, got %v", err)
	}
}
