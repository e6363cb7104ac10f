package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slackkit.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("SLACKKIT_TEST_WEBHOOK", "https://hooks.example.com/abc")

	path := writeConfig(t, `version: "1"
log:
  level: debug
telemetry:
  tracing:
    endpoint: localhost:4318
    insecure: true
modules:
  channel.slack:
    webhook_url: ${SLACKKIT_TEST_WEBHOOK}
    channel: ${SLACKKIT_TEST_CHANNEL:-C0123}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Version != "1" {
		t.Errorf("Version = %q, want %q", cfg.Version, "1")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Telemetry.Tracing.Endpoint != "localhost:4318" || !cfg.Telemetry.Tracing.Insecure {
		t.Errorf("Tracing = %+v", cfg.Telemetry.Tracing)
	}

	node, ok := cfg.Modules["channel.slack"]
	if !ok {
		t.Fatal("channel.slack module missing")
	}
	var slack struct {
		WebhookURL string `yaml:"webhook_url"`
		Channel    string `yaml:"channel"`
	}
	if err := node.Decode(&slack); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if slack.WebhookURL != "https://hooks.example.com/abc" {
		t.Errorf("webhook_url = %q", slack.WebhookURL)
	}
	if slack.Channel != "C0123" {
		t.Errorf("channel = %q, want default C0123", slack.Channel)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParse_UnresolvedVariables(t *testing.T) {
	_, err := Parse([]byte("token: ${SLACKKIT_TEST_UNSET_A}\nurl: ${SLACKKIT_TEST_UNSET_B}\n"))
	if err == nil {
		t.Fatal("expected error for unresolved variables")
	}
	for _, name := range []string{"SLACKKIT_TEST_UNSET_A", "SLACKKIT_TEST_UNSET_B"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error should list %s: %v", name, err)
		}
	}
}

func TestParse_EmptyDefault(t *testing.T) {
	cfg, err := Parse([]byte("version: \"${SLACKKIT_TEST_UNSET_VERSION:-1}\"\nlog:\n  level: \"${SLACKKIT_TEST_UNSET_LEVEL:-}\"\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Version != "1" {
		t.Errorf("Version = %q, want 1", cfg.Version)
	}
	if cfg.Log.Level != "" {
		t.Errorf("Log.Level = %q, want empty", cfg.Log.Level)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	t.Parallel()

	if _, err := Parse([]byte("modules: [unclosed")); err == nil {
		t.Fatal("expected parse error")
	}
}
