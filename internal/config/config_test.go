package config

import (
	"testing"
	"time"

	"github.com/mazenLavey/rock-paper-scissors-game/internal/game"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.KeyBytes != game.DefaultKeyBytes {
		t.Fatalf("expected key bytes %d, got %d", game.DefaultKeyBytes, cfg.KeyBytes)
	}
	if cfg.Help() != game.HelpTerminates {
		t.Fatalf("expected terminate policy, got %s", cfg.Help())
	}
	if cfg.ChoiceTimeout != 0 {
		t.Fatalf("expected no timeout, got %s", cfg.ChoiceTimeout)
	}
	if cfg.APIRateWindow != time.Minute {
		t.Fatalf("expected 1m window, got %s", cfg.APIRateWindow)
	}
	if cfg.ArchiveEnabled() {
		t.Fatal("archive should be disabled without DATABASE_URL")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("RPS_KEY_BYTES", "32")
	t.Setenv("RPS_HELP_POLICY", "reprompt")
	t.Setenv("RPS_CHOICE_TIMEOUT", "30s")
	t.Setenv("DATABASE_URL", "postgres://localhost/rps")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.KeyBytes != 32 {
		t.Fatalf("expected 32 key bytes, got %d", cfg.KeyBytes)
	}
	if cfg.Help() != game.HelpReprompts {
		t.Fatalf("expected reprompt policy, got %s", cfg.Help())
	}
	if cfg.ChoiceTimeout != 30*time.Second {
		t.Fatalf("expected 30s timeout, got %s", cfg.ChoiceTimeout)
	}
	if !cfg.ArchiveEnabled() {
		t.Fatal("archive should be enabled")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"zero key bytes", "RPS_KEY_BYTES", "0"},
		{"non numeric key bytes", "RPS_KEY_BYTES", "many"},
		{"unknown help policy", "RPS_HELP_POLICY", "loop"},
		{"negative timeout", "RPS_CHOICE_TIMEOUT", "-1s"},
		{"zero rate limit", "API_RATE_LIMIT", "0"},
		{"zero feed interval", "FEED_POLL_INTERVAL", "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
