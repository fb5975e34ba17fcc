package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"playlistfetch/internal/core"
)

func TestBuildConfig_Defaults(t *testing.T) {
	t.Setenv("CLIENT_ID", "")
	t.Setenv("CLIENT_SECRET", "")
	bindEnv()

	cfg := buildConfig()

	if cfg.Spotify.ClientID != "" || cfg.Spotify.ClientSecret != "" {
		t.Errorf("Expected empty credentials by default, got %q/%q", cfg.Spotify.ClientID, cfg.Spotify.ClientSecret)
	}
	if cfg.Server.Host != core.DefaultServerHost {
		t.Errorf("Expected host %s, got %s", core.DefaultServerHost, cfg.Server.Host)
	}
	if cfg.Server.Port != core.DefaultServerPort {
		t.Errorf("Expected port %d, got %d", core.DefaultServerPort, cfg.Server.Port)
	}
	if cfg.Spotify.TokenURL != core.DefaultSpotifyTokenURL {
		t.Errorf("Expected token URL %s, got %s", core.DefaultSpotifyTokenURL, cfg.Spotify.TokenURL)
	}
}

func TestBuildConfig_CredentialsFromEnv(t *testing.T) {
	t.Setenv("CLIENT_ID", "id-from-env")
	t.Setenv("CLIENT_SECRET", "secret-from-env")
	bindEnv()

	cfg := buildConfig()

	if cfg.Spotify.ClientID != "id-from-env" {
		t.Errorf("Expected client ID from CLIENT_ID, got %q", cfg.Spotify.ClientID)
	}
	if cfg.Spotify.ClientSecret != "secret-from-env" {
		t.Errorf("Expected client secret from CLIENT_SECRET, got %q", cfg.Spotify.ClientSecret)
	}
}

func TestBuildConfig_PrefixedEnvWins(t *testing.T) {
	t.Setenv("CLIENT_ID", "short-name")
	t.Setenv("PLAYLISTFETCH_SPOTIFY_CLIENT_ID", "prefixed-name")
	t.Setenv("PLAYLISTFETCH_SERVER_PORT", "8081")
	bindEnv()

	cfg := buildConfig()

	if cfg.Spotify.ClientID != "prefixed-name" {
		t.Errorf("Expected prefixed variable to win, got %q", cfg.Spotify.ClientID)
	}
	if cfg.Server.Port != 8081 {
		t.Errorf("Expected port 8081 from env, got %d", cfg.Server.Port)
	}
}

func TestLoadEnvFile(t *testing.T) {
	const key = "PLAYLISTFETCH_TEST_ENV_FILE_MARKER"
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=loaded\n"), 0600); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	if err := loadEnvFile(path); err != nil {
		t.Fatalf("loadEnvFile() unexpected error: %v", err)
	}
	if got := os.Getenv(key); got != "loaded" {
		t.Errorf("Expected %s=loaded, got %q", key, got)
	}
}

func TestLoadEnvFile_MissingFile(t *testing.T) {
	if err := loadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("Expected missing env file to be ignored, got %v", err)
	}
}

func TestBuildLogger(t *testing.T) {
	tests := []struct {
		level         string
		expectedLevel zapcore.Level
	}{
		{level: "debug", expectedLevel: zapcore.DebugLevel},
		{level: "INFO", expectedLevel: zapcore.InfoLevel},
		{level: "warn", expectedLevel: zapcore.WarnLevel},
		{level: "error", expectedLevel: zapcore.ErrorLevel},
		{level: "bogus", expectedLevel: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := buildLogger(tt.level)
			if !logger.Core().Enabled(tt.expectedLevel) {
				t.Errorf("Expected level %s to be enabled", tt.expectedLevel)
			}
			if tt.expectedLevel > zapcore.DebugLevel && logger.Core().Enabled(tt.expectedLevel-1) {
				t.Errorf("Expected level %s to be disabled", tt.expectedLevel-1)
			}
		})
	}
}

func TestGenerateEnvExampleContent(t *testing.T) {
	content := generateEnvExampleContent(rootCmd)

	expected := []string{
		"CLIENT_ID=",
		"CLIENT_SECRET=",
		"PLAYLISTFETCH_SERVER_HOST=0.0.0.0",
		"PLAYLISTFETCH_SERVER_PORT=5000",
		"PLAYLISTFETCH_LOG_LEVEL=info",
	}
	for _, line := range expected {
		if !strings.Contains(content, line) {
			t.Errorf("Expected .env.example to contain %q", line)
		}
	}
}

func TestFlagToEnvVar(t *testing.T) {
	if got := flagToEnvVar("spotify-client-id"); got != "PLAYLISTFETCH_SPOTIFY_CLIENT_ID" {
		t.Errorf("flagToEnvVar() = %q", got)
	}
}
