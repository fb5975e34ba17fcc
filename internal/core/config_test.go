package core

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Spotify.ClientID != "" || config.Spotify.ClientSecret != "" {
		t.Errorf("Expected empty default credentials, got %q/%q", config.Spotify.ClientID, config.Spotify.ClientSecret)
	}

	if config.Spotify.TokenURL != DefaultSpotifyTokenURL {
		t.Errorf("Expected default token URL %s, got %s", DefaultSpotifyTokenURL, config.Spotify.TokenURL)
	}

	if config.Spotify.APIBaseURL != DefaultSpotifyAPIBaseURL {
		t.Errorf("Expected default API URL %s, got %s", DefaultSpotifyAPIBaseURL, config.Spotify.APIBaseURL)
	}

	if config.Server.Host != DefaultServerHost {
		t.Errorf("Expected default host %s, got %s", DefaultServerHost, config.Server.Host)
	}

	if config.Log.Level != "info" {
		t.Errorf("Expected default log level info, got %s", config.Log.Level)
	}
}

func TestSpotifyConfig_HasCredentials(t *testing.T) {
	tests := []struct {
		name     string
		config   SpotifyConfig
		expected bool
	}{
		{name: "Both set", config: SpotifyConfig{ClientID: "id", ClientSecret: "secret"}, expected: true},
		{name: "Missing secret", config: SpotifyConfig{ClientID: "id"}, expected: false},
		{name: "Missing ID", config: SpotifyConfig{ClientSecret: "secret"}, expected: false},
		{name: "Zero value", config: SpotifyConfig{}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.HasCredentials(); got != tt.expected {
				t.Errorf("HasCredentials() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestConfigConstants(t *testing.T) {
	if DefaultServerPort <= 0 || DefaultServerPort > 65535 {
		t.Error("DefaultServerPort should be a valid port number")
	}

	config := DefaultConfig()
	if config.Server.ReadTimeout <= 0 || config.Server.WriteTimeout <= 0 {
		t.Error("Server timeouts should be positive")
	}
}
