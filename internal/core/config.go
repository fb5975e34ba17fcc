package core

import (
	"time"
)

type Config struct {
	Spotify SpotifyConfig
	Server  ServerConfig
	Log     LogConfig
}

type SpotifyConfig struct {
	ClientID     string
	ClientSecret string
	// TokenURL and APIBaseURL point at the Spotify Accounts and Web API services.
	TokenURL   string
	APIBaseURL string
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

const (
	DefaultSpotifyTokenURL   = "https://accounts.spotify.com/api/token"
	DefaultSpotifyAPIBaseURL = "https://api.spotify.com/v1/"
	DefaultServerHost        = "0.0.0.0"
	DefaultServerPort        = 5000
)

func DefaultConfig() *Config {
	return &Config{
		Spotify: SpotifyConfig{
			TokenURL:   DefaultSpotifyTokenURL,
			APIBaseURL: DefaultSpotifyAPIBaseURL,
		},
		Server: ServerConfig{
			Host:         DefaultServerHost,
			Port:         DefaultServerPort,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// HasCredentials reports whether both client credentials are set.
func (c *SpotifyConfig) HasCredentials() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}
