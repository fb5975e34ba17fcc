// Package spotify provides Spotify Web API integration for reading playlist contents.
package spotify

import (
	"context"
	"fmt"
	"strings"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"playlistfetch/internal/core"
)

const (
	// PlaylistPageSize is the number of playlist items requested. Only the first page is read.
	PlaylistPageSize = 100
)

// Client reads playlists using the client credentials flow. It holds no user context,
// so only public and collaborative playlists are visible.
type Client struct {
	config      *core.SpotifyConfig
	logger      *zap.Logger
	client      *spotify.Client
	tokenSource oauth2.TokenSource
}

func NewClient(config *core.SpotifyConfig, logger *zap.Logger) *Client {
	tokenURL := config.TokenURL
	if tokenURL == "" {
		tokenURL = spotifyauth.TokenURL
	}

	credentials := &clientcredentials.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		TokenURL:     tokenURL,
	}

	// Tokens are fetched on first use and refreshed when they expire.
	ctx := context.Background()
	tokenSource := credentials.TokenSource(ctx)

	var opts []spotify.ClientOption
	if config.APIBaseURL != "" {
		baseURL := config.APIBaseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		opts = append(opts, spotify.WithBaseURL(baseURL))
	}

	return &Client{
		config:      config,
		logger:      logger,
		client:      spotify.New(oauth2.NewClient(ctx, tokenSource), opts...),
		tokenSource: tokenSource,
	}
}

// Authenticate requests an access token so credential problems show up early.
// The token is kept and reused by later API calls.
func (c *Client) Authenticate(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		_, err := c.tokenSource.Token()
		errCh <- err
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to obtain client credentials token: %w", err)
		}
	case <-ctx.Done():
		return fmt.Errorf("authentication aborted: %w", ctx.Err())
	}

	c.logger.Info("Authenticated with client credentials")
	return nil
}

// FetchPlaylistTracks returns the tracks on the first page of the playlist.
func (c *Client) FetchPlaylistTracks(ctx context.Context, playlistID string) ([]core.Track, error) {
	page, err := c.client.GetPlaylistItems(ctx, spotify.ID(playlistID), spotify.Limit(PlaylistPageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	tracks := make([]core.Track, 0, len(page.Items))
	for i := range page.Items {
		track, ok := convertPlaylistItem(&page.Items[i])
		if !ok {
			c.logger.Debug("Skipping unavailable playlist item",
				zap.String("playlistID", playlistID),
				zap.Int("position", i))
			continue
		}
		tracks = append(tracks, track)
	}

	total := int(page.Total) //nolint:gosec // Playlist sizes fit in int
	if total > len(page.Items) {
		c.logger.Info("Playlist has more items than one page, returning first page only",
			zap.String("playlistID", playlistID),
			zap.Int("total", total),
			zap.Int("returned", len(page.Items)))
	}

	c.logger.Debug("Fetched playlist tracks",
		zap.String("playlistID", playlistID),
		zap.Int("tracks", len(tracks)))

	return tracks, nil
}

// convertPlaylistItem maps a track or episode item. Items with neither are unavailable content.
func convertPlaylistItem(item *spotify.PlaylistItem) (core.Track, bool) {
	switch {
	case item.Track.Track != nil:
		track := item.Track.Track
		artists := make([]string, 0, len(track.Artists))
		for _, artist := range track.Artists {
			artists = append(artists, artist.Name)
		}
		return core.Track{Name: track.Name, Artists: artists}, true

	case item.Track.Episode != nil:
		episode := item.Track.Episode
		return core.Track{Name: episode.Name, Artists: []string{episode.Show.Name}}, true
	}

	return core.Track{}, false
}
