// Package core holds the configuration and domain types shared by the playlistfetch components.
package core

import (
	"context"
	"strings"
)

// ArtistSeparator joins artist names inside a TrackSummary.
const ArtistSeparator = ", "

// Track is a playlist entry as returned by the catalog.
type Track struct {
	Name    string
	Artists []string
}

// TrackSummary is the reduced form of a Track sent to clients.
type TrackSummary struct {
	Name    string `json:"name"`
	Artists string `json:"artists"`
}

// PlaylistFetcher fetches the tracks of a playlist from the catalog.
type PlaylistFetcher interface {
	FetchPlaylistTracks(ctx context.Context, playlistID string) ([]Track, error)
}

func SummarizeTrack(track Track) TrackSummary {
	return TrackSummary{
		Name:    track.Name,
		Artists: strings.Join(track.Artists, ArtistSeparator),
	}
}

// SummarizeTracks keeps the order of tracks. The result is never nil.
func SummarizeTracks(tracks []Track) []TrackSummary {
	summaries := make([]TrackSummary, 0, len(tracks))
	for _, track := range tracks {
		summaries = append(summaries, SummarizeTrack(track))
	}
	return summaries
}
