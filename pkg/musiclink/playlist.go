// Package musiclink provides parsing of shareable Spotify playlist links.
package musiclink

import (
	"errors"
	"regexp"
)

// PlaylistLinkPrefix is the fixed part every accepted playlist link starts with.
const PlaylistLinkPrefix = "https://open.spotify.com/playlist/"

var (
	// ErrInvalidPlaylistLink is returned when a link does not have the accepted playlist link shape.
	ErrInvalidPlaylistLink = errors.New("Expected format: " + PlaylistLinkPrefix + "...") //nolint:staticcheck // Message is shown to users verbatim.

	// The identifier may not contain '/' or '?'; an optional query string may follow it.
	playlistLinkRegex = regexp.MustCompile(`^https://open\.spotify\.com/playlist/([^?/]+)(?:\?.*)?$`)
)

// ParsePlaylistLink extracts the playlist identifier from a playlist link.
// The whole string must match, so links with extra path segments are rejected.
func ParsePlaylistLink(link string) (string, error) {
	matches := playlistLinkRegex.FindStringSubmatch(link)
	if len(matches) < 2 {
		return "", ErrInvalidPlaylistLink
	}
	return matches[1], nil
}

// IsPlaylistLink reports whether link can be parsed by ParsePlaylistLink.
func IsPlaylistLink(link string) bool {
	return playlistLinkRegex.MatchString(link)
}
