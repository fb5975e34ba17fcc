package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"playlistfetch/internal/core"
	"playlistfetch/pkg/musiclink"
)

const (
	// MessageNoPlaylistLink is returned when the request carries no playlist link.
	MessageNoPlaylistLink = "No playlist link provided"
	// MessageInvalidBody is returned when the request body is not a JSON object.
	MessageInvalidBody = "Invalid request body"
	// UnexpectedErrorPrefix prefixes every internal error message.
	UnexpectedErrorPrefix = "Unexpected error: "

	maxRequestBodyBytes = 1 << 20

	errorKindInvalidBody  = "invalid_body"
	errorKindMissingLink  = "missing_link"
	errorKindInvalidLink  = "invalid_link"
	errorKindCatalog      = "catalog"
	errorKindPanic        = "panic"
	catalogOutcomeSuccess = "success"
	catalogOutcomeError   = "error"
)

type FetchPlaylistRequest struct {
	PlaylistLink string `json:"playlist_link"`
}

type FetchPlaylistResponse struct {
	Tracks []core.TrackSummary `json:"tracks"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleFetchPlaylist(w http.ResponseWriter, r *http.Request) {
	var req FetchPlaylistRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	// An empty body is treated like a body without a link.
	if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.logger.Warn("Rejected undecodable request body", zap.Error(err))
		s.metrics.RecordError(errorKindInvalidBody)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: MessageInvalidBody})
		return
	}

	if req.PlaylistLink == "" {
		s.metrics.RecordError(errorKindMissingLink)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: MessageNoPlaylistLink})
		return
	}

	playlistID, err := musiclink.ParsePlaylistLink(req.PlaylistLink)
	if err != nil {
		s.logger.Debug("Rejected playlist link",
			zap.String("link", req.PlaylistLink),
			zap.Error(err))
		s.metrics.RecordError(errorKindInvalidLink)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	start := time.Now()
	tracks, err := s.fetcher.FetchPlaylistTracks(r.Context(), playlistID)
	if err != nil {
		s.metrics.RecordCatalogCall(catalogOutcomeError, time.Since(start))
		s.metrics.RecordError(errorKindCatalog)
		s.logger.Error("Failed to fetch playlist tracks",
			zap.String("playlistID", playlistID),
			zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: UnexpectedErrorPrefix + err.Error()})
		return
	}
	s.metrics.RecordCatalogCall(catalogOutcomeSuccess, time.Since(start))

	summaries := core.SummarizeTracks(tracks)
	s.metrics.RecordTracksReturned(len(summaries))

	s.logger.Info("Fetched playlist",
		zap.String("playlistID", playlistID),
		zap.Int("tracks", len(summaries)))

	writeJSON(w, http.StatusOK, FetchPlaylistResponse{Tracks: summaries})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
