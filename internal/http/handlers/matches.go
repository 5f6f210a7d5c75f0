package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-ladder/internal/match"
	"github.com/mauv0809/swiss-ladder/internal/pubsub"
)

type recordMatchRequest struct {
	WinnerID int64 `json:"winner_id"`
	LoserID  int64 `json:"loser_id"`
}

// RecordMatchHandler stores a result and announces it on the match-recorded topic.
// A failed publish is logged; the result itself is already committed.
func RecordMatchHandler(matches match.Service, pubsubClient pubsub.PubSubClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordMatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode match request", "error", err)
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
			return
		}
		if req.WinnerID <= 0 || req.LoserID <= 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "winner_id and loser_id are required"})
			return
		}

		result, err := matches.Record(r.Context(), req.WinnerID, req.LoserID)
		if err != nil {
			writeError(w, r, "Failed to record match", err)
			return
		}

		event := pubsub.NewEvent(pubsub.EventMatchRecorded, result, IsDryRunFromContext(r))
		if err := pubsubClient.SendMessage(pubsub.EventMatchRecorded, event); err != nil {
			log.FromContext(r.Context()).Error("Failed to publish match result", "match_id", result.Match.ID, "error", err)
		}
		writeJSON(w, http.StatusCreated, result)
	}
}

func ListMatchesHandler(matches match.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := matches.List(r.Context())
		if err != nil {
			writeError(w, r, "Failed to get matches", err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func DeleteMatchesHandler(matches match.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to delete all matches")
		if err := matches.Clear(r.Context()); err != nil {
			writeError(w, r, "Failed to delete matches", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
