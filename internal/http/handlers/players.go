package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-ladder/internal/roster"
)

type registerPlayerRequest struct {
	Name string `json:"name"`
}

func RegisterPlayerHandler(players roster.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerPlayerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode register request", "error", err)
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
			return
		}

		player, err := players.Register(r.Context(), req.Name)
		if err != nil {
			writeError(w, r, "Failed to register player", err)
			return
		}
		writeJSON(w, http.StatusCreated, player)
	}
}

func ListPlayersHandler(players roster.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := players.List(r.Context())
		if err != nil {
			writeError(w, r, "Failed to get players", err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func CountPlayersHandler(players roster.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := players.Count(r.Context())
		if err != nil {
			writeError(w, r, "Failed to count players", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"count": count})
	}
}

func DeletePlayersHandler(players roster.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to delete all players")
		if err := players.Clear(r.Context()); err != nil {
			writeError(w, r, "Failed to delete players", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
