package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-ladder/internal/notifier"
	"github.com/mauv0809/swiss-ladder/internal/pairing"
	"github.com/mauv0809/swiss-ladder/internal/standings"
	"github.com/slack-go/slack"
)

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg any) {
	slackMsg, ok := msg.(slack.Message)
	if !ok {
		http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
		log.Error("Failed to cast message to slack.Message")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(slackMsg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

func logSlashCommand(r *http.Request) {
	cmd, err := slack.SlashCommandParse(r)
	if err != nil {
		log.Warn("Failed to parse slash command", "error", err)
		return
	}
	log.Info("Received slash command", "command", cmd.Command, "user", cmd.UserName, "channel", cmd.ChannelID)
}

func StandingsCommandHandler(standingsSvc standings.Service, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logSlashCommand(r)

		rows, err := standingsSvc.Standings(r.Context())
		if err != nil {
			http.Error(w, "Failed to get standings", http.StatusInternalServerError)
			log.Error("Failed to get standings from store", "error", err)
			return
		}

		msg, err := notifier.FormatStandingsResponse(rows)
		if err != nil {
			http.Error(w, "Failed to format standings", http.StatusInternalServerError)
			log.Error("Failed to format standings", "error", err)
			return
		}
		respondWithSlackMsg(w, msg)
	}
}

func PairingsCommandHandler(pairings pairing.Service, notifier notifier.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logSlashCommand(r)

		round, err := pairings.Pairings(r.Context())
		if err != nil && !errors.Is(err, pairing.ErrUnevenRoster) {
			http.Error(w, "Failed to generate pairings", http.StatusInternalServerError)
			log.Error("Failed to generate pairings", "error", err)
			return
		}

		msg, err := notifier.FormatPairingsResponse(round)
		if err != nil {
			http.Error(w, "Failed to format pairings", http.StatusInternalServerError)
			log.Error("Failed to format pairings", "error", err)
			return
		}
		respondWithSlackMsg(w, msg)
	}
}
