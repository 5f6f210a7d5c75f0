package handlers

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-ladder/internal/pairing"
	"github.com/mauv0809/swiss-ladder/internal/pubsub"
	"github.com/mauv0809/swiss-ladder/internal/standings"
)

func StandingsHandler(standingsSvc standings.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := standingsSvc.Standings(r.Context())
		if err != nil {
			writeError(w, r, "Failed to get standings", err)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}

type pairingsResponse struct {
	Pairings []pairing.Pairing `json:"pairings"`
	Bye      *pairing.Player   `json:"bye,omitempty"`
	Warning  string            `json:"warning,omitempty"`
}

// PairingsHandler returns the next round. An uneven roster still answers 200, with the
// unpaired player in "bye" and a warning. With ?announce=true the round is published.
func PairingsHandler(pairings pairing.Service, pubsubClient pubsub.PubSubClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		round, err := pairings.Pairings(r.Context())
		resp := pairingsResponse{Pairings: round.Pairings, Bye: round.Bye}
		switch {
		case errors.Is(err, pairing.ErrUnevenRoster):
			resp.Warning = err.Error()
		case err != nil:
			writeError(w, r, "Failed to generate pairings", err)
			return
		}

		if r.URL.Query().Get("announce") == "true" {
			event := pubsub.NewEvent(pubsub.EventRoundPaired, round, IsDryRunFromContext(r))
			if err := pubsubClient.SendMessage(pubsub.EventRoundPaired, event); err != nil {
				log.FromContext(r.Context()).Error("Failed to publish round", "error", err)
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
