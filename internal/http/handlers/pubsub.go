package handlers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/swiss-ladder/internal/match"
	"github.com/mauv0809/swiss-ladder/internal/notifier"
	"github.com/mauv0809/swiss-ladder/internal/pairing"
	"github.com/mauv0809/swiss-ladder/internal/pubsub"
)

// pushMessage is the JSON wrapper Pub/Sub push subscriptions post.
type pushMessage struct {
	Subscription string `json:"subscription"`
	Message      struct {
		Data      string `json:"data"`
		MessageID string `json:"messageId"`
	} `json:"message"`
}

// readPushMessage unwraps a push request and decodes its payload into v.
// It writes the error response itself and reports whether decoding succeeded.
func readPushMessage(w http.ResponseWriter, r *http.Request, pubsubClient pubsub.PubSubClient, v any) bool {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("Failed to read request body", "error", err)
		http.Error(w, "Failed to read request body", http.StatusInternalServerError)
		return false
	}
	log.Debug("Received pubsub message", "path", r.URL.Path, "body", string(bodyBytes))

	var pubsubMsg pushMessage
	if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
		log.Error("Failed to unmarshal wrapper JSON", "error", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return false
	}

	rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
	if err != nil {
		log.Error("Failed to decode base64 data", "error", err)
		http.Error(w, "Invalid base64 data", http.StatusBadRequest)
		return false
	}

	if err := pubsubClient.ProcessMessage(rawData, v); err != nil {
		// Undecodable payloads are not retried.
		http.Error(w, fmt.Sprintf("Invalid payload: %v", err), http.StatusBadRequest)
		return false
	}
	return true
}

func MatchRecordedHandler(notifier notifier.Notifier, pubsubClient pubsub.PubSubClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event pubsub.Event[match.Result]
		if !readPushMessage(w, r, pubsubClient, &event) {
			return
		}

		isDryRun := event.DryRun || IsDryRunFromContext(r)
		if err := notifier.SendMatchResult(event.Payload, isDryRun); err != nil {
			log.Error("Failed to send match result notification", "event_id", event.ID, "error", err)
			http.Error(w, "Failed to send notification", http.StatusInternalServerError)
			return
		}
		log.Info("Match result notification sent", "event_id", event.ID, "match_id", event.Payload.Match.ID)
		w.Write([]byte("OK"))
	}
}

func RoundPairedHandler(notifier notifier.Notifier, pubsubClient pubsub.PubSubClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event pubsub.Event[pairing.Round]
		if !readPushMessage(w, r, pubsubClient, &event) {
			return
		}

		isDryRun := event.DryRun || IsDryRunFromContext(r)
		if err := notifier.SendPairings(event.Payload, isDryRun); err != nil {
			log.Error("Failed to send pairings notification", "event_id", event.ID, "error", err)
			http.Error(w, "Failed to send notification", http.StatusInternalServerError)
			return
		}
		log.Info("Pairings notification sent", "event_id", event.ID, "tables", len(event.Payload.Pairings))
		w.Write([]byte("OK"))
	}
}
