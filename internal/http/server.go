package http

import (
	"net/http"

	"github.com/mauv0809/swiss-ladder/internal/config"
	"github.com/mauv0809/swiss-ladder/internal/http/handlers"
	"github.com/mauv0809/swiss-ladder/internal/match"
	"github.com/mauv0809/swiss-ladder/internal/metrics"
	"github.com/mauv0809/swiss-ladder/internal/notifier"
	"github.com/mauv0809/swiss-ladder/internal/pairing"
	"github.com/mauv0809/swiss-ladder/internal/pubsub"
	"github.com/mauv0809/swiss-ladder/internal/roster"
	"github.com/mauv0809/swiss-ladder/internal/standings"
)

func NewServer(db handlers.Pinger, players roster.Service, matches match.Service, standingsSvc standings.Service, pairings pairing.Service, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		DB:             db,
		Roster:         players,
		Matches:        matches,
		Standings:      standingsSvc,
		Pairings:       pairings,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		PubSub:         pubsub,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(handler, paramsMiddleware, authMiddleware)
	verifySlack := slackVerifyMiddleware(s.Cfg.Slack.SigningSecret)

	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(handlers.HealthCheckHandler(s.DB), paramsMiddleware))

	s.Router.Handle("POST /players", Chain(handlers.RegisterPlayerHandler(s.Roster), paramsMiddleware))
	s.Router.Handle("GET /players", Chain(handlers.ListPlayersHandler(s.Roster), paramsMiddleware))
	s.Router.Handle("GET /players/count", Chain(handlers.CountPlayersHandler(s.Roster), paramsMiddleware))
	s.Router.Handle("DELETE /players", Chain(handlers.DeletePlayersHandler(s.Roster), paramsMiddleware))

	s.Router.Handle("POST /matches", Chain(handlers.RecordMatchHandler(s.Matches, s.PubSub), paramsMiddleware))
	s.Router.Handle("GET /matches", Chain(handlers.ListMatchesHandler(s.Matches), paramsMiddleware))
	s.Router.Handle("DELETE /matches", Chain(handlers.DeleteMatchesHandler(s.Matches), paramsMiddleware))

	s.Router.Handle("GET /standings", Chain(handlers.StandingsHandler(s.Standings), paramsMiddleware))
	s.Router.Handle("GET /pairings", Chain(handlers.PairingsHandler(s.Pairings, s.PubSub), paramsMiddleware))

	s.Router.Handle("POST /pubsub/match-recorded", Chain(handlers.MatchRecordedHandler(s.Notifier, s.PubSub), paramsMiddleware))
	s.Router.Handle("POST /pubsub/round-paired", Chain(handlers.RoundPairedHandler(s.Notifier, s.PubSub), paramsMiddleware))

	s.Router.Handle("POST /slack/command/standings", Chain(handlers.StandingsCommandHandler(s.Standings, s.Notifier), paramsMiddleware, verifySlack))
	s.Router.Handle("POST /slack/command/pairings", Chain(handlers.PairingsCommandHandler(s.Pairings, s.Notifier), paramsMiddleware, verifySlack))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
