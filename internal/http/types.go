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

type Server struct {
	DB             handlers.Pinger
	Roster         roster.Service
	Matches        match.Service
	Standings      standings.Service
	Pairings       pairing.Service
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	PubSub         pubsub.PubSubClient
	Router         *http.ServeMux
}
