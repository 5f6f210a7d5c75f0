package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	PlayersRegistered  prometheus.Counter
	MatchesRecorded    prometheus.Counter
	PairingsGenerated  prometheus.Counter
	UnevenRosters      prometheus.Counter
	DBConnectErrors    prometheus.Counter
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
