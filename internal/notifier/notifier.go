package notifier

import (
	"github.com/mauv0809/swiss-ladder/internal/match"
	"github.com/mauv0809/swiss-ladder/internal/pairing"
	"github.com/mauv0809/swiss-ladder/internal/standings"
)

// Notifier defines a high-level interface for sending notifications about tournament events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For recorded matches
	SendMatchResult(result match.Result, dryRun bool) error
	// For scheduled posts and announcements
	SendStandings(rows []standings.Standing, dryRun bool) error
	SendPairings(round pairing.Round, dryRun bool) error

	// For formatting responses for slash commands
	FormatStandingsResponse(rows []standings.Standing) (any, error)
	FormatPairingsResponse(round pairing.Round) (any, error)
}
