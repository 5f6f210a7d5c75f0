package slack

import (
	"fmt"

	"github.com/mauv0809/swiss-ladder/internal/match"
	"github.com/mauv0809/swiss-ladder/internal/pairing"
	"github.com/mauv0809/swiss-ladder/internal/standings"
	"github.com/slack-go/slack"
)

// formatMatchResult creates the Slack message for a recorded match using Block Kit.
func (s *Notifier) formatMatchResult(result match.Result) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", "🏁 Match recorded! 🏁", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("*%s* beat *%s*", result.Winner.Name, result.Loser.Name)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", detailsText, false, false), nil, nil))

	contextText := fmt.Sprintf("%s: %d/%d wins | %s: %d/%d wins",
		result.Winner.Name, result.Winner.Wins, result.Winner.Matches,
		result.Loser.Name, result.Loser.Wins, result.Loser.Matches,
	)
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", contextText, true, false)))

	return slack.NewBlockMessage(blocks...)
}

// formatStandings creates a Slack message to display the current ranking.
func (s *Notifier) formatStandings(rows []standings.Standing) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", "🏆 Standings 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(rows) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No players registered yet.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	// Player Ranks
	for i, row := range rows {
		rank := i + 1
		var medal string
		switch rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}

		playerText := fmt.Sprintf("%d. %s %s\n> *Wins*: %d | *Matches*: %d",
			rank,
			medal,
			row.Name,
			row.Wins,
			row.Matches,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", playerText, false, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatPairings creates a Slack message listing the tables of the next round.
func (s *Notifier) formatPairings(round pairing.Round) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "⚔️ Next round ⚔️", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(round.Pairings) == 0 && round.Bye == nil {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No players to pair.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for _, p := range round.Pairings {
		text := fmt.Sprintf("*Table %d*: %s vs %s", p.Table, p.Player1Name, p.Player2Name)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil))
	}

	if round.Bye != nil {
		byeText := fmt.Sprintf("%s sits this round out (uneven number of players).", round.Bye.Name)
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", byeText, true, false)))
	}

	return slack.NewBlockMessage(blocks...)
}
