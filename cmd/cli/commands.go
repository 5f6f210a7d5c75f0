package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	dryRun   bool
	announce bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Ask the server not to send any notification")
	pairingsCmd.Flags().BoolVar(&announce, "announce", false, "Publish the round so it is posted to Slack")

	playersCmd.AddCommand(playersAddCmd, playersListCmd, playersCountCmd, playersClearCmd)
	matchesCmd.AddCommand(matchesReportCmd, matchesListCmd, matchesClearCmd)

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(pairingsCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(cmd.OutOrStdout(), http.MethodGet, "/health", nil)
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Manage the tournament roster",
}

var playersAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a new player",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(cmd.OutOrStdout(), http.MethodPost, "/players", map[string]string{"name": strings.Join(args, " ")})
	},
}

var playersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(cmd.OutOrStdout(), http.MethodGet, "/players", nil)
	},
}

var playersCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Count the registered players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(cmd.OutOrStdout(), http.MethodGet, "/players/count", nil)
	},
}

var playersClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every player and their matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(cmd.OutOrStdout(), http.MethodDelete, "/players", nil)
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Report and inspect match results",
}

var matchesReportCmd = &cobra.Command{
	Use:   "report <winner-id> <loser-id>",
	Short: "Report the result of a match",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		winner, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid winner id %q: %w", args[0], err)
		}
		loser, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid loser id %q: %w", args[1], err)
		}
		return performRequest(cmd.OutOrStdout(), http.MethodPost, "/matches", map[string]int64{"winner_id": winner, "loser_id": loser})
	},
}

var matchesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the recorded matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(cmd.OutOrStdout(), http.MethodGet, "/matches", nil)
	},
}

var matchesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every match and reset all results",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(cmd.OutOrStdout(), http.MethodDelete, "/matches", nil)
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the current standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(cmd.OutOrStdout(), http.MethodGet, "/standings", nil)
	},
}

var pairingsCmd = &cobra.Command{
	Use:   "pairings",
	Short: "Show the pairings for the next round",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/pairings"
		if announce {
			endpoint += "?announce=true"
		}
		return performRequest(cmd.OutOrStdout(), http.MethodGet, endpoint, nil)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(cmd.OutOrStdout(), http.MethodGet, "/metrics", nil)
	},
}

func withDryRun(endpoint string) string {
	if !dryRun {
		return endpoint
	}
	if strings.Contains(endpoint, "?") {
		return endpoint + "&dry_run=true"
	}
	return endpoint + "?dry_run=true"
}

func performRequest(out io.Writer, method, endpoint string, payload any) error {
	url := host + withDryRun(endpoint)
	fmt.Fprintf(out, "Making %s request to %s\n", method, url)

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Fprintf(out, "Status Code: %d\n", resp.StatusCode)
	fmt.Fprintln(out, "Response Body:")
	fmt.Fprintln(out, string(respBody))

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("server answered %s", resp.Status)
	}
	return nil
}
