package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const defaultHost = "http://localhost:8080"

var host string

var rootCmd = &cobra.Command{
	Use:   "swiss-cli",
	Short: "Run a Swiss tournament against a swiss-ladder server",
	Long: `swiss-cli registers players, reports match results and reads standings
and next-round pairings from a running swiss-ladder server.

The server address is taken from --host, then SWISS_HOST, then ` + defaultHost + `.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", hostFromEnv(os.LookupEnv), "Base URL of the swiss-ladder server")
}

func hostFromEnv(lookup func(string) (string, bool)) string {
	if h, ok := lookup("SWISS_HOST"); ok && h != "" {
		return h
	}
	return defaultHost
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
