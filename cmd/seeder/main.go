package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/swiss-ladder/internal/database"
	"github.com/mauv0809/swiss-ladder/internal/match"
	"github.com/mauv0809/swiss-ladder/internal/metrics"
	"github.com/mauv0809/swiss-ladder/internal/pairing"
	"github.com/mauv0809/swiss-ladder/internal/roster"
	"github.com/prometheus/client_golang/prometheus"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"SEED_PLAYERS": "16",
		"SEED_ROUNDS":  "4",
	}
	for _, key := range []string{"DB_NAME", "TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN", "SEED_PLAYERS", "SEED_ROUNDS"} {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	if config["DB_NAME"] == "" && config["TURSO_PRIMARY_URL"] == "" {
		log.Fatalf("Error: Either DB_NAME or TURSO_PRIMARY_URL must be set.")
	}
	return config
}

func atoi(cfg map[string]string, key string) int {
	n, err := strconv.Atoi(cfg[key])
	if err != nil || n < 0 {
		log.Fatalf("Error: %s must be a non-negative number, got %q", key, cfg[key])
	}
	return n
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()
	ctx := context.Background()

	gw, teardown, err := database.InitDB(ctx, database.Options{
		Path:       cfg["DB_NAME"],
		PrimaryURL: cfg["TURSO_PRIMARY_URL"],
		AuthToken:  cfg["TURSO_AUTH_TOKEN"],
		MaxRetries: 5,
	})
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	// The seeder has no scrape endpoint; a private registry keeps the counters local.
	metricsSvc := metrics.NewService(prometheus.NewRegistry())
	s := seeder{
		players:  roster.New(gw, metricsSvc),
		matches:  match.New(gw, metricsSvc),
		pairings: pairing.New(gw, metricsSvc),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	startTime := time.Now()
	if err := s.seed(ctx, atoi(cfg, "SEED_PLAYERS"), atoi(cfg, "SEED_ROUNDS")); err != nil {
		log.Fatalf("Seeding failed: %s", err)
	}
	log.Info("Successfully seeded the tournament.", "duration", time.Since(startTime))
}

type seeder struct {
	players  roster.Service
	matches  match.Service
	pairings pairing.Service
	rng      *rand.Rand
}

// seed registers numPlayers players and plays numRounds Swiss rounds with random winners.
func (s seeder) seed(ctx context.Context, numPlayers, numRounds int) error {
	for i := 0; i < numPlayers; i++ {
		if _, err := s.players.Register(ctx, fmt.Sprintf("Seeder Player %d", i+1)); err != nil {
			return fmt.Errorf("failed to register player %d: %w", i+1, err)
		}
	}
	log.Info("Registered players", "count", numPlayers)

	for round := 1; round <= numRounds; round++ {
		next, err := s.pairings.Pairings(ctx)
		if err != nil && !errors.Is(err, pairing.ErrUnevenRoster) {
			return fmt.Errorf("failed to pair round %d: %w", round, err)
		}
		for _, p := range next.Pairings {
			winner, loser := p.Player1ID, p.Player2ID
			if s.rng.Intn(2) == 1 {
				winner, loser = loser, winner
			}
			if _, err := s.matches.Record(ctx, winner, loser); err != nil {
				return fmt.Errorf("failed to record round %d table %d: %w", round, p.Table, err)
			}
		}
		log.Info("Played round", "round", round, "tables", len(next.Pairings))
	}
	return nil
}
