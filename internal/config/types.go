package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	DBName string
	Port   string
	Turso  TursoConfig
	DB     DBConfig
	Slack  SlackConfig
	// ProjectID is the GCP project used for Pub/Sub. Events are only logged when empty.
	ProjectID string
	Log       LogConfig
	// StandingsPostInterval enables the periodic standings post when non-zero.
	StandingsPostInterval time.Duration
}

type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type DBConfig struct {
	RetryInterval time.Duration
	MaxRetries    uint64
}

type LogConfig struct {
	Level  string
	Format string
	File   string
}
