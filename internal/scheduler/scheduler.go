package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-co-op/gocron/v2"
	"github.com/mauv0809/swiss-ladder/internal/notifier"
	"github.com/mauv0809/swiss-ladder/internal/standings"
)

// Scheduler periodically posts the current standings.
type Scheduler struct {
	sched     gocron.Scheduler
	standings standings.Service
	notifier  notifier.Notifier
	timeout   time.Duration
}

// New registers the standings job. Nothing runs until Start is called.
func New(interval time.Duration, standingsSvc standings.Service, n notifier.Notifier) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("invalid standings post interval %s", interval)
	}

	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	s := &Scheduler{
		sched:     sched,
		standings: standingsSvc,
		notifier:  n,
		timeout:   30 * time.Second,
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
			defer cancel()
			if err := s.PostStandings(ctx); err != nil {
				log.Error("[Scheduler] Failed to post standings", "error", err)
			}
		}),
		gocron.WithName("post-standings"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, fmt.Errorf("failed to schedule standings job: %w", err)
	}

	log.Info("Standings post scheduled", "interval", interval)
	return s, nil
}

func (s *Scheduler) Start() {
	s.sched.Start()
}

func (s *Scheduler) Shutdown() error {
	return s.sched.Shutdown()
}

// PostStandings reads the standings once and sends them through the notifier.
func (s *Scheduler) PostStandings(ctx context.Context) error {
	rows, err := s.standings.Standings(ctx)
	if err != nil {
		return fmt.Errorf("failed to read standings: %w", err)
	}
	if len(rows) == 0 {
		log.Debug("[Scheduler] No players registered, skipping standings post")
		return nil
	}
	if err := s.notifier.SendStandings(rows, false); err != nil {
		return fmt.Errorf("failed to send standings: %w", err)
	}
	log.Info("[Scheduler] Posted standings", "players", len(rows))
	return nil
}
