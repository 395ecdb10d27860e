// Package scheduler runs the daily rollover sweep.
package scheduler

import (
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// SweepTime is when the daily sweep runs, shortly after local midnight.
const SweepTime = "00:05"

// DeckSweeper resets stale daily counters in bulk.
type DeckSweeper interface {
	RolloverStaleDecks() (int, error)
}

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	decks     DeckSweeper
	log       *zap.SugaredLogger
}

// New creates a new scheduler instance
func New(decks DeckSweeper, log *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		decks:     decks,
		log:       log,
	}
}

// Start begins running all scheduled tasks. The read paths already
// apply the rollover lazily; the sweep keeps counters correct for
// decks that are only ever shown from cached snapshots.
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Day().At(SweepTime).Do(s.sweep)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) sweep() {
	n, err := s.decks.RolloverStaleDecks()
	if err != nil {
		s.log.Errorw("daily rollover sweep failed", "error", err)
		return
	}
	if n > 0 {
		s.log.Infow("daily rollover sweep finished", "decks_reset", n)
	}
}

// RunManualSweep forces a sweep outside the schedule.
func (s *Scheduler) RunManualSweep() error {
	_, err := s.decks.RolloverStaleDecks()
	return err
}
