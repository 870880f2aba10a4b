// Package revalidate re-invalidates cache keys after asynchronous backend
// actions. The backend completes posting, retries and engagement runs out of
// band, so the console drops the affected keys again at fixed delays after
// the triggering call, and a cron job refreshes the overview keys as a
// backstop. The fixed delays are a heuristic carried over from the dashboard
// this replaces, not a completion guarantee.
package revalidate

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DefaultDelays mirror the dashboard's post-action refetch cadence.
var DefaultDelays = []time.Duration{2 * time.Second, 5 * time.Second, 10 * time.Second}

// Invalidator is the slice of the query cache the scheduler needs.
type Invalidator interface {
	Invalidate(keys ...string)
	InvalidateKind(kind string)
}

// Scheduler fans out delayed invalidations and runs the periodic refresh.
type Scheduler struct {
	cache  Invalidator
	delays []time.Duration
	log    *logrus.Logger

	cron *cron.Cron

	mu     sync.Mutex
	timers []*time.Timer
	closed bool
}

// New returns a scheduler using DefaultDelays unless overridden.
func New(cache Invalidator, log *logrus.Logger, delays ...time.Duration) *Scheduler {
	if len(delays) == 0 {
		delays = DefaultDelays
	}
	return &Scheduler{
		cache:  cache,
		delays: delays,
		log:    log,
		cron:   cron.New(),
	}
}

// After schedules the keys to be invalidated once now and again at each
// configured delay.
func (s *Scheduler) After(keys ...string) {
	s.cache.Invalidate(keys...)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	for _, d := range s.delays {
		keys := keys
		t := time.AfterFunc(d, func() {
			s.cache.Invalidate(keys...)
		})
		s.timers = append(s.timers, t)
	}
}

// AfterKind is After for whole entity kinds.
func (s *Scheduler) AfterKind(kinds ...string) {
	for _, k := range kinds {
		s.cache.InvalidateKind(k)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	for _, d := range s.delays {
		kinds := kinds
		t := time.AfterFunc(d, func() {
			for _, k := range kinds {
				s.cache.InvalidateKind(k)
			}
		})
		s.timers = append(s.timers, t)
	}
}

// Periodic registers a cron-scheduled invalidation of the given kinds, e.g.
// for the overview and rate-limit views that change without console writes.
func (s *Scheduler) Periodic(spec string, kinds ...string) error {
	_, err := s.cron.AddFunc(spec, func() {
		for _, k := range kinds {
			s.cache.InvalidateKind(k)
		}
		s.log.WithField("kinds", kinds).Debug("periodic refresh")
	})
	return err
}

// Start runs the periodic jobs.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts periodic jobs and cancels pending delayed invalidations.
func (s *Scheduler) Stop() {
	s.cron.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}
