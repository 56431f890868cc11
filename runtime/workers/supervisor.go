package workers

import (
	"context"
	"fmt"
	"log/slog"
	"support-desk/contract"
	"support-desk/errors"
	"support-desk/observability"
	"sync"
	"time"
)

var _ contract.ISupervisor = (*Supervisor)(nil)

// RestartPolicy says how long a crashed worker waits before its next run.
// The wait starts at Backoff and doubles after every consecutive crash, up to MaxBackoff.
// A run that stays up for MaxBackoff counts as healthy and resets the wait.
// MaxRestarts gives up on the worker after that many restarts, zero means never.
type RestartPolicy struct {
	Backoff     time.Duration
	MaxBackoff  time.Duration
	MaxRestarts int
}

// FixedRestart waits the same interval after every crash, forever.
func FixedRestart(interval time.Duration) RestartPolicy {
	return RestartPolicy{Backoff: interval, MaxBackoff: interval}
}

// ExponentialRestart doubles the wait from backoff up to maxBackoff.
func ExponentialRestart(backoff, maxBackoff time.Duration, maxRestarts int) RestartPolicy {
	return RestartPolicy{Backoff: backoff, MaxBackoff: maxBackoff, MaxRestarts: maxRestarts}
}

// Delay is the wait before restart number n, counted from zero within a crash streak.
func (p RestartPolicy) Delay(n int) time.Duration {
	delay := p.Backoff
	for i := 0; i < n && delay < p.MaxBackoff; i++ {
		delay *= 2
	}
	return min(delay, max(p.MaxBackoff, p.Backoff))
}

func (p RestartPolicy) exhausted(restarts int) bool {
	return p.MaxRestarts > 0 && restarts >= p.MaxRestarts
}

type unit struct {
	name   string
	worker contract.Worker
	policy RestartPolicy
}

// Supervisor runs each worker in its own goroutine and restarts it on a panic or an error.
// A clean return ends the worker for good. Stop cancels every worker and Run returns
// once they are all gone.
type Supervisor struct {
	log    *slog.Logger
	policy RestartPolicy
	wg     sync.WaitGroup
	mu     sync.Mutex
	cancel context.CancelFunc
	units  []unit
}

// NewSupervisor restarts workers added through Add every restartInterval.
func NewSupervisor(log *slog.Logger, restartInterval time.Duration) *Supervisor {
	return &Supervisor{log: log, policy: FixedRestart(restartInterval)}
}

func (s *Supervisor) Add(workers ...contract.Worker) contract.ISupervisor {
	return s.AddWithPolicy(s.policy, workers...)
}

// AddWithPolicy registers workers that restart under their own policy.
func (s *Supervisor) AddWithPolicy(policy RestartPolicy, workers ...contract.Worker) *Supervisor {
	for _, w := range workers {
		s.units = append(s.units, unit{name: contract.GetWorkerName(w), worker: w, policy: policy})
	}
	return s
}

// Run blocks until every worker has ended. Cancelling ctx or calling Stop ends them all.
func (s *Supervisor) Run(ctx context.Context) {
	supervisedCtx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	for _, u := range s.units {
		s.launch(supervisedCtx, u)
	}
	s.wg.Wait()
}

// Start runs one worker under the default policy.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.launch(ctx, unit{name: contract.GetWorkerName(worker), worker: worker, policy: s.policy})
}

func (s *Supervisor) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *Supervisor) launch(ctx context.Context, u unit) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.supervise(ctx, u)
	}()
}

func (s *Supervisor) supervise(ctx context.Context, u unit) {
	restarts, streak := 0, 0
	for ctx.Err() == nil {
		started := time.Now()
		err := runGuarded(ctx, u.worker)
		switch {
		case err == nil:
			s.log.Info("Worker finished", "name", u.name)
			return
		case ctx.Err() != nil:
			s.log.Info("Worker stopped", "name", u.name)
			return
		case u.policy.exhausted(restarts):
			s.log.Error("Worker gave up", "name", u.name, "restarts", restarts, "error", err)
			return
		}

		if time.Since(started) >= u.policy.MaxBackoff {
			streak = 0
		}
		delay := u.policy.Delay(streak)
		restarts++
		streak++
		observability.RecordWorkerRestart(u.name)
		s.log.Warn("Worker crashed, restarting", "name", u.name, "in", delay, "restarts", restarts, "error", err)

		select {
		case <-ctx.Done():
		case <-time.After(delay):
		}
	}
	s.log.Info("Worker stopped", "name", u.name)
}

// runGuarded turns a panic inside the worker into an error.
func runGuarded(ctx context.Context, worker contract.Worker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v: %w", r, errors.ErrWorkerPanic)
		}
	}()
	return worker.Run(ctx)
}
