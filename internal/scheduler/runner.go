package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"adspend/internal/core/port"
)

// Job names accepted by Trigger.
const (
	JobBudgetRecovery = "budget-recovery"
	JobDayparting     = "dayparting"
)

type jobFunc func(ctx context.Context) (string, error)

// Runner drives the periodic passes of a port.ScheduleUseCase on a gocron
// scheduler and lets operators trigger them by hand. A job never overlaps
// with itself, whether started by the timer or by Trigger.
type Runner struct {
	interval time.Duration
	log      *slog.Logger
	now      func() time.Time

	names []string
	jobs  map[string]jobFunc

	mu     sync.Mutex
	status map[string]*port.JobStatus
}

var _ port.JobRunner = (*Runner)(nil)

// NewRunner registers both passes of svc. interval is the gap between
// timer-driven runs.
func NewRunner(svc port.ScheduleUseCase, interval time.Duration, log *slog.Logger) *Runner {
	r := &Runner{
		interval: interval,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
		names:    []string{JobBudgetRecovery, JobDayparting},
		jobs: map[string]jobFunc{
			JobBudgetRecovery: svc.RunBudgetRecovery,
			JobDayparting:     svc.RunDayparting,
		},
		status: make(map[string]*port.JobStatus),
	}
	for _, name := range r.names {
		r.status[name] = &port.JobStatus{Name: name}
	}
	return r
}

// Run schedules every job at the configured interval and blocks until ctx
// is done. Jobs run once right away, then on every tick.
func (r *Runner) Run(ctx context.Context) error {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	for _, name := range r.names {
		name := name
		_, err := s.Every(r.interval).Tag(name).Do(func() {
			if _, err := r.run(ctx, name); err != nil && !errors.Is(err, port.ErrJobRunning) {
				r.log.Error("scheduled job failed", slog.String("job", name), slog.Any("error", err))
			}
		})
		if err != nil {
			return fmt.Errorf("schedule %s: %w", name, err)
		}
	}

	r.log.Info("scheduler started", slog.Duration("interval", r.interval))
	s.StartAsync()
	<-ctx.Done()
	s.Stop()
	r.log.Info("scheduler stopped")
	return nil
}

// Trigger runs job now and returns its summary.
func (r *Runner) Trigger(ctx context.Context, job string) (string, error) {
	if _, ok := r.jobs[job]; !ok {
		return "", fmt.Errorf("%w: %q", port.ErrUnknownJob, job)
	}
	return r.run(ctx, job)
}

// Status returns a snapshot of every job in registration order.
func (r *Runner) Status() []port.JobStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]port.JobStatus, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, *r.status[name])
	}
	return out
}

func (r *Runner) run(ctx context.Context, name string) (string, error) {
	r.mu.Lock()
	st := r.status[name]
	if st.Running {
		r.mu.Unlock()
		r.log.Info("job already running, skipping", slog.String("job", name))
		return "", port.ErrJobRunning
	}
	started := r.now()
	st.Running = true
	st.LastStartedAt = started
	r.mu.Unlock()

	summary, err := r.jobs[name](ctx)
	completed := r.now()

	r.mu.Lock()
	st.Running = false
	st.LastCompletedAt = completed
	st.LastSummary = summary
	st.LastError = ""
	if err != nil {
		st.LastError = err.Error()
	}
	r.mu.Unlock()

	r.log.Info("job finished",
		slog.String("job", name),
		slog.String("summary", summary),
		slog.Duration("took", completed.Sub(started)),
	)
	return summary, err
}
