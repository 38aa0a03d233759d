package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adspend/internal/core/port"
	"adspend/internal/core/port/mocks"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestTriggerRecordsStatus(t *testing.T) {
	svc := mocks.NewMockScheduleUseCase(t)
	svc.EXPECT().RunDayparting(mock.Anything).Return("dayparting: 1 brands checked", nil).Once()
	svc.EXPECT().RunBudgetRecovery(mock.Anything).Return("partial", errors.New("boom")).Once()

	r := NewRunner(svc, time.Minute, discard)

	summary, err := r.Trigger(context.Background(), JobDayparting)
	require.NoError(t, err)
	assert.Equal(t, "dayparting: 1 brands checked", summary)

	_, err = r.Trigger(context.Background(), JobBudgetRecovery)
	require.Error(t, err)

	st := r.Status()
	require.Len(t, st, 2)
	assert.Equal(t, JobBudgetRecovery, st[0].Name)
	assert.Equal(t, "boom", st[0].LastError)
	assert.Equal(t, "partial", st[0].LastSummary)
	assert.Equal(t, JobDayparting, st[1].Name)
	assert.Empty(t, st[1].LastError)
	assert.False(t, st[1].Running)
	assert.False(t, st[1].LastCompletedAt.IsZero())
}

func TestTriggerUnknownJob(t *testing.T) {
	r := NewRunner(mocks.NewMockScheduleUseCase(t), time.Minute, discard)
	_, err := r.Trigger(context.Background(), "reindex")
	assert.ErrorIs(t, err, port.ErrUnknownJob)
}

func TestTriggerRefusesOverlap(t *testing.T) {
	svc := mocks.NewMockScheduleUseCase(t)
	entered := make(chan struct{})
	release := make(chan struct{})
	svc.EXPECT().RunDayparting(mock.Anything).RunAndReturn(func(context.Context) (string, error) {
		close(entered)
		<-release
		return "done", nil
	}).Once()

	r := NewRunner(svc, time.Minute, discard)
	done := make(chan error, 1)
	go func() {
		_, err := r.Trigger(context.Background(), JobDayparting)
		done <- err
	}()
	<-entered

	assert.True(t, r.Status()[1].Running)
	_, err := r.Trigger(context.Background(), JobDayparting)
	assert.ErrorIs(t, err, port.ErrJobRunning)

	close(release)
	require.NoError(t, <-done)
}

func TestRunSchedulesBothJobs(t *testing.T) {
	svc := mocks.NewMockScheduleUseCase(t)
	recovery := make(chan struct{}, 1)
	dayparting := make(chan struct{}, 1)
	svc.EXPECT().RunBudgetRecovery(mock.Anything).RunAndReturn(func(context.Context) (string, error) {
		select {
		case recovery <- struct{}{}:
		default:
		}
		return "ok", nil
	})
	svc.EXPECT().RunDayparting(mock.Anything).RunAndReturn(func(context.Context) (string, error) {
		select {
		case dayparting <- struct{}{}:
		default:
		}
		return "ok", nil
	})

	r := NewRunner(svc, time.Hour, discard)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	for _, ch := range []chan struct{}{recovery, dayparting} {
		select {
		case <-ch:
		case <-time.After(5 * time.Second):
			t.Fatal("job did not run on start")
		}
	}
	cancel()
	require.NoError(t, <-done)
}
