package cleanup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/patchwork-dev/patchwork/pkg/config"
)

type fakeSweeper struct {
	calls int
	err   error
}

func (f *fakeSweeper) DeleteExpired(context.Context) (int, error) {
	f.calls++
	return 2, f.err
}

type fakePurger struct {
	calls     int
	olderThan time.Duration
	err       error
}

func (f *fakePurger) PurgeSettled(_ context.Context, olderThan time.Duration) (int, error) {
	f.calls++
	f.olderThan = olderThan
	return 1, f.err
}

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		CleanupInterval:  time.Hour,
		MessageRetention: 48 * time.Hour,
	}
}

func TestRunAll_RunsEveryTask(t *testing.T) {
	sweeper := &fakeSweeper{}
	purger := &fakePurger{}
	svc := NewService(retentionConfig(), sweeper, purger)

	svc.RunAll(context.Background())

	assert.Equal(t, 1, sweeper.calls)
	assert.Equal(t, 1, purger.calls)
	assert.Equal(t, 48*time.Hour, purger.olderThan)
}

func TestRunAll_FailsOpen(t *testing.T) {
	sweeper := &fakeSweeper{err: errors.New("db down")}
	purger := &fakePurger{}
	svc := NewService(retentionConfig(), sweeper, purger)

	svc.RunAll(context.Background())

	// The sweep failure must not stop the queue purge.
	assert.Equal(t, 1, purger.calls)
}

func TestStartStop(t *testing.T) {
	sweeper := &fakeSweeper{}
	purger := &fakePurger{}
	svc := NewService(retentionConfig(), sweeper, purger)

	svc.Start(context.Background())
	svc.Stop()

	// Start runs every task once before the first tick.
	assert.Equal(t, 1, sweeper.calls)
	assert.Equal(t, 1, purger.calls)

	// Stop is idempotent.
	svc.Stop()
}
