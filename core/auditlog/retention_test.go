package auditlog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePurger struct {
	days    int
	calls   int
	deleted int64
	err     error
}

func (f *fakePurger) PurgeOlderThan(_ context.Context, days int) (int64, error) {
	f.calls++
	f.days = days
	return f.deleted, f.err
}

func TestRetention_RunOnce(t *testing.T) {
	p := &fakePurger{deleted: 7}
	r, err := NewRetention(p, 14, "", zap.NewNop())
	require.NoError(t, err)

	deleted, err := r.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)
	assert.Equal(t, 14, p.days)

	p.err = errors.New("db down")
	_, err = r.RunOnce(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 2, p.calls)
}

func TestRetention_InvalidSchedule(t *testing.T) {
	_, err := NewRetention(&fakePurger{}, 30, "every now and then", zap.NewNop())
	assert.Error(t, err)
}

func TestRetention_StartStop(t *testing.T) {
	r, err := NewRetention(&fakePurger{}, 30, "@hourly", zap.NewNop())
	require.NoError(t, err)

	r.Start()
	r.Stop()
}
