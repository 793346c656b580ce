package shutdown

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProc struct {
	stop    chan struct{}
	stopped atomic.Bool
	failing error
}

func newFakeProc() *fakeProc {
	return &fakeProc{stop: make(chan struct{})}
}

func (f *fakeProc) process(name string) Process {
	return Process{
		Name: name,
		Serve: func() error {
			if f.failing != nil {
				return f.failing
			}
			<-f.stop
			return nil
		},
		Stop: func(ctx context.Context) error {
			if f.stopped.CompareAndSwap(false, true) && f.failing == nil {
				close(f.stop)
			}
			return nil
		},
	}
}

func quiet() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRunStopsEverythingOnCancel(t *testing.T) {
	a, b := newFakeProc(), newFakeProc()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- Run(ctx, quiet(), time.Second, a.process("a"), b.process("b")) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
	assert.True(t, a.stopped.Load())
	assert.True(t, b.stopped.Load())
}

func TestRunStopsOthersWhenOneFails(t *testing.T) {
	boom := errors.New("boom")
	healthy := newFakeProc()
	broken := newFakeProc()
	broken.failing = boom

	err := Run(context.Background(), quiet(), time.Second, healthy.process("healthy"), broken.process("broken"))
	require.ErrorIs(t, err, boom)
	assert.True(t, healthy.stopped.Load())
}
