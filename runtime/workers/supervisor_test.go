package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"timebank/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSupervisor_RestartOnPanic(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	workerMock := mocks.NewMockWorker(ctrl)

	var calls atomic.Int32
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			calls.Add(1)
			panic("boom")
		}).
		AnyTimes()

	sup := NewSupervisor(logs.GetLoggerFromLevel(slog.LevelDebug), 50*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		sup.Add(workerMock).Run(ctx)
		close(done)
	}()
	<-done

	req.GreaterOrEqual(calls.Load(), int32(2))
}

func TestSupervisor_StopOnSuccess(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	workerMock := mocks.NewMockWorker(ctrl)

	workerMock.EXPECT().Run(gomock.Any()).Return(nil).Times(1)

	sup := NewSupervisor(slog.Default(), time.Second)
	done := make(chan struct{})
	go func() {
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		req.Fail("Supervisor should have stopped after worker success")
	}
}

func TestSupervisor_Stop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	workerMock := mocks.NewMockWorker(ctrl)
	started := make(chan struct{})

	workerMock.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	}).Times(1)

	sup := NewSupervisor(slog.Default(), time.Second)
	done := make(chan struct{})
	go func() {
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()

	<-started
	sup.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "Supervisor should stop its workers")
	}
}

func TestHeartbeatWorker_Samples(t *testing.T) {
	req := require.New(t)
	worker := NewHeartbeatWorker(slog.Default(), 20*time.Millisecond)

	_, ok := worker.Latest()
	req.False(ok)
	req.Equal("warming up", worker.Snapshot()["status"])

	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)
	go func() { errChan <- worker.Run(ctx) }()

	req.Eventually(func() bool {
		_, ok := worker.Latest()
		return ok
	}, 2*time.Second, 10*time.Millisecond)
	cancel()
	req.NoError(<-errChan)

	stats, _ := worker.Latest()
	req.Positive(stats.PID)
	req.Positive(stats.Goroutines)
	req.Contains(worker.Snapshot(), "rss_mb")
}

func TestSupervisor_StopBeforeRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	workerMock := mocks.NewMockWorker(ctrl)
	workerMock.EXPECT().Run(gomock.Any()).Times(0)

	sup := NewSupervisor(slog.Default(), time.Second)
	sup.Add(workerMock)
	sup.Stop()

	done := make(chan struct{})
	go func() {
		sup.Run(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "Run should return at once after Stop")
	}
}
