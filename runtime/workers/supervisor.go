package workers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"timebank/contract"
	"timebank/errors"
)

// Supervisor runs background workers of the server, each in its own goroutine.
// A worker returning an error or panicking is restarted after restartInterval;
// a worker returning nil is done for good. Canceling the parent context stops everything.
type Supervisor struct {
	wg              *sync.WaitGroup
	log             *slog.Logger
	workers         []contract.Worker
	restartInterval time.Duration
	// stopped is canceled by Stop, whether Run has started yet or not
	stopped context.Context
	stop    context.CancelFunc
}

func NewSupervisor(log *slog.Logger, restartInterval time.Duration) *Supervisor {
	stopped, stop := context.WithCancel(context.Background())
	return &Supervisor{wg: &sync.WaitGroup{}, log: log, restartInterval: restartInterval, stopped: stopped, stop: stop}
}

// Run blocks until every worker has returned.
func (s *Supervisor) Run(ctx context.Context) {
	supervisedCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	release := context.AfterFunc(s.stopped, cancel)
	defer release()

	for _, worker := range s.workers {
		s.Start(supervisedCtx, worker)
	}
	s.wg.Wait()
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Start runs one worker under supervision.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	workerName := contract.GetWorkerName(worker)

	go func() {
		defer s.wg.Done()
		for {
			if ctx.Err() != nil {
				s.log.Info("Stopping worker", "name", workerName)
				return
			}

			err := s.runOnce(ctx, worker)
			if err == nil {
				s.log.Info("Worker finished", "name", workerName)
				return
			}
			if ctx.Err() != nil {
				s.log.Info("Worker stopped (context canceled)", "name", workerName)
				return
			}

			s.log.Warn("Worker crashed, restarting", "name", workerName, "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.restartInterval):
			}
		}
	}()
}

func (s *Supervisor) runOnce(ctx context.Context, worker contract.Worker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Worker panicked", "name", contract.GetWorkerName(worker), "panic", r)
			err = errors.ErrWorkerPanic
		}
	}()
	return worker.Run(ctx)
}

// Stop cancels the workers; Run returns once they are all gone.
// Calling Stop before Run makes Run return without running anything.
func (s *Supervisor) Stop() {
	s.stop()
}
