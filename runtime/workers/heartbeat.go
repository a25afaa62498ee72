package workers

import (
	"context"
	"log/slog"
	"os"
	goruntime "runtime"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// ProcessStats is one sample of the server's own resource usage.
type ProcessStats struct {
	PID        int32
	RSSBytes   uint64
	CPUPercent float64
	Threads    int32
	Goroutines int
	Uptime     time.Duration
	At         time.Time
}

// HeartbeatWorker samples the server process at a fixed interval and logs it.
type HeartbeatWorker struct {
	log      *slog.Logger
	interval time.Duration
	started  time.Time
	latest   atomic.Pointer[ProcessStats]
}

func NewHeartbeatWorker(log *slog.Logger, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, interval: interval, started: time.Now()}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			stats, err := w.sample(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "error", err)
				continue
			}
			w.latest.Store(&stats)
			w.log.Debug("Heartbeat",
				"rss_bytes", stats.RSSBytes,
				"cpu_percent", stats.CPUPercent,
				"threads", stats.Threads,
				"goroutines", stats.Goroutines,
				"uptime", stats.Uptime.Round(time.Second).String())
		}
	}
}

// Latest returns the last sample, or false before the first tick.
func (w *HeartbeatWorker) Latest() (ProcessStats, bool) {
	stats := w.latest.Load()
	if stats == nil {
		return ProcessStats{}, false
	}
	return *stats, true
}

// Snapshot is the shape the debug inspector displays.
func (w *HeartbeatWorker) Snapshot() map[string]any {
	stats, ok := w.Latest()
	if !ok {
		return map[string]any{"status": "warming up"}
	}
	return map[string]any{
		"pid":         stats.PID,
		"rss_mb":      stats.RSSBytes / (1024 * 1024),
		"cpu_percent": stats.CPUPercent,
		"threads":     stats.Threads,
		"goroutines":  stats.Goroutines,
		"uptime":      stats.Uptime.Round(time.Second).String(),
	}
}

func (w *HeartbeatWorker) sample(p *process.Process) (ProcessStats, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return ProcessStats{}, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return ProcessStats{}, err
	}
	threads, err := p.NumThreads()
	if err != nil {
		return ProcessStats{}, err
	}
	now := time.Now()
	return ProcessStats{
		PID:        p.Pid,
		RSSBytes:   memInfo.RSS,
		CPUPercent: cpuPercent,
		Threads:    threads,
		Goroutines: goruntime.NumGoroutine(),
		Uptime:     now.Sub(w.started),
		At:         now.UTC(),
	}, nil
}
