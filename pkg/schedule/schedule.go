// Package schedule runs recurring background jobs on fixed intervals.
//
//	schedule.Every(1).Minutes().Run(refreshDashboard)
//	schedule.Start(ctx)
package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/shashiranjanraj/kashvi-admin/pkg/logger"
)

type job struct {
	interval  time.Duration
	fn        func(ctx context.Context)
	immediate bool
}

var (
	mu   sync.Mutex
	jobs []*job
)

// Builder configures one recurring job.
type Builder struct {
	n int
	j *job
}

func Every(n int) *Builder {
	if n < 1 {
		n = 1
	}
	return &Builder{n: n, j: &job{}}
}

func (b *Builder) Seconds() *Builder {
	b.j.interval = time.Duration(b.n) * time.Second
	return b
}

func (b *Builder) Minutes() *Builder {
	b.j.interval = time.Duration(b.n) * time.Minute
	return b
}

func (b *Builder) Hours() *Builder {
	b.j.interval = time.Duration(b.n) * time.Hour
	return b
}

// Immediately runs the job once at Start before the first tick.
func (b *Builder) Immediately() *Builder {
	b.j.immediate = true
	return b
}

// Run registers fn to execute on the configured interval.
func (b *Builder) Run(fn func(ctx context.Context)) {
	if b.j.interval == 0 {
		b.j.interval = time.Duration(b.n) * time.Minute
	}
	b.j.fn = fn

	mu.Lock()
	jobs = append(jobs, b.j)
	mu.Unlock()
}

// Start launches one goroutine per registered job. Jobs stop when ctx is
// cancelled. Panics in a job are recovered and logged so one bad run does
// not kill the ticker.
func Start(ctx context.Context) {
	mu.Lock()
	registered := make([]*job, len(jobs))
	copy(registered, jobs)
	mu.Unlock()

	for _, j := range registered {
		go run(ctx, j)
	}
}

func run(ctx context.Context, j *job) {
	if j.immediate {
		safeRun(ctx, j)
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			safeRun(ctx, j)
		}
	}
}

func safeRun(ctx context.Context, j *job) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("scheduled job panic", "panic", rec)
		}
	}()
	j.fn(ctx)
}
