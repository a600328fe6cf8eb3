// Package worker implements the buffered worker pool that completes
// dashboard acquisitions off the request path. It provides:
// - Backpressure handling via load shedding
// - Per-job metrics by job name
// - Graceful shutdown that drains queued jobs

package worker

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Prometheus metrics
var (
	jobsEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_jobs_enqueued_total",
		Help: "Total number of acquisition jobs enqueued",
	})

	jobsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_jobs_processed_total",
		Help: "Total number of acquisition jobs completed, by job and outcome",
	}, []string{"job", "outcome"})

	jobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dashboard_job_duration_seconds",
		Help:    "Duration of acquisition jobs",
		Buckets: prometheus.DefBuckets,
	}, []string{"job"})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dashboard_worker_queue_depth",
		Help: "Current depth of the worker queue",
	})

	jobsLoadShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_jobs_load_shed_total",
		Help: "Total number of jobs dropped due to load shedding",
	})
)

// Job represents a unit of work for the worker pool
type Job struct {
	Name string
	Run  func(ctx context.Context) error

	enqueuedAt time.Time
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	WorkerCount int
	QueueSize   int
	Logger      *zap.Logger
}

// Pool runs jobs on a fixed set of workers
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger

	mu      sync.RWMutex
	stopped bool
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines. Jobs run with a context derived
// from ctx.
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	go p.reportQueueDepth()

	p.logger.Infow("Worker pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
	)
}

// Stop cancels the job context, rejects new jobs and waits for the workers
// to drain the queue. Jobs still queued run with a cancelled context.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	p.logger.Info("Stopping worker pool...")
	if p.cancel != nil {
		p.cancel()
	}
	close(p.jobQueue)
	p.mu.Unlock()

	p.wg.Wait()
	p.logger.Info("Worker pool stopped")
}

// Enqueue adds a job to the queue without blocking. It returns false when
// the queue is full or the pool is stopped.
func (p *Pool) Enqueue(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		p.logger.Warnw("Worker pool stopped, dropping job", "job", job.Name)
		jobsLoadShed.Inc()
		return false
	}

	job.enqueuedAt = time.Now()
	select {
	case p.jobQueue <- job:
		jobsEnqueued.Inc()
		return true
	default:
		p.logger.Warnw("Worker queue full, shedding job", "job", job.Name, "queueDepth", len(p.jobQueue))
		jobsLoadShed.Inc()
		return false
	}
}

// QueueDepth returns current queue size
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for job := range p.jobQueue {
		p.run(id, job)
	}
}

func (p *Pool) run(id int, job Job) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			p.logger.Errorw("Job panicked", "worker", id, "job", job.Name, "panic", r)
			jobsProcessed.WithLabelValues(job.Name, "panic").Inc()
		}
	}()

	err := job.Run(p.ctx)
	jobDuration.WithLabelValues(job.Name).Observe(time.Since(start).Seconds())

	if err != nil {
		p.logger.Infow("Job failed",
			"worker", id,
			"job", job.Name,
			"queued", start.Sub(job.enqueuedAt),
			"error", err,
		)
		jobsProcessed.WithLabelValues(job.Name, "error").Inc()
		return
	}
	jobsProcessed.WithLabelValues(job.Name, "ok").Inc()
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			queueDepth.Set(float64(len(p.jobQueue)))
		case <-p.ctx.Done():
			return
		}
	}
}
