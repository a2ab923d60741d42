package imports

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"leadtrack_backend/platform/config"
	"leadtrack_backend/platform/logger"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// Worker processes retention tasks for archived import files.
type Worker struct {
	server   *asynq.Server
	mux      *asynq.ServeMux
	archiver Archiver
	log      *logger.Logger
}

// NewWorker creates the asynq worker bound to the configured queue.
func NewWorker(cfg config.SchedulerConfig, archiver Archiver, log *logger.Logger) (*Worker, error) {
	opt, err := RedisClientOpt(cfg.GetRedisURL())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{queue: 1},
	})

	mux := asynq.NewServeMux()
	w := &Worker{server: server, mux: mux, archiver: archiver, log: log}
	mux.HandleFunc(TaskImportFilePurge, w.handleFilePurge)

	return w, nil
}

// Run blocks processing tasks until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("import purge worker stopped", "error", err)
	}
}

func (w *Worker) handleFilePurge(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseFilePurgePayload(task)
	if err != nil {
		return err
	}

	retention, err := time.ParseDuration(payload.Retention)
	if err != nil {
		return fmt.Errorf("parse retention %q: %w", payload.Retention, err)
	}

	cutoff := time.Now().Add(-retention)
	removed, err := w.archiver.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	w.log.Info("import file purge complete", "removed", removed, "cutoff", cutoff)
	return nil
}

// RedisClientOpt parses a Redis URL into an asynq connection option.
func RedisClientOpt(redisURL string) (asynq.RedisClientOpt, error) {
	if redisURL == "" {
		return asynq.RedisClientOpt{}, fmt.Errorf("redis url not configured")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	var tlsConfig *tls.Config
	if opt.TLSConfig != nil {
		tlsConfig = opt.TLSConfig.Clone()
	}

	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Username:  opt.Username,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: tlsConfig,
	}, nil
}
