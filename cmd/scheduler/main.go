package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leadtrack_backend/internal/imports"
	"leadtrack_backend/platform/config"
	"leadtrack_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting scheduler", "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !cfg.IsMinIOEnabled() {
		log.Warn("MinIO not configured; nothing to purge, exiting")
		return
	}
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; scheduler cannot run, exiting")
		return
	}

	archiver, err := imports.NewMinIOArchiver(cfg)
	if err != nil {
		log.Error("failed to initialize storage service", "error", err)
		panic("failed to initialize storage service: " + err.Error())
	}
	if err := withRetry(ctx, log, "ensure import files bucket", 5, 2*time.Second, func() error {
		return archiver.EnsureBucketExists(ctx)
	}); err != nil {
		log.Error("failed to ensure storage bucket exists", "error", err)
		panic("failed to ensure storage bucket exists: " + err.Error())
	}

	worker, err := imports.NewWorker(cfg, archiver, log)
	if err != nil {
		log.Error("failed to initialize purge worker", "error", err)
		panic("failed to initialize purge worker: " + err.Error())
	}

	scheduler, err := imports.NewScheduler(cfg, cfg.GetImportFileRetention(), log)
	if err != nil {
		log.Error("failed to initialize purge scheduler", "error", err)
		panic("failed to initialize purge scheduler: " + err.Error())
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		worker.Run(groupCtx)
		return nil
	})
	group.Go(func() error {
		return scheduler.Run()
	})
	group.Go(func() error {
		<-groupCtx.Done()
		scheduler.Shutdown()
		return nil
	})

	if err := group.Wait(); err != nil {
		log.Error("scheduler stopped", "error", err)
		panic("scheduler stopped: " + err.Error())
	}
	log.Info("scheduler shut down")
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return errors.New(name + ": invalid retry attempts")
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
