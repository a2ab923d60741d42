package imports

import (
	"time"

	"leadtrack_backend/platform/config"
	"leadtrack_backend/platform/logger"

	"github.com/hibiken/asynq"
)

// PurgeSchedule is the cron spec for the daily import file purge.
const PurgeSchedule = "@daily"

// Scheduler registers the periodic purge task with asynq.
type Scheduler struct {
	scheduler *asynq.Scheduler
	queue     string
	retention time.Duration
	log       *logger.Logger
}

func NewScheduler(cfg config.SchedulerConfig, retention time.Duration, log *logger.Logger) (*Scheduler, error) {
	opt, err := RedisClientOpt(cfg.GetRedisURL())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	scheduler := asynq.NewScheduler(opt, &asynq.SchedulerOpts{
		Location: time.UTC,
	})

	return &Scheduler{
		scheduler: scheduler,
		queue:     queue,
		retention: retention,
		log:       log,
	}, nil
}

// Run registers the purge task and blocks until Shutdown is called.
func (s *Scheduler) Run() error {
	task, err := NewFilePurgeTask(FilePurgePayload{Retention: s.retention.String()})
	if err != nil {
		return err
	}

	entryID, err := s.scheduler.Register(PurgeSchedule, task, asynq.Queue(s.queue))
	if err != nil {
		return err
	}
	s.log.Info("registered import file purge", "entry", entryID, "schedule", PurgeSchedule, "retention", s.retention)

	return s.scheduler.Run()
}

// Shutdown stops the scheduler gracefully.
func (s *Scheduler) Shutdown() {
	if s == nil || s.scheduler == nil {
		return
	}
	s.scheduler.Shutdown()
}
