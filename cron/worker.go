package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"pawtrack/config"
	"pawtrack/models"
	"pawtrack/services/scheduler"
	"pawtrack/services/summary"
	"pawtrack/services/tasks"

	"github.com/hibiken/asynq"
	cronv3 "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartReminderScheduler runs the reminder scan on a fixed cadence.
// An atomic guard skips a tick if the previous scan is still running;
// correctness does not depend on it (the lastNotifiedAt guard does
// that), it just avoids pointless overlapping work.
func StartReminderScheduler(s *scheduler.Scheduler, intervalMin int, logger *zap.Logger) *cronv3.Cron {
	if intervalMin <= 0 {
		intervalMin = 5
	}

	var running atomic.Bool
	c := cronv3.New()
	spec := fmt.Sprintf("@every %dm", intervalMin)
	_, err := c.AddFunc(spec, func() {
		if !running.CompareAndSwap(false, true) {
			logger.Warn("previous reminder scan still running, skipping tick")
			return
		}
		defer running.Store(false)

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(intervalMin)*time.Minute)
		defer cancel()
		s.RunOnce(ctx)
	})
	if err != nil {
		logger.Fatal("failed to schedule reminder scan", zap.Error(err))
	}

	c.Start()
	logger.Info("reminder scheduler started", zap.String("cadence", spec))
	return c
}

// StartSummaryWorker runs the async worker that generates AI summaries
// in the background.
func StartSummaryWorker(summarySvc summary.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeGenerateSummary, handleSummaryTask(summarySvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[SummaryWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SummaryWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SummaryWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleSummaryTask(summarySvc summary.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var req models.SummaryRequest
		if err := json.Unmarshal(task.Payload(), &req); err != nil {
			log.Printf("[SummaryWorker] invalid payload: %v", err)
			return err
		}

		if _, err := summarySvc.Generate(ctx, req); err != nil {
			log.Printf("[SummaryWorker] failed to generate summary for pet %s: %v", req.PetID, err)
			return err
		}
		return nil
	}
}

// NewTaskClient returns the asynq client used to enqueue background work.
func NewTaskClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}
