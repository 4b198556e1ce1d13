package cron

import (
	"context"
	"fmt"

	"medicare/config"
	"medicare/models"
	"medicare/services/tasks"
	"medicare/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ReminderHandler processes a decoded reminder payload.
type ReminderHandler interface {
	HandleReminder(ctx context.Context, payload models.ReminderPayload) error
}

// QueueRedisOpt is the asynq connection for the reminder queue.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewReminderMux routes reminder tasks to handler.
func NewReminderMux(handler ReminderHandler) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAppointmentReminder, handleReminderTask(handler))
	return mux
}

// RunReminderWorker processes reminder tasks until ctx is done.
func RunReminderWorker(ctx context.Context, handler ReminderHandler) error {
	if config.AppConfig.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required to run the reminder worker")
	}
	logger := utils.GetLogger()

	srv := asynq.NewServer(QueueRedisOpt(), asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"default": 1,
		},
		Logger: logger.Sugar(),
	})
	if err := srv.Start(NewReminderMux(handler)); err != nil {
		return fmt.Errorf("start reminder worker: %w", err)
	}
	logger.Info("Reminder worker started", zap.Int("queueDB", config.AppConfig.RedisQueueDB))

	<-ctx.Done()
	srv.Shutdown()
	logger.Info("Reminder worker stopped")
	return nil
}

func handleReminderTask(handler ReminderHandler) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseReminder(task)
		if err != nil {
			utils.GetLogger().Error("Invalid reminder payload", zap.Error(err))
			// A malformed payload never succeeds; do not retry it.
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		return handler.HandleReminder(ctx, p)
	}
}
