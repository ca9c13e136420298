package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"carebridge/config"
	"carebridge/models"
	"carebridge/services/tasks"
	"carebridge/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the visit-reminder worker in the background and
// returns the server so the caller can shut it down.
func InitReminderWorker() *asynq.Server {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"reminders": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeVisitReminder, handleVisitReminder)

	go func() {
		logger := utils.GetLogger()
		logger.Info("Starting reminder worker")
		const maxAttempts = 5
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("Reminder worker failed to start",
				zap.Int("attempt", attempt), zap.Error(err))
			if attempt == maxAttempts {
				logger.Fatal("Reminder worker gave up after max attempts")
			}
			time.Sleep(time.Duration(attempt*2) * time.Second)
		}
	}()
	return srv
}

// handleVisitReminder delivers an upcoming-visit reminder. Push delivery is
// out of scope; the reminder is logged as the delivery channel.
func handleVisitReminder(ctx context.Context, task *asynq.Task) error {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return fmt.Errorf("invalid reminder payload: %w", err)
	}

	utils.GetLogger().Info("Visit reminder due",
		zap.String("order", p.OrderID),
		zap.String("user", p.UserID),
		zap.String("service", p.ServiceName),
		zap.String("visitTime", p.VisitTime))

	message := fmt.Sprintf("您预约的「%s」将于 %s 上门服务，请保持电话畅通。", p.ServiceName, p.VisitTime)
	return utils.SendSMSMessage(p.UserID, message)
}
