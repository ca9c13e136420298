package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"carebridge/models"

	"github.com/hibiken/asynq"
)

// TypeVisitReminder is the task type for upcoming-visit reminders.
const TypeVisitReminder = "reminder:visit"

// NewVisitReminderTask builds a visit reminder scheduled for fireAt.
func NewVisitReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.MaxRetry(3),
		asynq.Queue("reminders"),
	}
	return asynq.NewTask(TypeVisitReminder, data), opts, nil
}
