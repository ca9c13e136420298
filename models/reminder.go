package models

// ReminderPayload is the asynq task payload for a scheduled visit reminder.
type ReminderPayload struct {
	OrderID     string `json:"orderId"`
	UserID      string `json:"userId"`
	ServiceName string `json:"serviceName"`
	VisitTime   string `json:"visitTime"`
}
