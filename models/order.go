package models

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderWaitingAcceptance OrderStatus = "waiting_acceptance"
	OrderWaitingService    OrderStatus = "waiting_service"
	OrderOngoing           OrderStatus = "ongoing"
	OrderCompleted         OrderStatus = "completed"
	OrderCancelled         OrderStatus = "cancelled"
)

// Order is a placed service booking.
type Order struct {
	ID            string         `json:"id"`
	ServiceName   string         `json:"serviceName"`
	Status        OrderStatus    `json:"status"`
	Price         float64        `json:"price"`
	PaidAmount    float64        `json:"paidAmount"`
	Date          string         `json:"date"` // visit slot, e.g. "今日 09:00"
	ImageURL      string         `json:"imageUrl,omitempty"`
	Address       string         `json:"address"`
	RoomNumber    string         `json:"roomNumber,omitempty"`
	CustomerName  string         `json:"customerName"`
	UserID        string         `json:"userId,omitempty"`
	NurseID       string         `json:"nurseId,omitempty"`
	Nurse         *Nurse         `json:"nurse,omitempty"`
	NursingRecord *NursingRecord `json:"nursingRecord,omitempty"`
	CancelReason  string         `json:"cancelReason,omitempty"`
	CreateTime    time.Time      `json:"createTime"`
}

// NursingRecord is the post-visit care record attached to a completed order.
type NursingRecord struct {
	ID           string   `json:"id"`
	OrderID      string   `json:"orderId,omitempty"`
	Date         string   `json:"date"`
	ServiceName  string   `json:"serviceName"`
	NurseName    string   `json:"nurseName"`
	Vitals       Vitals   `json:"vitals"`
	Content      string   `json:"content"`
	Photos       []string `json:"photos,omitempty"`
	SignatureRef string   `json:"signatureRef,omitempty"`
}

// Vitals are the measurements captured during a visit.
type Vitals struct {
	BP    string `json:"bp"`
	Temp  string `json:"temp"`
	Pulse string `json:"pulse"`
}
