package entities

import "time"

// OrderStatus represents the lifecycle of a service order.
//
// Status transitions are owned by the backend; the client only ever requests
// a transition through PATCH /orders/{id}/status and re-reads the result.

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// ValidOrderStatus reports whether s is one of the backend's status values.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type PriorityLevel string

const (
	PriorityLow    PriorityLevel = "LOW"
	PriorityNormal PriorityLevel = "NORMAL"
	PriorityHigh   PriorityLevel = "HIGH"
	PriorityUrgent PriorityLevel = "URGENT"
)

// Order is a service order as served by GET /orders and GET /orders/{id}.
// Checklist and Photos are only populated on the detail endpoint.
type Order struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      OrderStatus     `json:"status"`
	Priority    PriorityLevel   `json:"priority"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
	ScheduledAt *time.Time      `json:"scheduledAt,omitempty"`
	User        *User           `json:"user,omitempty"`
	Checklist   []ChecklistItem `json:"checklist,omitempty"`
	Photos      []Photo         `json:"photos,omitempty"`
}

// CreateOrderData is the POST /orders request body.
type CreateOrderData struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Location    string        `json:"location,omitempty"`
	Priority    PriorityLevel `json:"priority,omitempty"`
	ClientName  string        `json:"clientName,omitempty"`
	ClientPhone string        `json:"clientPhone,omitempty"`
	ClientEmail string        `json:"clientEmail,omitempty"`
	ScheduledAt string        `json:"scheduledAt,omitempty"`
}
