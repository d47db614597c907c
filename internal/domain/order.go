package domain

import "time"

// OrderStatus represents lifecycle states of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// ValidOrderTransition reports whether an order may move from one status to another.
func ValidOrderTransition(from, to OrderStatus) bool {
	switch from {
	case OrderStatusPending:
		return to == OrderStatusConfirmed || to == OrderStatusCancelled
	case OrderStatusConfirmed:
		return to == OrderStatusDelivered || to == OrderStatusCancelled
	default:
		return false
	}
}

// OrderItem is a single line of an order, denormalized at purchase time.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	UnitCLP   int    `json:"unit_clp"`
	Quantity  int    `json:"quantity"`
}

// Order is a customer purchase.
type Order struct {
	ID          string
	OrderNumber string
	UserID      string
	Items       []OrderItem
	TotalCLP    int
	Status      OrderStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
