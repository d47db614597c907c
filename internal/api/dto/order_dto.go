package dto

import (
	"time"

	"github.com/milsabores/bakery-api/internal/domain"
)

// OrderItemRequest one requested order line.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest payload for order intake.
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest admin status transition.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=CONFIRMED DELIVERED CANCELLED"`
}

// OrderResponse order view.
type OrderResponse struct {
	ID          string             `json:"id"`
	OrderNumber string             `json:"order_number"`
	Items       []domain.OrderItem `json:"items"`
	TotalCLP    int                `json:"total_clp"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// NewOrderResponse maps a domain order.
func NewOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Items:       o.Items,
		TotalCLP:    o.TotalCLP,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
