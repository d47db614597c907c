package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/milsabores/bakery-api/internal/domain"
	"github.com/milsabores/bakery-api/internal/events"
	"github.com/milsabores/bakery-api/internal/observability"
	"github.com/milsabores/bakery-api/internal/repository"
	apperrors "github.com/milsabores/bakery-api/pkg/util"
)

// OrderItemInput is one requested order line.
type OrderItemInput struct {
	ProductID string
	Quantity  int
}

// OrderService coordinates order intake and status changes.
type OrderService struct {
	orders     repository.OrderRepository
	products   repository.ProductRepository
	dispatcher events.Dispatcher
}

// NewOrderService builds the service.
func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository, dispatcher events.Dispatcher) *OrderService {
	return &OrderService{orders: orders, products: products, dispatcher: dispatcher}
}

// PlaceOrder prices the requested items against the current catalog and
// persists the order. Lines are denormalized so later price changes do not
// affect placed orders.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, items []OrderItemInput) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, apperrors.NewValidationError("order needs at least one item", nil)
	}

	order := &domain.Order{
		OrderNumber: newOrderNumber(),
		UserID:      userID,
		Status:      domain.OrderStatusPending,
	}

	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, apperrors.NewValidationError("item quantity must be positive", map[string]any{"product_id": item.ProductID})
		}
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return nil, apperrors.NewNotFound("product", map[string]any{"id": item.ProductID})
			}
			return nil, apperrors.NewInternalError(err)
		}
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: product.ID,
			Code:      product.Code,
			Name:      product.Name,
			UnitCLP:   product.PriceCLP,
			Quantity:  item.Quantity,
		})
		order.TotalCLP += product.PriceCLP * item.Quantity
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	observability.OrdersPlacedTotal.Inc()
	s.publish(ctx, events.EventOrderPlaced, events.OrderPlacedPayload{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		TotalCLP:    order.TotalCLP,
		ItemCount:   len(order.Items),
	})
	return order, nil
}

// ListUserOrders returns the caller's orders, most recent first.
func (s *OrderService) ListUserOrders(ctx context.Context, userID string, limit, offset int) ([]domain.Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	orders, err := s.orders.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return orders, nil
}

// GetOrderForUser fetches one order, enforcing ownership.
func (s *OrderService) GetOrderForUser(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("order", map[string]any{"id": orderID})
		}
		return nil, apperrors.NewInternalError(err)
	}
	if order.UserID != userID {
		return nil, apperrors.NewNotFound("order", map[string]any{"id": orderID})
	}
	return order, nil
}

// UpdateStatus moves an order through its lifecycle (admin operation).
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, next domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("order", map[string]any{"id": orderID})
		}
		return nil, apperrors.NewInternalError(err)
	}

	if !domain.ValidOrderTransition(order.Status, next) {
		return nil, apperrors.NewValidationError("invalid status transition", map[string]any{
			"from": order.Status,
			"to":   next,
		})
	}

	if err := s.orders.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventOrderStatusChanged, events.OrderStatusChangedPayload{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		OldStatus:   order.Status,
		NewStatus:   next,
	})
	order.Status = next
	return order, nil
}

func (s *OrderService) publish(ctx context.Context, typ events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      typ,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

// newOrderNumber builds a short human-readable order reference.
func newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return "MS-" + suffix
}
