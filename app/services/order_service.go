package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/app/repositories"
	"github.com/shashiranjanraj/kashvi-admin/pkg/audit"
	"github.com/shashiranjanraj/kashvi-admin/pkg/auth"
	"github.com/shashiranjanraj/kashvi-admin/pkg/cache"
	"github.com/shashiranjanraj/kashvi-admin/pkg/logger"
	"github.com/shashiranjanraj/kashvi-admin/pkg/metrics"
	"github.com/shashiranjanraj/kashvi-admin/pkg/ws"
)

// OrderStatusEvent is broadcast to connected consoles whenever an order
// changes status.
type OrderStatusEvent struct {
	Type    string             `json:"type"`
	OrderID uint               `json:"orderId"`
	From    models.OrderStatus `json:"from"`
	To      models.OrderStatus `json:"to"`
	At      time.Time          `json:"at"`
}

// OrderService manages order listing and the status lifecycle. Status
// changes are audited, counted and broadcast live.
type OrderService struct {
	orders *repositories.OrderRepository
	hub    *ws.Hub
}

func NewOrderService(orders *repositories.OrderRepository, hub *ws.Hub) *OrderService {
	return &OrderService{orders: orders, hub: hub}
}

func (s *OrderService) All(ctx context.Context) ([]models.Order, error) {
	return s.orders.All()
}

func (s *OrderService) Find(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.orders.Find(id)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return order, nil
}

func (s *OrderService) ByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.orders.ByUser(userID)
}

// Statuses returns the status vocabulary for the console's dropdown.
func (s *OrderService) Statuses(ctx context.Context) []models.OrderStatus {
	return models.OrderStatuses
}

// UpdateStatus moves an order to a new status, enforcing that terminal
// orders stay terminal.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, raw string) (*models.Order, error) {
	target, err := models.ParseOrderStatus(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return s.transition(ctx, id, target)
}

// Cancel moves an order to Cancelled from any non-terminal status.
func (s *OrderService) Cancel(ctx context.Context, id uint) (*models.Order, error) {
	return s.transition(ctx, id, models.StatusCancelled)
}

func (s *OrderService) transition(ctx context.Context, id uint, target models.OrderStatus) (*models.Order, error) {
	order, err := s.orders.Find(id)
	if err != nil {
		return nil, wrapNotFound(err)
	}

	from := order.Status
	if !from.CanTransition(target) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, from, target)
	}

	order.Status = target
	if err := s.orders.Update(order); err != nil {
		return nil, err
	}

	audit.Record(ctx, "order", order.ID, string(from), string(target), auth.UserID(ctx))
	metrics.RecordTransition("order", string(target))
	cache.Forget(dashboardCacheKey)

	if s.hub != nil {
		s.hub.Broadcast(OrderStatusEvent{
			Type:    "order.status",
			OrderID: order.ID,
			From:    from,
			To:      target,
			At:      time.Now().UTC(),
		})
	}

	logger.WithCtx(ctx).Info("order status changed",
		"order_id", order.ID, "from", string(from), "to", string(target))
	return order, nil
}
