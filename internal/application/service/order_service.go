package service

import (
	"context"
	"errors"
	"time"

	"github.com/fng-app/fng-sales-api/internal/domain/entity"
	"github.com/fng-app/fng-sales-api/internal/domain/enum"
	"github.com/fng-app/fng-sales-api/internal/domain/normalizer"
	"github.com/fng-app/fng-sales-api/internal/domain/repository"
	"github.com/fng-app/fng-sales-api/pkg/apperror"
)

// OrderListLimit caps the number of kitchen orders returned by a list
const OrderListLimit = 100

// OrderService handles kitchen order operations
type OrderService struct {
	orderRepo repository.OrderRepository
	now       func() time.Time
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		now:       time.Now,
	}
}

// ListOrders returns the most recent kitchen orders, newest first
func (s *OrderService) ListOrders(ctx context.Context) ([]entity.Order, error) {
	return s.orderRepo.List(ctx, OrderListLimit)
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// UpdateOrderStatus applies the status and/or paymentStatus found in body
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, body entity.Record) (*entity.Order, error) {
	update, err := parseOrderStatusUpdate(body)
	if err != nil {
		return nil, err
	}
	update.UpdatedAt = s.now().UTC().Truncate(time.Millisecond)

	if err := s.orderRepo.UpdateStatus(ctx, id, update); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NewNotFoundError("Order")
		}
		return nil, err
	}
	return s.GetOrder(ctx, id)
}

// DeleteOrder removes an order
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	err := s.orderRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NewNotFoundError("Order")
	}
	return err
}

func parseOrderStatusUpdate(body entity.Record) (entity.OrderStatusUpdate, error) {
	var update entity.OrderStatusUpdate

	if raw := normalizer.String(body["status"]); raw != "" {
		status, ok := enum.ParseOrderStatus(raw)
		if !ok {
			return update, apperror.NewBadRequestError("Invalid order status")
		}
		update.Status = &status
	}
	if raw := normalizer.String(body["paymentStatus"]); raw != "" {
		paymentStatus, ok := enum.ParseOrderPaymentStatus(raw)
		if !ok {
			return update, apperror.NewBadRequestError("Invalid payment status")
		}
		update.PaymentStatus = &paymentStatus
	}
	if len(update.Fields()) == 0 {
		return update, apperror.NewBadRequestError("No fields to update")
	}
	return update, nil
}
