package repository

import (
	"context"

	"github.com/fng-app/fng-sales-api/internal/domain/entity"
)

// OrderRepository defines the interface for kitchen order data operations
type OrderRepository interface {
	// List returns at most limit orders, newest first
	List(ctx context.Context, limit int) ([]entity.Order, error)
	// GetByID returns nil, nil when no order matches
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// UpdateStatus applies the update; ErrNotFound if no order matches
	UpdateStatus(ctx context.Context, id string, update entity.OrderStatusUpdate) error
	// Delete removes the order; ErrNotFound if no order matches
	Delete(ctx context.Context, id string) error
}
