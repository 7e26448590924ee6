package repository

import (
	"context"
	"errors"
	"sort"

	"github.com/fng-app/fng-sales-api/internal/domain/entity"
	"github.com/fng-app/fng-sales-api/internal/domain/normalizer"
	domainRepo "github.com/fng-app/fng-sales-api/internal/domain/repository"
)

type orderRepository struct {
	store domainRepo.DocumentStore
}

// NewOrderRepository creates a kitchen order repository over a document store
func NewOrderRepository(store domainRepo.DocumentStore) domainRepo.OrderRepository {
	return &orderRepository{store: store}
}

func (r *orderRepository) List(ctx context.Context, limit int) ([]entity.Order, error) {
	docs, err := r.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]entity.Order, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, normalizer.NormalizeOrder(doc))
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.store.FindByID(ctx, id)
	if errors.Is(err, domainRepo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	order := normalizer.NormalizeOrder(doc)
	if order.ID == "" {
		order.ID = id
	}
	return &order, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, update entity.OrderStatusUpdate) error {
	return r.store.Update(ctx, id, update.Record())
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}
