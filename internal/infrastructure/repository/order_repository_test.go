package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fng-app/fng-sales-api/internal/domain/entity"
	"github.com/fng-app/fng-sales-api/internal/domain/enum"
	domainRepo "github.com/fng-app/fng-sales-api/internal/domain/repository"
	"github.com/fng-app/fng-sales-api/internal/infrastructure/persistence"
)

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewFileStore(filepath.Join(t.TempDir(), "orders.json"))
	repo := NewOrderRepository(store)

	older, _ := store.Insert(ctx, entity.Record{"orderNumber": "ORD-1", "createdAt": "2024-05-01T08:00:00Z"})
	newer, _ := store.Insert(ctx, entity.Record{"orderNumber": "ORD-2", "createdAt": "2024-05-01T09:00:00Z", "status": "preparing"})

	orders, err := repo.List(ctx, 100)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 2 || orders[0].ID != newer || orders[1].ID != older {
		t.Fatalf("expected newest first, got %+v", orders)
	}

	limited, _ := repo.List(ctx, 1)
	if len(limited) != 1 || limited[0].OrderNumber != "ORD-2" {
		t.Fatalf("expected limit to keep the newest order, got %+v", limited)
	}

	ready := enum.OrderStatusReady
	paid := enum.OrderPaymentPaid
	if err := repo.UpdateStatus(ctx, older, entity.OrderStatusUpdate{Status: &ready, PaymentStatus: &paid}); err != nil {
		t.Fatalf("update status: %v", err)
	}
	order, err := repo.GetByID(ctx, older)
	if err != nil || order == nil {
		t.Fatalf("get: %v, %v", order, err)
	}
	if order.Status != enum.OrderStatusReady || order.PaymentStatus != enum.OrderPaymentPaid {
		t.Fatalf("status not applied: %+v", order)
	}

	if err := repo.Delete(ctx, older); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, older); err != domainRepo.ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if missing, err := repo.GetByID(ctx, older); missing != nil || err != nil {
		t.Fatalf("expected nil, nil, got %v, %v", missing, err)
	}
}
