package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fng-app/fng-sales-api/internal/domain/entity"
	"github.com/fng-app/fng-sales-api/internal/domain/enum"
	"github.com/fng-app/fng-sales-api/internal/infrastructure/persistence"
	infraRepo "github.com/fng-app/fng-sales-api/internal/infrastructure/repository"
	"github.com/fng-app/fng-sales-api/pkg/apperror"
)

func newTestOrderService(t *testing.T) (*OrderService, string) {
	t.Helper()
	store := persistence.NewFileStore(filepath.Join(t.TempDir(), "orders.json"))
	id, err := store.Insert(context.Background(), entity.Record{
		"orderNumber":  "ORD-001",
		"customerName": "Rina",
		"items":        []interface{}{map[string]interface{}{"name": "Es Kopi", "quantity": 1, "price": 18000}},
		"totalAmount":  18000,
		"createdAt":    "2024-05-01T10:00:00Z",
	})
	if err != nil {
		t.Fatal(err)
	}
	return NewOrderService(infraRepo.NewOrderRepository(store)), id
}

func TestUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()
	svc, id := newTestOrderService(t)

	order, err := svc.UpdateOrderStatus(ctx, id, entity.Record{"status": "preparing"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if order.Status != enum.OrderStatusPreparing || order.PaymentStatus != enum.OrderPaymentUnpaid {
		t.Fatalf("unexpected order %+v", order)
	}
	if order.UpdatedAt.IsZero() {
		t.Fatalf("expected updatedAt to be set")
	}

	order, err = svc.UpdateOrderStatus(ctx, id, entity.Record{"paymentStatus": "paid"})
	if err != nil {
		t.Fatalf("update payment: %v", err)
	}
	if order.Status != enum.OrderStatusPreparing || order.PaymentStatus != enum.OrderPaymentPaid {
		t.Fatalf("unexpected order %+v", order)
	}
}

func TestUpdateOrderStatusRejects(t *testing.T) {
	ctx := context.Background()
	svc, id := newTestOrderService(t)

	cases := map[string]struct {
		body entity.Record
		code int
		msg  string
	}{
		"bad status":         {entity.Record{"status": "burnt"}, 400, "Invalid order status"},
		"bad payment status": {entity.Record{"paymentStatus": "refunded"}, 400, "Invalid payment status"},
		"nothing to update":  {entity.Record{"notes": "x"}, 400, "No fields to update"},
	}
	for name, tc := range cases {
		_, err := svc.UpdateOrderStatus(ctx, id, tc.body)
		appErr := apperror.GetAppError(err)
		if appErr.Code != tc.code || appErr.Message != tc.msg {
			t.Errorf("%s: got %d %q, want %d %q", name, appErr.Code, appErr.Message, tc.code, tc.msg)
		}
	}

	_, err := svc.UpdateOrderStatus(ctx, "missing", entity.Record{"status": "ready"})
	if appErr := apperror.GetAppError(err); appErr.Code != 404 {
		t.Fatalf("expected 404 for a missing order, got %v", err)
	}
}

func TestListAndDeleteOrders(t *testing.T) {
	ctx := context.Background()
	svc, id := newTestOrderService(t)

	orders, err := svc.ListOrders(ctx)
	if err != nil || len(orders) != 1 || orders[0].OrderNumber != "ORD-001" {
		t.Fatalf("unexpected list %+v (%v)", orders, err)
	}

	if err := svc.DeleteOrder(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetOrder(ctx, id); apperror.GetAppError(err).Code != 404 {
		t.Fatalf("expected 404 after delete, got %v", err)
	}
	if err := svc.DeleteOrder(ctx, id); apperror.GetAppError(err).Code != 404 {
		t.Fatalf("expected 404 on second delete, got %v", err)
	}
}
