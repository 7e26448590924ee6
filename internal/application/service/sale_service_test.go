package service

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/fng-app/fng-sales-api/internal/domain/entity"
	"github.com/fng-app/fng-sales-api/internal/domain/enum"
	"github.com/fng-app/fng-sales-api/internal/domain/repository"
	"github.com/fng-app/fng-sales-api/internal/infrastructure/persistence"
	infraRepo "github.com/fng-app/fng-sales-api/internal/infrastructure/repository"
	"github.com/fng-app/fng-sales-api/pkg/apperror"
	"github.com/fng-app/fng-sales-api/pkg/logger"
)

var invoicePattern = regexp.MustCompile(`^INV-\d{6}-[a-z0-9]{5}$`)

func newTestSaleService(t *testing.T) (*SaleService, *persistence.FileStore) {
	t.Helper()
	store := persistence.NewFileStore(filepath.Join(t.TempDir(), "sales.json"))
	return NewSaleService(infraRepo.NewSaleRepository(store)), store
}

func budiBody() entity.Record {
	return entity.Record{
		"customer": "Budi",
		"items": []interface{}{
			map[string]interface{}{"product": "Mie Instant", "quantity": 2.0, "price": 7000.0},
		},
	}
}

func TestCreateAndPaySale(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestSaleService(t)
	before := time.Now().Add(-time.Second)

	sale, err := svc.CreateSale(ctx, &CreateSaleInput{Body: budiBody()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if sale.ID == "" {
		t.Fatalf("expected an assigned id")
	}
	if sale.TotalAmount != 14000 || sale.ItemCount != 1 {
		t.Fatalf("expected total 14000 and 1 item, got %v and %d", sale.TotalAmount, sale.ItemCount)
	}
	if sale.Payment.Status != enum.PaymentStatusUnpaid || sale.Payment.Method != enum.PaymentMethodCash {
		t.Fatalf("unexpected payment %+v", sale.Payment)
	}
	if sale.Payment.RemainingAmount != 14000 {
		t.Fatalf("expected 14000 remaining, got %v", sale.Payment.RemainingAmount)
	}
	if !invoicePattern.MatchString(sale.InvoiceNumber) {
		t.Fatalf("invoice %q does not match %s", sale.InvoiceNumber, invoicePattern)
	}
	if sale.CreatedAt.Before(before) || sale.CreatedAt.After(time.Now().Add(time.Second)) {
		t.Fatalf("createdAt %v is not now", sale.CreatedAt)
	}
	if sale.Cashier != entity.DefaultCashier {
		t.Fatalf("expected default cashier, got %q", sale.Cashier)
	}

	updated, err := svc.UpdateSale(ctx, sale.ID, entity.Record{
		"payment": map[string]interface{}{"status": "PAID", "amountPaid": 14000.0},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Payment.Status != enum.PaymentStatusPaid || updated.Payment.RemainingAmount != 0 {
		t.Fatalf("unexpected payment after update %+v", updated.Payment)
	}
	if !updated.CreatedAt.Equal(sale.CreatedAt) {
		t.Fatalf("createdAt changed from %v to %v", sale.CreatedAt, updated.CreatedAt)
	}
	if updated.Payment.ReceiptNumber != sale.Payment.ReceiptNumber {
		t.Fatalf("receipt number changed")
	}

	stored, err := svc.GetSale(ctx, sale.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Payment.Status != enum.PaymentStatusPaid || stored.Payment.AmountPaid != 14000 || stored.Customer != "Budi" {
		t.Fatalf("update not persisted: %+v", stored)
	}
}

func TestCreateSaleValidation(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestSaleService(t)

	cases := []struct {
		name    string
		body    entity.Record
		message string
	}{
		{"empty items", entity.Record{"items": []interface{}{}}, MsgItemsRequired},
		{"missing items", entity.Record{"customer": "Budi"}, MsgItemsRequired},
		{"zero quantity", entity.Record{"items": []interface{}{
			map[string]interface{}{"product": "X", "quantity": 0.0, "price": 10.0},
		}}, "Item 1: Quantity must be a whole number of at least 1"},
		{"missing product on second item", entity.Record{"items": []interface{}{
			map[string]interface{}{"product": "X", "quantity": 1.0, "price": 10.0},
			map[string]interface{}{"quantity": 1.0, "price": 10.0},
		}}, "Item 2: Product is required"},
		{"negative price", entity.Record{"items": []interface{}{
			map[string]interface{}{"product": "X", "quantity": 1.0, "price": -1.0},
		}}, "Item 1: Price must be a number and cannot be negative"},
		{"text price", entity.Record{"items": []interface{}{
			map[string]interface{}{"product": "X", "quantity": 1.0, "price": "gratis"},
		}}, "Item 1: Price must be a number and cannot be negative"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateSale(ctx, &CreateSaleInput{Body: tc.body})
			var appErr *apperror.AppError
			if !errors.As(err, &appErr) {
				t.Fatalf("expected an AppError, got %v", err)
			}
			if appErr.Code != 400 || appErr.Message != tc.message {
				t.Fatalf("got %d %q, want 400 %q", appErr.Code, appErr.Message, tc.message)
			}
		})
	}

	docs, err := store.FindAll(ctx)
	if err != nil || len(docs) != 0 {
		t.Fatalf("validation failures must not write, found %d documents (%v)", len(docs), err)
	}
}

func TestCreateSaleAcceptsFreeItems(t *testing.T) {
	svc, _ := newTestSaleService(t)
	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{Body: entity.Record{
		"items": []interface{}{map[string]interface{}{"product": "Air Putih", "quantity": "1", "price": "0"}},
	}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sale.TotalAmount != 0 || sale.Customer != entity.DefaultCustomer {
		t.Fatalf("unexpected sale %+v", sale)
	}
}

func TestCreateSalePaymentDecisions(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestSaleService(t)

	cases := []struct {
		name      string
		payment   map[string]interface{}
		flat      entity.Record
		status    enum.PaymentStatus
		paid      float64
		remaining float64
	}{
		{"paid without amount", map[string]interface{}{"status": "paid", "method": "qris"}, nil, enum.PaymentStatusPaid, 14000, 0},
		{"partial amount only", map[string]interface{}{"amountPaid": 4000.0}, nil, enum.PaymentStatusPartial, 4000, 10000},
		{"full amount only", map[string]interface{}{"amountPaid": "14000"}, nil, enum.PaymentStatusPaid, 14000, 0},
		{"status wins over amount", map[string]interface{}{"status": "UNPAID", "amountPaid": 5000.0}, nil, enum.PaymentStatusUnpaid, 5000, 9000},
		{"flat legacy fields", nil, entity.Record{"payment_status": "PARTIAL", "amount_paid": 2000.0}, enum.PaymentStatusPartial, 2000, 12000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := budiBody()
			if tc.payment != nil {
				body["payment"] = tc.payment
			}
			for k, v := range tc.flat {
				body[k] = v
			}

			sale, err := svc.CreateSale(ctx, &CreateSaleInput{Body: body, Cashier: "Sari"})
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			p := sale.Payment
			if p.Status != tc.status || p.AmountPaid != tc.paid || p.RemainingAmount != tc.remaining {
				t.Fatalf("got %s paid=%v remaining=%v, want %s paid=%v remaining=%v",
					p.Status, p.AmountPaid, p.RemainingAmount, tc.status, tc.paid, tc.remaining)
			}
			if sale.Cashier != "Sari" {
				t.Fatalf("expected cashier from the authenticated user, got %q", sale.Cashier)
			}
		})
	}
}

func TestUpdateSaleItemsAndImmutableFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestSaleService(t)
	sale, err := svc.CreateSale(ctx, &CreateSaleInput{Body: budiBody()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateSale(ctx, sale.ID, entity.Record{
		"_id":       "hijack",
		"createdAt": "2000-01-01T00:00:00Z",
		"notes":     "tambah telur",
		"items": []interface{}{
			map[string]interface{}{"product": "Mie Instant", "quantity": 3.0, "price": 7000.0},
			map[string]interface{}{"product": "Es Teh", "quantity": 1.0, "price": 4000.0},
		},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != sale.ID || !updated.CreatedAt.Equal(sale.CreatedAt) {
		t.Fatalf("id or createdAt changed: %+v", updated)
	}
	if updated.TotalAmount != 25000 || updated.ItemCount != 2 || updated.Notes != "tambah telur" {
		t.Fatalf("unexpected update result %+v", updated)
	}
	if updated.Payment.RemainingAmount != 25000 {
		t.Fatalf("remaining must follow the new total, got %v", updated.Payment.RemainingAmount)
	}

	_, err = svc.UpdateSale(ctx, sale.ID, entity.Record{"items": []interface{}{}})
	if appErr := apperror.GetAppError(err); appErr.Code != 400 {
		t.Fatalf("expected 400 for emptied items, got %v", err)
	}
}

func TestSaleNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestSaleService(t)

	for name, err := range map[string]error{
		"get":    func() error { _, err := svc.GetSale(ctx, "missing"); return err }(),
		"update": func() error { _, err := svc.UpdateSale(ctx, "missing", entity.Record{"notes": "x"}); return err }(),
		"delete": svc.DeleteSale(ctx, "missing"),
	} {
		if appErr := apperror.GetAppError(err); appErr.Code != 404 || appErr.Message != "Sale not found" {
			t.Errorf("%s: expected 404 Sale not found, got %v", name, err)
		}
	}
}

// downStore is a primary backend that is never reachable
type downStore struct{}

var errDown = errors.New("server selection timeout")

func (downStore) Name() string                   { return "mongodb" }
func (downStore) Ping(ctx context.Context) error { return errDown }
func (downStore) Insert(ctx context.Context, doc entity.Record) (string, error) {
	return "", errDown
}
func (downStore) FindByID(ctx context.Context, id string) (entity.Record, error) {
	return nil, errDown
}
func (downStore) Update(ctx context.Context, id string, fields entity.Record) error { return errDown }
func (downStore) Delete(ctx context.Context, id string) error                       { return errDown }
func (downStore) FindAll(ctx context.Context) ([]entity.Record, error)              { return nil, errDown }

func TestCreateSaleFailsOverToFile(t *testing.T) {
	ctx := context.Background()
	file := persistence.NewFileStore(filepath.Join(t.TempDir(), "sales.json"))
	router := persistence.NewRouter(downStore{}, file, false, logger.Discard())
	svc := NewSaleService(infraRepo.NewSaleRepository(router))

	sale, err := svc.CreateSale(ctx, &CreateSaleInput{Body: budiBody()})
	if err != nil {
		t.Fatalf("create with primary down: %v", err)
	}

	sales, err := svc.ListSales(ctx, &repository.SaleFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sales) != 1 || sales[0].ID != sale.ID {
		t.Fatalf("expected the created sale via the file backend, got %+v", sales)
	}

	fileOnly := NewSaleService(infraRepo.NewSaleRepository(file))
	if _, err := fileOnly.GetSale(ctx, sale.ID); err != nil {
		t.Fatalf("expected the sale on disk: %v", err)
	}
}

func TestSummarize(t *testing.T) {
	sales := []entity.Sale{
		{TotalAmount: 14000, Items: []entity.SaleItem{{Quantity: 2}}, Payment: entity.Payment{Status: enum.PaymentStatusPaid, Method: enum.PaymentMethodCash, AmountPaid: 14000}},
		{TotalAmount: 10000, Items: []entity.SaleItem{{Quantity: 1}, {Quantity: 3}}, Payment: entity.Payment{Status: enum.PaymentStatusPartial, Method: enum.PaymentMethodQRIS, AmountPaid: 4000, RemainingAmount: 6000}},
		{TotalAmount: 5000, Items: []entity.SaleItem{{Quantity: 1}}, Payment: entity.Payment{Status: enum.PaymentStatusUnpaid, Method: enum.PaymentMethodQRIS, RemainingAmount: 5000}},
	}

	s := Summarize(sales)

	if s.TotalSales != 29000 || s.TransactionCount != 3 || s.ItemsSold != 7 {
		t.Fatalf("unexpected totals %+v", s)
	}
	if s.AverageTransaction != 9666.67 {
		t.Fatalf("expected average 9666.67, got %v", s.AverageTransaction)
	}
	if s.TotalPaid != 18000 || s.TotalOutstanding != 11000 {
		t.Fatalf("unexpected paid/outstanding %v / %v", s.TotalPaid, s.TotalOutstanding)
	}
	if s.ByMethod["QRIS"] != 15000 || s.ByMethod["TRANSFER"] != 0 || s.ByStatus["PAID"] != 14000 {
		t.Fatalf("unexpected breakdown %v %v", s.ByMethod, s.ByStatus)
	}
}
