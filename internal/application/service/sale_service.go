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
	"github.com/fng-app/fng-sales-api/pkg/money"
	"github.com/fng-app/fng-sales-api/pkg/utils"
)

// immutableSaleFields are never taken from an update body
var immutableSaleFields = map[string]bool{"_id": true, "id": true, "createdAt": true}

// flatPaymentFields are the top-level aliases older clients send instead of a payment object
var flatPaymentFields = map[string]string{
	"payment_status": "status",
	"payment_method": "method",
	"amount_paid":    "amountPaid",
	"payment_proof":  "proofImage",
}

// SaleService handles sale-related operations
type SaleService struct {
	saleRepo repository.SaleRepository
	now      func() time.Time
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository) *SaleService {
	return &SaleService{
		saleRepo: saleRepo,
		now:      time.Now,
	}
}

// CreateSaleInput represents the create sale input
type CreateSaleInput struct {
	Body    entity.Record
	Cashier string // display name of the authenticated user, if any
}

// CreateSale validates, normalizes and stores a new sale
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	body := input.Body.Clone()
	if err := ValidateItems(body["items"]); err != nil {
		return nil, err
	}
	delete(body, "_id")
	delete(body, "id")

	now := s.timestamp()
	sale := normalizer.NormalizeSale(body)

	if normalizer.String(body["cashier"]) == "" && input.Cashier != "" {
		sale.Cashier = input.Cashier
	}
	if sale.InvoiceNumber == "" {
		sale.InvoiceNumber = utils.GenerateInvoiceNumber(now)
	}
	if sale.Payment.ReceiptNumber == "" {
		sale.Payment.ReceiptNumber = utils.GenerateReceiptNumber(now)
	}
	settlePayment(&sale.Payment, paymentPatch(body), sale.TotalAmount)
	sale.Payment.UpdatedAt = now

	if sale.SaleDate.IsZero() {
		sale.SaleDate = now
	}
	sale.CreatedAt = now
	sale.UpdatedAt = now

	if err := s.saleRepo.Create(ctx, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

// GetSale retrieves a sale by ID
func (s *SaleService) GetSale(ctx context.Context, id string) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// UpdateSale merges patch over the stored sale and stores the result.
// createdAt and the id never change. When the patch touches payment fields the
// payment is settled again and gets a fresh timestamp.
func (s *SaleService) UpdateSale(ctx context.Context, id string, patch entity.Record) (*entity.Sale, error) {
	existing, err := s.GetSale(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Has("items") {
		if err := ValidateItems(patch["items"]); err != nil {
			return nil, err
		}
	}

	merged := existing.Record()
	payment := paymentPatch(patch)
	for k, v := range patch {
		if immutableSaleFields[k] || k == "payment" {
			continue
		}
		if _, flat := flatPaymentFields[k]; flat {
			continue
		}
		merged[k] = v
	}
	if payment != nil {
		stored := normalizer.Sub(merged, "payment").Clone()
		for k, v := range payment {
			stored[k] = v
		}
		merged["payment"] = stored
	}

	now := s.timestamp()
	sale := normalizer.NormalizeSale(merged)
	sale.ID = existing.ID
	sale.CreatedAt = existing.CreatedAt
	if payment != nil {
		settlePayment(&sale.Payment, payment, sale.TotalAmount)
		if sale.Payment.ReceiptNumber == "" {
			sale.Payment.ReceiptNumber = utils.GenerateReceiptNumber(now)
		}
		sale.Payment.UpdatedAt = now
	}
	sale.UpdatedAt = now

	if err := s.saleRepo.Update(ctx, id, &sale); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NewNotFoundError("Sale")
		}
		return nil, err
	}
	return &sale, nil
}

// DeleteSale removes a sale. Nothing else references sales, so deletion is unconditional.
func (s *SaleService) DeleteSale(ctx context.Context, id string) error {
	err := s.saleRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NewNotFoundError("Sale")
	}
	return err
}

// ListSales returns matching sales, newest first
func (s *SaleService) ListSales(ctx context.Context, filter *repository.SaleFilter) ([]entity.Sale, error) {
	return s.saleRepo.List(ctx, filter)
}

// SaleSummary aggregates a set of sales
type SaleSummary struct {
	TotalSales         float64            `json:"totalSales"`
	TotalPaid          float64            `json:"totalPaid"`
	TotalOutstanding   float64            `json:"totalOutstanding"`
	TransactionCount   int                `json:"transactionCount"`
	ItemsSold          int                `json:"itemsSold"`
	AverageTransaction float64            `json:"averageTransaction"`
	ByStatus           map[string]float64 `json:"byStatus"`
	ByMethod           map[string]float64 `json:"byMethod"`
}

// GetSummary aggregates the sales matching filter
func (s *SaleService) GetSummary(ctx context.Context, filter *repository.SaleFilter) (*SaleSummary, error) {
	sales, err := s.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return Summarize(sales), nil
}

// Summarize computes totals per payment status and method
func Summarize(sales []entity.Sale) *SaleSummary {
	summary := &SaleSummary{
		TransactionCount: len(sales),
		ByStatus:         make(map[string]float64),
		ByMethod:         make(map[string]float64),
	}
	for _, st := range enum.PaymentStatuses() {
		summary.ByStatus[st.String()] = 0
	}
	for _, m := range enum.PaymentMethods() {
		summary.ByMethod[m.String()] = 0
	}

	for _, sale := range sales {
		summary.TotalSales = money.Sum(summary.TotalSales, sale.TotalAmount)
		summary.TotalPaid = money.Sum(summary.TotalPaid, sale.Payment.AmountPaid)
		summary.TotalOutstanding = money.Sum(summary.TotalOutstanding, sale.Payment.RemainingAmount)
		summary.ItemsSold += sale.TotalQuantity()

		status := sale.Payment.Status.String()
		summary.ByStatus[status] = money.Sum(summary.ByStatus[status], sale.TotalAmount)
		method := sale.Payment.Method.String()
		summary.ByMethod[method] = money.Sum(summary.ByMethod[method], sale.TotalAmount)
	}
	summary.AverageTransaction = money.Average(summary.TotalSales, summary.TransactionCount)
	return summary
}

func (s *SaleService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// paymentPatch collects the payment fields of body, nested or flat. Nil means
// body carries no payment information at all.
func paymentPatch(body entity.Record) entity.Record {
	var out entity.Record
	if nested := normalizer.Sub(body, "payment"); nested != nil {
		out = nested.Clone()
	}
	for flat, field := range flatPaymentFields {
		if !body.Has(flat) {
			continue
		}
		if out == nil {
			out = entity.Record{}
		}
		if !out.Has(field) {
			out[field] = body[flat]
		}
	}
	return out
}

// settlePayment reconciles status and amounts. A supplied status wins; a
// supplied amount without a status decides the status; remaining is always
// total minus paid, floored at zero.
func settlePayment(p *entity.Payment, patch entity.Record, total float64) {
	_, statusGiven := enum.ParsePaymentStatus(normalizer.String(patch["status"]))
	paid, paidGiven := normalizer.Float(patch["amountPaid"])

	switch {
	case statusGiven && !paidGiven:
		if p.Status == enum.PaymentStatusPaid {
			p.AmountPaid = total
		}
	case !statusGiven && paidGiven:
		p.AmountPaid = paid
		p.Status = statusForAmount(paid, total)
	}
	p.RemainingAmount = money.Remaining(total, p.AmountPaid)
}

func statusForAmount(paid, total float64) enum.PaymentStatus {
	switch {
	case paid <= 0:
		return enum.PaymentStatusUnpaid
	case paid < total:
		return enum.PaymentStatusPartial
	default:
		return enum.PaymentStatusPaid
	}
}
