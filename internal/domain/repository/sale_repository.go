package repository

import (
	"context"
	"strings"

	"github.com/fng-app/fng-sales-api/internal/domain/entity"
)

// FilterAll is the filter value that matches everything
const FilterAll = "all"

// SaleRepository defines the interface for sale data operations
type SaleRepository interface {
	// Create stores the sale and sets its ID
	Create(ctx context.Context, sale *entity.Sale) error
	// GetByID returns nil, nil when no sale matches
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// Update replaces the stored fields of the sale matching id; ErrNotFound if none
	Update(ctx context.Context, id string, sale *entity.Sale) error
	// Delete removes the sale matching id; ErrNotFound if none
	Delete(ctx context.Context, id string) error
	// List returns matching sales, newest first
	List(ctx context.Context, filter *SaleFilter) ([]entity.Sale, error)
}

// SaleFilter contains filtering parameters for sale queries.
// Empty or "all" values match everything; set predicates are ANDed.
type SaleFilter struct {
	Status   string // payment status, case-insensitive equality
	Method   string // payment method, case-insensitive equality
	Customer string // case-insensitive substring of the customer name
	Date     string // prefix of the UTC creation date, e.g. "2024-05-01" or "2024-05"
	Search   string // case-insensitive substring of customer or invoice number
}

// Matches reports whether sale satisfies every predicate of the filter
func (f *SaleFilter) Matches(sale *entity.Sale) bool {
	if f == nil {
		return true
	}
	if active(f.Status) && !strings.EqualFold(string(sale.Payment.Status), strings.TrimSpace(f.Status)) {
		return false
	}
	if active(f.Method) && !strings.EqualFold(string(sale.Payment.Method), strings.TrimSpace(f.Method)) {
		return false
	}
	if active(f.Customer) && !containsFold(sale.Customer, f.Customer) {
		return false
	}
	if active(f.Date) {
		if sale.CreatedAt.IsZero() {
			return false
		}
		day := sale.CreatedAt.UTC().Format("2006-01-02")
		if !strings.HasPrefix(day, strings.TrimSpace(f.Date)) {
			return false
		}
	}
	if active(f.Search) && !containsFold(sale.Customer, f.Search) && !containsFold(sale.InvoiceNumber, f.Search) {
		return false
	}
	return true
}

func active(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, FilterAll)
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(strings.TrimSpace(sub)))
}
