package repository

import (
	"context"
	"errors"
	"sort"

	"github.com/fng-app/fng-sales-api/internal/domain/entity"
	"github.com/fng-app/fng-sales-api/internal/domain/normalizer"
	domainRepo "github.com/fng-app/fng-sales-api/internal/domain/repository"
)

type saleRepository struct {
	store domainRepo.DocumentStore
}

// NewSaleRepository creates a sale repository over any document store,
// normally the failover router
func NewSaleRepository(store domainRepo.DocumentStore) domainRepo.SaleRepository {
	return &saleRepository{store: store}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	doc := sale.Record()
	delete(doc, "_id")

	id, err := r.store.Insert(ctx, doc)
	if err != nil {
		return err
	}
	sale.ID = id
	return nil
}

func (r *saleRepository) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	doc, err := r.store.FindByID(ctx, id)
	if errors.Is(err, domainRepo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	sale := normalizer.NormalizeSale(doc)
	if sale.ID == "" {
		sale.ID = id
	}
	return &sale, nil
}

func (r *saleRepository) Update(ctx context.Context, id string, sale *entity.Sale) error {
	doc := sale.Record()
	delete(doc, "_id")
	return r.store.Update(ctx, id, doc)
}

func (r *saleRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}

// List normalizes every stored record before filtering. Legacy records keep
// their fields under several names, so the predicates cannot be pushed down to
// the store.
func (r *saleRepository) List(ctx context.Context, filter *domainRepo.SaleFilter) ([]entity.Sale, error) {
	docs, err := r.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	sales := make([]entity.Sale, 0, len(docs))
	for _, doc := range docs {
		sale := normalizer.NormalizeSale(doc)
		if filter.Matches(&sale) {
			sales = append(sales, sale)
		}
	}

	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].CreatedAt.After(sales[j].CreatedAt)
	})
	return sales, nil
}
