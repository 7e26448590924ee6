package service

import (
	"github.com/fng-app/fng-sales-api/internal/domain/normalizer"
	"github.com/fng-app/fng-sales-api/pkg/apperror"
)

// MsgItemsRequired is returned when a sale has no line items
const MsgItemsRequired = "At least 1 item must be added to the order"

// ValidateItems checks a raw item list: at least one entry, each with a
// product name, a whole quantity of at least 1 and a price of at least 0.
// The first offending item is reported by its 1-based position.
func ValidateItems(v interface{}) error {
	items, ok := v.([]interface{})
	if !ok || len(items) == 0 {
		return apperror.NewValidationError(MsgItemsRequired, apperror.FieldError{
			Field:   "items",
			Message: MsgItemsRequired,
		})
	}

	for i, raw := range items {
		item := normalizer.AsRecord(raw)
		if item == nil {
			return apperror.NewItemError(i, "product", "Item must be an object with product, quantity and price")
		}
		if normalizer.NormalizeItem(item).Product == "" {
			return apperror.NewItemError(i, "product", "Product is required")
		}
		if quantity, ok := normalizer.Int(item["quantity"]); !ok || quantity < 1 {
			return apperror.NewItemError(i, "quantity", "Quantity must be a whole number of at least 1")
		}
		if price, ok := normalizer.Float(item["price"]); !ok || price < 0 {
			return apperror.NewItemError(i, "price", "Price must be a number and cannot be negative")
		}
	}
	return nil
}
