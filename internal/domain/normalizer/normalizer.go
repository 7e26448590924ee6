// Package normalizer turns stored or submitted records of any historical shape
// into canonical sales and kitchen orders. Every function here is total: bad or
// missing fields are coerced or defaulted, never rejected.
package normalizer

import (
	"strings"

	"github.com/fng-app/fng-sales-api/internal/domain/entity"
	"github.com/fng-app/fng-sales-api/internal/domain/enum"
	"github.com/fng-app/fng-sales-api/pkg/money"
)

// NormalizeSale maps raw into the canonical Sale shape.
//
// When raw has at least one line item the total is recomputed from the lines,
// whatever the stored aggregate says. Item-less legacy records keep their
// stored total.
func NormalizeSale(raw entity.Record) entity.Sale {
	if raw == nil {
		raw = entity.Record{}
	}

	sale := entity.Sale{
		ID:            ID(raw),
		Customer:      firstString(raw, "customer", "customer_name", "customerName"),
		CustomerPhone: firstString(raw, "customer_phone", "customerPhone"),
		CustomerNotes: firstString(raw, "customer_notes", "customerNotes"),
		Notes:         firstString(raw, "notes"),
		InvoiceNumber: firstString(raw, "invoice_number", "invoiceNumber"),
		Cashier:       firstString(raw, "cashier"),
		SaleDate:      firstTime(raw, "sale_date", "saleDate"),
		Items:         NormalizeItems(raw["items"]),
	}
	if sale.Customer == "" {
		sale.Customer = entity.DefaultCustomer
	}
	if sale.Cashier == "" {
		sale.Cashier = entity.DefaultCashier
	}

	sale.ItemCount = len(sale.Items)
	if sale.ItemCount > 0 {
		sale.TotalAmount = ItemsTotal(sale.Items)
	} else {
		sale.TotalAmount = firstFloat(raw, "totalAmount", "total")
	}

	sale.CreatedAt = firstTime(raw, "createdAt", "created_at", "sale_date", "saleDate")
	sale.UpdatedAt = firstTime(raw, "updatedAt", "updated_at")
	if sale.UpdatedAt.IsZero() {
		sale.UpdatedAt = sale.CreatedAt
	}

	sale.Payment = NormalizePayment(raw, sale.TotalAmount)
	return sale
}

// NormalizeItems coerces a raw item list. Entries that are not objects are dropped.
// The result is never nil.
func NormalizeItems(v interface{}) []entity.SaleItem {
	raw := listOf(v)
	items := make([]entity.SaleItem, 0, len(raw))
	for _, r := range raw {
		items = append(items, NormalizeItem(r))
	}
	return items
}

// NormalizeItem coerces one line item and computes its line total
func NormalizeItem(r entity.Record) entity.SaleItem {
	quantity, _ := Int(r["quantity"])
	price, _ := Float(r["price"])
	return entity.SaleItem{
		Product:     firstString(r, "product", "menu", "name"),
		Quantity:    quantity,
		Price:       price,
		Category:    firstString(r, "category"),
		Temperature: firstString(r, "temperature"),
		Notes:       firstString(r, "notes"),
		ItemTotal:   money.LineTotal(price, quantity),
	}
}

// ItemsTotal sums the line totals
func ItemsTotal(items []entity.SaleItem) float64 {
	totals := make([]float64, len(items))
	for i, item := range items {
		totals[i] = item.ItemTotal
	}
	return money.Sum(totals...)
}

// NormalizePayment reads the payment sub-record of a sale, falling back to the
// flat payment_* fields older records carry at the top level.
func NormalizePayment(raw entity.Record, total float64) entity.Payment {
	p := Sub(raw, "payment")
	if p == nil {
		p = entity.Record{}
	}

	method, ok := enum.ParsePaymentMethod(firstNonEmpty(String(p["method"]), String(raw["payment_method"])))
	if !ok {
		method = enum.PaymentMethodCash
	}
	status, ok := enum.ParsePaymentStatus(firstNonEmpty(String(p["status"]), String(raw["payment_status"])))
	if !ok {
		status = enum.PaymentStatusUnpaid
	}

	paid, ok := Float(p["amountPaid"])
	if !ok {
		paid = firstFloat(raw, "amount_paid", "amountPaid")
	}

	return entity.Payment{
		Method:          method,
		Status:          status,
		AmountPaid:      paid,
		RemainingAmount: money.Remaining(total, paid),
		ProofImage:      firstNonEmpty(String(p["proofImage"]), String(raw["payment_proof"])),
		ReceiptNumber:   firstNonEmpty(String(p["receiptNumber"]), String(raw["receipt_number"])),
		UpdatedAt:       firstTime(p, "updatedAt"),
	}
}

// NormalizeOrder maps raw into the canonical kitchen Order shape
func NormalizeOrder(raw entity.Record) entity.Order {
	if raw == nil {
		raw = entity.Record{}
	}

	order := entity.Order{
		ID:              ID(raw),
		OrderNumber:     firstString(raw, "orderNumber", "order_number"),
		CustomerName:    firstString(raw, "customerName", "customer_name", "customer"),
		OrderType:       firstString(raw, "orderType", "order_type"),
		CustomerPhone:   firstString(raw, "customerPhone", "customer_phone"),
		CustomerAddress: firstString(raw, "customerAddress", "customer_address"),
		PaymentMethod:   strings.ToLower(firstString(raw, "paymentMethod", "payment_method")),
		Notes:           firstString(raw, "notes"),
		CreatedAt:       firstTime(raw, "createdAt", "created_at"),
		UpdatedAt:       firstTime(raw, "updatedAt", "updated_at"),
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = "cash"
	}

	status, ok := enum.ParseOrderStatus(firstString(raw, "status"))
	if !ok {
		status = enum.OrderStatusPending
	}
	order.Status = status

	paymentStatus, ok := enum.ParseOrderPaymentStatus(firstString(raw, "paymentStatus", "payment_status"))
	if !ok {
		paymentStatus = enum.OrderPaymentUnpaid
	}
	order.PaymentStatus = paymentStatus

	order.PreparationTime, _ = Int(raw["preparationTime"])
	if t, ok := Time(raw["estimatedReadyTime"]); ok {
		order.EstimatedReadyTime = &t
	}

	order.Items = make([]entity.OrderItem, 0)
	lineTotals := make([]float64, 0)
	for _, r := range listOf(raw["items"]) {
		quantity, _ := Int(r["quantity"])
		price, _ := Float(r["price"])
		order.Items = append(order.Items, entity.OrderItem{
			Name:        firstString(r, "name", "menu", "product"),
			Quantity:    quantity,
			Price:       price,
			Temperature: firstString(r, "temperature"),
			Notes:       firstString(r, "notes"),
		})
		lineTotals = append(lineTotals, money.LineTotal(price, quantity))
	}

	if total, ok := Float(raw["totalAmount"]); ok {
		order.TotalAmount = total
	} else {
		order.TotalAmount = money.Sum(lineTotals...)
	}
	return order
}

// ID resolves the identifier of a record from "_id", then the legacy "id"
func ID(raw entity.Record) string {
	return firstString(raw, "_id", "id")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
