package entity

import (
	"time"

	"github.com/fng-app/fng-sales-api/internal/domain/enum"
)

// DefaultCustomer is used when a sale carries no customer name
const DefaultCustomer = "Walk-in Customer"

// DefaultCashier is recorded when no authenticated user created the sale
const DefaultCashier = "System"

// Sale is the canonical shape of a recorded transaction
type Sale struct {
	ID            string     `json:"_id"`
	Customer      string     `json:"customer"`
	CustomerPhone string     `json:"customer_phone,omitempty"`
	CustomerNotes string     `json:"customer_notes,omitempty"`
	Notes         string     `json:"notes"`
	Items         []SaleItem `json:"items"`
	TotalAmount   float64    `json:"totalAmount"`
	ItemCount     int        `json:"itemCount"`
	InvoiceNumber string     `json:"invoice_number"`
	Payment       Payment    `json:"payment"`
	SaleDate      time.Time  `json:"sale_date"`
	Cashier       string     `json:"cashier"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// SaleItem is one line of a sale
type SaleItem struct {
	Product     string  `json:"product"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Temperature string  `json:"temperature,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	ItemTotal   float64 `json:"itemTotal"`
}

// Payment is the payment sub-record of a sale
type Payment struct {
	Method          enum.PaymentMethod `json:"method"`
	Status          enum.PaymentStatus `json:"status"`
	AmountPaid      float64            `json:"amountPaid"`
	RemainingAmount float64            `json:"remainingAmount"`
	ProofImage      string             `json:"proofImage,omitempty"`
	ReceiptNumber   string             `json:"receiptNumber"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// Record converts the sale into the document written to a store.
// Zero timestamps and empty optional fields are left out.
func (s Sale) Record() Record {
	items := make([]interface{}, len(s.Items))
	for i, item := range s.Items {
		items[i] = item.Record()
	}

	r := Record{
		"customer":       s.Customer,
		"notes":          s.Notes,
		"items":          items,
		"totalAmount":    s.TotalAmount,
		"itemCount":      s.ItemCount,
		"invoice_number": s.InvoiceNumber,
		"payment":        s.Payment.Record(),
		"cashier":        s.Cashier,
	}
	if s.ID != "" {
		r["_id"] = s.ID
	}
	if s.CustomerPhone != "" {
		r["customer_phone"] = s.CustomerPhone
	}
	if s.CustomerNotes != "" {
		r["customer_notes"] = s.CustomerNotes
	}
	putTime(r, "sale_date", s.SaleDate)
	putTime(r, "createdAt", s.CreatedAt)
	putTime(r, "updatedAt", s.UpdatedAt)
	return r
}

// Record converts the item into its stored form
func (i SaleItem) Record() Record {
	r := Record{
		"product":   i.Product,
		"quantity":  i.Quantity,
		"price":     i.Price,
		"category":  i.Category,
		"itemTotal": i.ItemTotal,
	}
	if i.Temperature != "" {
		r["temperature"] = i.Temperature
	}
	if i.Notes != "" {
		r["notes"] = i.Notes
	}
	return r
}

// Record converts the payment into its stored form
func (p Payment) Record() Record {
	r := Record{
		"method":          string(p.Method),
		"status":          string(p.Status),
		"amountPaid":      p.AmountPaid,
		"remainingAmount": p.RemainingAmount,
		"receiptNumber":   p.ReceiptNumber,
	}
	if p.ProofImage != "" {
		r["proofImage"] = p.ProofImage
	}
	putTime(r, "updatedAt", p.UpdatedAt)
	return r
}

// TotalQuantity sums the quantities of all lines
func (s Sale) TotalQuantity() int {
	n := 0
	for _, item := range s.Items {
		n += item.Quantity
	}
	return n
}

func putTime(r Record, key string, t time.Time) {
	if !t.IsZero() {
		r[key] = t
	}
}
