package enum

import "strings"

// OrderStatus represents the kitchen preparation state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) String() string {
	return string(s)
}

// IsValid reports whether s is a known order status
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// ParseOrderStatus is case-insensitive; the stored form is lowercase.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	st := OrderStatus(strings.ToLower(strings.TrimSpace(s)))
	return st, st.IsValid()
}

// OrderPaymentStatus is the payment state tracked on kitchen orders
type OrderPaymentStatus string

const (
	OrderPaymentPaid    OrderPaymentStatus = "paid"
	OrderPaymentUnpaid  OrderPaymentStatus = "unpaid"
	OrderPaymentPartial OrderPaymentStatus = "partial"
)

func (s OrderPaymentStatus) String() string {
	return string(s)
}

// IsValid reports whether s is a known order payment status
func (s OrderPaymentStatus) IsValid() bool {
	switch s {
	case OrderPaymentPaid, OrderPaymentUnpaid, OrderPaymentPartial:
		return true
	}
	return false
}

// ParseOrderPaymentStatus is case-insensitive; the stored form is lowercase.
func ParseOrderPaymentStatus(s string) (OrderPaymentStatus, bool) {
	st := OrderPaymentStatus(strings.ToLower(strings.TrimSpace(s)))
	return st, st.IsValid()
}
