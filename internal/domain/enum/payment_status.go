package enum

import "strings"

// PaymentStatus is the settlement state of a sale.
// Informally UNPAID -> PARTIAL -> PAID, or UNPAID -> PAID; no transition is blocked.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusPartial PaymentStatus = "PARTIAL"
	PaymentStatusUnpaid  PaymentStatus = "UNPAID"
)

// PaymentStatuses lists every valid payment status
func PaymentStatuses() []PaymentStatus {
	return []PaymentStatus{PaymentStatusPaid, PaymentStatusPartial, PaymentStatusUnpaid}
}

func (s PaymentStatus) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known statuses
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusPartial, PaymentStatusUnpaid:
		return true
	}
	return false
}

// ParsePaymentStatus accepts historical lowercase values ("paid", "unpaid").
func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	st := PaymentStatus(strings.ToUpper(strings.TrimSpace(s)))
	return st, st.IsValid()
}
