package enum

import "strings"

// PaymentMethod is how a sale was (or will be) paid
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodQRIS     PaymentMethod = "QRIS"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
)

// PaymentMethods lists every valid payment method
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentMethodCash, PaymentMethodQRIS, PaymentMethodTransfer}
}

func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid reports whether m is one of the known methods
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodQRIS, PaymentMethodTransfer:
		return true
	}
	return false
}

// ParsePaymentMethod accepts any casing ("qris", "Qris", "QRIS").
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	m := PaymentMethod(strings.ToUpper(strings.TrimSpace(s)))
	return m, m.IsValid()
}
