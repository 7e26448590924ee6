package utils

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const invoiceAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewRequestID generates a request correlation id
func NewRequestID() string {
	return uuid.NewString()
}

// GenerateInvoiceNumber returns INV-<last 6 digits of the ms timestamp>-<5 random [a-z0-9]>
func GenerateInvoiceNumber(now time.Time) string {
	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = invoiceAlphabet[rand.IntN(len(invoiceAlphabet))]
	}
	return fmt.Sprintf("INV-%s-%s", timestampSuffix(now), suffix)
}

// GenerateReceiptNumber returns RCP-<last 6 digits of the ms timestamp>
func GenerateReceiptNumber(now time.Time) string {
	return "RCP-" + timestampSuffix(now)
}

func timestampSuffix(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) < 6 {
		return strings.Repeat("0", 6-len(ms)) + ms
	}
	return ms[len(ms)-6:]
}
