package enum

import "testing"

func TestParsePaymentStatusAcceptsLegacyCasing(t *testing.T) {
	cases := map[string]PaymentStatus{
		"paid":     PaymentStatusPaid,
		"Partial":  PaymentStatusPartial,
		" UNPAID ": PaymentStatusUnpaid,
	}
	for in, want := range cases {
		got, ok := ParsePaymentStatus(in)
		if !ok || got != want {
			t.Fatalf("ParsePaymentStatus(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
	if _, ok := ParsePaymentStatus("pending"); ok {
		t.Fatalf("expected pending to be rejected")
	}
}

func TestParsePaymentMethod(t *testing.T) {
	if m, ok := ParsePaymentMethod("qris"); !ok || m != PaymentMethodQRIS {
		t.Fatalf("expected QRIS, got %q (%v)", m, ok)
	}
	if _, ok := ParsePaymentMethod("card"); ok {
		t.Fatalf("expected card to be rejected")
	}
}

func TestParseOrderStatuses(t *testing.T) {
	if s, ok := ParseOrderStatus("Preparing"); !ok || s != OrderStatusPreparing {
		t.Fatalf("expected preparing, got %q (%v)", s, ok)
	}
	if _, ok := ParseOrderStatus("done"); ok {
		t.Fatalf("expected done to be rejected")
	}
	if s, ok := ParseOrderPaymentStatus("PAID"); !ok || s != OrderPaymentPaid {
		t.Fatalf("expected paid, got %q (%v)", s, ok)
	}
}
