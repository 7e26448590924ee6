package money

import "testing"

func TestLineTotalAvoidsFloatDrift(t *testing.T) {
	if got := LineTotal(0.1, 3); got != 0.3 {
		t.Fatalf("expected 0.3, got %v", got)
	}
	if got := LineTotal(7000, 2); got != 14000 {
		t.Fatalf("expected 14000, got %v", got)
	}
}

func TestSum(t *testing.T) {
	if got := Sum(0.1, 0.2); got != 0.3 {
		t.Fatalf("expected 0.3, got %v", got)
	}
	if got := Sum(); got != 0 {
		t.Fatalf("expected 0 for no amounts, got %v", got)
	}
}

func TestRemainingFloorsAtZero(t *testing.T) {
	if got := Remaining(14000, 4000); got != 10000 {
		t.Fatalf("expected 10000, got %v", got)
	}
	if got := Remaining(14000, 20000); got != 0 {
		t.Fatalf("expected 0 when overpaid, got %v", got)
	}
}

func TestAverage(t *testing.T) {
	if got := Average(10, 3); got != 3.33 {
		t.Fatalf("expected 3.33, got %v", got)
	}
	if got := Average(10, 0); got != 0 {
		t.Fatalf("expected 0 for empty set, got %v", got)
	}
}

func TestRupiah(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{7000, "Rp 7.000"},
		{1250000, "Rp 1.250.000"},
		{12500.5, "Rp 12.500,50"},
		{-3000, "Rp -3.000"},
	}

	for _, tt := range tests {
		if got := Rupiah(tt.amount); got != tt.want {
			t.Errorf("Rupiah(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
