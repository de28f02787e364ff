package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBreakdownBelowThreshold(t *testing.T) {
	// 40.00 subtotal: flat shipping, 10% tax on the subtotal.
	s := Breakdown(dec("40.00"), decimal.Zero)

	if got := s.ShippingPrice.StringFixed(2); got != "10.00" {
		t.Errorf("shipping = %s, want 10.00", got)
	}
	if got := s.TaxPrice.StringFixed(2); got != "4.00" {
		t.Errorf("tax = %s, want 4.00", got)
	}
	if got := s.TotalPrice.StringFixed(2); got != "54.00" {
		t.Errorf("total = %s, want 54.00", got)
	}
}

func TestBreakdownAtThreshold(t *testing.T) {
	// 60.00 subtotal: free shipping.
	s := Breakdown(dec("60.00"), decimal.Zero)

	if !s.ShippingPrice.IsZero() {
		t.Errorf("shipping = %s, want 0", s.ShippingPrice)
	}
	if got := s.TaxPrice.StringFixed(2); got != "6.00" {
		t.Errorf("tax = %s, want 6.00", got)
	}
	if got := s.TotalPrice.StringFixed(2); got != "66.00" {
		t.Errorf("total = %s, want 66.00", got)
	}
}

func TestBreakdownThresholdBoundary(t *testing.T) {
	cases := []struct {
		subtotal     string
		wantShipping string
	}{
		{"49.99", "10.00"},
		{"50.00", "0.00"},
		{"50.01", "0.00"},
	}
	for _, c := range cases {
		s := Breakdown(dec(c.subtotal), decimal.Zero)
		if got := s.ShippingPrice.StringFixed(2); got != c.wantShipping {
			t.Errorf("Breakdown(%s): shipping = %s, want %s", c.subtotal, got, c.wantShipping)
		}
	}
}

func TestBreakdownTotalIsSumOfParts(t *testing.T) {
	for _, sub := range []string{"0", "0.01", "12.34", "49.99", "50.00", "199.95"} {
		s := Breakdown(dec(sub), decimal.Zero)
		sum := s.ItemsPrice.Sub(s.DiscountPrice).Add(s.ShippingPrice).Add(s.TaxPrice)
		if !sum.Equal(s.TotalPrice) {
			t.Errorf("Breakdown(%s): parts sum to %s, total is %s", sub, sum, s.TotalPrice)
		}
	}
}

func TestBreakdownHalfCentRounding(t *testing.T) {
	// 10% of 40.05 is 4.005; half away from zero rounds to 4.01.
	s := Breakdown(dec("40.05"), decimal.Zero)
	if got := s.TaxPrice.StringFixed(2); got != "4.01" {
		t.Errorf("tax = %s, want 4.01", got)
	}
	if got := s.TotalPrice.StringFixed(2); got != "54.06" {
		t.Errorf("total = %s, want 54.06", got)
	}
}

func TestBreakdownDiscountClamped(t *testing.T) {
	// Discount larger than the subtotal must not push it negative.
	s := Breakdown(dec("30.00"), dec("45.00"))
	if got := s.DiscountPrice.StringFixed(2); got != "30.00" {
		t.Errorf("discount = %s, want 30.00", got)
	}
	if !s.TaxPrice.IsZero() {
		t.Errorf("tax = %s, want 0 on a fully discounted cart", s.TaxPrice)
	}
	// Discounted subtotal 0.00 is below the threshold: flat shipping still applies.
	if got := s.TotalPrice.StringFixed(2); got != "10.00" {
		t.Errorf("total = %s, want 10.00", got)
	}
}

func TestBreakdownDiscountDropsBelowThreshold(t *testing.T) {
	// 55 - 10 = 45: the discount costs the customer free shipping.
	s := Breakdown(dec("55.00"), dec("10.00"))
	if got := s.ShippingPrice.StringFixed(2); got != "10.00" {
		t.Errorf("shipping = %s, want 10.00", got)
	}
}

func TestParsePrice(t *testing.T) {
	if d, err := ParsePrice("19.99"); err != nil || d.StringFixed(2) != "19.99" {
		t.Errorf("ParsePrice(19.99) = %v, %v", d, err)
	}
	if _, err := ParsePrice("abc"); err == nil {
		t.Error("ParsePrice(abc): want error")
	}
	if _, err := ParsePrice("-5.00"); err == nil {
		t.Error("ParsePrice(-5.00): want error")
	}
	if _, err := ParsePrice("1.999"); err == nil {
		t.Error("ParsePrice(1.999): want error")
	}
}

func TestClampQuantity(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 1}, {-3, 1}, {1, 1}, {5, 5}, {MaxItemQuantity, MaxItemQuantity}, {MaxItemQuantity + 7, MaxItemQuantity},
	}
	for _, c := range cases {
		if got := ClampQuantity(c.in); got != c.want {
			t.Errorf("ClampQuantity(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestSubtotal(t *testing.T) {
	lines := []Line{
		{Price: dec("9.99"), Quantity: 2},
		{Price: dec("5.00"), Quantity: 1},
	}
	if got := Subtotal(lines).StringFixed(2); got != "24.98" {
		t.Errorf("Subtotal = %s, want 24.98", got)
	}
	if !Subtotal(nil).IsZero() {
		t.Error("Subtotal(nil) should be zero")
	}
}
