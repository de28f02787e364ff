package models

import (
	"testing"
	"time"
)

func TestApplyStatusProcessingStampsPaidAtOnce(t *testing.T) {
	o := &Order{Status: OrderStatusPending}
	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	o.ApplyStatus(OrderStatusProcessing, t1)
	if !o.IsPaid {
		t.Error("processing should set IsPaid")
	}
	if o.PaidAt == nil || !o.PaidAt.Equal(t1) {
		t.Errorf("PaidAt = %v, want %v", o.PaidAt, t1)
	}

	// Moving on to shipped must not move PaidAt.
	t2 := t1.Add(48 * time.Hour)
	o.ApplyStatus(OrderStatusShipped, t2)
	if !o.PaidAt.Equal(t1) {
		t.Errorf("shipped moved PaidAt to %v, want %v", o.PaidAt, t1)
	}
	if o.IsDelivered {
		t.Error("shipped should leave IsDelivered false")
	}
}

func TestApplyStatusDelivered(t *testing.T) {
	o := &Order{Status: OrderStatusShipped, IsPaid: true}
	now := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)

	o.ApplyStatus(OrderStatusDelivered, now)
	if !o.IsDelivered {
		t.Error("delivered should set IsDelivered")
	}
	if o.DeliveredAt == nil || !o.DeliveredAt.Equal(now) {
		t.Errorf("DeliveredAt = %v, want %v", o.DeliveredAt, now)
	}

	// Idempotent: re-applying does not re-stamp.
	later := now.Add(time.Hour)
	o.ApplyStatus(OrderStatusDelivered, later)
	if !o.DeliveredAt.Equal(now) {
		t.Errorf("re-applying delivered moved DeliveredAt to %v", o.DeliveredAt)
	}
}

func TestApplyStatusCancelled(t *testing.T) {
	o := &Order{Status: OrderStatusProcessing, IsPaid: true}
	paidAt := time.Now()
	o.PaidAt = &paidAt

	o.ApplyStatus(OrderStatusCancelled, time.Now())
	if o.Status != OrderStatusCancelled {
		t.Errorf("Status = %s", o.Status)
	}
	if o.IsDelivered {
		t.Error("cancelled should clear IsDelivered")
	}
	// Paid flag and timestamp are untouched by cancellation.
	if !o.IsPaid || o.PaidAt == nil {
		t.Error("cancelled should leave paid fields alone")
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusPending, OrderStatusShipped, false},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusShipped, OrderStatusProcessing, false},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusCancelled, true},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusProcessing, false},
		{OrderStatusProcessing, OrderStatusProcessing, true},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestParseOrderStatus(t *testing.T) {
	if s, err := ParseOrderStatus("Shipped"); err != nil || s != OrderStatusShipped {
		t.Errorf("ParseOrderStatus(Shipped) = %v, %v", s, err)
	}
	if _, err := ParseOrderStatus("returned"); err == nil {
		t.Error("ParseOrderStatus(returned): want error")
	}
	if _, err := ParseOrderStatus(""); err == nil {
		t.Error("ParseOrderStatus(empty): want error")
	}
}
