package core

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPaymentService(t *testing.T) {
	policies := &fakePolicies{byNumber: map[string]Policy{
		"POL-1": {ID: "p1", Number: "POL-1"},
	}}
	store := &fakeInstallments{
		byPolicy: map[string][]Installment{
			"p1": {
				{ID: "i2", PolicyID: "p1", DueDate: day("2025-02-01"), AmountToBePaid: 2500},
				{ID: "i1", PolicyID: "p1", DueDate: day("2025-01-01"), AmountToBePaid: 2500},
			},
		},
		penalties: []Penalty{{InstallmentID: "i1", PenaltyAmount: 125}},
	}
	svc := NewPaymentService(policies, store, nil).(*paymentService)
	svc.clock = fixedClock(day("2025-01-20"))
	ctx := context.Background()

	s, err := svc.Schedule(ctx, "POL-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.NextPayableID != "i1" || s.TotalUnpaidPenalty != 125 || s.OverdueCount != 1 {
		t.Fatalf("unexpected schedule: %+v", s)
	}

	p, err := svc.CheckPayable(ctx, "POL-1", "i2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Payable || p.BlockedBy != "i1" {
		t.Fatalf("expected i2 blocked, got %+v", p)
	}

	// Another actor settles i1 between reads.
	store.byPolicy["p1"][1].IsPaid = true
	p, err = svc.CheckPayable(ctx, "POL-1", "i2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Payable || p.AmountDue != 2500 {
		t.Fatalf("expected i2 payable after refresh, got %+v", p)
	}
	if store.reads != 3 {
		t.Fatalf("expected a fresh read per call, got %d reads", store.reads)
	}

	if _, err := svc.Schedule(ctx, "POL-9"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.CheckPayable(ctx, "POL-1", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestPaymentServiceBusinessTimeZone(t *testing.T) {
	manila := time.FixedZone("PHT", 8*60*60)
	policies := &fakePolicies{byNumber: map[string]Policy{
		"POL-1": {ID: "p1", Number: "POL-1"},
	}}
	store := &fakeInstallments{byPolicy: map[string][]Installment{
		"p1": {{ID: "i1", PolicyID: "p1", DueDate: time.Date(2025, 2, 28, 16, 0, 0, 0, time.UTC), AmountToBePaid: 2500}},
	}}
	svc := NewPaymentService(policies, store, manila).(*paymentService)
	// 01:00 UTC is 09:00 in Manila on the due date.
	svc.clock = fixedClock(time.Date(2025, 3, 1, 1, 0, 0, 0, time.UTC))

	s, err := svc.Schedule(context.Background(), "POL-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.OverdueCount != 0 || s.Rows[0].DaysOverdue != 0 {
		t.Fatalf("expected nothing overdue on the due date, got %+v", s.Rows[0])
	}
	if s.AsOf.Location() != manila {
		t.Fatalf("expected schedule in business time zone, got %v", s.AsOf.Location())
	}
}
