package dynamo

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/MrKriegler/go-motor-portal/internal/core"
)

func TestFormatSortable_OrdersLexically(t *testing.T) {
	manila := time.FixedZone("PHT", 8*3600)
	earlier := time.Date(2025, 1, 1, 7, 59, 59, 500_000_000, manila) // 2024-12-31T23:59:59.5Z
	later := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	a, b := formatSortable(earlier), formatSortable(later)
	if !(a < b) {
		t.Fatalf("expected %q < %q", a, b)
	}
	if len(a) != len(b) {
		t.Fatalf("expected fixed width, got %d and %d", len(a), len(b))
	}
}

func TestQuotationItem_RoundTrip(t *testing.T) {
	created := time.Date(2025, 3, 4, 5, 6, 7, 8, time.UTC)
	q := core.Quotation{
		ID:          "q-1",
		Number:      "Q-2025-007",
		VehicleType: "sedan",
		Vehicle:     core.Vehicle{OriginalCost: 500000, ModelYear: 2022},
		Premium:     core.PremiumComputation{VehicleValue: 364500, TotalPremium: 14551.98, WithAON: true},
		CreatedAt:   created,
	}

	item := quotationItemFromCore(q)
	if item.CreatedYear != 2025 {
		t.Fatalf("expected created_year 2025, got %d", item.CreatedYear)
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back QuotationItem
	if err := attributevalue.UnmarshalMap(av, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := back.ToCore()
	if got.Number != q.Number || got.Premium != q.Premium || got.Vehicle != q.Vehicle {
		t.Fatalf("unexpected quotation %+v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("expected %v, got %v", created, got.CreatedAt)
	}
}

func TestPenaltyItem_PaidFlag(t *testing.T) {
	unpaid := penaltyItemFromCore(core.Penalty{ID: "p-1", InstallmentID: "i-1", PenaltyAmount: 150})
	av, err := attributevalue.MarshalMap(unpaid)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, ok := av["is_paid"]; ok {
		t.Fatal("expected is_paid to be absent for an unpaid penalty")
	}

	var back PenaltyItem
	if err := attributevalue.UnmarshalMap(av, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.ToCore().Paid != core.PenaltyUnpaid {
		t.Fatal("expected unpaid penalty")
	}

	// Items written by other tools may carry an explicit false.
	av["is_paid"] = &types.AttributeValueMemberBOOL{Value: false}
	if err := attributevalue.UnmarshalMap(av, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.ToCore().Paid != core.PenaltyUnpaid {
		t.Fatal("expected explicit false to be unpaid")
	}

	paid := penaltyItemFromCore(core.Penalty{ID: "p-2", Paid: core.PenaltyPaid})
	if paid.IsPaid == nil || !*paid.IsPaid || paid.ToCore().Paid != core.PenaltyPaid {
		t.Fatal("expected paid penalty to round-trip")
	}
}

func TestInstallmentItem_RoundTrip(t *testing.T) {
	due := time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)
	paidAt := time.Date(2025, 2, 10, 9, 30, 0, 0, time.UTC)
	amount := 3637.99

	item := installmentItemFromCore(core.Installment{
		ID: "i-1", PolicyID: "p-1", Seq: 1, AmountToBePaid: amount,
		DueDate: due, IsPaid: true, PaidAmount: &amount, PaidAt: &paidAt,
	})
	got := item.ToCore()
	if !got.DueDate.Equal(due) || got.PaidAt == nil || !got.PaidAt.Equal(paidAt) {
		t.Fatalf("unexpected dates %+v", got)
	}

	open := installmentItemFromCore(core.Installment{ID: "i-2", DueDate: due}).ToCore()
	if open.PaidAt != nil || open.PaidAmount != nil {
		t.Fatalf("expected unpaid installment without payment fields, got %+v", open)
	}
}

func TestClaimItem_SortKey(t *testing.T) {
	first := claimItemFromCore(core.Claim{ID: "b", PolicyID: "p-1", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)})
	second := claimItemFromCore(core.Claim{ID: "a", PolicyID: "p-1", CreatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)})
	if !(first.SK < second.SK) {
		t.Fatalf("expected older claim to sort first: %q vs %q", first.SK, second.SK)
	}
	if got := second.ToCore().Status; got != "" {
		t.Fatalf("expected empty status, got %q", got)
	}
}

func TestTableDefinitions(t *testing.T) {
	names := map[string]bool{}
	for _, in := range tableDefinitions() {
		names[*in.TableName] = true
		for _, g := range in.GlobalSecondaryIndexes {
			for _, k := range g.KeySchema {
				found := false
				for _, a := range in.AttributeDefinitions {
					if *a.AttributeName == *k.AttributeName {
						found = true
					}
				}
				if !found {
					t.Fatalf("%s: index %s key %s has no attribute definition", *in.TableName, *g.IndexName, *k.AttributeName)
				}
			}
		}
	}
	for _, want := range []string{TableRateTables, TableQuotations, TablePolicies, TableInstallments, TablePenalties, TableClaims, TableCounters} {
		if !names[want] {
			t.Fatalf("expected table %s", want)
		}
	}
}
