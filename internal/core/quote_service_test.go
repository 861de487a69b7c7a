package core_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MrKriegler/go-motor-portal/internal/core"
	"github.com/MrKriegler/go-motor-portal/internal/core/mocks"

	"go.uber.org/mock/gomock"
)

func sedan() core.RateTable {
	return core.RateTable{
		VehicleType:             "sedan",
		VehicleRatePercent:      2,
		BodilyInjury:            2000,
		PropertyDamage:          1500,
		PersonalAccident:        500,
		VATPercent:              12,
		DocumentaryStampPercent: 0.5,
		LocalGovTaxPercent:      0.25,
		ActOfNaturePercent:      0.5,
	}
}

func TestQuoteService_Price(t *testing.T) {
	year := time.Now().Year()
	input := core.QuoteInput{
		VehicleType: "sedan",
		Vehicle:     core.Vehicle{OriginalCost: 500000, ModelYear: year - 3},
		WithAON:     true,
	}

	t.Run("invalid input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := core.NewQuoteService(mocks.NewMockRateTableRepo(ctrl), mocks.NewMockQuoteRepo(ctrl), mocks.NewMockQuotationNumberAllocator(ctrl))

		bad := input
		bad.VehicleType = ""
		bad.Vehicle.OriginalCost = -1
		_, err := svc.Price(context.Background(), bad)
		if !errors.Is(err, core.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("model year far in the future", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := core.NewQuoteService(mocks.NewMockRateTableRepo(ctrl), mocks.NewMockQuoteRepo(ctrl), mocks.NewMockQuotationNumberAllocator(ctrl))

		bad := input
		bad.Vehicle.ModelYear = year + 5
		if _, err := svc.Price(context.Background(), bad); !errors.Is(err, core.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("missing rate table cannot quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rates := mocks.NewMockRateTableRepo(ctrl)
		svc := core.NewQuoteService(rates, mocks.NewMockQuoteRepo(ctrl), mocks.NewMockQuotationNumberAllocator(ctrl))

		rates.EXPECT().GetByVehicleType(gomock.Any(), "sedan").Return(core.RateTable{}, core.ErrRateTableNotFound)

		_, err := svc.Price(context.Background(), input)
		if !errors.Is(err, core.ErrCannotQuote) {
			t.Fatalf("expected ErrCannotQuote, got %v", err)
		}
	})

	t.Run("rate store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rates := mocks.NewMockRateTableRepo(ctrl)
		svc := core.NewQuoteService(rates, mocks.NewMockQuoteRepo(ctrl), mocks.NewMockQuotationNumberAllocator(ctrl))

		rates.EXPECT().GetByVehicleType(gomock.Any(), "sedan").Return(core.RateTable{}, errors.New("db"))

		_, err := svc.Price(context.Background(), input)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("priced and persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rates := mocks.NewMockRateTableRepo(ctrl)
		quotes := mocks.NewMockQuoteRepo(ctrl)
		numbers := mocks.NewMockQuotationNumberAllocator(ctrl)
		svc := core.NewQuoteService(rates, quotes, numbers)

		rates.EXPECT().GetByVehicleType(gomock.Any(), "sedan").Return(sedan(), nil)
		numbers.EXPECT().Next(gomock.Any(), gomock.Any()).Return("Q-2025-007")
		quotes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(core.Quotation{})).DoAndReturn(
			func(_ context.Context, q core.Quotation) error {
				if q.ID == "" || q.Number != "Q-2025-007" || q.CreatedAt.IsZero() {
					t.Fatalf("unexpected quotation: %+v", q)
				}
				return nil
			},
		)

		q, err := svc.Price(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := core.PremiumComputation{
			VehicleValue:      364500,
			VehicleRateAmount: 7290,
			BasicPremium:      11290,
			PremiumAfterTax:   12729.48,
			WithAON:           true,
			AONCost:           1822.5,
			TotalPremium:      14551.98,
		}
		if q.Premium != want {
			t.Fatalf("unexpected premium:\n got %+v\nwant %+v", q.Premium, want)
		}
	})

	t.Run("persist failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rates := mocks.NewMockRateTableRepo(ctrl)
		quotes := mocks.NewMockQuoteRepo(ctrl)
		numbers := mocks.NewMockQuotationNumberAllocator(ctrl)
		svc := core.NewQuoteService(rates, quotes, numbers)

		rates.EXPECT().GetByVehicleType(gomock.Any(), "sedan").Return(sedan(), nil)
		numbers.EXPECT().Next(gomock.Any(), gomock.Any()).Return("Q-2025-001")
		quotes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(core.ErrConflict)

		if _, err := svc.Price(context.Background(), input); !errors.Is(err, core.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}

func TestQuoteService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	quotes := mocks.NewMockQuoteRepo(ctrl)
	svc := core.NewQuoteService(mocks.NewMockRateTableRepo(ctrl), quotes, mocks.NewMockQuotationNumberAllocator(ctrl))

	if _, err := svc.Get(context.Background(), ""); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	quotes.EXPECT().Get(gomock.Any(), "q-1").Return(core.Quotation{}, core.ErrQuoteNotFound)
	if _, err := svc.Get(context.Background(), "q-1"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
