package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MrKriegler/go-motor-portal/internal/platform/ids"
)

type quoteService struct {
	rates   RateTableRepo
	quotes  QuoteRepo
	numbers QuotationNumberAllocator
	clock   func() time.Time
}

func NewQuoteService(rates RateTableRepo, quotes QuoteRepo, numbers QuotationNumberAllocator) QuoteService {
	return &quoteService{
		rates:   rates,
		quotes:  quotes,
		numbers: numbers,
		clock:   time.Now,
	}
}

func (s *quoteService) Price(ctx context.Context, in QuoteInput) (Quotation, error) {
	now := s.clock()

	// 1) validate inputs
	if err := in.Validate(now.Year()); err != nil {
		return Quotation{}, err
	}

	// 2) load rate table; no defaults are substituted for a missing table
	rt, err := s.rates.GetByVehicleType(ctx, in.VehicleType)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Quotation{}, fmt.Errorf("%w: %q", ErrCannotQuote, in.VehicleType)
		}
		return Quotation{}, err
	}

	// 3) price
	premium, err := ComputePremium(in.Vehicle, rt, in.WithAON, now.Year())
	if err != nil {
		return Quotation{}, err
	}

	// 4) number (best effort, never blocks the quote)
	q := Quotation{
		ID:          ids.New(),
		Number:      s.numbers.Next(ctx, now),
		VehicleType: rt.VehicleType,
		Vehicle:     in.Vehicle,
		Premium:     premium,
		CreatedAt:   now,
	}

	// 5) persist
	if err := s.quotes.Create(ctx, q); err != nil {
		return Quotation{}, err
	}
	return q, nil
}

func (s *quoteService) Get(ctx context.Context, id string) (Quotation, error) {
	if id == "" {
		return Quotation{}, fmt.Errorf("%w: missing quote ID", ErrValidation)
	}
	return s.quotes.Get(ctx, id)
}

type RateService interface {
	List(ctx context.Context) ([]RateTable, error)
	Get(ctx context.Context, vehicleType string) (RateTable, error)
}

type rateService struct {
	rates RateTableRepo
}

func NewRateService(rates RateTableRepo) RateService {
	return &rateService{rates: rates}
}

func (s *rateService) List(ctx context.Context) ([]RateTable, error) {
	return s.rates.List(ctx)
}

func (s *rateService) Get(ctx context.Context, vehicleType string) (RateTable, error) {
	if vehicleType == "" {
		return RateTable{}, fmt.Errorf("%w: missing vehicle type", ErrValidation)
	}
	return s.rates.GetByVehicleType(ctx, vehicleType)
}
