package core

import (
	"context"
	"fmt"
	"time"
)

type QuoteInput struct {
	VehicleType string  `json:"vehicle_type" validate:"required"`
	Vehicle     Vehicle `json:"vehicle"`
	WithAON     bool    `json:"with_aon"`
}

// Quotation is a priced quote. It is created once and never updated.
type Quotation struct {
	ID          string             `json:"id"`
	Number      string             `json:"quotation_number"` // e.g. Q-2025-001
	VehicleType string             `json:"vehicle_type"`
	Vehicle     Vehicle            `json:"vehicle"`
	Premium     PremiumComputation `json:"premium"`
	CreatedAt   time.Time          `json:"created_at"`
}

//go:generate mockgen -destination=mocks/mock_repos.go -package=mocks github.com/MrKriegler/go-motor-portal/internal/core QuoteRepo,RateTableRepo,QuotationNumberAllocator

type QuoteRepo interface {
	Create(ctx context.Context, q Quotation) error
	Get(ctx context.Context, id string) (Quotation, error)
	// CountCreatedBetween counts quotations with start <= created_at <= end.
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
}

//go:generate mockgen -destination=mocks/mock_services.go -package=mocks github.com/MrKriegler/go-motor-portal/internal/core QuoteService,RateService,PolicyService,PaymentService,ClaimService

type QuoteService interface {
	Price(ctx context.Context, in QuoteInput) (Quotation, error)
	Get(ctx context.Context, id string) (Quotation, error)
}

func (in QuoteInput) Validate(currentYear int) error {
	if err := validateStruct(in); err != nil {
		return err
	}
	// Model years far in the future are typos, not new vehicles.
	if in.Vehicle.ModelYear > currentYear+1 {
		return fmt.Errorf("%w: model_year must be <= %d", ErrValidation, currentYear+1)
	}
	return nil
}

var (
	ErrQuoteNotFound = fmt.Errorf("%w: quote not found", ErrNotFound)
)
