package core

import (
	"context"
	"fmt"
	"time"
)

type PolicyStatus string

const (
	PolicyStatusActive    PolicyStatus = "active"
	PolicyStatusLapsed    PolicyStatus = "lapsed"
	PolicyStatusCancelled PolicyStatus = "cancelled"
	PolicyStatusExpired   PolicyStatus = "expired"
)

// Policy is an issued motor policy. Issuance and ClaimableAmount upkeep happen
// in the back office; the portal only reads policies.
type Policy struct {
	ID          string             `json:"id"`
	Number      string             `json:"number"` // e.g. POL-2025-000001
	HolderName  string             `json:"holder_name"`
	HolderEmail string             `json:"holder_email"`
	VehicleType string             `json:"vehicle_type"`
	Vehicle     Vehicle            `json:"vehicle"`
	PlateNumber string             `json:"plate_number,omitempty"`
	Premium     PremiumComputation `json:"premium"`
	// ClaimableAmount is a snapshot; nothing in the portal decrements it.
	ClaimableAmount float64      `json:"claimable_amount"`
	Status          PolicyStatus `json:"status"`
	EffectiveDate   time.Time    `json:"effective_date"`
	ExpiryDate      time.Time    `json:"expiry_date"`
	IssuedAt        time.Time    `json:"issued_at"`
}

type PolicyFilter struct {
	HolderEmail string
	Status      PolicyStatus
}

type PolicyRepo interface {
	Create(ctx context.Context, policy Policy) error
	Get(ctx context.Context, id string) (Policy, error)
	GetByNumber(ctx context.Context, number string) (Policy, error)
	List(ctx context.Context, filter PolicyFilter, limit, offset int) ([]Policy, int64, error)
}

var (
	ErrPolicyNotFound = fmt.Errorf("%w: policy not found", ErrNotFound)
	ErrPolicyExists   = fmt.Errorf("%w: policy already exists", ErrConflict)
)
