package core

import (
	"context"
	"fmt"
	"time"
)

type ClaimStatus string

const (
	ClaimStatusPending     ClaimStatus = "pending"
	ClaimStatusUnderReview ClaimStatus = "under_review"
	ClaimStatusApproved    ClaimStatus = "approved"
	ClaimStatusRejected    ClaimStatus = "rejected"
	ClaimStatusCompleted   ClaimStatus = "completed"
)

// MaxClaimsPerPolicy caps claims over the life of a policy, whatever their outcome.
const MaxClaimsPerPolicy = 2

var claimTransitions = map[ClaimStatus][]ClaimStatus{
	ClaimStatusPending:     {ClaimStatusUnderReview},
	ClaimStatusUnderReview: {ClaimStatusApproved, ClaimStatusRejected},
	ClaimStatusApproved:    {ClaimStatusCompleted},
}

// CanTransition describes the back-office workflow. The portal itself never moves a claim.
func (s ClaimStatus) CanTransition(to ClaimStatus) bool {
	for _, next := range claimTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s ClaimStatus) IsTerminal() bool {
	return s == ClaimStatusRejected || s == ClaimStatusCompleted
}

// IsOpen reports whether the claim still awaits a decision.
func (s ClaimStatus) IsOpen() bool {
	return s == ClaimStatusPending || s == ClaimStatusUnderReview
}

func (s ClaimStatus) Label() string {
	switch s {
	case ClaimStatusPending:
		return "Pending"
	case ClaimStatusUnderReview:
		return "Under Review"
	case ClaimStatusApproved:
		return "Approved"
	case ClaimStatusRejected:
		return "Rejected"
	case ClaimStatusCompleted:
		return "Completed"
	}
	return string(s)
}

type Claim struct {
	ID              string      `json:"id"`
	PolicyID        string      `json:"policy_id"`
	Status          ClaimStatus `json:"status"`
	IncidentDate    time.Time   `json:"incident_date"`
	Description     string      `json:"description"`
	EstimatedAmount float64     `json:"estimated_amount"`
	ApprovedAmount  *float64    `json:"approved_amount,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

type ClaimInput struct {
	IncidentDate    time.Time `json:"incident_date" validate:"required"`
	Description     string    `json:"description" validate:"required,max=2000"`
	EstimatedAmount float64   `json:"estimated_amount" validate:"gte=0"`
}

type ClaimRepo interface {
	Create(ctx context.Context, c Claim) error
	// ListByPolicy returns claims oldest first.
	ListByPolicy(ctx context.Context, policyID string) ([]Claim, error)
}

type ClaimEligibility struct {
	CanCreate       bool    `json:"can_create"`
	Reason          string  `json:"reason"`
	ClaimableAmount float64 `json:"claimable_amount"`
	ClaimsCount     int     `json:"claims_count"`
}

const (
	ReasonNoClaimableAmount = "no remaining claimable amount."
	ReasonMaxClaimsReached  = "maximum of two claims per policy reached."
)

// CanFileNewClaim applies the filing rules in order; the first failing rule
// supplies the reason. claimableAmount is used as given, never adjusted for
// approved claims.
func CanFileNewClaim(claimableAmount float64, claims []Claim) ClaimEligibility {
	res := ClaimEligibility{
		ClaimableAmount: claimableAmount,
		ClaimsCount:     len(claims),
	}
	switch {
	case claimableAmount <= 0:
		res.Reason = ReasonNoClaimableAmount
	case len(claims) >= MaxClaimsPerPolicy:
		res.Reason = ReasonMaxClaimsReached
	default:
		for _, c := range claims {
			if c.Status.IsOpen() {
				res.Reason = fmt.Sprintf("an existing claim is %s; wait for it to be resolved before filing a new claim.", c.Status.Label())
				return res
			}
		}
		res.CanCreate = true
	}
	return res
}

type PolicyClaims struct {
	Policy Policy
	Claims []Claim
}

type PolicyEligibility struct {
	PolicyID     string `json:"policy_id"`
	PolicyNumber string `json:"policy_number"`
	ClaimEligibility
}

// EvaluatePolicies annotates each policy independently.
func EvaluatePolicies(in []PolicyClaims) []PolicyEligibility {
	out := make([]PolicyEligibility, len(in))
	for i, pc := range in {
		out[i] = PolicyEligibility{
			PolicyID:         pc.Policy.ID,
			PolicyNumber:     pc.Policy.Number,
			ClaimEligibility: CanFileNewClaim(pc.Policy.ClaimableAmount, pc.Claims),
		}
	}
	return out
}

// IneligibleError carries the business reason a claim was refused.
type IneligibleError struct {
	Reason string
}

func (e *IneligibleError) Error() string { return "claim not allowed: " + e.Reason }

func (e *IneligibleError) Unwrap() error { return ErrConflict }
