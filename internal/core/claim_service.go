package core

import (
	"context"
	"fmt"
	"time"

	"github.com/MrKriegler/go-motor-portal/internal/platform/ids"
)

type ClaimService interface {
	// Eligibility evaluates the filing rules against freshly read claims.
	Eligibility(ctx context.Context, policyNumber string) (ClaimEligibility, error)

	// EligibilityForPolicies annotates a page of policies.
	EligibilityForPolicies(ctx context.Context, filter PolicyFilter, limit, offset int) ([]PolicyEligibility, int64, error)

	// File re-checks eligibility and creates a pending claim.
	File(ctx context.Context, policyNumber string, in ClaimInput) (Claim, error)

	List(ctx context.Context, policyNumber string) ([]Claim, error)
}

type claimService struct {
	policies PolicyRepo
	claims   ClaimRepo
	clock    func() time.Time
}

func NewClaimService(policies PolicyRepo, claims ClaimRepo) ClaimService {
	return &claimService{
		policies: policies,
		claims:   claims,
		clock:    time.Now,
	}
}

func (s *claimService) load(ctx context.Context, policyNumber string) (Policy, []Claim, error) {
	if policyNumber == "" {
		return Policy{}, nil, fmt.Errorf("%w: missing policy number", ErrValidation)
	}
	policy, err := s.policies.GetByNumber(ctx, policyNumber)
	if err != nil {
		return Policy{}, nil, err
	}
	claims, err := s.claims.ListByPolicy(ctx, policy.ID)
	if err != nil {
		return Policy{}, nil, err
	}
	return policy, claims, nil
}

func (s *claimService) Eligibility(ctx context.Context, policyNumber string) (ClaimEligibility, error) {
	policy, claims, err := s.load(ctx, policyNumber)
	if err != nil {
		return ClaimEligibility{}, err
	}
	return CanFileNewClaim(policy.ClaimableAmount, claims), nil
}

func (s *claimService) EligibilityForPolicies(ctx context.Context, filter PolicyFilter, limit, offset int) ([]PolicyEligibility, int64, error) {
	limit, offset = ClampPage(limit, offset)
	policies, total, err := s.policies.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	batch := make([]PolicyClaims, 0, len(policies))
	for _, p := range policies {
		claims, err := s.claims.ListByPolicy(ctx, p.ID)
		if err != nil {
			return nil, 0, fmt.Errorf("claims for policy %s: %w", p.Number, err)
		}
		batch = append(batch, PolicyClaims{Policy: p, Claims: claims})
	}
	return EvaluatePolicies(batch), total, nil
}

func (s *claimService) File(ctx context.Context, policyNumber string, in ClaimInput) (Claim, error) {
	// 1) validate inputs
	if err := validateStruct(in); err != nil {
		return Claim{}, err
	}
	now := s.clock()
	if in.IncidentDate.After(now) {
		return Claim{}, fmt.Errorf("%w: incident_date cannot be in the future", ErrValidation)
	}

	// 2) re-read policy and claims; a cached answer may be stale
	policy, claims, err := s.load(ctx, policyNumber)
	if err != nil {
		return Claim{}, err
	}

	// 3) gate
	if elig := CanFileNewClaim(policy.ClaimableAmount, claims); !elig.CanCreate {
		return Claim{}, &IneligibleError{Reason: elig.Reason}
	}

	// 4) persist as pending; review happens in the back office
	c := Claim{
		ID:              ids.New(),
		PolicyID:        policy.ID,
		Status:          ClaimStatusPending,
		IncidentDate:    in.IncidentDate,
		Description:     in.Description,
		EstimatedAmount: round2(in.EstimatedAmount),
		CreatedAt:       now,
	}
	if err := s.claims.Create(ctx, c); err != nil {
		return Claim{}, err
	}
	return c, nil
}

func (s *claimService) List(ctx context.Context, policyNumber string) ([]Claim, error) {
	_, claims, err := s.load(ctx, policyNumber)
	return claims, err
}
