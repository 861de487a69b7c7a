package core

import (
	"context"
	"fmt"
)

type PolicyService interface {
	// Get retrieves a policy by ID
	Get(ctx context.Context, id string) (Policy, error)

	// GetByNumber retrieves a policy by policy number
	GetByNumber(ctx context.Context, number string) (Policy, error)

	// List returns policies with optional filtering and pagination
	List(ctx context.Context, filter PolicyFilter, limit, offset int) ([]Policy, int64, error)
}

type policyService struct {
	policies PolicyRepo
}

func NewPolicyService(policies PolicyRepo) PolicyService {
	return &policyService{policies: policies}
}

func (s *policyService) Get(ctx context.Context, id string) (Policy, error) {
	if id == "" {
		return Policy{}, fmt.Errorf("%w: missing policy ID", ErrValidation)
	}
	return s.policies.Get(ctx, id)
}

func (s *policyService) GetByNumber(ctx context.Context, number string) (Policy, error) {
	if number == "" {
		return Policy{}, fmt.Errorf("%w: missing policy number", ErrValidation)
	}
	return s.policies.GetByNumber(ctx, number)
}

func (s *policyService) List(ctx context.Context, filter PolicyFilter, limit, offset int) ([]Policy, int64, error) {
	limit, offset = ClampPage(limit, offset)
	return s.policies.List(ctx, filter, limit, offset)
}

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// ClampPage bounds list paging; callers report the returned limit.
func ClampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
