package core

import (
	"context"
	"fmt"
	"time"
)

// PaymentService answers schedule and payability questions. It never settles
// anything; every call re-reads the ledger because other actors mutate it.
type PaymentService interface {
	Schedule(ctx context.Context, policyNumber string) (Schedule, error)
	CheckPayable(ctx context.Context, policyNumber, installmentID string) (Payability, error)
}

type paymentService struct {
	policies     PolicyRepo
	installments InstallmentRepo
	clock        func() time.Time
	loc          *time.Location
}

// NewPaymentService reckons due dates in loc, the business time zone. A nil
// loc means UTC.
func NewPaymentService(policies PolicyRepo, installments InstallmentRepo, loc *time.Location) PaymentService {
	if loc == nil {
		loc = time.UTC
	}
	return &paymentService{
		policies:     policies,
		installments: installments,
		clock:        time.Now,
		loc:          loc,
	}
}

func (s *paymentService) Schedule(ctx context.Context, policyNumber string) (Schedule, error) {
	if policyNumber == "" {
		return Schedule{}, fmt.Errorf("%w: missing policy number", ErrValidation)
	}
	policy, err := s.policies.GetByNumber(ctx, policyNumber)
	if err != nil {
		return Schedule{}, err
	}
	return s.scheduleFor(ctx, policy.ID)
}

func (s *paymentService) CheckPayable(ctx context.Context, policyNumber, installmentID string) (Payability, error) {
	if installmentID == "" {
		return Payability{}, fmt.Errorf("%w: missing installment ID", ErrValidation)
	}
	sched, err := s.Schedule(ctx, policyNumber)
	if err != nil {
		return Payability{}, err
	}
	return sched.CheckPayability(installmentID)
}

func (s *paymentService) scheduleFor(ctx context.Context, policyID string) (Schedule, error) {
	insts, err := s.installments.ListByPolicy(ctx, policyID)
	if err != nil {
		return Schedule{}, err
	}
	ids := make([]string, len(insts))
	for i, inst := range insts {
		ids[i] = inst.ID
	}
	var penalties []Penalty
	if len(ids) > 0 {
		penalties, err = s.installments.ListPenalties(ctx, ids)
		if err != nil {
			return Schedule{}, err
		}
	}
	return BuildSchedule(policyID, insts, penalties, s.clock().In(s.loc)), nil
}
