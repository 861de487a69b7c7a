package core

import (
	"context"
	"time"
)

type fakePolicies struct {
	byNumber map[string]Policy
	err      error
}

func (f *fakePolicies) Create(_ context.Context, p Policy) error {
	f.byNumber[p.Number] = p
	return nil
}

func (f *fakePolicies) Get(_ context.Context, id string) (Policy, error) {
	for _, p := range f.byNumber {
		if p.ID == id {
			return p, nil
		}
	}
	return Policy{}, ErrPolicyNotFound
}

func (f *fakePolicies) GetByNumber(_ context.Context, number string) (Policy, error) {
	if f.err != nil {
		return Policy{}, f.err
	}
	p, ok := f.byNumber[number]
	if !ok {
		return Policy{}, ErrPolicyNotFound
	}
	return p, nil
}

func (f *fakePolicies) List(_ context.Context, _ PolicyFilter, limit, offset int) ([]Policy, int64, error) {
	var out []Policy
	for _, n := range []string{"POL-1", "POL-2", "POL-3"} {
		if p, ok := f.byNumber[n]; ok {
			out = append(out, p)
		}
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	return out[offset:min(offset+limit, len(out))], total, nil
}

type fakeClaims struct {
	byPolicy map[string][]Claim
	created  []Claim
}

func (f *fakeClaims) Create(_ context.Context, c Claim) error {
	f.created = append(f.created, c)
	f.byPolicy[c.PolicyID] = append(f.byPolicy[c.PolicyID], c)
	return nil
}

func (f *fakeClaims) ListByPolicy(_ context.Context, policyID string) ([]Claim, error) {
	return f.byPolicy[policyID], nil
}

type fakeInstallments struct {
	byPolicy  map[string][]Installment
	penalties []Penalty
	reads     int
}

func (f *fakeInstallments) ListByPolicy(_ context.Context, policyID string) ([]Installment, error) {
	f.reads++
	return f.byPolicy[policyID], nil
}

func (f *fakeInstallments) ListPenalties(_ context.Context, ids []string) ([]Penalty, error) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []Penalty
	for _, p := range f.penalties {
		if want[p.InstallmentID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
