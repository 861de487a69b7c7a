package core

import (
	"context"
	"fmt"
	"slices"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// PaidState replaces the nullable is_paid flag on penalty rows.
// The zero value is PenaltyUnpaid so an unset flag can never read as paid.
type PaidState uint8

const (
	PenaltyUnpaid PaidState = iota
	PenaltyPaid
)

// PaidStateOf normalises a stored nullable flag; nil means unpaid.
func PaidStateOf(isPaid *bool) PaidState {
	if isPaid != nil && *isPaid {
		return PenaltyPaid
	}
	return PenaltyUnpaid
}

func (s PaidState) String() string {
	if s == PenaltyPaid {
		return "paid"
	}
	return "unpaid"
}

func (s PaidState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Installment is one scheduled payment of a policy. Rows are written by the
// scheduling and payment systems, never by the portal.
type Installment struct {
	ID             string     `json:"id"`
	PolicyID       string     `json:"policy_id"`
	Seq            int        `json:"seq"`
	AmountToBePaid float64    `json:"amount_to_be_paid"`
	DueDate        time.Time  `json:"due_date"`
	IsPaid         bool       `json:"is_paid"`
	PaidAmount     *float64   `json:"paid_amount,omitempty"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
}

// Penalty is a late-payment charge written by the penalty-detection job.
type Penalty struct {
	ID            string    `json:"id"`
	InstallmentID string    `json:"installment_id"`
	PenaltyAmount float64   `json:"penalty_amount"`
	Paid          PaidState `json:"paid"`
	CreatedAt     time.Time `json:"created_at"`
}

type InstallmentRepo interface {
	// ListByPolicy returns the policy's installments in insertion order.
	ListByPolicy(ctx context.Context, policyID string) ([]Installment, error)
	ListPenalties(ctx context.Context, installmentIDs []string) ([]Penalty, error)
}

// UnpaidPenaltyTotal sums the penalties of one installment that are not paid.
func UnpaidPenaltyTotal(installmentID string, penalties []Penalty) float64 {
	return roundDec(unpaidPenaltySum(installmentID, penalties))
}

func unpaidPenaltySum(installmentID string, penalties []Penalty) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range penalties {
		if p.InstallmentID == installmentID && p.Paid != PenaltyPaid {
			sum = sum.Add(dec(p.PenaltyAmount))
		}
	}
	return sum
}

// dueDay reads the due date in asOf's location so both sides of a comparison
// share one calendar whatever zone the store decoded the timestamp in.
func dueDay(inst Installment, asOf time.Time) civil.Date {
	return civil.DateOf(inst.DueDate.In(asOf.Location()))
}

// IsOverdue compares calendar dates only: a row due today is not overdue.
func IsOverdue(inst Installment, asOf time.Time) bool {
	return !inst.IsPaid && dueDay(inst, asOf).Before(civil.DateOf(asOf))
}

// DaysOverdue counts whole calendar days past the due date, never negative.
func DaysOverdue(inst Installment, asOf time.Time) int {
	return max(civil.DateOf(asOf).DaysSince(dueDay(inst, asOf)), 0)
}

// SortInstallments returns a copy ordered by due date; equal dates keep their input order.
func SortInstallments(insts []Installment) []Installment {
	out := slices.Clone(insts)
	slices.SortStableFunc(out, func(a, b Installment) int {
		return a.DueDate.Compare(b.DueDate)
	})
	return out
}

// IsPayable reports whether insts[index] may be settled now. insts must be in
// due-date order. Payment is strictly sequential: every earlier installment
// has to be paid, whatever the due dates.
func IsPayable(insts []Installment, index int) bool {
	if index < 0 || index >= len(insts) {
		return false
	}
	for _, prev := range insts[:index] {
		if !prev.IsPaid {
			return false
		}
	}
	return true
}

// TotalPenaltyAcrossUnpaid sums unpaid penalties over installments not yet paid.
func TotalPenaltyAcrossUnpaid(insts []Installment, penalties []Penalty) float64 {
	sum := decimal.Zero
	for _, inst := range insts {
		if !inst.IsPaid {
			sum = sum.Add(dec(UnpaidPenaltyTotal(inst.ID, penalties)))
		}
	}
	return roundDec(sum)
}

type ScheduleRow struct {
	Installment
	Payable       bool    `json:"payable"`
	Overdue       bool    `json:"overdue"`
	DaysOverdue   int     `json:"days_overdue"`
	UnpaidPenalty float64 `json:"unpaid_penalty"`
	// AmountDue is installment plus unpaid penalties; zero once paid.
	AmountDue float64 `json:"amount_due"`
}

// Schedule is a point-in-time view of a policy's payment plan. It goes stale
// as soon as another actor settles a row; rebuild it before any decision.
type Schedule struct {
	PolicyID           string        `json:"policy_id"`
	AsOf               time.Time     `json:"as_of"`
	Rows               []ScheduleRow `json:"installments"`
	PaidCount          int           `json:"paid_count"`
	UnpaidCount        int           `json:"unpaid_count"`
	OverdueCount       int           `json:"overdue_count"`
	TotalUnpaidPenalty float64       `json:"total_unpaid_penalty"`
	NextPayableID      string        `json:"next_payable_id,omitempty"`
}

func BuildSchedule(policyID string, insts []Installment, penalties []Penalty, asOf time.Time) Schedule {
	sorted := SortInstallments(insts)
	s := Schedule{
		PolicyID:           policyID,
		AsOf:               asOf,
		Rows:               make([]ScheduleRow, len(sorted)),
		TotalUnpaidPenalty: TotalPenaltyAcrossUnpaid(sorted, penalties),
	}
	for i, inst := range sorted {
		row := ScheduleRow{
			Installment: inst,
			Payable:     IsPayable(sorted, i),
			Overdue:     IsOverdue(inst, asOf),
		}
		if inst.IsPaid {
			s.PaidCount++
		} else {
			s.UnpaidCount++
			row.DaysOverdue = DaysOverdue(inst, asOf)
			row.UnpaidPenalty = UnpaidPenaltyTotal(inst.ID, penalties)
			row.AmountDue = roundDec(dec(inst.AmountToBePaid).Add(dec(row.UnpaidPenalty)))
			if s.NextPayableID == "" && row.Payable {
				s.NextPayableID = inst.ID
			}
		}
		if row.Overdue {
			s.OverdueCount++
		}
		s.Rows[i] = row
	}
	return s
}

// Payability is the submit-time answer for a single installment.
type Payability struct {
	InstallmentID string  `json:"installment_id"`
	Payable       bool    `json:"payable"`
	Reason        string  `json:"reason,omitempty"`
	AmountDue     float64 `json:"amount_due"`
	BlockedBy     string  `json:"blocked_by,omitempty"`
}

// CheckPayability evaluates one installment of a schedule.
func (s Schedule) CheckPayability(installmentID string) (Payability, error) {
	idx := slices.IndexFunc(s.Rows, func(r ScheduleRow) bool { return r.ID == installmentID })
	if idx < 0 {
		return Payability{}, fmt.Errorf("%w: %s", ErrInstallmentNotFound, installmentID)
	}
	row := s.Rows[idx]
	p := Payability{InstallmentID: row.ID}
	switch {
	case row.IsPaid:
		p.Reason = "installment is already paid."
	case !row.Payable:
		blocker := s.Rows[slices.IndexFunc(s.Rows, func(r ScheduleRow) bool { return !r.IsPaid })]
		p.BlockedBy = blocker.ID
		p.Reason = fmt.Sprintf("installment due %s must be paid first.", blocker.DueDate.Format(time.DateOnly))
	default:
		p.Payable = true
		p.AmountDue = row.AmountDue
	}
	return p, nil
}

var (
	ErrInstallmentNotFound = fmt.Errorf("%w: installment not found", ErrNotFound)
)
