package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/MrKriegler/go-motor-portal/internal/core"
)

const overduePageSize = 100

// OverdueWorker reports overdue installments on active policies. It only
// reads the ledger; penalties are written by the payment processor.
type OverdueWorker struct {
	BaseWorker
	policies core.PolicyService
	payments core.PaymentService
}

// NewOverdueWorker creates a new overdue worker.
func NewOverdueWorker(
	policies core.PolicyService,
	payments core.PaymentService,
	interval time.Duration,
	log *slog.Logger,
) *OverdueWorker {
	return &OverdueWorker{
		BaseWorker: NewBaseWorker("overdue", interval, log),
		policies:   policies,
		payments:   payments,
	}
}

// Start begins the worker polling loop.
func (w *OverdueWorker) Start(ctx context.Context) {
	w.Poll(ctx, w.scan)
}

// scan walks every active policy a page at a time.
func (w *OverdueWorker) scan(ctx context.Context) error {
	filter := core.PolicyFilter{Status: core.PolicyStatusActive}
	var policiesSeen, overdue int

	for offset := 0; ; offset += overduePageSize {
		page, total, err := w.policies.List(ctx, filter, overduePageSize, offset)
		if err != nil {
			return err
		}

		for _, p := range page {
			policiesSeen++
			n, err := w.report(ctx, p)
			if err != nil {
				w.log.ErrorContext(ctx, "failed to build schedule",
					"policy_number", p.Number,
					"err", err,
				)
				continue
			}
			overdue += n
		}

		if len(page) < overduePageSize || int64(offset+len(page)) >= total {
			break
		}
	}

	if overdue > 0 {
		w.log.InfoContext(ctx, "overdue scan complete", "policies", policiesSeen, "overdue_installments", overdue)
	}
	return nil
}

func (w *OverdueWorker) report(ctx context.Context, p core.Policy) (int, error) {
	sched, err := w.payments.Schedule(ctx, p.Number)
	if err != nil {
		return 0, err
	}

	for _, row := range sched.Rows {
		if !row.Overdue {
			continue
		}
		w.log.WarnContext(ctx, "installment overdue",
			"policy_number", p.Number,
			"installment_id", row.ID,
			"due_date", row.DueDate.In(sched.AsOf.Location()).Format(time.DateOnly),
			"days_overdue", row.DaysOverdue,
			"unpaid_penalty", row.UnpaidPenalty,
			"amount_due", row.AmountDue,
		)
	}
	return sched.OverdueCount, nil
}
