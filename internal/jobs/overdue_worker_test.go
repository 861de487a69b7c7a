package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MrKriegler/go-motor-portal/internal/core"
	"github.com/MrKriegler/go-motor-portal/internal/core/mocks"
)

func newTestWorker(t *testing.T) (*OverdueWorker, *mocks.MockPolicyService, *mocks.MockPaymentService, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	policies := mocks.NewMockPolicyService(ctrl)
	payments := mocks.NewMockPaymentService(ctrl)

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewOverdueWorker(policies, payments, time.Minute, log), policies, payments, &buf
}

func TestOverdueWorker_Scan(t *testing.T) {
	w, policies, payments, buf := newTestWorker(t)
	active := core.PolicyFilter{Status: core.PolicyStatusActive}

	policies.EXPECT().List(gomock.Any(), active, overduePageSize, 0).
		Return([]core.Policy{{Number: "POL-1"}, {Number: "POL-2"}}, int64(2), nil)

	payments.EXPECT().Schedule(gomock.Any(), "POL-1").Return(core.Schedule{
		Rows: []core.ScheduleRow{
			{
				Installment:   core.Installment{ID: "i-1", DueDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
				Overdue:       true,
				DaysOverdue:   17,
				UnpaidPenalty: 150,
				AmountDue:     1150,
			},
			{Installment: core.Installment{ID: "i-2"}},
		},
		OverdueCount: 1,
	}, nil)
	payments.EXPECT().Schedule(gomock.Any(), "POL-2").Return(core.Schedule{}, errors.New("installments.find: timeout"))

	if err := w.scan(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"installment overdue",
		"installment_id=i-1",
		"due_date=2025-01-15",
		"days_overdue=17",
		"failed to build schedule",
		"overdue_installments=1",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected log to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "installment_id=i-2") {
		t.Fatalf("expected current installment not to be reported, got:\n%s", out)
	}
}

func TestOverdueWorker_Pages(t *testing.T) {
	w, policies, payments, _ := newTestWorker(t)
	active := core.PolicyFilter{Status: core.PolicyStatusActive}

	full := make([]core.Policy, overduePageSize)
	for i := range full {
		full[i] = core.Policy{Number: "POL-A"}
	}

	gomock.InOrder(
		policies.EXPECT().List(gomock.Any(), active, overduePageSize, 0).Return(full, int64(overduePageSize+1), nil),
		policies.EXPECT().List(gomock.Any(), active, overduePageSize, overduePageSize).
			Return([]core.Policy{{Number: "POL-B"}}, int64(overduePageSize+1), nil),
	)
	payments.EXPECT().Schedule(gomock.Any(), gomock.Any()).Return(core.Schedule{}, nil).Times(overduePageSize + 1)

	if err := w.scan(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestOverdueWorker_ListError(t *testing.T) {
	w, policies, _, _ := newTestWorker(t)

	policies.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, int64(0), errors.New("policies.find: timeout"))

	if err := w.scan(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestBaseWorker_PollStopsOnCancel(t *testing.T) {
	w := NewBaseWorker("test", time.Hour, slog.New(slog.DiscardHandler))
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	done := make(chan struct{})
	go func() {
		w.Poll(ctx, func(context.Context) error {
			calls++
			cancel()
			return nil
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected Poll to return after cancel")
	}
	if calls != 1 {
		t.Fatalf("expected one immediate run, got %d", calls)
	}
	if w.Name() != "test" {
		t.Fatalf("expected name test, got %q", w.Name())
	}
}
