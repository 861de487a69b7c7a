package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/mock/gomock"

	"github.com/MrKriegler/go-motor-portal/internal/core"
	"github.com/MrKriegler/go-motor-portal/internal/core/mocks"
	"github.com/MrKriegler/go-motor-portal/pkg/problem"
)

var discard = slog.New(slog.DiscardHandler)

func serve(m Mountable, method, path string, body []byte) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	m.Mount(r)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) problem.Problem {
	t.Helper()
	var p problem.Problem
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("expected problem body, got %v (%q)", err, rec.Body.String())
	}
	return p
}

func TestQuoteHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockQuoteService(ctrl)
	h := NewQuoteHandler(svc, discard)

	t.Run("created", func(t *testing.T) {
		svc.EXPECT().
			Price(gomock.Any(), core.QuoteInput{
				VehicleType: "sedan",
				Vehicle:     core.Vehicle{OriginalCost: 500000, ModelYear: 2022},
				WithAON:     true,
			}).
			Return(core.Quotation{
				ID:          "q-1",
				Number:      "Q-2025-001",
				VehicleType: "sedan",
				Premium:     core.PremiumComputation{TotalPremium: 14551.98},
			}, nil)

		body := []byte(`{"vehicle_type":"sedan","vehicle":{"original_cost":500000,"model_year":2022},"with_aon":true}`)
		rec := serve(h, http.MethodPost, "/quotes", body)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		var got core.Quotation
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Number != "Q-2025-001" || got.Premium.TotalPremium != 14551.98 {
			t.Fatalf("unexpected quotation %+v", got)
		}
	})

	t.Run("bad json", func(t *testing.T) {
		rec := serve(h, http.MethodPost, "/quotes", []byte(`{`))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown vehicle type", func(t *testing.T) {
		svc.EXPECT().Price(gomock.Any(), gomock.Any()).
			Return(core.Quotation{}, fmt.Errorf("%w: %q", core.ErrCannotQuote, "hovercraft"))

		rec := serve(h, http.MethodPost, "/quotes", []byte(`{"vehicle_type":"hovercraft","vehicle":{"model_year":2020}}`))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if p := decodeProblem(t, rec); p.Title != "Cannot Quote" {
			t.Fatalf("expected Cannot Quote, got %q", p.Title)
		}
	})

	t.Run("validation", func(t *testing.T) {
		svc.EXPECT().Price(gomock.Any(), gomock.Any()).
			Return(core.Quotation{}, fmt.Errorf("%w: vehicle_type is required", core.ErrValidation))

		rec := serve(h, http.MethodPost, "/quotes", []byte(`{}`))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestQuoteHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockQuoteService(ctrl)
	h := NewQuoteHandler(svc, discard)

	svc.EXPECT().Get(gomock.Any(), "missing").Return(core.Quotation{}, core.ErrQuoteNotFound)

	rec := serve(h, http.MethodGet, "/quotes/missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("expected problem content type, got %q", ct)
	}
}

func TestRateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockRateService(ctrl)
	h := NewRateHandler(svc, discard)

	t.Run("empty list is an array", func(t *testing.T) {
		svc.EXPECT().List(gomock.Any()).Return(nil, nil)

		rec := serve(h, http.MethodGet, "/rates", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := bytes.TrimSpace(rec.Body.Bytes()); string(got) != "[]" {
			t.Fatalf("expected [], got %s", got)
		}
	})

	t.Run("get", func(t *testing.T) {
		svc.EXPECT().Get(gomock.Any(), "suv").Return(core.RateTable{VehicleType: "suv", VATPercent: 12}, nil)

		rec := serve(h, http.MethodGet, "/rates/suv", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}

func TestCommissionHandler(t *testing.T) {
	h := NewCommissionHandler(discard)

	rec := serve(h, http.MethodPost, "/commissions:apply", []byte(`{"total_amount":12000,"commission_percent":10}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got core.CommissionResult
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.TotalWithCommission != 13200 {
		t.Fatalf("expected 13200, got %v", got.TotalWithCommission)
	}

	rec = serve(h, http.MethodPost, "/commissions:apply", []byte(`{"total_amount":-5,"commission_percent":10}`))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPolicyHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockPolicyService(ctrl)
	h := NewPolicyHandler(svc, discard)

	svc.EXPECT().
		List(gomock.Any(), core.PolicyFilter{HolderEmail: "ana@example.com", Status: core.PolicyStatusActive}, 5, 10).
		Return(nil, int64(0), nil)

	rec := serve(h, http.MethodGet, "/policies?holder_email=ana@example.com&status=active&limit=5&offset=10", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got struct {
		Items  []core.Policy `json:"items"`
		Total  int64         `json:"total"`
		Limit  int           `json:"limit"`
		Offset int           `json:"offset"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Items == nil || got.Limit != 5 || got.Offset != 10 {
		t.Fatalf("unexpected page %+v", got)
	}
}

func TestPolicyHandler_ListClampsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockPolicyService(ctrl)
	h := NewPolicyHandler(svc, discard)

	svc.EXPECT().
		List(gomock.Any(), core.PolicyFilter{}, core.MaxPageLimit, 0).
		Return(nil, int64(0), nil)

	rec := serve(h, http.MethodGet, "/policies?limit=500", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got struct {
		Limit int `json:"limit"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Limit != core.MaxPageLimit {
		t.Fatalf("expected limit %d, got %d", core.MaxPageLimit, got.Limit)
	}
}

func TestPaymentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockPaymentService(ctrl)
	h := NewPaymentHandler(svc, discard)

	t.Run("schedule", func(t *testing.T) {
		svc.EXPECT().Schedule(gomock.Any(), "POL-1").Return(core.Schedule{
			PolicyID: "p-1",
			Rows: []core.ScheduleRow{{
				Installment: core.Installment{ID: "i-1", AmountToBePaid: 1000, DueDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
				Payable:     true,
				AmountDue:   1000,
			}},
			NextPayableID: "i-1",
		}, nil)

		rec := serve(h, http.MethodGet, "/policies/POL-1/installments", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var got core.Schedule
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(got.Rows) != 1 || !got.Rows[0].Payable || got.NextPayableID != "i-1" {
			t.Fatalf("unexpected schedule %+v", got)
		}
	})

	t.Run("blocked installment is 200 with reason", func(t *testing.T) {
		svc.EXPECT().CheckPayable(gomock.Any(), "POL-1", "i-2").Return(core.Payability{
			InstallmentID: "i-2",
			Reason:        "installment due 2025-01-15 must be paid first.",
			BlockedBy:     "i-1",
		}, nil)

		rec := serve(h, http.MethodGet, "/policies/POL-1/installments/i-2/payability", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var got core.Payability
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Payable || got.BlockedBy != "i-1" {
			t.Fatalf("unexpected payability %+v", got)
		}
	})

	t.Run("unknown installment", func(t *testing.T) {
		svc.EXPECT().CheckPayable(gomock.Any(), "POL-1", "nope").Return(core.Payability{}, core.ErrInstallmentNotFound)

		rec := serve(h, http.MethodGet, "/policies/POL-1/installments/nope/payability", nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestClaimHandler_File(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockClaimService(ctrl)
	h := NewClaimHandler(svc, discard)

	t.Run("date-only incident date", func(t *testing.T) {
		svc.EXPECT().
			File(gomock.Any(), "POL-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, in core.ClaimInput) (core.Claim, error) {
				want := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
				if !in.IncidentDate.Equal(want) {
					t.Fatalf("expected incident date %v, got %v", want, in.IncidentDate)
				}
				return core.Claim{ID: "c-1", Status: core.ClaimStatusPending}, nil
			})

		body := []byte(`{"incident_date":"2025-02-03","description":"rear-ended","estimated_amount":25000}`)
		rec := serve(h, http.MethodPost, "/policies/POL-1/claims", body)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		rec := serve(h, http.MethodPost, "/policies/POL-1/claims", []byte(`{"incident_date":"03/02/2025"}`))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("ineligible carries reason", func(t *testing.T) {
		svc.EXPECT().File(gomock.Any(), "POL-1", gomock.Any()).
			Return(core.Claim{}, &core.IneligibleError{Reason: core.ReasonMaxClaimsReached})

		body := []byte(`{"incident_date":"2025-02-03T10:00:00Z","description":"hail","estimated_amount":100}`)
		rec := serve(h, http.MethodPost, "/policies/POL-1/claims", body)
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		if p := decodeProblem(t, rec); p.Reason != core.ReasonMaxClaimsReached {
			t.Fatalf("expected reason %q, got %q", core.ReasonMaxClaimsReached, p.Reason)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		svc.EXPECT().File(gomock.Any(), "POL-1", gomock.Any()).
			Return(core.Claim{}, errors.New("claims.insert: connection reset"))

		body := []byte(`{"incident_date":"2025-02-03","description":"hail","estimated_amount":100}`)
		rec := serve(h, http.MethodPost, "/policies/POL-1/claims", body)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}

func TestClaimHandler_Eligibility(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockClaimService(ctrl)
	h := NewClaimHandler(svc, discard)

	svc.EXPECT().Eligibility(gomock.Any(), "POL-1").Return(core.ClaimEligibility{
		CanCreate:       false,
		Reason:          core.ReasonNoClaimableAmount,
		ClaimableAmount: 0,
	}, nil)

	rec := serve(h, http.MethodGet, "/policies/POL-1/claims/eligibility", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got core.ClaimEligibility
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.CanCreate || got.Reason != core.ReasonNoClaimableAmount {
		t.Fatalf("unexpected eligibility %+v", got)
	}

	svc.EXPECT().EligibilityForPolicies(gomock.Any(), core.PolicyFilter{}, 20, 0).
		Return([]core.PolicyEligibility{{PolicyNumber: "POL-1"}}, int64(1), nil)

	rec = serve(h, http.MethodGet, "/claims/eligibility", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
