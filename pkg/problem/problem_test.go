package problem

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
)

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, http.StatusNotFound, "Not Found", "policy not found")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("expected problem content type, got %q", ct)
	}

	var p Problem
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("expected JSON body, got %v", err)
	}
	if p.Type != "about:blank" || p.Status != 404 || p.Detail != "policy not found" {
		t.Fatalf("unexpected problem %+v", p)
	}
	if p.Reason != "" {
		t.Fatalf("expected no reason, got %q", p.Reason)
	}
}

func TestWriteProblem_Reason(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteProblem(rec, Problem{Title: "Conflict", Status: http.StatusConflict, Reason: "no remaining claimable amount."})

	var p Problem
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("expected JSON body, got %v", err)
	}
	if p.Type != "about:blank" {
		t.Fatalf("expected default type, got %q", p.Type)
	}
	if p.Reason != "no remaining claimable amount." {
		t.Fatalf("expected reason, got %q", p.Reason)
	}
}
