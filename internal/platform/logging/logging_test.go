package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestNewTo_ProdWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewTo(&buf, "prod")

	log.Debug("hidden")
	log.Info("quotation issued", "quotation_number", "Q-2025-001")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line (debug suppressed), got %d: %q", len(lines), buf.String())
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("expected JSON record, got %v", err)
	}
	if rec["service"] != serviceName {
		t.Fatalf("expected service %q, got %v", serviceName, rec["service"])
	}
	if rec["quotation_number"] != "Q-2025-001" {
		t.Fatalf("expected quotation_number attribute, got %v", rec["quotation_number"])
	}
}

func TestNewTo_DevWritesDebugText(t *testing.T) {
	var buf bytes.Buffer
	log := NewTo(&buf, "dev")

	log.Debug("schedule built", "policy", "P-1")

	out := buf.String()
	if !strings.Contains(out, "level=DEBUG") || !strings.Contains(out, "policy=P-1") {
		t.Fatalf("expected debug text record, got %q", out)
	}
}
