package core

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubCounter struct {
	n          int64
	err        error
	start, end time.Time
}

func (s *stubCounter) CountCreatedBetween(_ context.Context, start, end time.Time) (int64, error) {
	s.start, s.end = start, end
	return s.n, s.err
}

type stubSequence struct {
	next int64
	err  error
}

func (s *stubSequence) NextQuotationSeq(_ context.Context, _ int) (int64, error) {
	return s.next, s.err
}

func TestFormatQuotationNumber(t *testing.T) {
	tests := []struct {
		year int
		seq  int64
		want string
	}{
		{2025, 1, "Q-2025-001"},
		{2025, 42, "Q-2025-042"},
		{2026, 999, "Q-2026-999"},
		{2026, 1234, "Q-2026-1234"},
	}
	for _, tt := range tests {
		if got := FormatQuotationNumber(tt.year, tt.seq); got != tt.want {
			t.Errorf("FormatQuotationNumber(%d, %d) = %q, want %q", tt.year, tt.seq, got, tt.want)
		}
	}
}

func TestYearBounds(t *testing.T) {
	start, end := YearBounds(time.Date(2025, 7, 4, 13, 0, 0, 0, time.UTC))
	if !start.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start %v", start)
	}
	if end.Year() != 2025 || end.Month() != time.December || end.Day() != 31 || !end.Add(time.Nanosecond).Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end %v", end)
	}
}

func TestCountingAllocator(t *testing.T) {
	now := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)

	t.Run("next after count", func(t *testing.T) {
		c := &stubCounter{n: 6}
		if got := NewCountingAllocator(c, nil).Next(context.Background(), now); got != "Q-2025-007" {
			t.Fatalf("expected Q-2025-007, got %s", got)
		}
		if c.start.Year() != 2025 || c.end.Year() != 2025 {
			t.Fatalf("count not scoped to the year: %v - %v", c.start, c.end)
		}
	})

	t.Run("first of the year", func(t *testing.T) {
		if got := NewCountingAllocator(&stubCounter{}, nil).Next(context.Background(), now); got != "Q-2025-001" {
			t.Fatalf("expected Q-2025-001, got %s", got)
		}
	})

	t.Run("count failure falls back", func(t *testing.T) {
		c := &stubCounter{n: 50, err: errors.New("db down")}
		if got := NewCountingAllocator(c, nil).Next(context.Background(), now); got != "Q-2025-001" {
			t.Fatalf("expected fallback Q-2025-001, got %s", got)
		}
	})
}

func TestSequenceAllocator(t *testing.T) {
	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	if got := NewSequenceAllocator(&stubSequence{next: 12}, nil).Next(context.Background(), now); got != "Q-2026-012" {
		t.Fatalf("expected Q-2026-012, got %s", got)
	}
	if got := NewSequenceAllocator(&stubSequence{err: errors.New("boom")}, nil).Next(context.Background(), now); got != "Q-2026-001" {
		t.Fatalf("expected fallback, got %s", got)
	}
}
