package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// FormatQuotationNumber renders Q-{year}-{seq} with seq zero-padded to 3 digits.
func FormatQuotationNumber(year int, seq int64) string {
	return fmt.Sprintf("Q-%d-%03d", year, seq)
}

// YearBounds returns the first and last instant of t's calendar year in t's location.
func YearBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(1, 0, 0).Add(-time.Nanosecond)
}

// QuotationNumberAllocator issues human-readable quotation numbers.
// Next never fails; allocators degrade to the first number of the year.
type QuotationNumberAllocator interface {
	Next(ctx context.Context, now time.Time) string
}

type QuotationCounter interface {
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
}

type QuotationSequence interface {
	NextQuotationSeq(ctx context.Context, year int) (int64, error)
}

// CountingAllocator numbers a quotation as one more than the quotations already
// created this year. Count-then-insert is not atomic: two concurrent quotes can
// receive the same number. Use SequenceAllocator when that matters.
type CountingAllocator struct {
	counter QuotationCounter
	log     *slog.Logger
}

func NewCountingAllocator(counter QuotationCounter, log *slog.Logger) *CountingAllocator {
	return &CountingAllocator{counter: counter, log: orDiscard(log)}
}

func (a *CountingAllocator) Next(ctx context.Context, now time.Time) string {
	start, end := YearBounds(now)
	n, err := a.counter.CountCreatedBetween(ctx, start, end)
	if err != nil {
		a.log.WarnContext(ctx, "quotation count failed, using fallback number", "year", now.Year(), "err", err)
		return FormatQuotationNumber(now.Year(), 1)
	}
	return FormatQuotationNumber(now.Year(), n+1)
}

// SequenceAllocator draws numbers from an atomic per-year counter.
type SequenceAllocator struct {
	seq QuotationSequence
	log *slog.Logger
}

func NewSequenceAllocator(seq QuotationSequence, log *slog.Logger) *SequenceAllocator {
	return &SequenceAllocator{seq: seq, log: orDiscard(log)}
}

func (a *SequenceAllocator) Next(ctx context.Context, now time.Time) string {
	n, err := a.seq.NextQuotationSeq(ctx, now.Year())
	if err != nil {
		a.log.WarnContext(ctx, "quotation sequence failed, using fallback number", "year", now.Year(), "err", err)
		return FormatQuotationNumber(now.Year(), 1)
	}
	return FormatQuotationNumber(now.Year(), n)
}

func orDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return log
}
