// Package store opens the configured persistence backend and exposes its
// repositories behind the core interfaces.
package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MrKriegler/go-motor-portal/internal/core"
	"github.com/MrKriegler/go-motor-portal/internal/platform/config"
	"github.com/MrKriegler/go-motor-portal/internal/store/dynamo"
	"github.com/MrKriegler/go-motor-portal/internal/store/mongo"
)

// QuoteStore is satisfied by both quotation repos: CRUD plus the per-year
// counter used by the sequence allocator.
type QuoteStore interface {
	core.QuoteRepo
	core.QuotationSequence
}

// LedgerStore reads the payment ledger and can load demo ledgers.
type LedgerStore interface {
	core.InstallmentRepo
	SeedLedger(ctx context.Context, insts []core.Installment, penalties []core.Penalty) error
}

type Backend struct {
	Name         string
	Rates        core.RateTableRepo
	Quotes       QuoteStore
	Policies     core.PolicyRepo
	Installments LedgerStore
	Claims       core.ClaimRepo

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Ping verifies connectivity (used by /readyz).
func (b *Backend) Ping(ctx context.Context) error { return b.ping(ctx) }

func (b *Backend) Close(ctx context.Context) error { return b.close(ctx) }

// Open connects to cfg.DBType and makes sure its tables or indexes exist.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Backend, error) {
	switch cfg.DBType {
	case config.DBTypeMongo:
		return openMongo(ctx, cfg, log)
	case config.DBTypeDynamo:
		return openDynamo(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", cfg.DBType)
	}
}

func openMongo(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Backend, error) {
	log.Info("connecting to MongoDB", "db", cfg.MongoDB)
	client, err := mongo.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	if err := mongo.EnsureIndexes(ctx, client.DB); err != nil {
		_ = client.Close(ctx)
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	db, opTimeout := client.DB, client.OpTimeout
	return &Backend{
		Name:         config.DBTypeMongo,
		Rates:        mongo.NewRateTableRepo(db, opTimeout),
		Quotes:       mongo.NewQuoteRepo(db, opTimeout),
		Policies:     mongo.NewPolicyRepo(db, opTimeout),
		Installments: mongo.NewInstallmentRepo(db, opTimeout),
		Claims:       mongo.NewClaimRepo(db, opTimeout),
		ping:         client.Ping,
		close:        client.Close,
	}, nil
}

func openDynamo(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Backend, error) {
	log.Info("connecting to DynamoDB", "region", cfg.AWSRegion, "endpoint", cfg.DynamoDBEndpoint)
	client, err := dynamo.NewClient(ctx, dynamo.Config{
		Region:          cfg.AWSRegion,
		Endpoint:        cfg.DynamoDBEndpoint,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	})
	if err != nil {
		return nil, err
	}
	if err := dynamo.EnsureTables(ctx, client.DB, log); err != nil {
		return nil, fmt.Errorf("ensure tables: %w", err)
	}

	db := client.DB
	return &Backend{
		Name:         config.DBTypeDynamo,
		Rates:        dynamo.NewRateTableRepo(db),
		Quotes:       dynamo.NewQuoteRepo(db),
		Policies:     dynamo.NewPolicyRepo(db),
		Installments: dynamo.NewInstallmentRepo(db),
		Claims:       dynamo.NewClaimRepo(db),
		ping:         client.Ping,
		close:        func(context.Context) error { return nil },
	}, nil
}

// NumberAllocator picks the quotation numbering strategy from config.
func (b *Backend) NumberAllocator(cfg *config.Config, log *slog.Logger) core.QuotationNumberAllocator {
	if cfg.QuoteNumbering == config.QuoteNumberingSequence {
		return core.NewSequenceAllocator(b.Quotes, log)
	}
	return core.NewCountingAllocator(b.Quotes, log)
}
