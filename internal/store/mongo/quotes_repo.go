package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MrKriegler/go-motor-portal/internal/core"
	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuoteRepoMongo struct {
	coll      *mongodrv.Collection
	counters  *mongodrv.Collection
	opTimeout time.Duration
}

func NewQuoteRepo(db *mongodrv.Database, opTimeout time.Duration) *QuoteRepoMongo {
	return &QuoteRepoMongo{
		coll:      db.Collection(ColQuotations),
		counters:  db.Collection(ColCounters),
		opTimeout: opTimeout,
	}
}

func (repo *QuoteRepoMongo) Create(ctx context.Context, q core.Quotation) error {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	_, err := repo.coll.InsertOne(ctx, toQuotationDoc(q))
	if err != nil {
		// map dup key -> core.ErrConflict
		var we mongodrv.WriteException
		if errors.As(err, &we) {
			for _, e := range we.WriteErrors {
				if e.Code == 11000 {
					return core.ErrConflict
				}
			}
		}
		return fmt.Errorf("quotations.insert: %w", err)
	}
	return nil
}

func (repo *QuoteRepoMongo) Get(ctx context.Context, id string) (core.Quotation, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	var doc QuotationDoc
	err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return core.Quotation{}, core.ErrQuoteNotFound
		}
		return core.Quotation{}, fmt.Errorf("quotations.findOne: %w", err)
	}
	return fromQuotationDoc(doc), nil
}

func (repo *QuoteRepoMongo) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	n, err := repo.coll.CountDocuments(ctx, bson.M{
		"created_at": bson.M{"$gte": start, "$lte": end},
	})
	if err != nil {
		return 0, fmt.Errorf("quotations.count: %w", err)
	}
	return n, nil
}

// NextQuotationSeq atomically increments the per-year quotation counter.
func (repo *QuoteRepoMongo) NextQuotationSeq(ctx context.Context, year int) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	filter := bson.M{"_id": fmt.Sprintf("quotation_%d", year)}
	update := bson.M{"$inc": bson.M{"seq": 1}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var result struct {
		Seq int64 `bson:"seq"`
	}
	if err := repo.counters.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result); err != nil {
		return 0, fmt.Errorf("quotations.nextSeq: %w", err)
	}
	return result.Seq, nil
}
