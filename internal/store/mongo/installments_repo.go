package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/MrKriegler/go-motor-portal/internal/core"
	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InstallmentRepoMongo reads the payment ledger. The only writes are the
// seed helpers; settlement belongs to the payment processor.
type InstallmentRepoMongo struct {
	installments *mongodrv.Collection
	penalties    *mongodrv.Collection
	opTimeout    time.Duration
}

func NewInstallmentRepo(db *mongodrv.Database, opTimeout time.Duration) *InstallmentRepoMongo {
	return &InstallmentRepoMongo{
		installments: db.Collection(ColInstallments),
		penalties:    db.Collection(ColPenalties),
		opTimeout:    opTimeout,
	}
}

// ListByPolicy returns installments in seq (insertion) order.
func (repo *InstallmentRepoMongo) ListByPolicy(ctx context.Context, policyID string) ([]core.Installment, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cur, err := repo.installments.Find(ctx, bson.M{"policy_id": policyID}, opts)
	if err != nil {
		return nil, fmt.Errorf("installments.find: %w", err)
	}
	defer cur.Close(ctx)

	var out []core.Installment
	for cur.Next(ctx) {
		var doc InstallmentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("installments.decode: %w", err)
		}
		out = append(out, fromInstallmentDoc(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("installments.cursor: %w", err)
	}
	return out, nil
}

func (repo *InstallmentRepoMongo) ListPenalties(ctx context.Context, installmentIDs []string) ([]core.Penalty, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	cur, err := repo.penalties.Find(ctx, bson.M{"installment_id": bson.M{"$in": installmentIDs}})
	if err != nil {
		return nil, fmt.Errorf("penalties.find: %w", err)
	}
	defer cur.Close(ctx)

	var out []core.Penalty
	for cur.Next(ctx) {
		var doc PenaltyDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("penalties.decode: %w", err)
		}
		out = append(out, fromPenaltyDoc(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("penalties.cursor: %w", err)
	}
	return out, nil
}

// SeedLedger upserts installments and penalties for demo data.
func (repo *InstallmentRepoMongo) SeedLedger(ctx context.Context, insts []core.Installment, penalties []core.Penalty) error {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	for _, inst := range insts {
		doc := toInstallmentDoc(inst)
		if _, err := repo.installments.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true)); err != nil {
			return fmt.Errorf("installments.upsert: %w", err)
		}
	}
	for _, p := range penalties {
		doc := toPenaltyDoc(p)
		if _, err := repo.penalties.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true)); err != nil {
			return fmt.Errorf("penalties.upsert: %w", err)
		}
	}
	return nil
}
