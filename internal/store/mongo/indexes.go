package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := ensureQuotationsIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure quotations indexes: %w", err)
	}
	if err := ensurePoliciesIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure policies indexes: %w", err)
	}
	if err := ensureInstallmentsIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure installments indexes: %w", err)
	}
	if err := ensurePenaltiesIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure penalties indexes: %w", err)
	}
	if err := ensureClaimsIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure claims indexes: %w", err)
	}
	return nil
}

func ensureQuotationsIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(ColQuotations)
	// number is not unique: the counting allocator may hand out duplicates under load.
	models := []mongo.IndexModel{
		newIndex("created_at", 1, "quotations_created_at", false),
		newIndex("number", 1, "quotations_number", false),
	}
	_, err := coll.Indexes().CreateMany(ctx, models)
	return err
}

func ensurePoliciesIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(ColPolicies)
	models := []mongo.IndexModel{
		newIndex("number", 1, "policies_number_unique", true),
		newIndex("holder_email", 1, "policies_holder_email", false),
		newIndex("status", 1, "policies_status", false),
	}
	_, err := coll.Indexes().CreateMany(ctx, models)
	return err
}

func ensureInstallmentsIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(ColInstallments)
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "policy_id", Value: 1}, {Key: "seq", Value: 1}},
			Options: options.Index().SetName("installments_policy_seq"),
		},
	}
	_, err := coll.Indexes().CreateMany(ctx, models)
	return err
}

func ensurePenaltiesIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(ColPenalties)
	models := []mongo.IndexModel{
		newIndex("installment_id", 1, "penalties_installment_id", false),
	}
	_, err := coll.Indexes().CreateMany(ctx, models)
	return err
}

func ensureClaimsIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(ColClaims)
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "policy_id", Value: 1}, {Key: "created_at", Value: 1}},
			Options: options.Index().SetName("claims_policy_created_at"),
		},
	}
	_, err := coll.Indexes().CreateMany(ctx, models)
	return err
}

func newIndex(field string, asc int32, name string, unique bool) mongo.IndexModel {
	opts := options.Index().SetName(name)
	if unique {
		opts = opts.SetUnique(true)
	}
	return mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: asc}},
		Options: opts,
	}
}
