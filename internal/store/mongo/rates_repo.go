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

type RateTableRepoMongo struct {
	coll      *mongodrv.Collection
	opTimeout time.Duration
}

func NewRateTableRepo(db *mongodrv.Database, opTimeout time.Duration) *RateTableRepoMongo {
	return &RateTableRepoMongo{
		coll:      db.Collection(ColRateTables),
		opTimeout: opTimeout,
	}
}

// Lists all rate tables ordered by vehicle type.
func (r *RateTableRepoMongo) List(ctx context.Context) ([]core.RateTable, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("rates.find: %w", err)
	}
	defer cur.Close(ctx)

	var tables []core.RateTable
	for cur.Next(ctx) {
		var doc RateTableDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("rates.decode: %w", err)
		}
		tables = append(tables, fromRateTableDoc(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("rates.cursor: %w", err)
	}
	return tables, nil
}

func (r *RateTableRepoMongo) GetByVehicleType(ctx context.Context, vehicleType string) (core.RateTable, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	var doc RateTableDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": vehicleType}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return core.RateTable{}, core.ErrRateTableNotFound
		}
		return core.RateTable{}, fmt.Errorf("rates.findOne: %w", err)
	}
	return fromRateTableDoc(doc), nil
}

// Upsert replaces the rate table for its vehicle type, creating it if absent.
func (r *RateTableRepoMongo) Upsert(ctx context.Context, rt core.RateTable) error {
	if err := rt.Validate(); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": rt.VehicleType},
		toRateTableDoc(rt),
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("rates.upsert: %w", err)
	}
	return nil
}
