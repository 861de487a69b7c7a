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

type ClaimRepoMongo struct {
	coll      *mongodrv.Collection
	opTimeout time.Duration
}

func NewClaimRepo(db *mongodrv.Database, opTimeout time.Duration) *ClaimRepoMongo {
	return &ClaimRepoMongo{
		coll:      db.Collection(ColClaims),
		opTimeout: opTimeout,
	}
}

func (repo *ClaimRepoMongo) Create(ctx context.Context, c core.Claim) error {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	_, err := repo.coll.InsertOne(ctx, toClaimDoc(c))
	if err != nil {
		var we mongodrv.WriteException
		if errors.As(err, &we) {
			for _, e := range we.WriteErrors {
				if e.Code == 11000 {
					return core.ErrConflict
				}
			}
		}
		return fmt.Errorf("claims.insert: %w", err)
	}
	return nil
}

func (repo *ClaimRepoMongo) ListByPolicy(ctx context.Context, policyID string) ([]core.Claim, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := repo.coll.Find(ctx, bson.M{"policy_id": policyID}, opts)
	if err != nil {
		return nil, fmt.Errorf("claims.find: %w", err)
	}
	defer cur.Close(ctx)

	var claims []core.Claim
	for cur.Next(ctx) {
		var doc ClaimDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("claims.decode: %w", err)
		}
		claims = append(claims, fromClaimDoc(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("claims.cursor: %w", err)
	}
	return claims, nil
}
