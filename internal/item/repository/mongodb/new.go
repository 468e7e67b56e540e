package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"item-catalog/internal/item/repository"
	"item-catalog/pkg/log"
)

type implRepository struct {
	col *mongo.Collection
	l   log.Logger
}

// New creates a new MongoDB-backed Repository for the item domain.
func New(db *mongo.Database, collection string, l log.Logger) repository.Repository {
	if db == nil {
		panic("item/repository/mongodb: db is required")
	}
	return &implRepository{col: db.Collection(collection), l: l}
}

// EnsureIndexes installs the unique index on the external id field.
// Uniqueness of item ids is enforced here, at the store, not in the
// usecase: a duplicate create surfaces as a duplicate-key write error.
func EnsureIndexes(ctx context.Context, db *mongo.Database, collection string) error {
	_, err := db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{bson.E{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
