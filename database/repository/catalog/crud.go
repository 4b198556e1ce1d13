// File: database/repository/catalog/crud.go
package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"medicare/database"
	"medicare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTestRepo implements TestRepository using MongoDB.
type MongoTestRepo struct {
	coll *mongo.Collection
}

// NewMongoTestRepo constructs a MongoDB TestRepository.
func NewMongoTestRepo(db *mongo.Database) *MongoTestRepo {
	return &MongoTestRepo{coll: db.Collection(database.TestsCollection)}
}

func (r *MongoTestRepo) Create(ctx context.Context, test *models.DiagnosticTest) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, test)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create test: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	test.ID = id
	return id, nil
}

func (r *MongoTestRepo) Replace(ctx context.Context, id primitive.ObjectID, input models.DiagnosticTestInput) (models.UpdateOutcome, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, UpdateDocument(input))
	if err != nil {
		return models.UpdateOutcome{}, fmt.Errorf("failed to update test %s: %w", id.Hex(), err)
	}
	return models.UpdateOutcome{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// UpdateDocument builds the $set for an admin edit. A nil AvailableDates leaves
// the stored inventory alone; an empty, non-nil slice clears it.
func UpdateDocument(input models.DiagnosticTestInput) bson.M {
	set := bson.M{
		"title":    input.Title,
		"image":    input.Image,
		"price":    input.Price,
		"details":  input.Details,
		"category": input.Category,
	}
	if input.AvailableDates != nil {
		set["availableDates"] = input.AvailableDates
	}
	return bson.M{"$set": set}
}

func (r *MongoTestRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete test %s: %w", id.Hex(), err)
	}
	return res.DeletedCount, nil
}
