// File: database/repository/catalog/queries.go
package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"medicare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AvailableFilter matches tests with any date >= today. Dates are stored as
// "YYYY-MM-DD" strings, so lexical order is calendar order.
func AvailableFilter(today string) bson.M {
	return bson.M{"availableDates.date": bson.M{"$gte": today}}
}

func (r *MongoTestRepo) ListAvailable(ctx context.Context, today string) ([]models.DiagnosticTest, error) {
	return r.find(ctx, AvailableFilter(today))
}

func (r *MongoTestRepo) ListAll(ctx context.Context) ([]models.DiagnosticTest, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoTestRepo) find(ctx context.Context, filter bson.M) ([]models.DiagnosticTest, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query tests: %w", err)
	}
	defer cursor.Close(ctx)

	tests := []models.DiagnosticTest{}
	if err := cursor.All(ctx, &tests); err != nil {
		return nil, fmt.Errorf("failed to decode tests: %w", err)
	}
	return tests, nil
}

func (r *MongoTestRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.DiagnosticTest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var test models.DiagnosticTest
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&test); err != nil {
		return nil, fmt.Errorf("failed to fetch test %s: %w", id.Hex(), err)
	}
	return &test, nil
}

func (r *MongoTestRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.coll.EstimatedDocumentCount(ctx)
}
