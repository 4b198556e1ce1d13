package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"medicare/database"
	"medicare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// bookingStatsPipeline joins each non-canceled appointment to its test and
// groups by title, summing the catalog price as revenue.
func bookingStatsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"testStatus": bson.M{"$ne": models.TestStatusCanceled}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         database.TestsCollection,
			"localField":   "testId",
			"foreignField": "_id",
			"as":           "test",
		}}},
		{{Key: "$unwind", Value: "$test"}},
		{{Key: "$group", Value: bson.M{
			"_id":      "$test.title",
			"quantity": bson.M{"$sum": 1},
			"revenue":  bson.M{"$sum": "$test.price"},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":      0,
			"title":    "$_id",
			"quantity": "$quantity",
			"revenue":  "$revenue",
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "quantity", Value: -1}, {Key: "title", Value: 1}}}},
	}
}

func (r *MongoAppointmentRepo) BookingStats(ctx context.Context) ([]models.TestBookingStat, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, bookingStatsPipeline())
	if err != nil {
		return nil, fmt.Errorf("error aggregating booking stats: %w", err)
	}
	defer cursor.Close(ctx)

	stats := []models.TestBookingStat{}
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("error decoding booking stats: %w", err)
	}
	return stats, nil
}
