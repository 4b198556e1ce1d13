package locationRepo

import (
	"context"
	"fmt"
	"time"

	"medicare/database"
	"medicare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LocationRepository reads the district and upazila lookup tables.
type LocationRepository interface {
	Districts(ctx context.Context) ([]models.District, error)
	// Upazilas lists all upazilas, or only those of districtID when set.
	Upazilas(ctx context.Context, districtID string) ([]models.Upazila, error)
}

// MongoLocationRepo implements LocationRepository using MongoDB.
type MongoLocationRepo struct {
	districts *mongo.Collection
	upazilas  *mongo.Collection
}

func NewMongoLocationRepo(db *mongo.Database) *MongoLocationRepo {
	return &MongoLocationRepo{
		districts: db.Collection(database.DistrictsCollection),
		upazilas:  db.Collection(database.UpazilasCollection),
	}
}

func (r *MongoLocationRepo) Districts(ctx context.Context) ([]models.District, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.districts.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query districts: %w", err)
	}
	defer cursor.Close(ctx)

	districts := []models.District{}
	if err := cursor.All(ctx, &districts); err != nil {
		return nil, fmt.Errorf("failed to decode districts: %w", err)
	}
	return districts, nil
}

func (r *MongoLocationRepo) Upazilas(ctx context.Context, districtID string) ([]models.Upazila, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if districtID != "" {
		filter["district_id"] = districtID
	}
	cursor, err := r.upazilas.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query upazilas: %w", err)
	}
	defer cursor.Close(ctx)

	upazilas := []models.Upazila{}
	if err := cursor.All(ctx, &upazilas); err != nil {
		return nil, fmt.Errorf("failed to decode upazilas: %w", err)
	}
	return upazilas, nil
}

// Seed upserts lookup rows by id so re-running is harmless.
func (r *MongoLocationRepo) Seed(ctx context.Context, districts []models.District, upazilas []models.Upazila) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	upsert := options.Update().SetUpsert(true)
	for _, d := range districts {
		if _, err := r.districts.UpdateOne(ctx, bson.M{"id": d.ID}, bson.M{"$set": d}, upsert); err != nil {
			return fmt.Errorf("failed to seed district %s: %w", d.ID, err)
		}
	}
	for _, u := range upazilas {
		if _, err := r.upazilas.UpdateOne(ctx, bson.M{"id": u.ID}, bson.M{"$set": u}, upsert); err != nil {
			return fmt.Errorf("failed to seed upazila %s: %w", u.ID, err)
		}
	}
	return nil
}
