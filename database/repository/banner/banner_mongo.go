package bannerRepo

import (
	"context"
	"fmt"
	"time"

	"medicare/database"
	"medicare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBannerRepo implements BannerRepository using MongoDB.
type MongoBannerRepo struct {
	coll       *mongo.Collection
	txnTimeout time.Duration
}

func NewMongoBannerRepo(db *mongo.Database, txnTimeout time.Duration) *MongoBannerRepo {
	return &MongoBannerRepo{coll: db.Collection(database.BannersCollection), txnTimeout: txnTimeout}
}

func (r *MongoBannerRepo) Create(ctx context.Context, banner *models.Banner) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	banner.IsActive = false
	banner.CreatedAt = time.Now().UTC()
	res, err := r.coll.InsertOne(ctx, banner)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create banner: %w", err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	banner.ID = id
	return id, nil
}

func (r *MongoBannerRepo) List(ctx context.Context) ([]models.Banner, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query banners: %w", err)
	}
	defer cursor.Close(ctx)

	banners := []models.Banner{}
	if err := cursor.All(ctx, &banners); err != nil {
		return nil, fmt.Errorf("failed to decode banners: %w", err)
	}
	return banners, nil
}

func (r *MongoBannerRepo) GetActive(ctx context.Context) (*models.Banner, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var banner models.Banner
	if err := r.coll.FindOne(ctx, bson.M{"isActive": true}).Decode(&banner); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch active banner: %w", err)
	}
	return &banner, nil
}

func (r *MongoBannerRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete banner %s: %w", id.Hex(), err)
	}
	return res.DeletedCount, nil
}

// errNoBanner aborts the activation transaction when id matches nothing.
var errNoBanner = fmt.Errorf("banner not found")

func (r *MongoBannerRepo) Activate(ctx context.Context, id primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.txnTimeout)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return 0, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(context.Background())

	var modified int64
	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.coll.UpdateMany(sc, bson.M{}, bson.M{"$set": bson.M{"isActive": false}}); err != nil {
			return fmt.Errorf("deactivate banners failed: %w", err)
		}
		res, err := r.coll.UpdateOne(sc, bson.M{"_id": id}, bson.M{"$set": bson.M{"isActive": true}})
		if err != nil {
			return fmt.Errorf("activate banner failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return errNoBanner
		}
		modified = res.ModifiedCount
		return nil
	}

	txnOpts := options.Transaction().SetMaxCommitTime(&r.txnTimeout)
	err = mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(txnOpts); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(context.Background())
			return err
		}
		return sc.CommitTransaction(sc)
	})
	if err == errNoBanner {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("banner activation transaction failed: %w", err)
	}
	return modified, nil
}

// EnsureIndexes indexes isActive for the public active-banner read.
func (r *MongoBannerRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "isActive", Value: 1}}})
	if err != nil {
		return fmt.Errorf("failed to create banner indexes: %w", err)
	}
	return nil
}
