package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medicare/database"
	"medicare/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository over the tests and
// appointments collections.
type MongoBookingRepo struct {
	testColl        *mongo.Collection
	appointmentColl *mongo.Collection
	txnTimeout      time.Duration
}

func NewMongoBookingRepo(db *mongo.Database, txnTimeout time.Duration) *MongoBookingRepo {
	return &MongoBookingRepo{
		testColl:        db.Collection(database.TestsCollection),
		appointmentColl: db.Collection(database.AppointmentsCollection),
		txnTimeout:      txnTimeout,
	}
}

func (repo *MongoBookingRepo) DecrementSlot(ctx context.Context, testID primitive.ObjectID, date string) (models.UpdateOutcome, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.testColl.UpdateOne(ctx, SlotFilter(testID, date), SlotDecrement())
	if err != nil {
		return models.UpdateOutcome{}, fmt.Errorf("failed to decrement slot: %w", err)
	}
	return models.UpdateOutcome{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (repo *MongoBookingRepo) BookTransactionally(
	ctx context.Context,
	testID primitive.ObjectID,
	date string,
	appt *models.Appointment,
) (*models.BookingResult, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.txnTimeout)
	defer cancel()

	client := repo.testColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(context.Background())

	result := &models.BookingResult{}
	txnFn := func(sc mongo.SessionContext) error {
		res, err := repo.testColl.UpdateOne(sc, SlotFilter(testID, date), SlotDecrement())
		if err != nil {
			return fmt.Errorf("slot decrement failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrSlotUnavailable
		}
		result.MatchedCount = res.MatchedCount
		result.ModifiedCount = res.ModifiedCount

		inserted, err := repo.appointmentColl.InsertOne(sc, appt)
		if err != nil {
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		appt.ID, _ = inserted.InsertedID.(primitive.ObjectID)
		return nil
	}

	txnOpts := options.Transaction().SetMaxCommitTime(&repo.txnTimeout)
	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(txnOpts); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(context.Background())
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrSlotUnavailable) {
			return nil, ErrSlotUnavailable
		}
		return nil, fmt.Errorf("booking transaction failed: %w", err)
	}

	result.InsertedID = appt.ID
	result.Acknowledged = true
	result.Appointment = appt
	return result, nil
}
