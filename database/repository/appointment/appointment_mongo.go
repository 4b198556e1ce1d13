package appointmentRepo

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

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

func NewMongoAppointmentRepo(db *mongo.Database) *MongoAppointmentRepo {
	return &MongoAppointmentRepo{coll: db.Collection(database.AppointmentsCollection)}
}

func (r *MongoAppointmentRepo) ListByEmail(ctx context.Context, email string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *MongoAppointmentRepo) ListAll(ctx context.Context) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoAppointmentRepo) ListDelivered(ctx context.Context, email string) ([]models.Appointment, error) {
	return r.find(ctx, DeliveredFilter(email))
}

// DeliveredFilter matches one user's appointments with a delivered report.
func DeliveredFilter(email string) bson.M {
	return bson.M{"email": email, "reportStatus": models.ReportStatusDelivered}
}

func (r *MongoAppointmentRepo) find(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "appointmentDate", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer cursor.Close(ctx)

	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appointments, nil
}

func (r *MongoAppointmentRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&appt); err != nil {
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id.Hex(), err)
	}
	return &appt, nil
}

func (r *MongoAppointmentRepo) Cancel(ctx context.Context, id primitive.ObjectID, email string) (models.UpdateOutcome, error) {
	return r.updateOne(ctx, bson.M{"_id": id, "email": email}, bson.M{"$set": bson.M{"testStatus": models.TestStatusCanceled}})
}

func (r *MongoAppointmentRepo) DeliverReport(ctx context.Context, id primitive.ObjectID, reportLink string) (models.UpdateOutcome, error) {
	update := bson.M{"$set": bson.M{
		"testStatus":   models.TestStatusDone,
		"reportStatus": models.ReportStatusDelivered,
		"reportLink":   reportLink,
	}}
	return r.updateOne(ctx, bson.M{"_id": id}, update)
}

func (r *MongoAppointmentRepo) MarkReminderSent(ctx context.Context, id primitive.ObjectID, at time.Time) (models.UpdateOutcome, error) {
	filter := bson.M{"_id": id, "testStatus": bson.M{"$ne": models.TestStatusCanceled}}
	return r.updateOne(ctx, filter, bson.M{"$set": bson.M{"reminderSentAt": at}})
}

func (r *MongoAppointmentRepo) updateOne(ctx context.Context, filter, update bson.M) (models.UpdateOutcome, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return models.UpdateOutcome{}, fmt.Errorf("failed to update appointment: %w", err)
	}
	return models.UpdateOutcome{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *MongoAppointmentRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.coll.EstimatedDocumentCount(ctx)
}

// EnsureIndexes creates the owner index used by every self-service query.
func (r *MongoAppointmentRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "reportStatus", Value: 1}}},
		{Keys: bson.D{{Key: "testId", Value: 1}, {Key: "appointmentDate", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
