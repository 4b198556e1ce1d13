package cmd

import (
	"context"
	"fmt"

	"medicare/config"
	"medicare/database"
	appointmentRepo "medicare/database/repository/appointment"
	bannerRepo "medicare/database/repository/banner"
	bookingRepo "medicare/database/repository/booking"
	catalogRepo "medicare/database/repository/catalog"
	locationRepo "medicare/database/repository/location"
	paymentRepo "medicare/database/repository/payment"
	userRepo "medicare/database/repository/user"
	"medicare/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// app holds the connections and repositories every command shares.
type app struct {
	mongo *mongo.Client
	cache *redis.Client

	users        *userRepo.MongoUserRepo
	tests        *catalogRepo.MongoTestRepo
	bookings     *bookingRepo.MongoBookingRepo
	appointments *appointmentRepo.MongoAppointmentRepo
	banners      *bannerRepo.MongoBannerRepo
	payments     *paymentRepo.MongoPaymentRepo
	locations    *locationRepo.MongoLocationRepo
}

func newApp(ctx context.Context) (*app, error) {
	client, err := database.Connect(ctx)
	if err != nil {
		return nil, err
	}
	cache, err := utils.NewRedisClient(ctx, config.AppConfig.RedisCacheDB)
	if err != nil {
		_ = database.Disconnect(client)
		return nil, fmt.Errorf("redis cache: %w", err)
	}

	db := database.Database(client)
	txnTimeout := config.AppConfig.TxnTimeout
	return &app{
		mongo:        client,
		cache:        cache,
		users:        userRepo.NewMongoUserRepo(db),
		tests:        catalogRepo.NewMongoTestRepo(db),
		bookings:     bookingRepo.NewMongoBookingRepo(db, txnTimeout),
		appointments: appointmentRepo.NewMongoAppointmentRepo(db),
		banners:      bannerRepo.NewMongoBannerRepo(db, txnTimeout),
		payments:     paymentRepo.NewMongoPaymentRepo(db),
		locations:    locationRepo.NewMongoLocationRepo(db),
	}, nil
}

func (a *app) Close() {
	if a.cache != nil {
		_ = a.cache.Close()
	}
	if err := database.Disconnect(a.mongo); err != nil {
		utils.GetLogger().Warn("Mongo disconnect failed", zap.Error(err))
	}
}
