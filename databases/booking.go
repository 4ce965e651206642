package databases

// go generate: mockery --name BookingDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/musecoding/fleet-management-sytem/models"
)

const bookingCollectionName = "bookings"

// BookingDatabase contains the methods to use with the booking database.
// Bookings are never deleted, only created and read.
type BookingDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Booking, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Booking, error)
	InsertOne(ctx context.Context, booking models.Booking) (InsertOneResultHelper, error)
}

type bookingDatabase struct {
	db DatabaseHelper
}

// NewBookingDatabase initializes a new instance of booking database with the provided db connection
func NewBookingDatabase(db DatabaseHelper) BookingDatabase {
	return &bookingDatabase{
		db: db,
	}
}

func (b *bookingDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Booking, error) {
	booking := &models.Booking{}
	err := b.db.Collection(bookingCollectionName).FindOne(ctx, filter).Decode(&booking)
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (b *bookingDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Booking, error) {
	var bookings []models.Booking
	opts = append(opts, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	err := b.db.Collection(bookingCollectionName).Find(ctx, filter, opts...).Decode(&bookings)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (b *bookingDatabase) InsertOne(ctx context.Context, booking models.Booking) (InsertOneResultHelper, error) {
	return b.db.Collection(bookingCollectionName).InsertOne(ctx, booking)
}
