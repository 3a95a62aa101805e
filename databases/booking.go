package databases

// go generate: mockery --name BookingDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/codementee/codementee-api/models"
)

const bookingName = "booking_requests"

// BookingDatabase contains the methods to use with the booking request ledger
type BookingDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.BookingRequest, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.BookingRequest, error)
	InsertOne(ctx context.Context, request models.BookingRequest) error
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) error
	ConfirmPending(ctx context.Context, requestID string, set bson.M) (*models.BookingRequest, error)
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

func (b *bookingDatabase) FindOne(ctx context.Context, filter interface{}) (*models.BookingRequest, error) {
	request := &models.BookingRequest{}
	err := b.db.Collection(bookingName).FindOne(ctx, filter).Decode(request)
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (b *bookingDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.BookingRequest, error) {
	var requests []models.BookingRequest
	cur, err := b.db.Collection(bookingName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&requests)
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (b *bookingDatabase) InsertOne(ctx context.Context, request models.BookingRequest) error {
	_, err := b.db.Collection(bookingName).InsertOne(ctx, request)
	return err
}

func (b *bookingDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}) error {
	_, err := b.db.Collection(bookingName).UpdateOne(ctx, filter, update)
	return err
}

// ConfirmPending flips a booking request from pending to confirmed, applying
// the given $set fields, but only if it is still pending. A request already
// processed by a concurrent confirmation surfaces as mongo.ErrNoDocuments.
func (b *bookingDatabase) ConfirmPending(ctx context.Context, requestID string, set bson.M) (*models.BookingRequest, error) {
	request := &models.BookingRequest{}
	filter := bson.M{"id": requestID, "status": models.BookingPending}
	update := bson.M{"$set": set}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := b.db.Collection(bookingName).FindOneAndUpdate(ctx, filter, update, opts).Decode(request)
	if err != nil {
		return nil, err
	}
	return request, nil
}
