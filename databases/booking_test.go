package databases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/codementee/codementee-api/databases"
	"github.com/codementee/codementee-api/databases/mocks"
	"github.com/codementee/codementee-api/models"
)

func TestBookingDatabase_ConfirmPending(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	srHelper := &mocks.SingleResultHelper{}

	set := bson.M{"status": models.BookingConfirmed, "confirmed_slot": "slot-1"}

	srHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*models.BookingRequest)
		arg.ID = "req-1"
		arg.Status = models.BookingConfirmed
	})
	collectionHelper.On("FindOneAndUpdate", mock.Anything,
		bson.M{"id": "req-1", "status": models.BookingPending},
		bson.M{"$set": set},
		mock.Anything).Return(srHelper)
	dbHelper.On("Collection", "booking_requests").Return(collectionHelper)

	bookingDba := databases.NewBookingDatabase(dbHelper)

	request, err := bookingDba.ConfirmPending(context.Background(), "req-1", set)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, request.Status)
}

func TestBookingDatabase_ConfirmPending_AlreadyProcessed(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	srHelper := &mocks.SingleResultHelper{}

	srHelper.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	collectionHelper.On("FindOneAndUpdate", mock.Anything,
		bson.M{"id": "req-1", "status": models.BookingPending},
		mock.Anything, mock.Anything).Return(srHelper)
	dbHelper.On("Collection", "booking_requests").Return(collectionHelper)

	bookingDba := databases.NewBookingDatabase(dbHelper)

	request, err := bookingDba.ConfirmPending(context.Background(), "req-1", bson.M{"status": models.BookingConfirmed})
	assert.Nil(t, request)
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
}
