package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/codementee/codementee-api/databases"
	"github.com/codementee/codementee-api/databases/mocks"
	"github.com/codementee/codementee-api/models"
)

func TestSlotDatabase_FindOne(t *testing.T) {

	// define variables for interfaces
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var srHelperErr databases.SingleResultHelper
	var srHelperCorrect databases.SingleResultHelper

	// set interfaces implementation to mocked structures
	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	srHelperErr = &mocks.SingleResultHelper{}
	srHelperCorrect = &mocks.SingleResultHelper{}

	srHelperErr.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(errors.New("mocked-error"))

	srHelperCorrect.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*models.TimeSlot)
		arg.ID = "mocked-slot"
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"error": true}).
		Return(srHelperErr)

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"error": false}).
		Return(srHelperCorrect)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "time_slots").Return(collectionHelper)

	slotDba := databases.NewSlotDatabase(dbHelper)

	slot, err := slotDba.FindOne(context.Background(), bson.M{"error": true})
	assert.Empty(t, slot)
	assert.EqualError(t, err, "mocked-error")

	slot, err = slotDba.FindOne(context.Background(), bson.M{"error": false})
	assert.Equal(t, &models.TimeSlot{ID: "mocked-slot"}, slot)
	assert.NoError(t, err)
}

func TestSlotDatabase_CountAvailable(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.On("CountDocuments", mock.Anything, bson.M{
		"id":     bson.M{"$in": []string{"slot-1", "slot-2"}},
		"status": models.SlotAvailable,
	}).Return(int64(1), nil)
	dbHelper.On("Collection", "time_slots").Return(collectionHelper)

	slotDba := databases.NewSlotDatabase(dbHelper)

	count, err := slotDba.CountAvailable(context.Background(), []string{"slot-1", "slot-2"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSlotDatabase_MarkBooked_LostRace(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	srHelper := &mocks.SingleResultHelper{}

	srHelper.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	collectionHelper.On("FindOneAndUpdate", mock.Anything,
		bson.M{"id": "slot-1", "status": models.SlotAvailable},
		bson.M{"$set": bson.M{"status": models.SlotBooked}},
		mock.Anything).Return(srHelper)
	dbHelper.On("Collection", "time_slots").Return(collectionHelper)

	slotDba := databases.NewSlotDatabase(dbHelper)

	slot, err := slotDba.MarkBooked(context.Background(), "slot-1")
	assert.Nil(t, slot)
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
}

func TestSlotDatabase_Release(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.On("UpdateOne", mock.Anything,
		bson.M{"id": "slot-1", "status": models.SlotBooked},
		bson.M{"$set": bson.M{"status": models.SlotAvailable}}).Return(int64(1), nil)
	dbHelper.On("Collection", "time_slots").Return(collectionHelper)

	slotDba := databases.NewSlotDatabase(dbHelper)

	err := slotDba.Release(context.Background(), "slot-1")
	assert.NoError(t, err)
	collectionHelper.AssertExpectations(t)
}
