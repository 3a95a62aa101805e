package databases

// go generate: mockery --name SlotDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/codementee/codementee-api/models"
)

const slotName = "time_slots"

// SlotDatabase contains the methods to use with the time slot pool
type SlotDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.TimeSlot, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.TimeSlot, error)
	InsertOne(ctx context.Context, slot models.TimeSlot) error
	CountAvailable(ctx context.Context, slotIDs []string) (int64, error)
	MarkBooked(ctx context.Context, slotID string) (*models.TimeSlot, error)
	Release(ctx context.Context, slotID string) error
}

type slotDatabase struct {
	db DatabaseHelper
}

// NewSlotDatabase initializes a new instance of slot database with the provided db connection
func NewSlotDatabase(db DatabaseHelper) SlotDatabase {
	return &slotDatabase{
		db: db,
	}
}

func (s *slotDatabase) FindOne(ctx context.Context, filter interface{}) (*models.TimeSlot, error) {
	slot := &models.TimeSlot{}
	err := s.db.Collection(slotName).FindOne(ctx, filter).Decode(slot)
	if err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *slotDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.TimeSlot, error) {
	var slots []models.TimeSlot
	cur, err := s.db.Collection(slotName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&slots)
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (s *slotDatabase) InsertOne(ctx context.Context, slot models.TimeSlot) error {
	_, err := s.db.Collection(slotName).InsertOne(ctx, slot)
	return err
}

// CountAvailable reports how many of the given slot ids are currently
// available. Submission is all-or-nothing: the caller compares the count
// against len(slotIDs).
func (s *slotDatabase) CountAvailable(ctx context.Context, slotIDs []string) (int64, error) {
	filter := bson.M{
		"id":     bson.M{"$in": slotIDs},
		"status": models.SlotAvailable,
	}
	return s.db.Collection(slotName).CountDocuments(ctx, filter)
}

// MarkBooked transitions a slot from available to booked, but only if it is
// currently available. A lost race surfaces as mongo.ErrNoDocuments.
func (s *slotDatabase) MarkBooked(ctx context.Context, slotID string) (*models.TimeSlot, error) {
	slot := &models.TimeSlot{}
	filter := bson.M{"id": slotID, "status": models.SlotAvailable}
	update := bson.M{"$set": bson.M{"status": models.SlotBooked}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.db.Collection(slotName).FindOneAndUpdate(ctx, filter, update, opts).Decode(slot)
	if err != nil {
		return nil, err
	}
	return slot, nil
}

// Release reverts a booked slot to available. Used only to compensate a
// partial allocation, never as part of a successful confirmation.
func (s *slotDatabase) Release(ctx context.Context, slotID string) error {
	filter := bson.M{"id": slotID, "status": models.SlotBooked}
	update := bson.M{"$set": bson.M{"status": models.SlotAvailable}}
	_, err := s.db.Collection(slotName).UpdateOne(ctx, filter, update)
	return err
}
