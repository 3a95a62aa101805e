package databases

// go generate: mockery --name MeetLinkDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/codementee/codementee-api/models"
)

const meetLinkName = "meet_links"

// MeetLinkDatabase contains the methods to use with the meet link pool
type MeetLinkDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.MeetLink, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.MeetLink, error)
	InsertOne(ctx context.Context, link models.MeetLink) error
	ClaimAvailable(ctx context.Context, bookingID string) (*models.MeetLink, error)
	Release(ctx context.Context, linkID string) error
}

type meetLinkDatabase struct {
	db DatabaseHelper
}

// NewMeetLinkDatabase initializes a new instance of meet link database with the provided db connection
func NewMeetLinkDatabase(db DatabaseHelper) MeetLinkDatabase {
	return &meetLinkDatabase{
		db: db,
	}
}

func (m *meetLinkDatabase) FindOne(ctx context.Context, filter interface{}) (*models.MeetLink, error) {
	link := &models.MeetLink{}
	err := m.db.Collection(meetLinkName).FindOne(ctx, filter).Decode(link)
	if err != nil {
		return nil, err
	}
	return link, nil
}

func (m *meetLinkDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.MeetLink, error) {
	var links []models.MeetLink
	cur, err := m.db.Collection(meetLinkName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&links)
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (m *meetLinkDatabase) InsertOne(ctx context.Context, link models.MeetLink) error {
	_, err := m.db.Collection(meetLinkName).InsertOne(ctx, link)
	return err
}

// ClaimAvailable atomically claims one available link for the given booking
// request. Oldest link wins the tie-break so claims stay deterministic within
// a process. Pool exhaustion surfaces as mongo.ErrNoDocuments.
func (m *meetLinkDatabase) ClaimAvailable(ctx context.Context, bookingID string) (*models.MeetLink, error) {
	link := &models.MeetLink{}
	filter := bson.M{"status": models.LinkAvailable}
	update := bson.M{"$set": bson.M{
		"status":             models.LinkInUse,
		"current_booking_id": bookingID,
	}}
	opts := options.FindOneAndUpdate().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetReturnDocument(options.After)
	err := m.db.Collection(meetLinkName).FindOneAndUpdate(ctx, filter, update, opts).Decode(link)
	if err != nil {
		return nil, err
	}
	return link, nil
}

// Release resets a link to available and clears its claim. Invoked by the
// admin turnover endpoint and by allocation rollback, never by a successful
// confirmation.
func (m *meetLinkDatabase) Release(ctx context.Context, linkID string) error {
	filter := bson.M{"id": linkID}
	update := bson.M{
		"$set":   bson.M{"status": models.LinkAvailable},
		"$unset": bson.M{"current_booking_id": ""},
	}
	_, err := m.db.Collection(meetLinkName).UpdateOne(ctx, filter, update)
	return err
}
