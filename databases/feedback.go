package databases

// go generate: mockery --name FeedbackDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/codementee/codementee-api/models"
)

const feedbackName = "feedbacks"

// FeedbackDatabase contains the methods to use with the feedback database
type FeedbackDatabase interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Feedback, error)
	InsertOne(ctx context.Context, feedback models.Feedback) error
}

type feedbackDatabase struct {
	db DatabaseHelper
}

// NewFeedbackDatabase initializes a new instance of feedback database with the provided db connection
func NewFeedbackDatabase(db DatabaseHelper) FeedbackDatabase {
	return &feedbackDatabase{
		db: db,
	}
}

func (f *feedbackDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	cur, err := f.db.Collection(feedbackName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&feedbacks)
	if err != nil {
		return nil, err
	}
	return feedbacks, nil
}

func (f *feedbackDatabase) InsertOne(ctx context.Context, feedback models.Feedback) error {
	_, err := f.db.Collection(feedbackName).InsertOne(ctx, feedback)
	return err
}
