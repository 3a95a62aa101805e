package databases

// go generate: mockery --name MockInterviewDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/codementee/codementee-api/models"
)

const mockName = "mocks"

// MockInterviewDatabase contains the methods to use with the mock interview database
type MockInterviewDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.MockInterview, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.MockInterview, error)
	InsertOne(ctx context.Context, mock models.MockInterview) error
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) error
}

type mockInterviewDatabase struct {
	db DatabaseHelper
}

// NewMockInterviewDatabase initializes a new instance of mock interview database with the provided db connection
func NewMockInterviewDatabase(db DatabaseHelper) MockInterviewDatabase {
	return &mockInterviewDatabase{
		db: db,
	}
}

func (m *mockInterviewDatabase) FindOne(ctx context.Context, filter interface{}) (*models.MockInterview, error) {
	mock := &models.MockInterview{}
	err := m.db.Collection(mockName).FindOne(ctx, filter).Decode(mock)
	if err != nil {
		return nil, err
	}
	return mock, nil
}

func (m *mockInterviewDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.MockInterview, error) {
	var mocks []models.MockInterview
	cur, err := m.db.Collection(mockName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&mocks)
	if err != nil {
		return nil, err
	}
	return mocks, nil
}

func (m *mockInterviewDatabase) InsertOne(ctx context.Context, mock models.MockInterview) error {
	_, err := m.db.Collection(mockName).InsertOne(ctx, mock)
	return err
}

func (m *mockInterviewDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}) error {
	_, err := m.db.Collection(mockName).UpdateOne(ctx, filter, update)
	return err
}
