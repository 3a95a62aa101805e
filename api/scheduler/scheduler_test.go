package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/codementee/codementee-api/databases/mocks"
	"github.com/codementee/codementee-api/models"
)

func TestCheckStaleMeetLinks_WarnsWithoutReleasing(t *testing.T) {
	linkDB := &mocks.MeetLinkDatabase{}
	mockDB := &mocks.MockInterviewDatabase{}

	past := time.Now().UTC().Add(-2 * time.Hour).Format(time.RFC3339)
	linkDB.On("Find", mock.Anything, bson.M{"status": models.LinkInUse}).Return([]models.MeetLink{
		{ID: "link-1", Status: models.LinkInUse, CurrentBookingID: "req-1"},
		{ID: "link-2", Status: models.LinkInUse},
	}, nil)
	mockDB.On("FindOne", mock.Anything, bson.M{"booking_request_id": "req-1"}).Return(&models.MockInterview{
		ID: "mock-1", BookingRequestID: "req-1", ScheduledAt: past,
	}, nil)

	s := NewScheduler(mockDB, linkDB, nil)
	s.checkStaleMeetLinks()

	// turnover stays a manual admin action
	linkDB.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	mockDB.AssertNumberOfCalls(t, "FindOne", 1)
}

func TestSendInterviewReminders_OnlyWithinNext24Hours(t *testing.T) {
	t.Setenv("SENDGRID_API_KEY", "")

	mockDB := &mocks.MockInterviewDatabase{}
	userDB := &mocks.UserDatabase{}

	now := time.Now().UTC()
	mockDB.On("Find", mock.Anything, bson.M{"status": models.MockScheduled}).Return([]models.MockInterview{
		{ID: "mock-past", MenteeID: "mentee-1", MentorID: "mentor-1",
			ScheduledAt: now.Add(-1 * time.Hour).Format(time.RFC3339)},
		{ID: "mock-soon", MenteeID: "mentee-2", MentorID: "mentor-2",
			ScheduledAt: now.Add(3 * time.Hour).Format(time.RFC3339)},
		{ID: "mock-far", MenteeID: "mentee-3", MentorID: "mentor-3",
			ScheduledAt: now.Add(72 * time.Hour).Format(time.RFC3339)},
	}, nil)
	userDB.On("FindOne", mock.Anything, bson.M{"id": "mentee-2"}).Return(&models.User{
		ID: "mentee-2", Name: "Asha", Email: "asha@example.com",
	}, nil)
	userDB.On("FindOne", mock.Anything, bson.M{"id": "mentor-2"}).Return(&models.User{
		ID: "mentor-2", Name: "Priya", Email: "priya@example.com",
	}, nil)

	s := NewScheduler(mockDB, nil, userDB)
	s.sendInterviewReminders()

	userDB.AssertNumberOfCalls(t, "FindOne", 2)
	userDB.AssertExpectations(t)
}

func TestRemindParticipant_SkipsEmptyAndMissingUsers(t *testing.T) {
	t.Setenv("SENDGRID_API_KEY", "")

	userDB := &mocks.UserDatabase{}
	userDB.On("FindOne", mock.Anything, bson.M{"id": "user-404"}).Return(nil, mongo.ErrNoDocuments)

	s := NewScheduler(nil, nil, userDB)

	s.remindParticipant(context.Background(), "", models.MockInterview{ID: "mock-1"})
	userDB.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)

	s.remindParticipant(context.Background(), "user-404", models.MockInterview{ID: "mock-1"})
	userDB.AssertNumberOfCalls(t, "FindOne", 1)
}

func TestSchedulerStartStop(t *testing.T) {
	s := NewScheduler(&mocks.MockInterviewDatabase{}, &mocks.MeetLinkDatabase{}, &mocks.UserDatabase{})
	s.Start()
	assert.NotNil(t, s.cron)
	s.Stop()
}
