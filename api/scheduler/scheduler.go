package scheduler

import (
	"context"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/codementee/codementee-api/databases"
	"github.com/codementee/codementee-api/models"
	templates "github.com/codementee/codementee-api/templates/html"
)

// Scheduler handles periodic background jobs for the booking subsystem
type Scheduler struct {
	cron *cron.Cron
	MDB  databases.MockInterviewDatabase
	LDB  databases.MeetLinkDatabase
	UDB  databases.UserDatabase
}

// NewScheduler creates a new scheduler instance
func NewScheduler(mDB databases.MockInterviewDatabase, lDB databases.MeetLinkDatabase, uDB databases.UserDatabase) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(time.UTC)),
		MDB:  mDB,
		LDB:  lDB,
		UDB:  uDB,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Warn about meet links still held after their interview happened, hourly
	_, err := s.cron.AddFunc("0 * * * *", s.checkStaleMeetLinks)
	if err != nil {
		zap.S().Errorw("failed to register stale meet link job", "error", err)
	}

	// Send interview reminders daily at 6 AM UTC
	_, err = s.cron.AddFunc("0 6 * * *", s.sendInterviewReminders)
	if err != nil {
		zap.S().Errorw("failed to register interview reminder job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Booking scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Booking scheduler stopped")
}

// checkStaleMeetLinks flags links held in_use past their interview's
// scheduled time. Turnover is a manual admin action, so the job only warns:
// a shrinking available pool is a capacity risk, not an error to auto-fix.
func (s *Scheduler) checkStaleMeetLinks() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	links, err := s.LDB.Find(ctx, bson.M{"status": models.LinkInUse})
	if err != nil {
		zap.S().Errorw("failed to find in_use meet links", "error", err)
		return
	}

	now := time.Now().UTC()
	stale := 0
	for _, link := range links {
		if link.CurrentBookingID == "" {
			continue
		}
		mock, err := s.MDB.FindOne(ctx, bson.M{"booking_request_id": link.CurrentBookingID})
		if err != nil {
			continue
		}
		scheduledAt, err := time.Parse(time.RFC3339, mock.ScheduledAt)
		if err != nil {
			continue
		}
		if scheduledAt.Before(now) {
			stale++
			zap.S().Warnw("meet link held past its interview time",
				"link_id", link.ID,
				"booking_request_id", link.CurrentBookingID,
				"scheduled_at", mock.ScheduledAt)
		}
	}
	if stale > 0 {
		zap.S().Warnw("stale meet links reduce available capacity",
			"stale", stale,
			"in_use", len(links))
	}
}

// sendInterviewReminders emails both participants of every mock interview
// scheduled within the next 24 hours
func (s *Scheduler) sendInterviewReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	mocks, err := s.MDB.Find(ctx, bson.M{"status": models.MockScheduled})
	if err != nil {
		zap.S().Errorw("failed to find scheduled mock interviews", "error", err)
		return
	}

	now := time.Now().UTC()
	cutoff := now.Add(24 * time.Hour)
	for _, mock := range mocks {
		scheduledAt, err := time.Parse(time.RFC3339, mock.ScheduledAt)
		if err != nil {
			continue
		}
		if scheduledAt.Before(now) || scheduledAt.After(cutoff) {
			continue
		}
		s.remindParticipant(ctx, mock.MenteeID, mock)
		s.remindParticipant(ctx, mock.MentorID, mock)
	}
}

func (s *Scheduler) remindParticipant(ctx context.Context, userID string, mock models.MockInterview) {
	if userID == "" {
		return
	}
	user, err := s.UDB.FindOne(ctx, bson.M{"id": userID})
	if err != nil {
		zap.S().Errorw("failed to find reminder recipient",
			"user_id", userID,
			"error", err)
		return
	}
	if err := sendReminderEmail(user.Email, user.Name, mock); err != nil {
		zap.S().Errorw("failed to send reminder email",
			"user_id", userID,
			"mock_id", mock.ID,
			"error", err)
	}
}

func sendReminderEmail(toEmail, toName string, mock models.MockInterview) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		zap.S().Debugw("sendgrid api key not set, skipping reminder", "to", toEmail)
		return nil
	}

	from := mail.NewEmail("Codementee", "no-reply@codementee.com")
	to := mail.NewEmail(toName, toEmail)
	html := templates.RenderInterviewReminderEmail(mock.ScheduledAt, mock.MeetLink)
	plain := "You have a mock interview scheduled at " + mock.ScheduledAt
	msg := mail.NewSingleEmail(from, "Mock Interview Reminder", to, plain, html)
	client := sendgrid.NewSendClient(apiKey)
	_, err := client.Send(msg)
	return err
}
