package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/codementee/codementee-api/api"
	"github.com/codementee/codementee-api/api/scheduler"
	"github.com/codementee/codementee-api/config"
	"github.com/codementee/codementee-api/databases"
	"github.com/codementee/codementee-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Scheduler *scheduler.Scheduler
	dbHelper  databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareJWT{Secret: a.Config.JWTSecret}
	m.SetupGoGuardian()

	r := mux.NewRouter()

	auth := Auth{DB: databases.NewUserDatabase(a.dbHelper), Config: a.Config}
	u := User{DB: databases.NewUserDatabase(a.dbHelper)}
	s := Slot{DB: databases.NewSlotDatabase(a.dbHelper)}
	ml := MeetLink{DB: databases.NewMeetLinkDatabase(a.dbHelper)}
	b := Booking{
		DB:  databases.NewBookingDatabase(a.dbHelper),
		SDB: databases.NewSlotDatabase(a.dbHelper),
		LDB: databases.NewMeetLinkDatabase(a.dbHelper),
		MDB: databases.NewMockInterviewDatabase(a.dbHelper),
		UDB: databases.NewUserDatabase(a.dbHelper),
		CDB: databases.NewCompanyDatabase(a.dbHelper),
	}
	mock := Mock{DB: databases.NewMockInterviewDatabase(a.dbHelper), UDB: databases.NewUserDatabase(a.dbHelper)}
	f := Feedback{DB: databases.NewFeedbackDatabase(a.dbHelper), MDB: databases.NewMockInterviewDatabase(a.dbHelper)}
	c := Company{DB: databases.NewCompanyDatabase(a.dbHelper)}
	pr := Pricing{DB: databases.NewPricingDatabase(a.dbHelper)}
	pay := Payment{
		DB:     databases.NewPaymentDatabase(a.dbHelper),
		PDB:    databases.NewPricingDatabase(a.dbHelper),
		UDB:    databases.NewUserDatabase(a.dbHelper),
		Config: a.Config,
	}
	cloudinaryHandler := CloudinaryHandler{}

	protect := func(h http.HandlerFunc, roles ...models.Role) http.Handler {
		if len(roles) == 0 {
			return api.Middleware(http.HandlerFunc(h))
		}
		return api.Middleware(api.RequireRole(http.HandlerFunc(h), roles...))
	}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(api.TimeoutMiddleware(30 * time.Second))

	apiCreate.Handle("/auth/register", http.HandlerFunc(auth.RegisterHandler)).Methods("POST")
	apiCreate.Handle("/auth/login", http.HandlerFunc(auth.LoginHandler)).Methods("POST")
	apiCreate.Handle("/auth/me", protect(auth.MeHandler)).Methods("GET")

	apiCreate.Handle("/admin/mentees", protect(u.MenteesHandler, models.RoleAdmin)).Methods("GET")
	apiCreate.Handle("/admin/mentors", protect(u.MentorsHandler, models.RoleAdmin)).Methods("GET")
	apiCreate.Handle("/admin/assign-mentor", protect(u.AssignMentorHandler, models.RoleAdmin)).Methods("POST")
	apiCreate.Handle("/admin/mentee/{mentee_id}/status", protect(u.UpdateMenteeStatusHandler, models.RoleAdmin)).Methods("PUT")

	apiCreate.Handle("/admin/slots", protect(s.CreateSlotHandler, models.RoleAdmin)).Methods("POST")
	apiCreate.Handle("/admin/slots/bulk", protect(s.CreateSlotsBulkHandler, models.RoleAdmin)).Methods("POST")
	apiCreate.Handle("/admin/slots", protect(s.SlotsHandler, models.RoleAdmin)).Methods("GET")

	apiCreate.Handle("/admin/meet-links", protect(ml.CreateMeetLinkHandler, models.RoleAdmin)).Methods("POST")
	apiCreate.Handle("/admin/meet-links", protect(ml.MeetLinksHandler, models.RoleAdmin)).Methods("GET")
	apiCreate.Handle("/admin/meet-links/{link_id}/release", protect(ml.ReleaseMeetLinkHandler, models.RoleAdmin)).Methods("PUT")

	apiCreate.Handle("/admin/booking-requests", protect(b.BookingRequestsHandler, models.RoleAdmin)).Methods("GET")
	apiCreate.Handle("/admin/confirm-booking", protect(b.AdminConfirmBookingHandler, models.RoleAdmin)).Methods("POST")
	apiCreate.Handle("/admin/mocks", protect(mock.MocksHandler, models.RoleAdmin)).Methods("GET")
	apiCreate.Handle("/admin/mock/{mock_id}/complete", protect(mock.CompleteMockHandler, models.RoleAdmin)).Methods("PUT")
	apiCreate.Handle("/admin/feedbacks", protect(f.FeedbacksHandler, models.RoleAdmin)).Methods("GET")
	apiCreate.Handle("/admin/companies", protect(c.CreateCompanyHandler, models.RoleAdmin)).Methods("POST")

	apiCreate.Handle("/mentee/slots", protect(s.AvailableSlotsHandler, models.RoleMentee)).Methods("GET")
	apiCreate.Handle("/mentee/booking-request", protect(b.SubmitBookingRequestHandler, models.RoleMentee)).Methods("POST")
	apiCreate.Handle("/mentee/booking-requests", protect(b.BookingRequestsHandler, models.RoleMentee)).Methods("GET")
	apiCreate.Handle("/mentee/feedbacks", protect(f.FeedbacksHandler, models.RoleMentee)).Methods("GET")

	apiCreate.Handle("/mentor/booking-requests", protect(b.BookingRequestsHandler, models.RoleMentor)).Methods("GET")
	apiCreate.Handle("/mentor/confirm-booking", protect(b.ConfirmBookingHandler, models.RoleMentor)).Methods("POST")
	apiCreate.Handle("/mentor/feedback", protect(f.SubmitFeedbackHandler, models.RoleMentor, models.RoleAdmin)).Methods("POST")
	apiCreate.Handle("/mentor/feedbacks", protect(f.FeedbacksHandler, models.RoleMentor)).Methods("GET")

	apiCreate.Handle("/mocks", protect(mock.CreateMockHandler, models.RoleAdmin, models.RoleMentor)).Methods("POST")
	apiCreate.Handle("/mocks", protect(mock.MocksHandler)).Methods("GET")

	apiCreate.Handle("/companies", protect(c.CompaniesHandler)).Methods("GET")
	apiCreate.Handle("/pricing-plans", http.HandlerFunc(pr.PricingPlansHandler)).Methods("GET")

	apiCreate.Handle("/payments/create-checkout-session", protect(pay.CreateCheckoutSessionHandler, models.RoleMentee)).Methods("POST")
	apiCreate.Handle("/payments/verify", protect(pay.VerifyPaymentHandler, models.RoleMentee)).Methods("POST")

	apiCreate.Handle("/generate-signature", protect(cloudinaryHandler.GenerateSignature, models.RoleAdmin)).Methods("POST")

	r.HandleFunc("/ws/notifications", HandleNotificationsWebSocket)

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("codementee-api has connected to the database")

	// initialize stripe
	stripeKey := os.Getenv("STRIPE_SECRET_KEY")
	if stripeKey == "" {
		return fmt.Errorf("stripe secret key is not set")
	}
	stripe.Key = stripeKey

	// initialize api router
	a.initializeRoutes()

	// background jobs
	a.Scheduler = scheduler.NewScheduler(
		databases.NewMockInterviewDatabase(a.dbHelper),
		databases.NewMeetLinkDatabase(a.dbHelper),
		databases.NewUserDatabase(a.dbHelper),
	)
	a.Scheduler.Start()

	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
