package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/codementee/codementee-api/api"
	"github.com/codementee/codementee-api/config"
	"github.com/codementee/codementee-api/databases"
	"github.com/codementee/codementee-api/models"
	templates "github.com/codementee/codementee-api/templates/html"
)

// Payment exported for testing purposes
type Payment struct {
	DB     databases.PaymentDatabase
	PDB    databases.PricingDatabase
	UDB    databases.UserDatabase
	Config config.Config
}

type createCheckoutSessionRequest struct {
	PlanID string `json:"plan_id"`
}

type verifyPaymentRequest struct {
	SessionID string `json:"session_id"`
}

// CreateCheckoutSessionHandler starts a stripe checkout for a pricing plan
// and records a payment order in the created state
func (p Payment) CreateCheckoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := api.ActorFromContext(r.Context())
	if !ok {
		config.ErrorStatus("no authenticated actor", http.StatusUnauthorized, w, fmt.Errorf("missing actor"))
		return
	}

	var req createCheckoutSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.PlanID == "" {
		config.ErrorStatus("plan_id is required", http.StatusBadRequest, w, fmt.Errorf("missing plan_id"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	plan, err := p.PDB.FindOne(ctx, bson.M{"plan_id": req.PlanID, "is_active": true})
	if err != nil {
		config.ErrorStatus("pricing plan not found", http.StatusNotFound, w, err)
		return
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("inr"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(plan.Name),
					},
					UnitAmount: stripe.Int64(plan.Price),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.Config.BaseURL + "/payments/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(p.Config.BaseURL + "/payments/cancel"),
	}
	s, err := session.New(params)
	if err != nil {
		config.ErrorStatus("failed to create checkout session", http.StatusInternalServerError, w, err)
		return
	}

	order := models.PaymentOrder{
		ID:        uuid.New().String(),
		UserID:    actor.ID,
		PlanID:    plan.PlanID,
		Amount:    plan.Price,
		Currency:  "inr",
		SessionID: s.ID,
		Status:    models.PaymentCreated,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := p.DB.InsertOne(ctx, order); err != nil {
		config.ErrorStatus("failed to record payment order", http.StatusInternalServerError, w, err)
		return
	}

	b, _ := json.Marshal(map[string]string{
		"order_id":     order.ID,
		"session_id":   s.ID,
		"checkout_url": s.URL,
	})
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// VerifyPaymentHandler checks a checkout session with stripe and, when paid,
// activates the plan on the mentee's account
func (p Payment) VerifyPaymentHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := api.ActorFromContext(r.Context())
	if !ok {
		config.ErrorStatus("no authenticated actor", http.StatusUnauthorized, w, fmt.Errorf("missing actor"))
		return
	}

	var req verifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	order, err := p.DB.FindOne(ctx, bson.M{"session_id": req.SessionID, "user_id": actor.ID})
	if err != nil {
		config.ErrorStatus("payment order not found", http.StatusNotFound, w, err)
		return
	}
	if order.Status == models.PaymentPaid {
		b, _ := json.Marshal(map[string]string{"order_id": order.ID, "status": order.Status})
		w.WriteHeader(http.StatusOK)
		w.Write(b)
		return
	}

	s, err := session.Get(req.SessionID, nil)
	if err != nil {
		config.ErrorStatus("failed to retrieve checkout session", http.StatusInternalServerError, w, err)
		return
	}
	if s.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		config.ErrorStatus("payment not completed", http.StatusBadRequest, w,
			fmt.Errorf("payment status is %s", s.PaymentStatus))
		return
	}

	plan, err := p.PDB.FindOne(ctx, bson.M{"plan_id": order.PlanID})
	if err != nil {
		config.ErrorStatus("pricing plan not found", http.StatusNotFound, w, err)
		return
	}

	err = p.DB.UpdateOne(ctx, bson.M{"id": order.ID}, bson.M{"$set": bson.M{
		"status":  models.PaymentPaid,
		"paid_at": time.Now().UTC().Format(time.RFC3339),
	}})
	if err != nil {
		config.ErrorStatus("failed to update payment order", http.StatusInternalServerError, w, err)
		return
	}

	err = p.UDB.UpdateOne(ctx, bson.M{"id": actor.ID}, bson.M{"$set": bson.M{
		"plan_id":   plan.PlanID,
		"plan_name": plan.Name,
	}})
	if err != nil {
		config.ErrorStatus("failed to activate plan", http.StatusInternalServerError, w, err)
		return
	}

	zap.S().Infow("plan activated",
		"user_id", actor.ID,
		"plan_id", plan.PlanID,
		"order_id", order.ID)

	html := templates.RenderPaymentReceiptEmail(plan.Name, plan.Price)
	sendEmailAsync(actor.Email, actor.Name, "Payment Successful",
		fmt.Sprintf("Your payment for the %s plan was successful.", plan.Name), html)

	b, _ := json.Marshal(map[string]string{
		"order_id":  order.ID,
		"status":    models.PaymentPaid,
		"plan_id":   plan.PlanID,
		"plan_name": plan.Name,
	})
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
