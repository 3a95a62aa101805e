package databases

// go generate: mockery --name PaymentDatabase

import (
	"context"

	"github.com/codementee/codementee-api/models"
)

const paymentName = "payment_orders"

// PaymentDatabase contains the methods to use with the payment order database
type PaymentDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.PaymentOrder, error)
	InsertOne(ctx context.Context, order models.PaymentOrder) error
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) error
}

type paymentDatabase struct {
	db DatabaseHelper
}

// NewPaymentDatabase initializes a new instance of payment database with the provided db connection
func NewPaymentDatabase(db DatabaseHelper) PaymentDatabase {
	return &paymentDatabase{
		db: db,
	}
}

func (p *paymentDatabase) FindOne(ctx context.Context, filter interface{}) (*models.PaymentOrder, error) {
	order := &models.PaymentOrder{}
	err := p.db.Collection(paymentName).FindOne(ctx, filter).Decode(order)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (p *paymentDatabase) InsertOne(ctx context.Context, order models.PaymentOrder) error {
	_, err := p.db.Collection(paymentName).InsertOne(ctx, order)
	return err
}

func (p *paymentDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}) error {
	_, err := p.db.Collection(paymentName).UpdateOne(ctx, filter, update)
	return err
}
