package databases

// go generate: mockery --name PricingDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/codementee/codementee-api/models"
)

const pricingName = "pricing_plans"

// PricingDatabase contains the methods to use with the pricing plan database
type PricingDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.PricingPlan, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.PricingPlan, error)
}

type pricingDatabase struct {
	db DatabaseHelper
}

// NewPricingDatabase initializes a new instance of pricing database with the provided db connection
func NewPricingDatabase(db DatabaseHelper) PricingDatabase {
	return &pricingDatabase{
		db: db,
	}
}

func (p *pricingDatabase) FindOne(ctx context.Context, filter interface{}) (*models.PricingPlan, error) {
	plan := &models.PricingPlan{}
	err := p.db.Collection(pricingName).FindOne(ctx, filter).Decode(plan)
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (p *pricingDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.PricingPlan, error) {
	var plans []models.PricingPlan
	cur, err := p.db.Collection(pricingName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&plans)
	if err != nil {
		return nil, err
	}
	return plans, nil
}
