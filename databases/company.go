package databases

// go generate: mockery --name CompanyDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/codementee/codementee-api/models"
)

const companyName = "companies"

// CompanyDatabase contains the methods to use with the company database
type CompanyDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Company, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Company, error)
	InsertOne(ctx context.Context, company models.Company) error
}

type companyDatabase struct {
	db DatabaseHelper
}

// NewCompanyDatabase initializes a new instance of company database with the provided db connection
func NewCompanyDatabase(db DatabaseHelper) CompanyDatabase {
	return &companyDatabase{
		db: db,
	}
}

func (c *companyDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Company, error) {
	company := &models.Company{}
	err := c.db.Collection(companyName).FindOne(ctx, filter).Decode(company)
	if err != nil {
		return nil, err
	}
	return company, nil
}

func (c *companyDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Company, error) {
	var companies []models.Company
	cur, err := c.db.Collection(companyName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&companies)
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (c *companyDatabase) InsertOne(ctx context.Context, company models.Company) error {
	_, err := c.db.Collection(companyName).InsertOne(ctx, company)
	return err
}
