package databases

// go generate: mockery --name FuelConsumptionDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/musecoding/fleet-management-sytem/models"
)

const fuelCollectionName = "fuel_consumptions"

// FuelConsumptionDatabase contains the methods to use with the fuel consumption database
type FuelConsumptionDatabase interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.FuelConsumption, error)
	InsertOne(ctx context.Context, fuel models.FuelConsumption) (InsertOneResultHelper, error)
}

type fuelConsumptionDatabase struct {
	db DatabaseHelper
}

// NewFuelConsumptionDatabase initializes a new instance of fuel consumption database with the provided db connection
func NewFuelConsumptionDatabase(db DatabaseHelper) FuelConsumptionDatabase {
	return &fuelConsumptionDatabase{
		db: db,
	}
}

func (f *fuelConsumptionDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.FuelConsumption, error) {
	var fuels []models.FuelConsumption
	opts = append(opts, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	err := f.db.Collection(fuelCollectionName).Find(ctx, filter, opts...).Decode(&fuels)
	if err != nil {
		return nil, err
	}
	return fuels, nil
}

func (f *fuelConsumptionDatabase) InsertOne(ctx context.Context, fuel models.FuelConsumption) (InsertOneResultHelper, error) {
	return f.db.Collection(fuelCollectionName).InsertOne(ctx, fuel)
}
