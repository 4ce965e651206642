package databases

// go generate: mockery --name DriverDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/musecoding/fleet-management-sytem/models"
)

const driverCollectionName = "drivers"

// DriverDatabase contains the methods to use with the driver database
type DriverDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Driver, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Driver, error)
	InsertOne(ctx context.Context, driver models.Driver) (InsertOneResultHelper, error)
	DeleteOne(ctx context.Context, filter interface{}) (int64, error)
}

type driverDatabase struct {
	db DatabaseHelper
}

// NewDriverDatabase initializes a new instance of driver database with the provided db connection
func NewDriverDatabase(db DatabaseHelper) DriverDatabase {
	return &driverDatabase{
		db: db,
	}
}

func (d *driverDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Driver, error) {
	driver := &models.Driver{}
	err := d.db.Collection(driverCollectionName).FindOne(ctx, filter).Decode(&driver)
	if err != nil {
		return nil, err
	}
	return driver, nil
}

func (d *driverDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Driver, error) {
	var drivers []models.Driver
	// full scans come back in ascending id order
	opts = append(opts, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	err := d.db.Collection(driverCollectionName).Find(ctx, filter, opts...).Decode(&drivers)
	if err != nil {
		return nil, err
	}
	return drivers, nil
}

func (d *driverDatabase) InsertOne(ctx context.Context, driver models.Driver) (InsertOneResultHelper, error) {
	return d.db.Collection(driverCollectionName).InsertOne(ctx, driver)
}

func (d *driverDatabase) DeleteOne(ctx context.Context, filter interface{}) (int64, error) {
	return d.db.Collection(driverCollectionName).DeleteOne(ctx, filter)
}
