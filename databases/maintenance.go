package databases

// go generate: mockery --name MaintenanceDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/musecoding/fleet-management-sytem/models"
)

const maintenanceCollectionName = "maintenances"

// MaintenanceDatabase contains the methods to use with the maintenance database
type MaintenanceDatabase interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Maintenance, error)
	InsertOne(ctx context.Context, maintenance models.Maintenance) (InsertOneResultHelper, error)
}

type maintenanceDatabase struct {
	db DatabaseHelper
}

// NewMaintenanceDatabase initializes a new instance of maintenance database with the provided db connection
func NewMaintenanceDatabase(db DatabaseHelper) MaintenanceDatabase {
	return &maintenanceDatabase{
		db: db,
	}
}

func (m *maintenanceDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Maintenance, error) {
	var maintenances []models.Maintenance
	opts = append(opts, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	err := m.db.Collection(maintenanceCollectionName).Find(ctx, filter, opts...).Decode(&maintenances)
	if err != nil {
		return nil, err
	}
	return maintenances, nil
}

func (m *maintenanceDatabase) InsertOne(ctx context.Context, maintenance models.Maintenance) (InsertOneResultHelper, error) {
	return m.db.Collection(maintenanceCollectionName).InsertOne(ctx, maintenance)
}
