package databases

// go generate: mockery --name EmergencyAssistanceDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/musecoding/fleet-management-sytem/models"
)

const emergencyCollectionName = "emergency_assistances"

// EmergencyAssistanceDatabase contains the methods to use with the emergency assistance database
type EmergencyAssistanceDatabase interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.EmergencyAssistance, error)
	InsertOne(ctx context.Context, emergency models.EmergencyAssistance) (InsertOneResultHelper, error)
}

type emergencyAssistanceDatabase struct {
	db DatabaseHelper
}

// NewEmergencyAssistanceDatabase initializes a new instance of emergency assistance database with the provided db connection
func NewEmergencyAssistanceDatabase(db DatabaseHelper) EmergencyAssistanceDatabase {
	return &emergencyAssistanceDatabase{
		db: db,
	}
}

func (e *emergencyAssistanceDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.EmergencyAssistance, error) {
	var emergencies []models.EmergencyAssistance
	opts = append(opts, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	err := e.db.Collection(emergencyCollectionName).Find(ctx, filter, opts...).Decode(&emergencies)
	if err != nil {
		return nil, err
	}
	return emergencies, nil
}

func (e *emergencyAssistanceDatabase) InsertOne(ctx context.Context, emergency models.EmergencyAssistance) (InsertOneResultHelper, error) {
	return e.db.Collection(emergencyCollectionName).InsertOne(ctx, emergency)
}
