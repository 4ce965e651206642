package databases

// go generate: mockery --name RouteDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/musecoding/fleet-management-sytem/models"
)

const routeCollectionName = "routes"

// RouteDatabase contains the methods to use with the route database
type RouteDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Route, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Route, error)
	InsertOne(ctx context.Context, route models.Route) (InsertOneResultHelper, error)
}

type routeDatabase struct {
	db DatabaseHelper
}

// NewRouteDatabase initializes a new instance of route database with the provided db connection
func NewRouteDatabase(db DatabaseHelper) RouteDatabase {
	return &routeDatabase{
		db: db,
	}
}

func (r *routeDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Route, error) {
	route := &models.Route{}
	err := r.db.Collection(routeCollectionName).FindOne(ctx, filter).Decode(&route)
	if err != nil {
		return nil, err
	}
	return route, nil
}

func (r *routeDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Route, error) {
	var routes []models.Route
	opts = append(opts, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	err := r.db.Collection(routeCollectionName).Find(ctx, filter, opts...).Decode(&routes)
	if err != nil {
		return nil, err
	}
	return routes, nil
}

func (r *routeDatabase) InsertOne(ctx context.Context, route models.Route) (InsertOneResultHelper, error) {
	return r.db.Collection(routeCollectionName).InsertOne(ctx, route)
}
