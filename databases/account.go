package databases

// go generate: mockery --name AccountDatabase

import (
	"context"

	"github.com/musecoding/fleet-management-sytem/models"
)

const accountCollectionName = "accounts"

// AccountDatabase contains the methods to use with the account database
type AccountDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Account, error)
	InsertOne(ctx context.Context, account models.Account) (InsertOneResultHelper, error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
}

type accountDatabase struct {
	db DatabaseHelper
}

// NewAccountDatabase initializes a new instance of account database with the provided db connection
func NewAccountDatabase(db DatabaseHelper) AccountDatabase {
	return &accountDatabase{
		db: db,
	}
}

func (a *accountDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Account, error) {
	account := &models.Account{}
	err := a.db.Collection(accountCollectionName).FindOne(ctx, filter).Decode(&account)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (a *accountDatabase) InsertOne(ctx context.Context, account models.Account) (InsertOneResultHelper, error) {
	return a.db.Collection(accountCollectionName).InsertOne(ctx, account)
}

func (a *accountDatabase) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return a.db.Collection(accountCollectionName).CountDocuments(ctx, filter)
}
