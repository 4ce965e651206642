package databases_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/musecoding/fleet-management-sytem/config"
	"github.com/musecoding/fleet-management-sytem/databases"
	"github.com/musecoding/fleet-management-sytem/databases/mocks"
	"github.com/musecoding/fleet-management-sytem/models"
)

func TestNewDriverDatabase(t *testing.T) {
	os.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	os.Setenv("DB_NAME", "test")
	conf := config.New()

	dbClient, err := databases.NewClient(conf)
	assert.NoError(t, err)

	db := databases.NewDatabase(conf, dbClient)

	driverDB := databases.NewDriverDatabase(db)

	assert.NotEmpty(t, driverDB)
}

func TestDriverDatabase_FindOne(t *testing.T) {

	// define variables for interfaces
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var srHelperErr databases.SingleResultHelper
	var srHelperCorrect databases.SingleResultHelper

	// set interfaces implementation to mocked structures
	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	srHelperErr = &mocks.SingleResultHelper{}
	srHelperCorrect = &mocks.SingleResultHelper{}

	srHelperErr.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(errors.New("mocked-error"))

	srHelperCorrect.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Driver)
		(*arg).ID = "mocked-driver"
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"error": true}).
		Return(srHelperErr)

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"error": false}).
		Return(srHelperCorrect)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "drivers").Return(collectionHelper)

	// Create new database with mocked Database interface
	driverDba := databases.NewDriverDatabase(dbHelper)

	// Call method with defined filter, that in our mocked function returns
	// mocked-error
	driver, err := driverDba.FindOne(context.Background(), bson.M{"error": true})

	assert.Empty(t, driver)
	assert.EqualError(t, err, "mocked-error")

	// Now call the same function with a different filter for the correct
	// result
	driver, err = driverDba.FindOne(context.Background(), bson.M{"error": false})

	assert.Equal(t, &models.Driver{ID: "mocked-driver"}, driver)
	assert.NoError(t, err)
}

func TestDriverDatabase_Find(t *testing.T) {

	// define variables for interfaces
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var curHelperErr databases.CursorHelper
	var curHelperCorrect databases.CursorHelper

	// set interfaces implementation to mocked structures
	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	curHelperErr = &mocks.CursorHelper{}
	curHelperCorrect = &mocks.CursorHelper{}

	curHelperErr.(*mocks.CursorHelper).
		On("Decode", mock.Anything).
		Return(errors.New("mocked-error"))

	curHelperCorrect.(*mocks.CursorHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Driver)
		*arg = []models.Driver{{ID: "mocked-driver"}}
	})

	// every Find appends the ascending id sort option
	collectionHelper.(*mocks.CollectionHelper).
		On("Find", context.Background(), bson.M{"error": true}, mock.AnythingOfType("*options.FindOptions")).
		Return(curHelperErr)

	collectionHelper.(*mocks.CollectionHelper).
		On("Find", context.Background(), bson.M{"error": false}, mock.AnythingOfType("*options.FindOptions")).
		Return(curHelperCorrect)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "drivers").Return(collectionHelper)

	driverDba := databases.NewDriverDatabase(dbHelper)

	drivers, err := driverDba.Find(context.Background(), bson.M{"error": true})

	assert.Empty(t, drivers)
	assert.EqualError(t, err, "mocked-error")

	drivers, err = driverDba.Find(context.Background(), bson.M{"error": false})

	assert.Equal(t, []models.Driver{{ID: "mocked-driver"}}, drivers)
	assert.NoError(t, err)
}

func TestDriverDatabase_DeleteOne(t *testing.T) {

	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}

	collectionHelper.(*mocks.CollectionHelper).
		On("DeleteOne", context.Background(), bson.M{"_id": "driver-1"}).
		Return(int64(1), nil)

	collectionHelper.(*mocks.CollectionHelper).
		On("DeleteOne", context.Background(), bson.M{"_id": "missing"}).
		Return(int64(0), errors.New("mocked-error"))

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "drivers").Return(collectionHelper)

	driverDba := databases.NewDriverDatabase(dbHelper)

	count, err := driverDba.DeleteOne(context.Background(), bson.M{"_id": "driver-1"})

	assert.Equal(t, int64(1), count)
	assert.NoError(t, err)

	_, err = driverDba.DeleteOne(context.Background(), bson.M{"_id": "missing"})

	assert.EqualError(t, err, "mocked-error")
}
