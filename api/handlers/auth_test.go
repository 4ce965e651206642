package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/musecoding/fleet-management-sytem/api/handlers"
	"github.com/musecoding/fleet-management-sytem/databases"
	"github.com/musecoding/fleet-management-sytem/databases/mocks"
	"github.com/musecoding/fleet-management-sytem/models"
)

func TestAuth_RegisterHandler(t *testing.T) {
	body := []byte(`{"email": "Dispatch@Fleet.IO", "password": "hunter2"}`)
	req, err := http.NewRequest("POST", "/api/v1/auth/register", bytes.NewBuffer(body))
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	accountConn := &mocks.CollectionHelper{}

	accountConn.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(0), nil)
	accountConn.On("InsertOne", mock.Anything, mock.Anything).Return(nil, nil)
	db.On("Collection", "accounts").Return(accountConn)

	a := handlers.Auth{DB: databases.NewAccountDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(a.RegisterHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var created models.Account
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "dispatch@fleet.io", created.Email)
	assert.Equal(t, models.RoleDispatcher, created.Role)
	// the password hash is never serialized
	assert.NotContains(t, rr.Body.String(), "passwordHash")
}

func TestAuth_RegisterHandlerMissingPassword(t *testing.T) {
	body := []byte(`{"email": "dispatch@fleet.io"}`)
	req, err := http.NewRequest("POST", "/api/v1/auth/register", bytes.NewBuffer(body))
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	a := handlers.Auth{DB: databases.NewAccountDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(a.RegisterHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, models.StatusInvalidPayload, decodeStatus(t, rr).Status)
}

func TestAuth_RegisterHandlerDuplicateEmail(t *testing.T) {
	body := []byte(`{"email": "dispatch@fleet.io", "password": "hunter2"}`)
	req, err := http.NewRequest("POST", "/api/v1/auth/register", bytes.NewBuffer(body))
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	accountConn := &mocks.CollectionHelper{}

	accountConn.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(1), nil)
	db.On("Collection", "accounts").Return(accountConn)

	a := handlers.Auth{DB: databases.NewAccountDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(a.RegisterHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, models.StatusError, decodeStatus(t, rr).Status)
	accountConn.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestAuth_LoginHandler(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	body := []byte(`{"email": "dispatch@fleet.io", "password": "hunter2"}`)
	req, err := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewBuffer(body))
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	accountConn := &mocks.CollectionHelper{}
	accountResult := &mocks.SingleResultHelper{}

	accountResult.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Account)
		(*arg).ID = "account-1"
		(*arg).Email = "dispatch@fleet.io"
		(*arg).PasswordHash = string(hash)
		(*arg).Role = models.RoleDispatcher
	})
	accountConn.On("FindOne", mock.Anything, mock.Anything).Return(accountResult)
	db.On("Collection", "accounts").Return(accountConn)

	a := handlers.Auth{DB: databases.NewAccountDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(a.LoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Token   string `json:"token"`
		Account struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"account"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "account-1", resp.Account.ID)
}

func TestAuth_LoginHandlerWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	body := []byte(`{"email": "dispatch@fleet.io", "password": "wrong"}`)
	req, err := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewBuffer(body))
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	accountConn := &mocks.CollectionHelper{}
	accountResult := &mocks.SingleResultHelper{}

	accountResult.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Account)
		(*arg).Email = "dispatch@fleet.io"
		(*arg).PasswordHash = string(hash)
	})
	accountConn.On("FindOne", mock.Anything, mock.Anything).Return(accountResult)
	db.On("Collection", "accounts").Return(accountConn)

	a := handlers.Auth{DB: databases.NewAccountDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(a.LoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_LoginHandlerUnknownEmail(t *testing.T) {
	body := []byte(`{"email": "nobody@fleet.io", "password": "hunter2"}`)
	req, err := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewBuffer(body))
	if err != nil {
		t.Fatal(err)
	}

	db := &MockDatabaseHelper{}
	accountConn := &mocks.CollectionHelper{}
	accountResult := &mocks.SingleResultHelper{}

	accountResult.On("Decode", mock.Anything).Return(errors.New("mongo: no documents in result"))
	accountConn.On("FindOne", mock.Anything, mock.Anything).Return(accountResult)
	db.On("Collection", "accounts").Return(accountConn)

	a := handlers.Auth{DB: databases.NewAccountDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(a.LoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
