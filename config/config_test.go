package config

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/musecoding/fleet-management-sytem/models"
)

func TestNew(t *testing.T) {
	os.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	os.Setenv("DB_NAME", "test")
	conf := New()

	assert.NotEmpty(t, conf)
	assert.Equal(t, "mongodb://127.0.0.1:27017", conf.URL)
	assert.Equal(t, "test", conf.DatabaseName)
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorStatus("error it borked", http.StatusInternalServerError, rr, errors.New("server fell over"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp models.StatusResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusError, resp.Status)
	assert.Contains(t, resp.Message, "server fell over")
}

func TestErrorStatusDiscriminants(t *testing.T) {
	cases := []struct {
		code   int
		status string
	}{
		{http.StatusBadRequest, models.StatusInvalidPayload},
		{http.StatusNotFound, models.StatusNotFound},
		{http.StatusConflict, models.StatusError},
		{http.StatusInternalServerError, models.StatusError},
	}

	for _, c := range cases {
		rr := httptest.NewRecorder()
		ErrorStatus("it borked", c.code, rr, nil)

		var resp models.StatusResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, c.status, resp.Status)
	}
}

func TestSuccessStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	SuccessStatus("driver deleted successfully", rr)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp models.StatusResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusSuccess, resp.Status)
	assert.Equal(t, "driver deleted successfully", resp.Message)
}
