package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus("NOT_FOUND"))
	assert.Equal(t, http.StatusConflict, GetHTTPStatus("ALREADY_EXISTS"))
	assert.Equal(t, http.StatusUnauthorized, GetHTTPStatus("UNAUTHORIZED"))
	assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus("INVALID_STATE"))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(ErrCodeInternal))

	// normalization failures fall through to 400
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus("INVALID_CLIENT_NAME"))
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus("EMPTY_BATCH"))
}
