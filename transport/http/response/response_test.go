package response_test

import (
	"dockhub/shared/constant"
	"dockhub/shared/failure"
	"dockhub/transport/http/response"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) response.Error {
	t.Helper()

	var body response.Error
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "failure keeps its message", err: failure.Conflict("dock 7 is already claimed"), code: http.StatusConflict, message: "dock 7 is already claimed"},
		{name: "wrapped failure", err: fmt.Errorf("claim: %w", failure.NotFound("check-in not found")), code: http.StatusNotFound, message: "claim: check-in not found"},
		{name: "unexpected error is masked", err: errors.New("pq: connection refused"), code: http.StatusInternalServerError, message: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			recorder.Header().Set(response.HeaderRequestID, "req-42")

			response.WithError(recorder, tt.err)

			body := decodeError(t, recorder)
			assert.Equal(t, tt.code, recorder.Code)
			assert.Equal(t, tt.message, *body.Error)
			assert.Equal(t, "req-42", body.RequestID)
			assert.Equal(t, constant.ContentTypeJSON, recorder.Header().Get(constant.RequestHeaderContentType))
		})
	}
}

func TestWithFile(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithFile(recorder, constant.ContentTypeCSV, "detention.csv", []byte("a,b\n"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, `attachment; filename="detention.csv"`, recorder.Header().Get("Content-Disposition"))
	assert.Equal(t, "4", recorder.Header().Get("Content-Length"))
	assert.Equal(t, "a,b\n", recorder.Body.String())
}
