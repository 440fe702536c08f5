package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotkeeper/shared/failure"
	"slotkeeper/transport/http/response"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		retryAfter string
	}{
		{
			name:       "contended carries retry after",
			err:        failure.Wrap(failure.ErrReservationContended, "resource lock busy"),
			wantCode:   http.StatusServiceUnavailable,
			retryAfter: "1",
		},
		{
			name:     "conflict",
			err:      failure.ErrSlotNoLongerAvailable,
			wantCode: http.StatusConflict,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.retryAfter, rec.Header().Get("Retry-After"))

			var body response.Error
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.err.Error(), *body.Error)
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]int{"remaining": 3})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"remaining":3}}`, rec.Body.String())
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, rec.Body.String())
}
