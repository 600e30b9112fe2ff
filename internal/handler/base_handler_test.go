package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"desert-war-service/api"
	"desert-war-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) (int, api.ErrorResponse) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	h := NewBaseHandler(logger)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/roster/save", nil), rec)
	require.NoError(t, h.respondError(c, err))

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func TestRespondError(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "Storage rejection keeps its text",
			err:     fmt.Errorf("%w: user u7 is not in roster of dw-1", domain.ErrAssignmentValidation),
			status:  http.StatusUnprocessableEntity,
			code:    "VALIDATION_ERROR",
			message: "roster assignment rejected by storage: user u7 is not in roster of dw-1",
		},
		{
			name:    "Domain error uses mapped message",
			err:     domain.ErrMemberNotInBucket,
			status:  http.StatusConflict,
			code:    "BUCKET_MISMATCH",
			message: "member is not in the source bucket",
		},
		{
			name:    "Unknown error",
			err:     errors.New("connection reset"),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_ERROR",
			message: "connection reset",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, resp := respond(t, tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, string(resp.Error.Code))
			assert.Equal(t, tc.message, resp.Error.Message)
		})
	}
}
