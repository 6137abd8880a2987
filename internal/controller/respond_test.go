package controller_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/launchpadhq/launchpad-api/internal/apperror"
	"github.com/launchpadhq/launchpad-api/internal/controller"
	"github.com/launchpadhq/launchpad-api/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	controller.WriteError(c, err)
	return w
}

func TestWriteErrorStatusMapping(t *testing.T) {
	cases := []struct {
		code   apperror.Code
		status int
	}{
		{apperror.CodeNotFound, http.StatusNotFound},
		{apperror.CodeForbidden, http.StatusForbidden},
		{apperror.CodeUnauthorized, http.StatusUnauthorized},
		{apperror.CodeAlreadyCompleted, http.StatusConflict},
		{apperror.CodeNotCompleted, http.StatusConflict},
		{apperror.CodeIncompleteAnswers, http.StatusConflict},
		{apperror.CodeOnboardingIncomplete, http.StatusConflict},
		{apperror.CodeInvalidPayload, http.StatusBadRequest},
		{apperror.CodeMissingFile, http.StatusBadRequest},
		{apperror.CodeValidationFailed, http.StatusBadRequest},
		{apperror.CodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(string(tc.code), func(t *testing.T) {
			w := serveError(apperror.New(tc.code, "boom"))
			assert.Equal(t, tc.status, w.Code)

			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, string(tc.code), body.Code)
		})
	}
}

func TestWriteErrorIncludesFields(t *testing.T) {
	w := serveError(apperror.New(apperror.CodeInvalidPayload, "missing fields").WithFields("score", "job_id"))

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"score", "job_id"}, body.Fields)
}

func TestWriteErrorHidesForeignErrors(t *testing.T) {
	w := serveError(errors.New("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body.Error)
	assert.NotContains(t, w.Body.String(), "pq:")
}
