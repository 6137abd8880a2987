package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/launchpadhq/launchpad-api/internal/apperror"
	"github.com/launchpadhq/launchpad-api/internal/dto"
	"github.com/rs/zerolog/log"
)

// WriteError maps a service error to its HTTP status and JSON body.
func WriteError(c *gin.Context, err error) {
	var ae *apperror.Error
	if !errors.As(err, &ae) {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error", Code: string(apperror.CodeInternal)})
		return
	}

	status := statusFor(ae.Code)
	if status == http.StatusInternalServerError {
		log.Error().Err(ae).Str("path", c.FullPath()).Msg("Internal error")
	}
	c.JSON(status, dto.ErrorResponse{Error: ae.Message, Code: string(ae.Code), Fields: ae.Fields})
}

func statusFor(code apperror.Code) int {
	switch code {
	case apperror.CodeNotFound:
		return http.StatusNotFound
	case apperror.CodeForbidden:
		return http.StatusForbidden
	case apperror.CodeUnauthorized:
		return http.StatusUnauthorized
	case apperror.CodeAlreadyCompleted, apperror.CodeNotCompleted,
		apperror.CodeIncompleteAnswers, apperror.CodeOnboardingIncomplete:
		return http.StatusConflict
	case apperror.CodeInvalidPayload, apperror.CodeMissingFile, apperror.CodeValidationFailed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
