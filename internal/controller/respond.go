package controller

import (
	"errors"
	"net/http"

	"github.com/celebra-rh/assessment-gateway/internal/apiclient"
	"github.com/celebra-rh/assessment-gateway/internal/dto"
	"github.com/celebra-rh/assessment-gateway/internal/model"
	"github.com/celebra-rh/assessment-gateway/internal/service"
	"github.com/gin-gonic/gin"
)

// RespondError maps service errors onto HTTP responses. Upstream rejections
// keep their status and message so the server's wording reaches the user
// verbatim; everything else falls into the local taxonomy.
func RespondError(c *gin.Context, err error) {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, dto.ErrorResponse{Error: apiErr.Error()})
		return
	}

	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, model.ErrInvalidAnswer),
		errors.Is(err, model.ErrIncompleteAnswers),
		errors.Is(err, model.ErrMissingParticipantField),
		errors.Is(err, model.ErrParticipantInfoRequired),
		errors.Is(err, service.ErrTestNameRequired),
		errors.Is(err, service.ErrResumeUnsupportedType),
		errors.Is(err, service.ErrResumeTooLarge):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, model.ErrSubmitInFlight),
		errors.Is(err, model.ErrSuperseded):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, model.ErrSessionCompleted):
		c.JSON(http.StatusGone, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrResumeServiceUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
}

// BindTestType resolves the :test_type path parameter, answering 400 itself
// when the segment is unknown.
func BindTestType(c *gin.Context) (model.TestType, bool) {
	testType, err := model.ParseTestType(c.Param("test_type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return "", false
	}
	return testType, true
}
