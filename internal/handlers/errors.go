package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/quickta/backend/internal/services"
	"github.com/quickta/backend/pkg/response"
)

// serviceError maps service sentinel errors onto the response envelope.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrConversationNotFound),
		errors.Is(err, services.ErrCourseNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrFeedbackNotFound),
		errors.Is(err, services.ErrReportNotFound),
		errors.Is(err, services.ErrModelNotFound),
		errors.Is(err, services.ErrNoActiveModel):
		response.NotFound(c, err.Error())
	case errors.Is(err, services.ErrCompletionFailed):
		response.ServiceUnavailable(c, err.Error())
	default:
		response.ServerError(c, err.Error())
	}
}
