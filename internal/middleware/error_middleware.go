package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/courseplanner/internal/app/models/dto"
	"github.com/yigit/courseplanner/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to API error responses
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetailFor(err)

	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Details != nil {
		detail = detail.WithDetails(customErr.Details)
	}

	_ = c.Error(err)
	c.JSON(status, dto.APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	})
}

func errorDetailFor(err error) (int, *dto.ErrorDetail) {
	switch {
	case apperrors.Is(err, apperrors.ErrCourseNotFound, apperrors.ErrResourceNotFound):
		detail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())
		detail.Severity = dto.ErrorSeverityWarning
		return http.StatusNotFound, detail
	case apperrors.Is(err, apperrors.ErrBadRequest, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrSourceUnavailable), errors.Is(err, apperrors.ErrMalformedSource):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeSourceError, "Course source could not be loaded")
	case errors.Is(err, apperrors.ErrUnsupported):
		return http.StatusNotImplemented, dto.NewErrorDetail(dto.ErrorCodeNotImplemented, "Operation not supported")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeRequestCanceled, "Request canceled")
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}
