package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/conduit-backend/internal/domain"
	domainagg "github.com/yungbote/conduit-backend/internal/domain/aggregates"
	"github.com/yungbote/conduit-backend/internal/platform/apierr"
)

var aggregateStatus = map[domainagg.ErrorCode]int{
	domainagg.CodeValidation:         http.StatusUnprocessableEntity,
	domainagg.CodeNotFound:           http.StatusNotFound,
	domainagg.CodeForbidden:          http.StatusForbidden,
	domainagg.CodeConflict:           http.StatusConflict,
	domainagg.CodeInvariantViolation: http.StatusConflict,
	domainagg.CodePreconditionFailed: http.StatusPreconditionFailed,
	domainagg.CodeRetryable:          http.StatusServiceUnavailable,
	domainagg.CodeInternal:           http.StatusInternalServerError,
}

// StatusFor maps a service error to its HTTP status and error code.
func StatusFor(err error) (int, string) {
	if err == nil {
		return http.StatusOK, ""
	}
	if ae, ok := apierr.As(err); ok {
		status := ae.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return status, ae.Code
	}
	if code := domainagg.CodeOf(err); code != "" {
		if status, ok := aggregateStatus[code]; ok {
			return status, string(code)
		}
	}
	switch {
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, types.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, types.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, types.ErrInvalidArgument):
		return http.StatusUnprocessableEntity, "validation"
	}
	return http.StatusInternalServerError, "internal"
}

// RespondServiceError writes err in the error envelope. Internal failures
// never leak their cause to the client.
func RespondServiceError(c *gin.Context, err error) {
	status, code := StatusFor(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		RespondError(c, status, code, errors.New("internal server error"))
		return
	}
	if code := domainagg.CodeOf(err); code != "" {
		RespondError(c, status, string(code), errors.New(domainagg.MessageOf(err)))
		return
	}
	if ae, ok := apierr.As(err); ok && ae.Err != nil {
		RespondError(c, status, code, ae.Err)
		return
	}
	RespondError(c, status, code, err)
}
