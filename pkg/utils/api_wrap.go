package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func RespondSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func RespondError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ErrorResponse{Error: message})
}

// HandleServiceError maps service errors onto HTTP responses. Anything not
// recognised is an internal fault and is reported with its message.
func HandleServiceError(c *gin.Context, log *zap.Logger, err error) {
	traceID := c.GetString("trace_id")

	switch {
	case errors.Is(err, ErrNotEnoughLocations):
		RespondError(c, http.StatusBadRequest, "At least two locations are required")
	case errors.Is(err, ErrMissingEndpoints):
		RespondError(c, http.StatusBadRequest, "Origin and destination are required")
	case errors.Is(err, ErrInvalidField):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid request format")
	default:
		log.Error("unhandled service error", zap.String("trace_id", traceID), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, err.Error())
	}
}

// BindingError turns a ShouldBindJSON failure into a service error. A missing
// origin or destination (or one of their coordinates) is ErrMissingEndpoints;
// every other field failure keeps the offending field names in the message.
func BindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		path := fieldPath(fe)
		if fe.Tag() == "required" && isEndpointField(path) {
			return fmt.Errorf("%w: %s", ErrMissingEndpoints, path)
		}
		fields = append(fields, fmt.Sprintf("%s (%s)", path, fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidField, strings.Join(fields, ", "))
}

func isEndpointField(path string) bool {
	for _, root := range []string{"origin", "destination"} {
		if path == root || strings.HasPrefix(path, root+".") {
			return true
		}
	}
	return false
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
