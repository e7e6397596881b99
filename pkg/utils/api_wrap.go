package utils

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the uniform error envelope returned by every endpoint.
type ErrorResponse struct {
	Timestamp string            `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
}

func newErrorResponse(status int, category, message string, details map[string]string) ErrorResponse {
	return ErrorResponse{
		Timestamp: FormatTimestamp(time.Now().Unix()),
		Status:    status,
		Error:     category,
		Message:   message,
		Details:   details,
	}
}

func RespondError(c *gin.Context, status int, category, message string) {
	c.JSON(status, newErrorResponse(status, category, message, nil))
}

// RespondBindingError translates a gin binding failure into a 400 envelope
// with per-field messages.
func RespondBindingError(c *gin.Context, err error) {
	details := map[string]string{}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			details[jsonFieldName(fe.Field())] = validationMessage(fe)
		}
	}
	c.JSON(http.StatusBadRequest,
		newErrorResponse(http.StatusBadRequest, "Validation Failed", "Invalid input parameters", details))
}

// Request model fields are exported CamelCase; the wire uses lowerCamelCase.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fe.Field() + " is too short"
	default:
		return "Invalid value"
	}
}

// HandleServiceError maps service failures onto the error envelope.
// Only genuine not-found errors become 404s; anything unrecognized is a 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrNotificationNotFound):
		c.JSON(http.StatusNotFound,
			newErrorResponse(http.StatusNotFound, "Not Found", err.Error(), nil))
	case errors.Is(err, ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized,
			newErrorResponse(http.StatusUnauthorized, "Unauthorized", "Invalid email or password", nil))
	case errors.Is(err, ErrResetTokenInvalid):
		c.JSON(http.StatusUnauthorized,
			newErrorResponse(http.StatusUnauthorized, "Unauthorized", err.Error(), nil))
	case errors.Is(err, ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest,
			newErrorResponse(http.StatusBadRequest, "Bad Request", err.Error(), nil))
	default:
		log.Printf("Unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError,
			newErrorResponse(http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", nil))
	}
}
