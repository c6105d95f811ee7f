package utils

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/CHOIisaac/chalna-api/internal/pkg/apperrors"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
)

// Response represents a standard API response
type Response struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message,omitempty"`
	Data       interface{}        `json:"data,omitempty"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
}

// ErrorBody is the error payload inside the error envelope
type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// ErrorResponse represents an error response envelope
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// PaginatedResponse sends a success response with data and a paging envelope
func PaginatedResponse(c echo.Context, message string, data interface{}, pagination models.Pagination) error {
	return c.JSON(http.StatusOK, Response{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: &pagination,
	})
}

// ErrorResponseHandler sends an error response with an explicit code
func ErrorResponseHandler(c echo.Context, statusCode int, code, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error: ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}

// DomainErrorResponse maps a domain error to the API error envelope
func DomainErrorResponse(c echo.Context, err error) error {
	code := apperrors.Code(err)
	statusCode := http.StatusInternalServerError
	message := err.Error()

	switch code {
	case apperrors.CodeNotFound:
		statusCode = http.StatusNotFound
	case apperrors.CodeValidation:
		statusCode = http.StatusBadRequest
	case apperrors.CodeUnauthorized:
		statusCode = http.StatusUnauthorized
	case apperrors.CodeRateLimited:
		statusCode = http.StatusTooManyRequests
	default:
		// Internal details stay out of the response body
		message = "internal server error"
	}

	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: apperrors.Details(err),
		},
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, message string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, apperrors.CodeValidation, message)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, apperrors.CodeUnauthorized, message)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, apperrors.CodeNotFound, message)
}

// RateLimitedResponse sends a 429 Too Many Requests response
func RateLimitedResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Rate limit exceeded"
	}
	return ErrorResponseHandler(c, http.StatusTooManyRequests, apperrors.CodeRateLimited, message)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, apperrors.CodeInternal, message)
}

// ParsePageRequest reads page/limit query params with defaults and bounds
func ParsePageRequest(c echo.Context) models.PageRequest {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return models.PageRequest{Page: page, Limit: limit}.Normalize()
}
