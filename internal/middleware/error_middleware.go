package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/gradplan/internal/app/models/dto"
	"github.com/yigit/gradplan/internal/pkg/apperrors"
)

// apiError is the HTTP form of one sentinel error
type apiError struct {
	target  error
	status  int
	code    dto.ErrorCode
	message string
}

// apiErrors is checked in order, so wrapped sentinels must come before the
// generic ones they imply
var apiErrors = []apiError{
	{apperrors.ErrMajorNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Major not found"},
	{apperrors.ErrRequirementTypeNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Requirement type not found"},
	{apperrors.ErrRequirementNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Requirement not found"},
	{apperrors.ErrScheduleNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Schedule not found"},
	{apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found"},
	{apperrors.ErrInvalidScheduleID, http.StatusBadRequest, dto.ErrorCodeResourceInvalid, "Invalid schedule ID"},
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeBadRequest, "Bad request"},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"},
	{apperrors.ErrTokenNotFound, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token not found"},
	{apperrors.ErrTokenRevoked, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Token revoked"},
	{apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists"},
}

// HandleAPIError handles common API errors and returns appropriate responses.
// A CustomError contributes its message, code and details.
func HandleAPIError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")

	for _, e := range apiErrors {
		if errors.Is(err, e.target) {
			status = e.status
			detail = dto.NewErrorDetail(e.code, e.message)
			break
		}
	}

	var custom *apperrors.CustomError
	if status != http.StatusInternalServerError && errors.As(err, &custom) {
		if custom.Message != "" {
			detail.Message = custom.Message
		}
		if custom.Code != "" {
			detail.Code = dto.ErrorCode(custom.Code)
		}
		if len(custom.Details) > 0 {
			detail.Details = custom.Details
		}
	}

	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		detail = detail.WithSeverity(dto.ErrorSeverityCritical)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}
