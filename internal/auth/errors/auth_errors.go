package autherrors

import (
	"net/http"

	"go-storefront-api/internal/pkg/apperror"
)

var (
	ErrUnauthorized = apperror.New(
		apperror.CodeUnauthorized,
		"Unauthorized access",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid authentication token",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Authentication token expired",
		http.StatusUnauthorized,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"User already exists with this email",
		http.StatusConflict,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate authentication token",
		http.StatusInternalServerError,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user id",
		http.StatusBadRequest,
	)

	ErrInvalidPayload = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid request payload",
		http.StatusBadRequest,
	)
)
