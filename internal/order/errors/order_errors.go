package ordererrors

import (
	"net/http"

	"go-storefront-api/internal/pkg/apperror"
)

var ErrInvalidCheckout = apperror.New(
	apperror.CodeInvalidInput,
	"Invalid checkout payload",
	http.StatusBadRequest,
)
