package catalogerrors

import (
	"net/http"

	"go-storefront-api/internal/pkg/apperror"
)

var (
	ErrFetchFailed = apperror.New(
		apperror.CodeUpstreamError,
		"Failed to fetch products",
		http.StatusBadGateway,
	)

	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrCategoriesFetchFailed = apperror.New(
		apperror.CodeUpstreamError,
		"Failed to fetch categories",
		http.StatusBadGateway,
	)

	ErrInvalidFilter = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid filter kind or value",
		http.StatusBadRequest,
	)
)
