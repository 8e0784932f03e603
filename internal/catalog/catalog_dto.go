package catalog

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	catalogerrors "go-storefront-api/internal/catalog/errors"
)

// ==================== REQUEST STRUCTS ====================

// SetFilterRequest updates exactly one filter dimension. Value is decoded
// per kind: category accepts null or a string, priceRange accepts null or a
// [min, max] pair, the rest are strings.
type SetFilterRequest struct {
	Kind  string          `json:"kind" binding:"required"`
	Value json.RawMessage `json:"value"`
}

func (r SetFilterRequest) decodeValue() (FilterKind, interface{}, error) {
	kind := FilterKind(r.Kind)

	if len(r.Value) == 0 || string(r.Value) == "null" {
		return kind, nil, nil
	}

	switch kind {
	case FilterCategory, FilterSearchQuery, FilterSortBy, FilterSortOrder:
		var s string
		if err := json.Unmarshal(r.Value, &s); err != nil {
			return kind, nil, catalogerrors.ErrInvalidFilter
		}
		return kind, s, nil

	case FilterPriceRange:
		var pair []decimal.Decimal
		if err := json.Unmarshal(r.Value, &pair); err != nil || len(pair) != 2 {
			return kind, nil, catalogerrors.ErrInvalidFilter
		}
		return kind, PriceRange{Min: pair[0], Max: pair[1]}, nil

	default:
		return kind, nil, catalogerrors.ErrInvalidFilter
	}
}

// ==================== RESPONSE STRUCTS ====================

type CatalogStateResponse struct {
	FilteredItems []Product   `json:"filteredItems"`
	Total         int         `json:"total"`
	Filters       FilterState `json:"filters"`
	Loading       bool        `json:"loading"`
	Error         string      `json:"error,omitempty"`
}

func toStateResponse(state State) CatalogStateResponse {
	return CatalogStateResponse{
		FilteredItems: state.FilteredItems,
		Total:         len(state.Items),
		Filters:       state.Filters,
		Loading:       state.Loading,
		Error:         state.Err,
	}
}
