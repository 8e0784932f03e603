package catalog

import "github.com/shopspring/decimal"

// Product is the session-stable shape every raw catalog record is transformed
// into at ingestion. Brand, stock and featured are synthesized once per
// product id and reused on later fetches.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Images       []string        `json:"images"`
	Category     string          `json:"category"`
	Brand        string          `json:"brand"`
	Rating       float64         `json:"rating"`
	CountInStock int             `json:"countInStock"`
	Featured     bool            `json:"featured"`
}

type SortBy string

const (
	SortByName   SortBy = "name"
	SortByPrice  SortBy = "price"
	SortByRating SortBy = "rating"
	SortByNewest SortBy = "newest"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// PriceRange is an inclusive [Min, Max] filter.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

type FilterState struct {
	Category    string      `json:"category"` // empty = no category filter
	PriceRange  *PriceRange `json:"priceRange"`
	SearchQuery string      `json:"searchQuery"`
	SortBy      SortBy      `json:"sortBy"`
	SortOrder   SortOrder   `json:"sortOrder"`
}

func DefaultFilters() FilterState {
	return FilterState{
		SortBy:    SortByNewest,
		SortOrder: SortDesc,
	}
}

type FilterKind string

const (
	FilterCategory    FilterKind = "category"
	FilterPriceRange  FilterKind = "priceRange"
	FilterSearchQuery FilterKind = "searchQuery"
	FilterSortBy      FilterKind = "sortBy"
	FilterSortOrder   FilterKind = "sortOrder"
)

// State is the catalog snapshot handed to readers. FilteredItems is always
// the pipeline output for (Items, Filters); it is never edited directly.
type State struct {
	Items         []Product
	FilteredItems []Product
	Filters       FilterState
	Loading       bool
	Err           string // last load failure, empty when healthy
}

func newState() State {
	return State{
		Items:         []Product{},
		FilteredItems: []Product{},
		Filters:       DefaultFilters(),
	}
}
