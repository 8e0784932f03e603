package catalog

import (
	"sort"
	"strconv"
	"strings"
)

// ApplySortingAndFilters is the derivation pipeline: retain items passing the
// filter predicates, then stable-sort by the active key. The category and
// price checks run before the text search, so a non-empty search query
// composes with both (logical AND) rather than overriding them.
func ApplySortingAndFilters(products []Product, filters FilterState) []Product {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if matchesFilters(p, filters) {
			filtered = append(filtered, p)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		cmp := compareBy(filtered[i], filtered[j], filters.SortBy)
		if filters.SortOrder == SortDesc {
			cmp = -cmp
		}
		return cmp < 0
	})

	return filtered
}

func matchesFilters(p Product, filters FilterState) bool {
	if filters.Category != "" && p.Category != filters.Category {
		return false
	}

	if pr := filters.PriceRange; pr != nil {
		if p.Price.LessThan(pr.Min) || p.Price.GreaterThan(pr.Max) {
			return false
		}
	}

	if filters.SearchQuery != "" {
		q := strings.ToLower(filters.SearchQuery)
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Category), q)
	}

	return true
}

func compareBy(a, b Product, sortBy SortBy) int {
	switch sortBy {
	case SortByName:
		return strings.Compare(a.Name, b.Name)
	case SortByPrice:
		return a.Price.Cmp(b.Price)
	case SortByRating:
		switch {
		case a.Rating < b.Rating:
			return -1
		case a.Rating > b.Rating:
			return 1
		default:
			return 0
		}
	case SortByNewest:
		// numeric identifier ascending is the base ordering
		return numericID(a.ID) - numericID(b.ID)
	default:
		return 0
	}
}

func numericID(id string) int {
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0
	}
	return n
}
