package catalog

import (
	"context"
	"sync"

	catalogerrors "go-storefront-api/internal/catalog/errors"
)

// Fetcher is the external catalog dependency the store loads from.
type Fetcher interface {
	GetProducts(ctx context.Context) ([]Product, error)
}

// Store owns the canonical product list plus the active filter configuration
// and re-derives FilteredItems on every mutation. Load is the only suspending
// operation; overlapping loads are serialized by a generation token so a
// slow, stale response can never clobber a newer one.
type Store struct {
	mu      sync.Mutex
	fetcher Fetcher
	state   State
	loadGen uint64

	nextSubID int
	subs      map[int]func(State)
}

func NewStore(fetcher Fetcher) *Store {
	return &Store{
		fetcher: fetcher,
		state:   newState(),
		subs:    map[int]func(State){},
	}
}

// Load replaces Items wholesale from the external catalog and re-derives the
// filtered view. On failure Err carries a human-readable message and the last
// successfully loaded items survive; the caller decides whether to retry.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loadGen++
	gen := s.loadGen
	s.state.Loading = true
	s.state.Err = ""
	notify := s.pendingNotifyLocked()
	s.mu.Unlock()
	notify()

	products, err := s.fetcher.GetProducts(ctx)

	s.mu.Lock()
	if gen != s.loadGen {
		// a newer Load owns the state now, discard this resolution
		s.mu.Unlock()
		return nil
	}

	s.state.Loading = false
	if err != nil {
		// items and the filtered view keep their last successful value, a
		// failed refresh must not blank an already loaded catalog
		s.state.Err = catalogerrors.ErrFetchFailed.Message
		notify = s.pendingNotifyLocked()
		s.mu.Unlock()
		notify()
		return catalogerrors.ErrFetchFailed
	}

	s.state.Items = products
	s.state.FilteredItems = ApplySortingAndFilters(products, s.state.Filters)
	notify = s.pendingNotifyLocked()
	s.mu.Unlock()
	notify()
	return nil
}

// SetFilter updates exactly one filter dimension and re-derives the view.
// A nil category/priceRange value clears that dimension.
func (s *Store) SetFilter(kind FilterKind, value interface{}) error {
	s.mu.Lock()

	switch kind {
	case FilterCategory:
		switch v := value.(type) {
		case nil:
			s.state.Filters.Category = ""
		case string:
			s.state.Filters.Category = v
		default:
			s.mu.Unlock()
			return catalogerrors.ErrInvalidFilter
		}

	case FilterPriceRange:
		switch v := value.(type) {
		case nil:
			s.state.Filters.PriceRange = nil
		case PriceRange:
			pr := v
			s.state.Filters.PriceRange = &pr
		case *PriceRange:
			s.state.Filters.PriceRange = v
		default:
			s.mu.Unlock()
			return catalogerrors.ErrInvalidFilter
		}

	case FilterSearchQuery:
		v, ok := value.(string)
		if !ok {
			s.mu.Unlock()
			return catalogerrors.ErrInvalidFilter
		}
		s.state.Filters.SearchQuery = v

	case FilterSortBy:
		v, ok := toSortBy(value)
		if !ok {
			s.mu.Unlock()
			return catalogerrors.ErrInvalidFilter
		}
		s.state.Filters.SortBy = v

	case FilterSortOrder:
		v, ok := toSortOrder(value)
		if !ok {
			s.mu.Unlock()
			return catalogerrors.ErrInvalidFilter
		}
		s.state.Filters.SortOrder = v

	default:
		s.mu.Unlock()
		return catalogerrors.ErrInvalidFilter
	}

	s.state.FilteredItems = ApplySortingAndFilters(s.state.Items, s.state.Filters)
	notify := s.pendingNotifyLocked()
	s.mu.Unlock()
	notify()
	return nil
}

// ClearFilters resets every dimension to its default and re-derives the view.
func (s *Store) ClearFilters() {
	s.mu.Lock()
	s.state.Filters = DefaultFilters()
	s.state.FilteredItems = ApplySortingAndFilters(s.state.Items, s.state.Filters)
	notify := s.pendingNotifyLocked()
	s.mu.Unlock()
	notify()
}

func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotLocked(s.state)
}

func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// pendingNotifyLocked captures listeners and the current snapshot; the
// returned closure must be called after the lock is released so listeners can
// read the store without deadlocking.
func (s *Store) pendingNotifyLocked() func() {
	if len(s.subs) == 0 {
		return func() {}
	}

	snap := snapshotLocked(s.state)
	listeners := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}

	return func() {
		for _, fn := range listeners {
			fn(snap)
		}
	}
}

func snapshotLocked(state State) State {
	state.Items = cloneProducts(state.Items)
	state.FilteredItems = cloneProducts(state.FilteredItems)
	if state.Filters.PriceRange != nil {
		pr := *state.Filters.PriceRange
		state.Filters.PriceRange = &pr
	}
	return state
}

func cloneProducts(products []Product) []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

func toSortBy(value interface{}) (SortBy, bool) {
	var v SortBy
	switch raw := value.(type) {
	case SortBy:
		v = raw
	case string:
		v = SortBy(raw)
	default:
		return "", false
	}

	switch v {
	case SortByName, SortByPrice, SortByRating, SortByNewest:
		return v, true
	}
	return "", false
}

func toSortOrder(value interface{}) (SortOrder, bool) {
	var v SortOrder
	switch raw := value.(type) {
	case SortOrder:
		v = raw
	case string:
		v = SortOrder(raw)
	default:
		return "", false
	}

	switch v {
	case SortAsc, SortDesc:
		return v, true
	}
	return "", false
}
