package cart

import "sync"

// Store is the cart state container: dispatch mutates, Snapshot reads,
// Subscribe observes. Each dispatched action runs to completion under the
// lock, so there is a single logical writer and totals can never be observed
// mid-recompute.
type Store struct {
	mu    sync.Mutex
	state State

	nextSubID int
	subs      map[int]func(State)
}

func NewStore() *Store {
	return &Store{
		state: NewState(),
		subs:  map[int]func(State){},
	}
}

func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	next := snapshotLocked(s.state)

	listeners := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
	return next
}

func (s *Store) AddItem(p ProductSnapshot) State {
	return s.Dispatch(Action{Kind: ActionAddItem, Product: p})
}

func (s *Store) DecrementItem(productID string) State {
	return s.Dispatch(Action{Kind: ActionDecrementItem, ProductID: productID})
}

func (s *Store) RemoveItem(productID string) State {
	return s.Dispatch(Action{Kind: ActionRemoveItem, ProductID: productID})
}

func (s *Store) Clear() State {
	return s.Dispatch(Action{Kind: ActionClear})
}

// Snapshot returns a copy whose item slice does not alias live state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotLocked(s.state)
}

// Subscribe registers a listener called with the new snapshot after every
// dispatch. The returned function removes the listener.
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

func snapshotLocked(state State) State {
	state.Items = cloneItems(state.Items)
	return state
}
