package cart

import "github.com/shopspring/decimal"

// ProductSnapshot is the slice of a catalog product the cart keeps. Price and
// display fields are captured at add-time and never re-fetched.
type ProductSnapshot struct {
	ProductID string
	Name      string
	Brand     string
	Image     string
	UnitPrice decimal.Decimal
}

type LineItem struct {
	ProductID string
	Name      string
	Brand     string
	Image     string
	UnitPrice decimal.Decimal
	Quantity  int
}

// State holds the cart line items in insertion order plus the two aggregates.
// TotalQuantity and TotalAmount are derived from Items on every reduction;
// nothing else is allowed to write them.
type State struct {
	Items         []LineItem
	TotalQuantity int
	TotalAmount   decimal.Decimal
}

func NewState() State {
	return State{
		Items:       []LineItem{},
		TotalAmount: decimal.Zero,
	}
}

type ActionKind string

const (
	ActionAddItem       ActionKind = "cart/addItem"
	ActionDecrementItem ActionKind = "cart/decrementItem"
	ActionRemoveItem    ActionKind = "cart/removeItem"
	ActionClear         ActionKind = "cart/clear"
)

type Action struct {
	Kind      ActionKind
	Product   ProductSnapshot // ActionAddItem
	ProductID string          // ActionDecrementItem, ActionRemoveItem
}

// Reduce applies one action and returns the next state. The input state is
// never mutated, so callers can hold old snapshots safely.
func Reduce(state State, action Action) State {
	switch action.Kind {
	case ActionAddItem:
		return reduceAddItem(state, action.Product)
	case ActionDecrementItem:
		return reduceDecrementItem(state, action.ProductID)
	case ActionRemoveItem:
		return reduceRemoveItem(state, action.ProductID)
	case ActionClear:
		return NewState()
	default:
		return state
	}
}

func reduceAddItem(state State, p ProductSnapshot) State {
	items := cloneItems(state.Items)

	found := false
	for i := range items {
		if items[i].ProductID == p.ProductID {
			items[i].Quantity++
			found = true
			break
		}
	}

	if !found {
		items = append(items, LineItem{
			ProductID: p.ProductID,
			Name:      p.Name,
			Brand:     p.Brand,
			Image:     p.Image,
			UnitPrice: p.UnitPrice,
			Quantity:  1,
		})
	}

	return withTotals(items)
}

func reduceDecrementItem(state State, productID string) State {
	idx := indexOf(state.Items, productID)
	if idx < 0 {
		// absent id is a no-op, rapid double clicks must not fault
		return state
	}

	items := cloneItems(state.Items)
	if items[idx].Quantity == 1 {
		items = append(items[:idx], items[idx+1:]...)
	} else {
		items[idx].Quantity--
	}

	return withTotals(items)
}

func reduceRemoveItem(state State, productID string) State {
	idx := indexOf(state.Items, productID)
	if idx < 0 {
		return state
	}

	items := cloneItems(state.Items)
	items = append(items[:idx], items[idx+1:]...)

	return withTotals(items)
}

// withTotals recomputes both aggregates from the item list. Totals are never
// patched incrementally, drift is prevented by construction.
func withTotals(items []LineItem) State {
	totalQty := 0
	totalAmount := decimal.Zero
	for _, it := range items {
		totalQty += it.Quantity
		totalAmount = totalAmount.Add(it.UnitPrice.Mul(decimalFromInt(it.Quantity)))
	}

	return State{
		Items:         items,
		TotalQuantity: totalQty,
		TotalAmount:   totalAmount,
	}
}

func indexOf(items []LineItem, productID string) int {
	for i := range items {
		if items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func cloneItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
