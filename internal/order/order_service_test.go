package order_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/order"
	ordererrors "go-storefront-api/internal/order/errors"
)

type capturingPublisher struct {
	events []order.OrderCreatedEvent
	err    error
}

func (p *capturingPublisher) PublishOrderCreated(_ context.Context, event order.OrderCreatedEvent) error {
	p.events = append(p.events, event)
	return p.err
}

func validCheckoutRequest() order.CheckoutRequest {
	return order.CheckoutRequest{
		Items: []order.CheckoutItem{
			{ProductID: "1", Name: "Gold Ring", Quantity: 2, UnitPrice: 120},
		},
		ShippingAddress: order.ShippingAddress{
			FullName:   "Jordan Lee",
			Street:     "1 Main St",
			City:       "Springfield",
			PostalCode: "12345",
			Country:    "US",
		},
		PaymentMethod: "card",
		TaxPrice:      10,
		ShippingPrice: 5,
		TotalPrice:    255,
	}
}

func newSessionCart(t *testing.T) (*cart.Store, cart.StoreResolver) {
	t.Helper()

	store := cart.NewStore()
	store.AddItem(cart.ProductSnapshot{
		ProductID: "1",
		Name:      "Gold Ring",
		UnitPrice: decimal.NewFromInt(120),
	})

	return store, func(sessionID string) *cart.Store { return store }
}

func TestOrderService_Checkout(t *testing.T) {
	ctx := context.Background()
	customer := order.Customer{ID: "user-1", Email: "jordan@example.com"}

	t.Run("success clears cart and publishes event", func(t *testing.T) {
		store, resolver := newSessionCart(t)
		publisher := &capturingPublisher{}

		svc := order.NewService(order.Deps{Publisher: publisher, Carts: resolver})

		resp, err := svc.Checkout(ctx, customer, "session-1", validCheckoutRequest())

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(resp.OrderID, "ORD-"))

		require.Len(t, publisher.events, 1)
		event := publisher.events[0]
		assert.Equal(t, resp.OrderID, event.OrderID)
		assert.Equal(t, "user-1", event.UserID)
		assert.Equal(t, "jordan@example.com", event.CustomerEmail)
		assert.Len(t, event.Items, 1)
		assert.False(t, event.PlacedAt.IsZero())

		assert.Empty(t, store.Snapshot().Items)
		assert.Equal(t, 0, store.Snapshot().TotalQuantity)
	})

	t.Run("publish failure still accepts the order", func(t *testing.T) {
		store, resolver := newSessionCart(t)
		publisher := &capturingPublisher{err: errors.New("broker unreachable")}

		svc := order.NewService(order.Deps{Publisher: publisher, Carts: resolver})

		resp, err := svc.Checkout(ctx, customer, "session-1", validCheckoutRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, resp.OrderID)
		assert.Empty(t, store.Snapshot().Items)
	})

	t.Run("invalid payload rejected before publish", func(t *testing.T) {
		store, resolver := newSessionCart(t)
		publisher := &capturingPublisher{}

		svc := order.NewService(order.Deps{Publisher: publisher, Carts: resolver})

		req := validCheckoutRequest()
		req.Items = nil

		_, err := svc.Checkout(ctx, customer, "session-1", req)

		assert.ErrorIs(t, err, ordererrors.ErrInvalidCheckout)
		assert.Empty(t, publisher.events)
		// a rejected checkout leaves the cart alone
		assert.Len(t, store.Snapshot().Items, 1)
	})

	t.Run("order ids are unique per checkout", func(t *testing.T) {
		_, resolver := newSessionCart(t)
		publisher := &capturingPublisher{}

		svc := order.NewService(order.Deps{Publisher: publisher, Carts: resolver})

		first, err := svc.Checkout(ctx, customer, "session-1", validCheckoutRequest())
		require.NoError(t, err)
		second, err := svc.Checkout(ctx, customer, "session-1", validCheckoutRequest())
		require.NoError(t, err)

		assert.NotEqual(t, first.OrderID, second.OrderID)
	})
}

func TestOrderService_NewServicePanicsOnNilDeps(t *testing.T) {
	_, resolver := newSessionCart(t)

	assert.Panics(t, func() {
		order.NewService(order.Deps{Publisher: nil, Carts: resolver})
	})
	assert.Panics(t, func() {
		order.NewService(order.Deps{Publisher: &capturingPublisher{}, Carts: nil})
	})
}
