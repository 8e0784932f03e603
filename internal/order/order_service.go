package order

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-storefront-api/internal/cart"
	ordererrors "go-storefront-api/internal/order/errors"
)

// EventPublisher pushes order events to the broker. Implemented by the Kafka
// producer; nil-safe via the noop used in tests.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event OrderCreatedEvent) error
}

type Service interface {
	Checkout(ctx context.Context, customer Customer, sessionID string, req CheckoutRequest) (CheckoutResponse, error)
}

type service struct {
	publisher EventPublisher
	carts     cart.StoreResolver
	validate  *validator.Validate
	logger    *zap.Logger
}

type Deps struct {
	Publisher EventPublisher
	Carts     cart.StoreResolver
	Logger    *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Publisher == nil {
		panic("event publisher cannot be nil")
	}
	if deps.Carts == nil {
		panic("cart resolver cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		publisher: deps.Publisher,
		carts:     deps.Carts,
		validate:  validator.New(),
		logger:    deps.Logger.Named("order.service"),
	}
}

// Checkout accepts the order, emits the created event and clears the session
// cart. The external order contract is fire-and-forget: a publish failure is
// logged but the order id is still returned.
func (s *service) Checkout(ctx context.Context, customer Customer, sessionID string, req CheckoutRequest) (CheckoutResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return CheckoutResponse{}, ordererrors.ErrInvalidCheckout
	}

	event := OrderCreatedEvent{
		OrderID:         "ORD-" + uuid.NewString(),
		UserID:          customer.ID,
		CustomerEmail:   customer.Email,
		Items:           req.Items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		TaxPrice:        req.TaxPrice,
		ShippingPrice:   req.ShippingPrice,
		TotalPrice:      req.TotalPrice,
		PlacedAt:        time.Now().UTC(),
	}

	if err := s.publisher.PublishOrderCreated(ctx, event); err != nil {
		s.logger.Warn("order event publish failed",
			zap.String("order_id", event.OrderID),
			zap.Error(err),
		)
	}

	// successful checkout empties the cart
	s.carts(sessionID).Clear()

	s.logger.Info("order placed",
		zap.String("order_id", event.OrderID),
		zap.String("user_id", customer.ID),
		zap.Int("items", len(event.Items)),
	)

	return CheckoutResponse{OrderID: event.OrderID}, nil
}
