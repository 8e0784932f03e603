package order

import "time"

const EventOrderCreated = "ORDER_CREATED"

// OrderCreatedEvent is the payload published to the order events topic when a
// checkout is accepted. The consumer sends the confirmation email from it, so
// it carries the customer email alongside the order.
type OrderCreatedEvent struct {
	OrderID         string          `json:"orderId"`
	UserID          string          `json:"userId"`
	CustomerEmail   string          `json:"customerEmail"`
	Items           []CheckoutItem  `json:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	TaxPrice        float64         `json:"taxPrice"`
	ShippingPrice   float64         `json:"shippingPrice"`
	TotalPrice      float64         `json:"totalPrice"`
	PlacedAt        time.Time       `json:"placedAt"`
}
