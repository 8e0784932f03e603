package order

// Customer identifies the authenticated buyer, taken from the verified token.
type Customer struct {
	ID    string
	Email string
}

// ==================== REQUEST STRUCTS ====================

type CheckoutItem struct {
	ProductID string  `json:"productId" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	UnitPrice float64 `json:"unitPrice" validate:"gte=0"`
}

type ShippingAddress struct {
	FullName   string `json:"fullName" validate:"required"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

type CheckoutRequest struct {
	Items           []CheckoutItem  `json:"items" validate:"required,min=1,dive"`
	ShippingAddress ShippingAddress `json:"shippingAddress" validate:"required"`
	PaymentMethod   string          `json:"paymentMethod" validate:"required"`
	TaxPrice        float64         `json:"taxPrice" validate:"gte=0"`
	ShippingPrice   float64         `json:"shippingPrice" validate:"gte=0"`
	TotalPrice      float64         `json:"totalPrice" validate:"gte=0"`
}

// ==================== RESPONSE STRUCTS ====================

type CheckoutResponse struct {
	OrderID string `json:"orderId"`
}
