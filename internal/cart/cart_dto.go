package cart

// ==================== REQUEST STRUCTS ====================

// AddItemRequest carries the product snapshot captured at add-time. The
// product id comes from the URL param.
type AddItemRequest struct {
	Name  string  `json:"name" binding:"required"`
	Brand string  `json:"brand"`
	Image string  `json:"image"`
	Price float64 `json:"price" binding:"gte=0"`
}

// ==================== RESPONSE STRUCTS ====================

type CartItemResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	Image     string `json:"image"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

type CartDetailResponse struct {
	Items         []CartItemResponse `json:"items"`
	TotalQuantity int                `json:"totalQuantity"`
	TotalAmount   string             `json:"totalAmount"`
}

type CartCountResponse struct {
	Count int `json:"count"`
}

func toDetailResponse(state State) CartDetailResponse {
	items := make([]CartItemResponse, 0, len(state.Items))
	for _, it := range state.Items {
		items = append(items, CartItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Brand:     it.Brand,
			Image:     it.Image,
			UnitPrice: it.UnitPrice.StringFixed(2),
			Quantity:  it.Quantity,
			Subtotal:  it.UnitPrice.Mul(decimalFromInt(it.Quantity)).StringFixed(2),
		})
	}

	return CartDetailResponse{
		Items:         items,
		TotalQuantity: state.TotalQuantity,
		TotalAmount:   state.TotalAmount.StringFixed(2),
	}
}
