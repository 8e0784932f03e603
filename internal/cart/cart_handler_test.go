package cart_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront-api/internal/cart"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func newTestHandler() (*cart.Handler, *cart.Store) {
	store := cart.NewStore()
	handler := cart.NewHandler(func(sessionID string) *cart.Store {
		return store
	})
	return handler, store
}

func performRequest(t *testing.T, handler func(*gin.Context), method, target, body, productID string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set("session_id", "session-1")
	if productID != "" {
		c.Params = gin.Params{{Key: "productId", Value: productID}}
	}

	handler(c)
	return w
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("success_creates_line_item", func(t *testing.T) {
		handler, store := newTestHandler()

		body := `{"name":"Mechanical Keyboard","brand":"TechPro","image":"http://img/1.jpg","price":49.90}`
		w := performRequest(t, handler.AddItem, http.MethodPost, "/carts/items/7", body, "7")

		assert.Equal(t, http.StatusCreated, w.Code)

		state := store.Snapshot()
		require.Len(t, state.Items, 1)
		assert.Equal(t, "7", state.Items[0].ProductID)
		assert.Equal(t, 1, state.Items[0].Quantity)
		assert.Equal(t, "49.90", state.Items[0].UnitPrice.StringFixed(2))
	})

	t.Run("error_invalid_payload", func(t *testing.T) {
		handler, store := newTestHandler()

		w := performRequest(t, handler.AddItem, http.MethodPost, "/carts/items/7", `{"price":-1}`, "7")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, store.Snapshot().Items)
	})
}

func TestCartHandler_DecrementAbsentIsNoOp(t *testing.T) {
	handler, store := newTestHandler()

	w := performRequest(t, handler.Decrement, http.MethodPost, "/carts/items/404/decrement", "", "404")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.Snapshot().Items)
	assert.Equal(t, 0, store.Snapshot().TotalQuantity)
}

func TestCartHandler_DetailAndCount(t *testing.T) {
	handler, store := newTestHandler()
	store.AddItem(cart.ProductSnapshot{ProductID: "1", Name: "keyboard", UnitPrice: dec(10)})
	store.AddItem(cart.ProductSnapshot{ProductID: "1", Name: "keyboard", UnitPrice: dec(10)})
	store.AddItem(cart.ProductSnapshot{ProductID: "2", Name: "mouse", UnitPrice: dec(30)})

	w := performRequest(t, handler.Detail, http.MethodGet, "/carts/detail", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Data cart.CartDetailResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Data.Items, 2)
	assert.Equal(t, 3, res.Data.TotalQuantity)
	assert.Equal(t, "50.00", res.Data.TotalAmount)
	assert.Equal(t, "20.00", res.Data.Items[0].Subtotal)

	w = performRequest(t, handler.Count, http.MethodGet, "/carts/count", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var countRes struct {
		Data cart.CartCountResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &countRes))
	assert.Equal(t, 3, countRes.Data.Count)
}

func TestCartHandler_DeleteClearsCart(t *testing.T) {
	handler, store := newTestHandler()
	store.AddItem(cart.ProductSnapshot{ProductID: "1", Name: "keyboard", UnitPrice: dec(10)})

	w := performRequest(t, handler.Delete, http.MethodDelete, "/carts", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.Snapshot().Items)
}
