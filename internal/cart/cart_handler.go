package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"go-storefront-api/internal/pkg/response"
)

// StoreResolver returns the cart store owned by a session, creating it on
// first use. Wired from the session manager in the composition root.
type StoreResolver func(sessionID string) *Store

type Handler struct {
	resolve StoreResolver
	logger  *zap.Logger
}

func NewHandler(resolve StoreResolver, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("cart.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cart.handler")
	}
	return &Handler{resolve: resolve, logger: l}
}

func (h *Handler) store(c *gin.Context) *Store {
	return h.resolve(c.GetString("session_id"))
}

func (h *Handler) AddItem(c *gin.Context) {
	productID := c.Param("productId")

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid payload", err.Error())
		return
	}

	state := h.store(c).AddItem(ProductSnapshot{
		ProductID: productID,
		Name:      req.Name,
		Brand:     req.Brand,
		Image:     req.Image,
		UnitPrice: decimal.NewFromFloat(req.Price),
	})

	response.Success(c, http.StatusCreated, toDetailResponse(state))
}

func (h *Handler) Decrement(c *gin.Context) {
	// absent product ids are a silent no-op, rapid clicks must never fault
	state := h.store(c).DecrementItem(c.Param("productId"))
	response.Success(c, http.StatusOK, toDetailResponse(state))
}

func (h *Handler) DeleteItem(c *gin.Context) {
	state := h.store(c).RemoveItem(c.Param("productId"))
	response.Success(c, http.StatusOK, toDetailResponse(state))
}

func (h *Handler) Delete(c *gin.Context) {
	state := h.store(c).Clear()
	response.Success(c, http.StatusOK, toDetailResponse(state))
}

func (h *Handler) Detail(c *gin.Context) {
	response.Success(c, http.StatusOK, toDetailResponse(h.store(c).Snapshot()))
}

func (h *Handler) Count(c *gin.Context) {
	state := h.store(c).Snapshot()
	response.Success(c, http.StatusOK, CartCountResponse{Count: state.TotalQuantity})
}
