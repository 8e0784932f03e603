package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-storefront-api/internal/pkg/apperror"
	"go-storefront-api/internal/pkg/response"
)

type StoreResolver func(sessionID string) *Store

type Handler struct {
	resolve StoreResolver
	client  *Client
	logger  *zap.Logger
}

func NewHandler(resolve StoreResolver, client *Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("catalog.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("catalog.handler")
	}
	return &Handler{resolve: resolve, client: client, logger: l}
}

func (h *Handler) store(c *gin.Context) *Store {
	return h.resolve(c.GetString("session_id"))
}

func (h *Handler) Load(c *gin.Context) {
	store := h.store(c)
	if err := store.Load(c.Request.Context()); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, toStateResponse(store.Snapshot()))
}

func (h *Handler) Products(c *gin.Context) {
	response.Success(c, http.StatusOK, toStateResponse(h.store(c).Snapshot()))
}

func (h *Handler) ProductByID(c *gin.Context) {
	product, err := h.client.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, product)
}

func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.client.GetCategories(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, categories)
}

func (h *Handler) SetFilter(c *gin.Context) {
	var req SetFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid payload", err.Error())
		return
	}

	kind, value, err := req.decodeValue()
	if err == nil {
		err = h.store(c).SetFilter(kind, value)
	}
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, toStateResponse(h.store(c).Snapshot()))
}

func (h *Handler) ClearFilters(c *gin.Context) {
	store := h.store(c)
	store.ClearFilters()
	response.Success(c, http.StatusOK, toStateResponse(store.Snapshot()))
}
