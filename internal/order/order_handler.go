package order

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-storefront-api/internal/pkg/apperror"
	"go-storefront-api/internal/pkg/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(s Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("order.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("order.handler")
	}
	return &Handler{service: s, logger: l}
}

func (h *Handler) Checkout(c *gin.Context) {
	customer := Customer{
		ID:    c.GetString("user_id_validated"),
		Email: c.GetString("email"),
	}
	sessionID := c.GetString("session_id")

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid payload", err.Error())
		return
	}

	res, err := h.service.Checkout(c.Request.Context(), customer, sessionID, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, res)
}
