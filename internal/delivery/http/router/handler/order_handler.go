package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/MatheusHenriquePrates/rankfome-backend/internal/delivery/http/response"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/usecase"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// CreateOrder handles the order placement request.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	caller, ok := callerFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "authentication required")
	}

	var input *usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), caller, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newOrderView(order), "Order created successfully")
}

// ListOrders handles the order listing request, scoped by ownership.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	caller, ok := callerFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "authentication required")
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderViews(orders), "")
}

// GetOrder handles the order detail request.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	caller, ok := callerFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "authentication required")
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), caller, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order), "")
}

// UpdateOrderStatus handles the status transition request.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	caller, ok := callerFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "authentication required")
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	var input *usecase.UpdateOrderStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), caller, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order), "Order status updated successfully")
}

// DeleteOrder handles the order deletion request.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	caller, ok := callerFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "authentication required")
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), caller, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted successfully")
}

// TrackingQR streams the order's tracking QR code as a PNG image.
func (h *OrderHandler) TrackingQR(c echo.Context) error {
	caller, ok := callerFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "authentication required")
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	png, err := h.uc.TrackingQR(c.Request().Context(), caller, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
