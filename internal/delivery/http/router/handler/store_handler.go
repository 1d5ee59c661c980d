package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/MatheusHenriquePrates/rankfome-backend/internal/delivery/http/response"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/usecase"
)

// defaultNearbyRadiusKm applies when the proximity search omits the radius.
const defaultNearbyRadiusKm = 5.0

// StoreHandler holds dependencies for store-related handlers.
type StoreHandler struct {
	uc usecase.StoreUsecase
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// CreateStore handles the store creation request.
func (h *StoreHandler) CreateStore(c echo.Context) error {
	caller, ok := callerFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "authentication required")
	}

	var input *usecase.CreateStoreInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	store, err := h.uc.CreateStore(c.Request().Context(), caller, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newStoreView(store), "Store created successfully")
}

// ListStores handles the public store listing request.
func (h *StoreHandler) ListStores(c echo.Context) error {
	stores, err := h.uc.ListStores(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newStoreViews(stores), "")
}

// ListNearbyStores handles the public proximity listing request. Query
// parameters: lat, lng and raio (radius in kilometers, optional).
func (h *StoreHandler) ListNearbyStores(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lat must be a number")
	}

	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lng must be a number")
	}

	radiusKm := defaultNearbyRadiusKm
	if raw := c.QueryParam("raio"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusKm <= 0 {
			return response.BadRequest(c, "INVALID_INPUT", "raio must be a positive number")
		}
	}

	nearby, err := h.uc.ListNearbyStores(c.Request().Context(), lat, lng, radiusKm)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newNearbyStoreViews(nearby), "")
}

// GetStore handles the public store detail request.
func (h *StoreHandler) GetStore(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store id")
	}

	store, err := h.uc.GetStore(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newStoreView(store), "")
}

// UpdateStore handles the store update request.
func (h *StoreHandler) UpdateStore(c echo.Context) error {
	caller, ok := callerFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "authentication required")
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store id")
	}

	var input *usecase.UpdateStoreInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	store, err := h.uc.UpdateStore(c.Request().Context(), caller, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newStoreView(store), "Store updated successfully")
}

// DeleteStore handles the store deletion request.
func (h *StoreHandler) DeleteStore(c echo.Context) error {
	caller, ok := callerFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "authentication required")
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store id")
	}

	if err := h.uc.DeleteStore(c.Request().Context(), caller, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Store deleted successfully")
}
