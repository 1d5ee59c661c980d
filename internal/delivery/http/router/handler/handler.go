// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/MatheusHenriquePrates/rankfome-backend/internal/delivery/http/middleware"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/delivery/http/response"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/entity"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/usecase"
)

// callerFromContext rebuilds the caller identity the auth middleware stored
// on the request.
func callerFromContext(c echo.Context) (usecase.Caller, bool) {
	userID, okID := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	role, okRole := c.Get(middleware.ContextKeyUserRole).(entity.Role)
	if !okID || !okRole {
		return usecase.Caller{}, false
	}

	return usecase.Caller{ID: userID, Role: role}, true
}

// pathID parses the :id route parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
