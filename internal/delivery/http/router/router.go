// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/MatheusHenriquePrates/rankfome-backend/internal/delivery/http/middleware"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/delivery/http/router/handler"
)

// RouterParams holds the handlers and middleware injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	StoreHandler   *handler.StoreHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	UploadHandler  *handler.UploadHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
// Authorization beyond authentication (roles, ownership) lives in the use
// cases; the middleware only establishes who the caller is.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.params.AuthMiddleware.Authenticate

	e.GET("/health", handler.HealthCheck)

	userGroup := e.Group("/Usuarios")
	{
		userGroup.POST("/Registro", r.params.UserHandler.Register)
		userGroup.POST("/Login", r.params.UserHandler.Login)
	}

	storeGroup := e.Group("/Lojas")
	{
		storeGroup.GET("", r.params.StoreHandler.ListStores)
		storeGroup.GET("/Proximas", r.params.StoreHandler.ListNearbyStores)
		storeGroup.GET("/:id", r.params.StoreHandler.GetStore)
		storeGroup.POST("", r.params.StoreHandler.CreateStore, authenticate)
		storeGroup.PUT("/:id", r.params.StoreHandler.UpdateStore, authenticate)
		storeGroup.DELETE("/:id", r.params.StoreHandler.DeleteStore, authenticate)
	}

	productGroup := e.Group("/Produtos")
	{
		productGroup.GET("", r.params.ProductHandler.ListProducts)
		productGroup.GET("/Loja/:lojaId", r.params.ProductHandler.ListStoreProducts)
		productGroup.GET("/:id", r.params.ProductHandler.GetProduct)
		productGroup.POST("", r.params.ProductHandler.CreateProduct, authenticate)
		productGroup.PUT("/:id", r.params.ProductHandler.UpdateProduct, authenticate)
		productGroup.DELETE("/:id", r.params.ProductHandler.DeleteProduct, authenticate)
	}

	orderGroup := e.Group("/Pedidos", authenticate)
	{
		orderGroup.POST("", r.params.OrderHandler.CreateOrder)
		orderGroup.GET("", r.params.OrderHandler.ListOrders)
		orderGroup.GET("/:id", r.params.OrderHandler.GetOrder)
		orderGroup.GET("/:id/QRCode", r.params.OrderHandler.TrackingQR)
		orderGroup.PUT("/:id/Status", r.params.OrderHandler.UpdateOrderStatus)
		orderGroup.DELETE("/:id", r.params.OrderHandler.DeleteOrder)
	}

	e.POST("/Upload", r.params.UploadHandler.Upload)
}
