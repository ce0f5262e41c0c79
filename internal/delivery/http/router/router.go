// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ruteando/internal/delivery/http/middleware"
	"ruteando/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler   *handler.HealthHandler
	AddressHandler  *handler.AddressHandler
	RouteHandler    *handler.RouteHandler
	DeliveryHandler *handler.DeliveryHandler
	LinkHandler     *handler.LinkHandler
	UserHandler     *handler.UserHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler   *handler.HealthHandler
	addressHandler  *handler.AddressHandler
	routeHandler    *handler.RouteHandler
	deliveryHandler *handler.DeliveryHandler
	linkHandler     *handler.LinkHandler
	userHandler     *handler.UserHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:   params.HealthHandler,
		addressHandler:  params.AddressHandler,
		routeHandler:    params.RouteHandler,
		deliveryHandler: params.DeliveryHandler,
		linkHandler:     params.LinkHandler,
		userHandler:     params.UserHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.Check)

	// Address ingestion
	addressGroup := e.Group("/direcciones")
	addressGroup.Use(r.authMiddleware.Authenticate)
	{
		addressGroup.POST("/ingestar", r.addressHandler.Ingest)
	}

	// Route lifecycle
	routeGroup := e.Group("/rutas")
	routeGroup.Use(r.authMiddleware.Authenticate)
	{
		routeGroup.POST("/planificar", r.routeHandler.Plan)
		routeGroup.GET("/:id", r.routeHandler.Get)
		routeGroup.POST("/:id/asignar", r.routeHandler.Assign)
		routeGroup.POST("/:id/iniciar", r.routeHandler.Start)
		routeGroup.POST("/:id/finalizar", r.routeHandler.Finish)
		routeGroup.POST("/:id/proximidad", r.routeHandler.Proximity)
	}

	// Delivery tracking
	deliveryGroup := e.Group("/entregas")
	deliveryGroup.Use(r.authMiddleware.Authenticate)
	{
		deliveryGroup.POST("/intento", r.deliveryHandler.RecordAttempt)
		deliveryGroup.GET("/historial", r.deliveryHandler.History)
		deliveryGroup.POST("/adjuntos", r.deliveryHandler.UploadAttachment)
	}

	// Manager-driver linking
	linkGroup := e.Group("/vinculacion")
	linkGroup.Use(r.authMiddleware.Authenticate)
	{
		linkGroup.POST("/codigo", r.linkHandler.GenerateCode)
		linkGroup.POST("/canjear", r.linkHandler.RedeemCode)
		linkGroup.DELETE("/:driver_id", r.linkHandler.Unlink)
	}

	// Account
	userGroup := e.Group("/usuario")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/perfil", r.userHandler.GetProfile)
		userGroup.POST("/rol", r.userHandler.SwitchRole)
	}
}
