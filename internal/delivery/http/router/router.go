// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"antigaspi/internal/delivery/http/middleware"
	"antigaspi/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler      *handler.CatalogHandler
	MessageHandler      *handler.MessageHandler
	ProfileHandler      *handler.ProfileHandler
	NotificationHandler *handler.NotificationHandler
	CheckoutHandler     *handler.CheckoutHandler
	PaymentHandler      *handler.PaymentHandler
	ReviewHandler       *handler.ReviewHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.ProfileHandler.Register)
		authGroup.POST("/login", r.params.ProfileHandler.Login)
		authGroup.POST("/refresh", r.params.ProfileHandler.Refresh)
		authGroup.POST("/logout", r.params.ProfileHandler.Logout)
	}

	// Public catalog routes: browsing needs no account.
	products := e.Group("/products")
	{
		products.GET("", r.params.CatalogHandler.List)
		products.GET("/statistics", r.params.CatalogHandler.Statistics)
		products.GET("/user/:name", r.params.CatalogHandler.ByUser)
		products.GET("/user/:name/donations", r.params.CatalogHandler.DonationsByUser)
		products.GET("/:id", r.params.CatalogHandler.Get)
		products.GET("/:id/share", r.params.CatalogHandler.Share)
		products.POST("/scan", r.params.CatalogHandler.Scan)
		products.GET("/:id/reviews", r.params.ReviewHandler.List)
		products.GET("/:id/reviews/summary", r.params.ReviewHandler.Summary)
	}

	// Catalog mutations require authentication.
	productsAuth := e.Group("/products")
	productsAuth.Use(r.params.AuthMiddleware.Authenticate)
	{
		productsAuth.POST("", r.params.CatalogHandler.Create)
		productsAuth.GET("/reserved", r.params.CatalogHandler.Reserved)
		productsAuth.POST("/:id/reserve", r.params.CatalogHandler.Reserve)
		productsAuth.DELETE("/:id/reserve", r.params.CatalogHandler.Unreserve)
		productsAuth.POST("/:id/reviews", r.params.ReviewHandler.Add)
	}

	reviews := e.Group("/reviews")
	reviews.Use(r.params.AuthMiddleware.Authenticate)
	{
		reviews.POST("/:id/helpful", r.params.ReviewHandler.VoteHelpful)
	}

	messages := e.Group("/messages")
	messages.Use(r.params.AuthMiddleware.Authenticate)
	{
		messages.POST("", r.params.MessageHandler.Send)
		messages.GET("/conversations", r.params.MessageHandler.Conversations)
		messages.GET("/conversations/:key", r.params.MessageHandler.Conversation)
		messages.POST("/conversations/:key/read", r.params.MessageHandler.MarkRead)
		messages.GET("/log", r.params.MessageHandler.Log)
		messages.GET("/unread-count", r.params.MessageHandler.UnreadCount)
		messages.POST("/simulate-interest", r.params.MessageHandler.SimulateInterest)
	}

	notifications := e.Group("/notifications")
	notifications.Use(r.params.AuthMiddleware.Authenticate)
	{
		notifications.GET("", r.params.NotificationHandler.List)
		notifications.POST("/:id/read", r.params.NotificationHandler.MarkRead)
		notifications.POST("/read-all", r.params.NotificationHandler.MarkAllRead)
	}

	cart := e.Group("/cart")
	cart.Use(r.params.AuthMiddleware.Authenticate)
	{
		cart.GET("", r.params.CheckoutHandler.Get)
		cart.POST("/items", r.params.CheckoutHandler.AddItem)
		cart.PUT("/items/:id", r.params.CheckoutHandler.UpdateQuantity)
		cart.DELETE("/items/:id", r.params.CheckoutHandler.RemoveItem)
		cart.POST("/checkout", r.params.CheckoutHandler.Submit)
	}

	payment := e.Group("/payment")
	payment.Use(r.params.AuthMiddleware.Authenticate)
	{
		payment.POST("/quote", r.params.PaymentHandler.Quote)
		payment.POST("/pay", r.params.PaymentHandler.Pay)
	}

	profile := e.Group("/profile")
	profile.Use(r.params.AuthMiddleware.Authenticate)
	{
		profile.GET("", r.params.ProfileHandler.Get)
		profile.PUT("", r.params.ProfileHandler.Update)
		profile.POST("/save", r.params.ProfileHandler.Save)
		profile.DELETE("", r.params.ProfileHandler.Clear)
	}
}
