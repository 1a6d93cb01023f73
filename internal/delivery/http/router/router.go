// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"snapdish/internal/delivery/http/middleware"
	"snapdish/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ClassifyHandler *handler.ClassifyHandler
	MealHandler     *handler.MealHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	classifyHandler *handler.ClassifyHandler
	mealHandler     *handler.MealHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		classifyHandler: params.ClassifyHandler,
		mealHandler:     params.MealHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes mirrors the production backend's paths.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	e.POST("/register", r.authHandler.Register)
	e.POST("/token", r.authHandler.Token)

	// Classification is open to anonymous callers.
	e.POST("/classify", r.classifyHandler.Classify)

	meals := e.Group("", r.authMiddleware.Authenticate)
	{
		meals.POST("/add-meal", r.mealHandler.AddMeal)
		meals.GET("/meals", r.mealHandler.ListMeals)
		meals.PUT("/update-meal/:id", r.mealHandler.UpdateMeal)
		meals.POST("/add-ingredients/:id", r.mealHandler.AddIngredients)
	}
}
