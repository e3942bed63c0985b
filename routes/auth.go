package routes

import (
	auth_handlers "undangan.link/handlers/auth" // İsim çakışmasını önlemek için alias
	"undangan.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerAuthRoutes(app *fiber.App, deps Deps) {
	authHandler := auth_handlers.NewAuthHandler(deps.Auth, deps.Sessions)
	authGroup := app.Group("/auth")

	authGroup.Post("/login", authHandler.Login)

	userRoutes := authGroup.Group("")
	userRoutes.Use(middlewares.NewAuthMiddleware(deps.Sessions))
	userRoutes.Post("/logout", authHandler.Logout)
	userRoutes.Get("/me", authHandler.Me)
}
