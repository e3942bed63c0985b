package routes

import (
	public_handlers "undangan.link/handlers/public"

	"github.com/gofiber/fiber/v2"
)

// registerPublicRoutes davetiye sayfasının herkese açık rotalarını tanımlar.
func registerPublicRoutes(app *fiber.App, deps Deps) {
	publicHandler := public_handlers.NewPublicHandler(deps.Store)

	app.Get("/", publicHandler.ShowInvitation)
	app.Get("/api/invitation", publicHandler.GetInvitation)
}
