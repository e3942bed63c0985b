package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"

	"undangan.link/services"
	"undangan.link/store"
)

// Deps rota kayıtlarının ihtiyaç duyduğu bağımlılıkları taşır. Paket
// seviyesinde singleton yoktur; her şey main'de kurulup buraya verilir.
type Deps struct {
	Sessions *session.Store
	Store    *store.WeddingStore
	Auth     *store.AuthStore
	Export   *services.ExportService
	Images   *services.ImageService // nil olabilir
	Sync     *services.SyncService  // nil olabilir
}

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App, deps Deps) {
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama

	registerAuthRoutes(app, deps)
	registerPanelRoutes(app, deps)

	// Public rotalar en sonda, özel gruplardan sonra gelmeli.
	registerPublicRoutes(app, deps)

	app.Use(notFoundHandler)
}

// notFoundHandler eşleşmeyen tüm rotaları yakalar.
func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "kaynak bulunamadı"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Sayfa Bulunamadı"})
	}
}
