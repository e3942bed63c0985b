package routes

import (
	panel_handlers "undangan.link/handlers/panel"
	"undangan.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerPanelRoutes /panel altındaki yönetim rotalarını tanımlar.
// Tüm uçlar oturum korumalıdır.
func registerPanelRoutes(app *fiber.App, deps Deps) {
	contentHandler := panel_handlers.NewContentHandler(deps.Store, deps.Sync)
	exportHandler := panel_handlers.NewExportHandler(deps.Export, deps.Images)

	panelGroup := app.Group("/panel/api")
	panelGroup.Use(middlewares.NewAuthMiddleware(deps.Sessions))

	// --- Birleşik içerik ---
	panelGroup.Get("/content", contentHandler.GetContent) // GET /panel/api/content

	// --- Alan bazlı güncellemeler (tam değiştirme) ---
	panelGroup.Put("/couple", contentHandler.UpdateCouple)
	panelGroup.Put("/date", contentHandler.UpdateDate)
	panelGroup.Put("/venue", contentHandler.UpdateVenue)
	panelGroup.Put("/theme", contentHandler.UpdateTheme)
	panelGroup.Put("/schedule", contentHandler.UpdateSchedule)
	panelGroup.Put("/committee", contentHandler.UpdateCommittee)
	panelGroup.Put("/vendors", contentHandler.UpdateVendors)
	panelGroup.Put("/coordinators", contentHandler.UpdateCoordinators)
	panelGroup.Put("/moodboard", contentHandler.UpdateMoodboard)
	panelGroup.Put("/event-summary", contentHandler.UpdateEventSummary)

	// --- Tedarikçi detay sıralama ---
	panelGroup.Post("/vendors/:id/details/move", contentHandler.MoveVendorDetail)

	// --- Varsayılanlara dönüş ---
	panelGroup.Post("/reset", contentHandler.ResetAll)
	panelGroup.Post("/reset/:domain", contentHandler.ResetSlice)

	// --- Uzak senkronizasyon ---
	panelGroup.Get("/sync/status", contentHandler.SyncStatus)
	panelGroup.Post("/sync/refresh/:domain", contentHandler.TriggerSync)

	// --- Yedekleme ve görseller ---
	panelGroup.Get("/export", exportHandler.Export)
	panelGroup.Post("/import", exportHandler.Import)
	panelGroup.Post("/images", exportHandler.UploadImage)
}
