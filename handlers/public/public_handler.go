package handlers // handlers/public paketi

import (
	"github.com/gofiber/fiber/v2"

	"undangan.link/store"
)

// PublicHandler davetiye sayfasının okunur uçlarını yönetir. Kimlik
// doğrulama gerektirmez; içerik her istekte dilimlerden yeniden birleştirilir.
type PublicHandler struct {
	store *store.WeddingStore
}

// NewPublicHandler yeni bir PublicHandler örneği oluşturur.
func NewPublicHandler(w *store.WeddingStore) *PublicHandler {
	return &PublicHandler{store: w}
}

// ShowInvitation davetiye sayfasını render eder.
func (h *PublicHandler) ShowInvitation(c *fiber.Ctx) error {
	data := h.store.Aggregate()
	return c.Render("public/index", fiber.Map{
		"Title":   data.Couple.Groom.Name + " & " + data.Couple.Bride.Name,
		"Data":    data,
		"Summary": data.EventSummary,
	})
}

// GetInvitation birleşik davetiye içeriğini JSON olarak döndürür.
func (h *PublicHandler) GetInvitation(c *fiber.Ctx) error {
	return c.JSON(h.store.Aggregate())
}
