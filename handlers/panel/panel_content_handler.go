package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"undangan.link/models"
	"undangan.link/repositories"
	"undangan.link/services"
	"undangan.link/store"
)

// ContentHandler panelin içerik uçlarını yönetir. Her alan tam değiştirme
// ile güncellenir: form katmanı nesnenin tamamını gönderir, kısmi merge
// yoktur. Alan bazlı validasyon (zorunlu ad, geçerli kategori vb.) burada,
// form sınırında yapılır; mağaza katmanı validasyon yapmaz.
type ContentHandler struct {
	store *store.WeddingStore
	sync  *services.SyncService
}

// NewContentHandler yeni bir ContentHandler örneği oluşturur. sync nil
// olabilir (uzak depo yapılandırılmamışsa).
func NewContentHandler(w *store.WeddingStore, sync *services.SyncService) *ContentHandler {
	return &ContentHandler{store: w, sync: sync}
}

// writeResult kota reddini panele görünür kılar: bellek içi değer
// güncellendi ama kalıcı yazma reddedildi, değişiklik yeniden açılışta
// kaybolacak.
func writeResult(c *fiber.Ctx, err error, payload any) error {
	if err == nil {
		return c.JSON(payload)
	}
	if errors.Is(err, repositories.ErrQuotaExceeded) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"warning": "İçerik 1MB boyut limitini aşıyor ve kalıcı olarak kaydedilmedi. " +
				"Değişiklik bu oturumda görünür ama yeniden açılışta kaybolur. " +
				"Görselleri küçültmeyi veya görsel yükleme ucunu kullanmayı deneyin.",
			"data": payload,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "içerik kaydedilemedi"})
}

// GetContent tüm dilimlerin birleşik görünümünü döndürür.
func (h *ContentHandler) GetContent(c *fiber.Ctx) error {
	return c.JSON(h.store.Aggregate())
}

// UpdateCouple çift bilgisini günceller.
func (h *ContentHandler) UpdateCouple(c *fiber.Ctx) error {
	var couple models.Couple
	if err := c.BodyParser(&couple); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}
	err := h.store.UpdateCouple(c.UserContext(), couple)
	return writeResult(c, err, h.store.Core.Get().Couple)
}

// UpdateDate düğün tarihini günceller.
func (h *ContentHandler) UpdateDate(c *fiber.Ctx) error {
	var req struct {
		Date string `json:"date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}
	err := h.store.UpdateDate(c.UserContext(), req.Date)
	return writeResult(c, err, fiber.Map{"date": h.store.Core.Get().Date})
}

// UpdateVenue mekanı günceller; harita önizlemesi sunucuda türetilir.
func (h *ContentHandler) UpdateVenue(c *fiber.Ctx) error {
	var venue models.Venue
	if err := c.BodyParser(&venue); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}
	err := h.store.UpdateVenue(c.UserContext(), venue)
	return writeResult(c, err, h.store.Core.Get().Venue)
}

// UpdateTheme temayı günceller.
func (h *ContentHandler) UpdateTheme(c *fiber.Ctx) error {
	var theme models.WeddingTheme
	if err := c.BodyParser(&theme); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}
	err := h.store.UpdateTheme(c.UserContext(), theme)
	return writeResult(c, err, h.store.Core.Get().Theme)
}

// UpdateSchedule programı günceller. Etkinlik ve akış satırı kimlikleri
// kendi kapsamlarında benzersiz olmalıdır.
func (h *ContentHandler) UpdateSchedule(c *fiber.Ctx) error {
	var schedule []models.Event
	if err := c.BodyParser(&schedule); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}
	if err := validateScheduleIDs(schedule); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	err := h.store.UpdateSchedule(c.UserContext(), schedule)
	return writeResult(c, err, h.store.Schedule.Get())
}

// UpdateCommittee komiteyi günceller. Liste sırası görüntüleme sırasıdır.
func (h *ContentHandler) UpdateCommittee(c *fiber.Ctx) error {
	var committee []models.CommitteeMember
	if err := c.BodyParser(&committee); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}
	for _, m := range committee {
		if m.Name == "" || m.Role == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "komite üyesi için ad ve rol zorunludur"})
		}
	}
	err := h.store.UpdateCommittee(c.UserContext(), committee)
	return writeResult(c, err, h.store.Committee.Get())
}

// UpdateVendors tedarikçi listesini günceller.
func (h *ContentHandler) UpdateVendors(c *fiber.Ctx) error {
	var vendors []models.Vendor
	if err := c.BodyParser(&vendors); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}
	err := h.store.UpdateVendors(c.UserContext(), vendors)
	return writeResult(c, err, h.store.Vendors.Get())
}

// UpdateCoordinators koordinatörleri günceller.
func (h *ContentHandler) UpdateCoordinators(c *fiber.Ctx) error {
	var coordinators []models.Coordinator
	if err := c.BodyParser(&coordinators); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}
	err := h.store.UpdateCoordinators(c.UserContext(), coordinators)
	return writeResult(c, err, h.store.Coordinators.Get())
}

// UpdateMoodboard ilham panosunu günceller. Kategori sabit kümeden olmalı.
func (h *ContentHandler) UpdateMoodboard(c *fiber.Ctx) error {
	var moodboard []models.MoodboardItem
	if err := c.BodyParser(&moodboard); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}
	for _, item := range moodboard {
		if !models.ValidMoodboardCategory(item.CategoryID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz moodboard kategorisi: " + item.CategoryID})
		}
	}
	err := h.store.UpdateMoodboard(c.UserContext(), moodboard)
	return writeResult(c, err, h.store.Moodboard.Get())
}

// UpdateEventSummary etkinlik özetini günceller.
func (h *ContentHandler) UpdateEventSummary(c *fiber.Ctx) error {
	var summary models.EventSummary
	if err := c.BodyParser(&summary); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}
	err := h.store.UpdateEventSummary(c.UserContext(), summary)
	return writeResult(c, err, h.store.EventSummary.Get())
}

type moveDetailRequest struct {
	Index     int    `json:"index"`
	Direction string `json:"direction"` // "up" | "down"
}

// MoveVendorDetail tedarikçi detay satırını bir pozisyon taşır.
func (h *ContentHandler) MoveVendorDetail(c *fiber.Ctx) error {
	vendorID := c.Params("id")
	var req moveDetailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}
	if req.Direction != "up" && req.Direction != "down" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "yön up veya down olmalı"})
	}

	err := h.store.MoveVendorDetail(c.UserContext(), vendorID, req.Index, req.Direction == "up")
	switch {
	case errors.Is(err, store.ErrVendorNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, store.ErrDetailOutOfRange), errors.Is(err, store.ErrDetailCannotMove):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return writeResult(c, err, h.store.Vendors.Get())
}

// ResetAll tüm dilimleri varsayılanlarına döndürür.
func (h *ContentHandler) ResetAll(c *fiber.Ctx) error {
	if err := h.store.ResetAll(c.UserContext()); err != nil {
		return writeResult(c, err, h.store.Aggregate())
	}
	return c.JSON(h.store.Aggregate())
}

// ResetSlice tek bir alanı varsayılanına döndürür.
func (h *ContentHandler) ResetSlice(c *fiber.Ctx) error {
	ctx := c.UserContext()
	var err error

	switch c.Params("domain") {
	case "core":
		err = h.store.Core.ResetToDefault(ctx)
	case "schedule":
		err = h.store.Schedule.ResetToDefault(ctx)
	case "committee":
		err = h.store.Committee.ResetToDefault(ctx)
	case "vendors":
		err = h.store.Vendors.ResetToDefault(ctx)
	case "coordinators":
		err = h.store.Coordinators.ResetToDefault(ctx)
	case "moodboard":
		err = h.store.Moodboard.ResetToDefault(ctx)
	case "event-summary":
		err = h.store.EventSummary.ResetToDefault(ctx)
	default:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "bilinmeyen alan"})
	}
	return writeResult(c, err, h.store.Aggregate())
}

// SyncStatus alan bazlı senkronizasyon durumlarını döndürür.
func (h *ContentHandler) SyncStatus(c *fiber.Ctx) error {
	if h.sync == nil {
		return c.JSON(fiber.Map{"enabled": false})
	}
	return c.JSON(fiber.Map{"enabled": true, "domains": h.sync.Statuses()})
}

// TriggerSync tek bir alanı elle yeniden çektirir.
func (h *ContentHandler) TriggerSync(c *fiber.Ctx) error {
	if h.sync == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "uzak senkronizasyon yapılandırılmamış"})
	}
	domain := services.SyncDomain(c.Params("domain"))
	found := false
	for _, d := range services.SyncDomains {
		if d == domain {
			found = true
			break
		}
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "bilinmeyen alan"})
	}

	h.sync.Refresh(c.UserContext(), domain)
	return c.JSON(h.sync.Status(domain))
}

// validateScheduleIDs etkinlik ve akış kimliklerinin benzersizliğini denetler.
func validateScheduleIDs(schedule []models.Event) error {
	seen := make(map[string]struct{}, len(schedule))
	for _, ev := range schedule {
		if _, dup := seen[ev.ID]; dup {
			return errors.New("etkinlik kimliği tekrar ediyor: " + ev.ID)
		}
		seen[ev.ID] = struct{}{}

		rundownSeen := make(map[string]struct{}, len(ev.DetailedRundown))
		for _, item := range ev.DetailedRundown {
			if _, dup := rundownSeen[item.ID]; dup {
				return errors.New("akış satırı kimliği tekrar ediyor: " + item.ID)
			}
			rundownSeen[item.ID] = struct{}{}
		}
	}
	return nil
}
