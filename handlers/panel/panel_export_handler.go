package handlers // handlers/panel paketi

import (
	"errors"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"undangan.link/configs/configslog"
	"undangan.link/repositories"
	"undangan.link/services"

	"go.uber.org/zap"
)

// ExportHandler içerik yedekleme, geri yükleme ve görsel yükleme uçlarını
// yönetir. images nil olabilir: nesne deposu yapılandırılmamışsa görsel
// yükleme 503 döner, data URI gömmek yine mümkündür.
type ExportHandler struct {
	export *services.ExportService
	images *services.ImageService
}

func NewExportHandler(export *services.ExportService, images *services.ImageService) *ExportHandler {
	return &ExportHandler{export: export, images: images}
}

// Export tüm içeriği indirilebilir JSON dosyası olarak döndürür.
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	raw, err := h.export.ExportJSON()
	if err != nil {
		configslog.Log.Error("Export başarısız", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "dışa aktarma başarısız"})
	}

	filename := "undangan-export-" + time.Now().Format("2006-01-02") + ".json"
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(raw)
}

// Import yedek dosyasını okuyup tüm dilimleri değiştirir. Gövde ham JSON
// ya da multipart "file" alanı olabilir.
func (h *ExportHandler) Import(c *fiber.Ctx) error {
	raw := c.Body()
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "dosya açılamadı"})
		}
		defer f.Close()
		raw, err = io.ReadAll(f)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "dosya okunamadı"})
		}
	}

	if err := h.export.ImportJSON(c.UserContext(), raw); err != nil {
		if errors.Is(err, repositories.ErrQuotaExceeded) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"warning": "İçe aktarılan içerik boyut limitini aşıyor, bazı alanlar kalıcı olarak kaydedilmedi.",
			})
		}
		configslog.Log.Error("Import başarısız", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz yedek dosyası"})
	}
	return c.JSON(fiber.Map{"message": "içerik geri yüklendi"})
}

type uploadImageRequest struct {
	ImageData string `json:"imageData"` // data: URI
	Category  string `json:"category"`
	Filename  string `json:"filename"`
}

// UploadImage bir görseli nesne deposuna yükler ve kalıcı URL'ini döndürür.
// Gövde ya data URI taşıyan JSON ya da multipart "image" alanıdır.
func (h *ExportHandler) UploadImage(c *fiber.Ctx) error {
	if h.images == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "nesne deposu yapılandırılmamış"})
	}

	if file, err := c.FormFile("image"); err == nil {
		f, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "dosya açılamadı"})
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "dosya okunamadı"})
		}

		category := c.FormValue("category", "other")
		url, err := h.images.Upload(c.UserContext(), data, file.Header.Get("Content-Type"), category, file.Filename)
		if err != nil {
			configslog.Log.Error("Görsel yükleme başarısız", zap.String("filename", file.Filename), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "görsel yüklenemedi"})
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
	}

	var req uploadImageRequest
	if err := c.BodyParser(&req); err != nil || req.ImageData == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "imageData alanı veya image dosyası gerekli"})
	}
	if req.Category == "" {
		req.Category = "other"
	}

	url, err := h.images.UploadDataURI(c.UserContext(), req.ImageData, req.Category, req.Filename)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDataURI) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz data URI"})
		}
		configslog.Log.Error("Görsel yükleme başarısız", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "görsel yüklenemedi"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}
