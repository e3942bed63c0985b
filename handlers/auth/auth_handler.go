package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"

	"undangan.link/configs/configslog"
	"undangan.link/middlewares"
	"undangan.link/store"
)

// AuthHandler giriş/çıkış uçlarını yönetir.
type AuthHandler struct {
	auth     *store.AuthStore
	sessions *session.Store
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler(auth *store.AuthStore, sessions *session.Store) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login kimlik bilgilerini denetler. Başarısız denemede oturum durumu
// değişmez ve çağırana genel bir mesaj döner.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	if !h.auth.Login(c.UserContext(), req.Username, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "kullanıcı adı veya parola hatalı"})
	}

	sess, err := h.sessions.Get(c)
	if err != nil {
		configslog.Log.Error("Oturum başlatılamadı", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "oturum başlatılamadı"})
	}
	sess.Set(middlewares.SessionUserKey, req.Username)
	if err := sess.Save(); err != nil {
		configslog.Log.Error("Oturum kaydedilemedi", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "oturum kaydedilemedi"})
	}

	return c.JSON(h.auth.State())
}

// Logout oturumu ve kalıcı auth dilimini temizler.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.auth.Logout(c.UserContext())

	if sess, err := h.sessions.Get(c); err == nil {
		if err := sess.Destroy(); err != nil {
			configslog.Log.Warn("Oturum sonlandırılamadı", zap.Error(err))
		}
	}
	return c.JSON(fiber.Map{"message": "oturum kapatıldı"})
}

// Me güncel oturum durumunu döndürür.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(h.auth.State())
}
