package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SessionUserKey oturumda yönetici kullanıcı adını tutan anahtar.
const SessionUserKey = "username"

// NewAuthMiddleware panel rotalarını oturum kontrolüyle korur. Oturumda
// kullanıcı yoksa 401 döner; yetki seviyesi yoktur, tek yönetici vardır.
func NewAuthMiddleware(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "oturum açılmamış"})
		}
		username, _ := sess.Get(SessionUserKey).(string)
		if username == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "oturum açılmamış"})
		}
		c.Locals(SessionUserKey, username)
		return c.Next()
	}
}
