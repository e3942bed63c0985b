package configssession

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession panel oturumları için session store'u hazırlar.
// Tek yöneticili bir uygulama olduğundan in-memory store yeterlidir.
func SetupSession() *session.Store {
	return session.New(session.Config{
		Expiration:     24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		KeyLookup:      "cookie:undangan_session",
	})
}
