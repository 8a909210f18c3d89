package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware giriş yapılmamışsa login sayfasına yönlendirir.
func AuthMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	return c.Next()
}

// GuestMiddleware giriş yapmış kullanıcıyı panele yönlendirir.
func GuestMiddleware(c *fiber.Ctx) error {
	if userID, ok := c.Locals("userID").(uint); ok && userID != 0 {
		return c.Redirect("/dashboard/forms", fiber.StatusFound)
	}
	return c.Next()
}

// RequireSystem yalnızca IsSystem=true kullanıcılara izin verir.
func RequireSystem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isSystem, ok := c.Locals("isSystem").(bool)
		if !ok || !isSystem {
			return c.Status(fiber.StatusForbidden).Render("errors/404",
				fiber.Map{"Title": "Erişim Engellendi"}, "layouts/error_layout")
		}
		return c.Next()
	}
}
