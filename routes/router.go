package routes

import (
	"formsayfa.link/configs"
	"formsayfa.link/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama
	app.Use(initializeSessionAndLocals())

	// --- Rota Grupları ---
	registerAuthRoutes(app)      // /auth rotaları
	registerDashboardRoutes(app) // /dashboard rotaları

	// --- Public Form Rotaları ---
	// Parametreli catch-all rotalar içerdiği için özel gruplardan sonra gelmeli.
	registerFormPageRoutes(app)

	// --- 404 Handler ---
	// En sonda, eşleşmeyen tüm rotaları yakalar.
	app.Use(notFoundHandler)
}

func initializeSessionAndLocals() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		userID, idErr := utils.GetUserIDFromSession(sess)
		isSystem, sysErr := utils.GetIsSystemFromSession(sess)
		userName, nameOk := sess.Get("user_name").(string)
		if idErr == nil {
			c.Locals("userID", userID)
		}
		if sysErr == nil {
			c.Locals("isSystem", isSystem)
		}
		if nameOk {
			c.Locals("userName", userName)
		}
		return c.Next()
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kaynak bulunamadı"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Sayfa Bulunamadı"}, "layouts/error_layout")
	}
}
