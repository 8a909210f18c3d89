package routes

import (
	handlers "formsayfa.link/handlers/dashboard"
	"formsayfa.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerDashboardRoutes /dashboard altındaki rotaları tanımlar.
// Sadece IsSystem=true olan kullanıcılar erişebilir.
func registerDashboardRoutes(app *fiber.App) {
	formHandler := handlers.NewDashboardFormHandler()
	settingsHandler := handlers.NewDashboardSettingsHandler()

	dashboardGroup := app.Group("/dashboard")
	dashboardGroup.Use(
		middlewares.AuthMiddleware,  // 1. Giriş yapmış mı?
		middlewares.RequireSystem(), // 2. Sistem yöneticisi mi?
	)

	// --- Form Listesi ---
	dashboardGroup.Get("/forms", formHandler.ListForms) // GET /dashboard/forms

	// --- Ayarlar ---
	dashboardGroup.Get("/settings", settingsHandler.ShowSettings)    // GET /dashboard/settings
	dashboardGroup.Post("/settings", settingsHandler.UpdateSettings) // POST /dashboard/settings
}
