package routes

import (
	handlers "formsayfa.link/handlers/public"

	"github.com/gofiber/fiber/v2"
)

// registerFormPageRoutes public form sayfalarını yönetecek rotaları tanımlar.
// :section parametresi handler içinde forms_slug ayarıyla karşılaştırılır;
// eşleşmezse istek 404 handler'a düşer. Bu rotalar diğer özel gruplardan
// (örn. /auth, /dashboard) SONRA tanımlanmalı.
func registerFormPageRoutes(app *fiber.App) {
	publicHandler := handlers.NewFormPageHandler()

	// Plain mode: /?fp_form=17 ve /?fp_archive=1&paged=2
	app.Get("/", publicHandler.HandleRoot)

	// Pretty mode: /{forms_slug}, /{forms_slug}/page/{n}, /{forms_slug}/{slug}
	app.Get("/:section", publicHandler.HandleArchive)
	app.Get("/:section/page/:paged", publicHandler.HandleArchivePaged)
	app.Get("/:section/:slug", publicHandler.HandleSingleForm)
}
