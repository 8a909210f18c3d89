package handlers

import (
	"formsayfa.link/configs/configslog"
	"formsayfa.link/models"
	"formsayfa.link/pkg/flashmessages"
	"formsayfa.link/pkg/renderer"
	"formsayfa.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DashboardSettingsHandler uygulama ayarları ekranı.
type DashboardSettingsHandler struct {
	service services.ISettingService
}

// NewDashboardSettingsHandler yeni bir DashboardSettingsHandler örneği oluşturur.
func NewDashboardSettingsHandler() *DashboardSettingsHandler {
	return &DashboardSettingsHandler{service: services.NewSettingService()}
}

// ShowSettings ayar formunu gösterir.
func (h *DashboardSettingsHandler) ShowSettings(c *fiber.Ctx) error {
	settings, err := h.service.AllSettings(c.UserContext())
	renderData := fiber.Map{
		"Title":    "Ayarlar",
		"Settings": settings,
	}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))

	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Ayarlar okunurken hata."
		configslog.Log.Error("Dashboard - ShowSettings Error", zap.Error(err))
	}
	return renderer.Render(c, "dashboard/settings", "layouts/dashboard_layout", renderData)
}

// UpdateSettings ayar formunu kaydeder.
func (h *DashboardSettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	values := map[string]string{
		models.OptionFormsSlug:          c.FormValue("forms_slug"),
		models.OptionFormsPerPage:       c.FormValue("forms_per_page"),
		models.OptionHideFormArchive:    checkboxValue(c, "hide_form_archive"),
		models.OptionHideClosedForms:    checkboxValue(c, "hide_closed_forms"),
		models.OptionDefaultAvail:       checkboxValue(c, "default_availability"),
		models.OptionForceAjax:          checkboxValue(c, "force_ajax"),
		models.OptionArchiveTitle:       c.FormValue("form_archive_title"),
		models.OptionArchiveDescription: c.FormValue("form_archive_description"),
	}

	if err := h.service.UpdateSettings(c.UserContext(), values); err != nil {
		configslog.Log.Error("Dashboard - UpdateSettings Error", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Ayarlar kaydedilemedi.")
		return c.Redirect("/dashboard/settings", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Ayarlar kaydedildi.")
	return c.Redirect("/dashboard/settings", fiber.StatusSeeOther)
}

// checkboxValue işaretli checkbox "1", işaretsiz "0" olarak kaydedilir.
func checkboxValue(c *fiber.Ctx, name string) string {
	if c.FormValue(name) != "" {
		return "1"
	}
	return "0"
}
