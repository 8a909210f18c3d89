package handlers

import (
	"time"

	"formsayfa.link/configs/configslog"
	"formsayfa.link/models"
	"formsayfa.link/pkg/flashmessages"
	"formsayfa.link/pkg/queryparams"
	"formsayfa.link/pkg/renderer"
	"formsayfa.link/repositories"
	"formsayfa.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DashboardFormHandler formların yönetim listesi. Görünürlük filtresi
// uygulanmaz: gizli formlar da listelenir, ziyaretçiye nasıl görüneceği
// ayrı bir sütunda gösterilir.
type DashboardFormHandler struct {
	repo           repositories.IFormRepository
	visibility     services.IVisibilityService
	settingService services.ISettingService
}

// NewDashboardFormHandler yeni bir DashboardFormHandler örneği oluşturur.
func NewDashboardFormHandler() *DashboardFormHandler {
	return &DashboardFormHandler{
		repo:           repositories.NewFormRepository(),
		visibility:     services.NewVisibilityService(),
		settingService: services.NewSettingService(),
	}
}

// formRow listede gösterilen satır.
type formRow struct {
	Form   models.Form
	Slug   string
	Hidden bool
}

// ListForms tüm formları (gizli dahil) sayfalayarak listeler.
func (h *DashboardFormHandler) ListForms(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	ctx := c.UserContext()
	forms, totalCount, err := h.repo.FindAllPaginated(ctx, params)

	// Ziyaretçi gözüyle görünürlük işaretlenir (oturumsuz kabul edilir).
	vctx := services.VisibilityContext{
		Now:                 time.Now().UTC(),
		LoggedIn:            false,
		DefaultAvailability: h.settingService.DefaultAvailability(ctx),
		HideClosedForms:     h.settingService.HideClosedForms(ctx),
	}
	rows := make([]formRow, 0, len(forms))
	for i := range forms {
		rows = append(rows, formRow{
			Form:   forms[i],
			Slug:   forms[i].Slug(),
			Hidden: h.visibility.IsHidden(&forms[i], vctx),
		})
	}

	renderData := fiber.Map{
		"Title":  "Formlar",
		"Rows":   rows,
		"Params": params,
		"Result": &queryparams.PaginatedResult{
			Data: rows,
			Meta: queryparams.PaginationMeta{
				CurrentPage: params.Page,
				PerPage:     params.PerPage,
				TotalItems:  totalCount,
				TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
			},
		},
	}
	renderer.SetFlashMessages(renderData, flashmessages.GetFlashMessages(c))

	if err != nil {
		renderData[renderer.FlashErrorKeyView] = "Formlar listelenirken hata."
		renderData["Rows"] = []formRow{}
		configslog.Log.Error("Dashboard - ListForms Error", zap.Error(err))
	}
	return renderer.Render(c, "dashboard/forms", "layouts/dashboard_layout", renderData)
}
