package handlers

import (
	"errors"
	"strconv"
	"time"

	"formsayfa.link/configs/configslog"
	"formsayfa.link/models"
	"formsayfa.link/pkg/routing"
	"formsayfa.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FormPageHandler public form sayfası isteklerini yönetir: tekil form
// sayfaları ve sayfalanmış form arşivi. Çözümlenen form istek boyunca
// fonksiyon dönüş değerleriyle taşınır; süreç çapında "geçerli form"
// durumu tutulmaz.
type FormPageHandler struct {
	formService    services.IFormService
	archiveService services.IArchiveService
	settingService services.ISettingService
}

// NewFormPageHandler yeni bir FormPageHandler örneği oluşturur.
func NewFormPageHandler() *FormPageHandler {
	return &FormPageHandler{
		formService:    services.NewFormService(),
		archiveService: services.NewArchiveService(),
		settingService: services.NewSettingService(),
	}
}

// NewFormPageHandlerWithDeps test ve özel kurulumlar için.
func NewFormPageHandlerWithDeps(form services.IFormService, archive services.IArchiveService, settings services.ISettingService) *FormPageHandler {
	return &FormPageHandler{formService: form, archiveService: archive, settingService: settings}
}

// visibilityContext isteğin dış girdilerini (saat, oturum, ayarlar) toplar.
func (h *FormPageHandler) visibilityContext(c *fiber.Ctx) services.VisibilityContext {
	ctx := c.UserContext()
	loggedIn := false
	if id, ok := c.Locals("userID").(uint); ok && id != 0 {
		loggedIn = true
	}
	return services.VisibilityContext{
		Now:                 time.Now().UTC(),
		LoggedIn:            loggedIn,
		DefaultAvailability: h.settingService.DefaultAvailability(ctx),
		HideClosedForms:     h.settingService.HideClosedForms(ctx),
	}
}

// HandleRoot kök URL'deki plain-mode istekleri yakalar:
// /?fp_form=17 ve /?fp_archive=1&paged=2 biçimleri. Parametre yoksa
// arşive yönlendirir.
func (h *FormPageHandler) HandleRoot(c *fiber.Ctx) error {
	params := map[string]string{}
	if v := c.Query(routing.ParamForm); v != "" {
		params[routing.ParamForm] = v
	}
	// Arşiv parametresinin varlığı yeterli, değeri önemsiz.
	if c.Request().URI().QueryArgs().Has(routing.ParamArchive) {
		params[routing.ParamArchive] = c.Query(routing.ParamArchive)
		params[routing.ParamPaged] = c.Query(routing.ParamPaged)
	}

	route := routing.Classify(params, false)
	if route.Kind == routing.KindNone {
		return c.Redirect("/"+h.settingService.FormsSlug(c.UserContext()), fiber.StatusFound)
	}
	return h.dispatch(c, route)
}

// HandleArchive pretty arşiv rotası: /{forms_slug}
func (h *FormPageHandler) HandleArchive(c *fiber.Ctx) error {
	if c.Params("section") != h.settingService.FormsSlug(c.UserContext()) {
		return c.Next()
	}
	route := routing.Classify(map[string]string{
		routing.ParamArchive: "1",
		routing.ParamPaged:   c.Query(routing.ParamPaged),
	}, true)
	return h.dispatch(c, route)
}

// HandleArchivePaged pretty sayfalı arşiv rotası: /{forms_slug}/page/{n}
func (h *FormPageHandler) HandleArchivePaged(c *fiber.Ctx) error {
	if c.Params("section") != h.settingService.FormsSlug(c.UserContext()) {
		return c.Next()
	}
	route := routing.Classify(map[string]string{
		routing.ParamArchive: "1",
		routing.ParamPaged:   c.Params("paged"),
	}, true)
	return h.dispatch(c, route)
}

// HandleSingleForm pretty tekil form rotası: /{forms_slug}/{slug}
func (h *FormPageHandler) HandleSingleForm(c *fiber.Ctx) error {
	if c.Params("section") != h.settingService.FormsSlug(c.UserContext()) {
		return c.Next()
	}
	route := routing.Classify(map[string]string{
		routing.ParamForm: c.Params("slug"),
	}, true)
	return h.dispatch(c, route)
}

// dispatch sınıflandırılmış rotayı ilgili akışa yönlendirir.
func (h *FormPageHandler) dispatch(c *fiber.Ctx, route routing.Route) error {
	switch route.Kind {
	case routing.KindSingleForm:
		return h.renderSingleForm(c, route)
	case routing.KindArchive:
		return h.renderArchive(c, route)
	default:
		return c.Next()
	}
}

func (h *FormPageHandler) renderSingleForm(c *fiber.Ctx, route routing.Route) error {
	ctx := c.UserContext()
	vctx := h.visibilityContext(c)

	form, err := h.formService.ResolveSingleFormRoute(ctx, route, vctx)
	if err != nil {
		if errors.Is(err, services.ErrFormNotFound) {
			// Yok, slug tutmadı ya da gizli: hepsi aynı 404.
			return h.renderNotFound(c, "Form Bulunamadı")
		}
		configslog.Log.Error("renderSingleForm: çözümleme hatası",
			zap.String("identifier", route.Identifier), zap.Error(err))
		return h.renderError(c, "Form yüklenirken bir sorun oluştu.")
	}

	data := fiber.Map{
		"Title":     form.Title,
		"Form":      form,
		"Detail":    form.Detail,
		"Slug":      form.Slug(),
		"FormURL":   h.formURL(c, form),
		"IsOpen":    form.IsOpen(vctx.Now),
		"IsClosed":  form.IsClosed(vctx.Now),
		"ForceAjax": h.settingService.ForceAjax(ctx),
	}
	if closeAt, ok := form.CloseTime(); ok {
		data["ClosesAt"] = closeAt
	}
	if form.Detail.LimitEntries {
		data["EntryLimitCount"] = form.Detail.LimitEntriesCount
		data["EntryLimitPeriod"] = form.Detail.LimitEntriesPeriod
	}
	return c.Render("public/form_view", data, "layouts/main")
}

func (h *FormPageHandler) renderArchive(c *fiber.Ctx, route routing.Route) error {
	ctx := c.UserContext()

	// Arşiv ayarla tamamen kapatılabilir.
	if h.settingService.HideFormArchive(ctx) {
		return h.renderNotFound(c, "Sayfa Bulunamadı")
	}

	page, err := h.archiveService.GetArchivePage(ctx, services.ArchiveParams{
		Page:       route.Paged,
		PerPage:    h.settingService.FormsPerPage(ctx),
		Search:     c.Query("s"),
		Visibility: h.visibilityContext(c),
	})
	if err != nil {
		configslog.Log.Error("renderArchive: arşiv sorgusu başarısız", zap.Error(err))
		return h.renderError(c, "Formlar listelenirken bir sorun oluştu.")
	}

	// Aralık dışı sayfa istekleri 404'tür; motor boş sayfayı hata saymaz,
	// karar burada verilir.
	if page.CurrentPage > page.TotalPages {
		return h.renderNotFound(c, "Sayfa Bulunamadı")
	}

	formsSlug := h.settingService.FormsSlug(ctx)
	data := fiber.Map{
		"Title":       h.settingService.ArchiveTitle(ctx),
		"Description": h.settingService.ArchiveDescription(ctx),
		"Forms":       page.Forms,
		"TotalCount":  page.TotalCount,
		"CurrentPage": page.CurrentPage,
		"TotalPages":  page.TotalPages,
		"FormsSlug":   formsSlug,
	}
	if page.CurrentPage > 1 {
		data["PrevPageURL"] = archivePageURL(formsSlug, page.CurrentPage-1)
	}
	if page.CurrentPage < page.TotalPages {
		data["NextPageURL"] = archivePageURL(formsSlug, page.CurrentPage+1)
	}
	return c.Render("public/form_archive", data, "layouts/main")
}

// formURL formun kanonik public adresini üretir: /{forms_slug}/{slug}.
// Plain mod girişleri de bu adrese bağlanır.
func (h *FormPageHandler) formURL(c *fiber.Ctx, form *models.Form) string {
	return "/" + h.settingService.FormsSlug(c.UserContext()) + "/" + form.Slug()
}

func archivePageURL(formsSlug string, page int) string {
	if page <= 1 {
		return "/" + formsSlug
	}
	return "/" + formsSlug + "/page/" + strconv.Itoa(page)
}

// renderNotFound standart 404 sayfasını render eder. Gizlenme sebebi ne
// olursa olsun çıktı aynıdır.
func (h *FormPageHandler) renderNotFound(c *fiber.Ctx, message string) error {
	if c.Accepts("text/html", "application/json") == "application/json" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kaynak bulunamadı"})
	}
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title":   "Bulunamadı",
		"Message": message,
	}, "layouts/error_layout")
}

// renderError standart 500 hata sayfasını render eder.
func (h *FormPageHandler) renderError(c *fiber.Ctx, message string) error {
	if c.Accepts("text/html", "application/json") == "application/json" {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
	}
	return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
		"Title":   "Sunucu Hatası",
		"Message": message,
	}, "layouts/error_layout")
}
