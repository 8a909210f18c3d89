package handlers

import (
	"context"
	"net/http/httptest"
	"strconv"
	"testing"

	"formsayfa.link/models"
	"formsayfa.link/pkg/queryparams"
	"formsayfa.link/pkg/routing"
	"formsayfa.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSettingService sabit ayarlar döndürür.
type stubSettingService struct {
	formsSlug   string
	perPage     int
	hideArchive bool
}

func (s *stubSettingService) FormsSlug(context.Context) string           { return s.formsSlug }
func (s *stubSettingService) FormsPerPage(context.Context) int           { return s.perPage }
func (s *stubSettingService) HideFormArchive(context.Context) bool       { return s.hideArchive }
func (s *stubSettingService) HideClosedForms(context.Context) bool       { return false }
func (s *stubSettingService) DefaultAvailability(context.Context) bool   { return true }
func (s *stubSettingService) ForceAjax(context.Context) bool             { return false }
func (s *stubSettingService) ArchiveTitle(context.Context) string        { return "Formlar" }
func (s *stubSettingService) ArchiveDescription(context.Context) string  { return "" }
func (s *stubSettingService) AllSettings(context.Context) (map[string]string, error) {
	return map[string]string{}, nil
}
func (s *stubSettingService) UpdateSettings(context.Context, map[string]string) error { return nil }

// stubFormService tekil form çözümlemesini hep "bulunamadı" ile kapatır.
type stubFormService struct{}

func (stubFormService) GetFormByID(context.Context, uint) (*models.Form, error) {
	return nil, services.ErrFormNotFound
}
func (stubFormService) GetFormBySlug(context.Context, string) (*models.Form, error) {
	return nil, services.ErrFormNotFound
}
func (stubFormService) ResolveIdentifier(context.Context, string, bool) (*models.Form, error) {
	return nil, services.ErrFormNotFound
}
func (stubFormService) ResolveSingleFormRoute(context.Context, routing.Route, services.VisibilityContext) (*models.Form, error) {
	return nil, services.ErrFormNotFound
}

// stubArchiveService motorun sözleşmesini taklit eder: aralık dışı sayfada
// boş dilim + kırpılmamış CurrentPage döner, 404 kararını vermez.
type stubArchiveService struct {
	total int64
}

func (s *stubArchiveService) GetArchivePage(_ context.Context, params services.ArchiveParams) (*services.ArchivePage, error) {
	lp := queryparams.ListParams{Page: params.Page, PerPage: params.PerPage}
	lp.Validate()

	forms := []models.Form{}
	offset := lp.CalculateOffset()
	for i := offset; int64(i) < s.total && i < offset+lp.PerPage; i++ {
		forms = append(forms, models.Form{
			BaseModel: models.BaseModel{ID: uint(i + 1)},
			Title:     "Form " + strconv.Itoa(i+1),
			IsActive:  true,
		})
	}

	return &services.ArchivePage{
		Forms:       forms,
		TotalCount:  s.total,
		PerPage:     lp.PerPage,
		CurrentPage: lp.Page,
		TotalPages:  queryparams.CalculateTotalPages(s.total, lp.PerPage),
	}, nil
}

func newTestViewEngine() *html.Engine {
	engine := html.New("../../views", ".html")
	engine.AddFunc("add", func(a, b int) int { return a + b })
	engine.AddFunc("sub", func(a, b int) int { return a - b })
	return engine
}

func newArchiveTestApp(totalForms int64) *fiber.App {
	app := fiber.New(fiber.Config{Views: newTestViewEngine()})

	h := NewFormPageHandlerWithDeps(
		stubFormService{},
		&stubArchiveService{total: totalForms},
		&stubSettingService{formsSlug: "forms", perPage: 10},
	)
	app.Get("/:section", h.HandleArchive)
	app.Get("/:section/page/:paged", h.HandleArchivePaged)
	app.Get("/:section/:slug", h.HandleSingleForm)
	return app
}

func TestArchivePageWithinRangeReturns200(t *testing.T) {
	app := newArchiveTestApp(25)

	for _, path := range []string{"/forms", "/forms/page/1", "/forms/page/3"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err, path)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}

func TestArchivePageBeyondRangeReturns404(t *testing.T) {
	app := newArchiveTestApp(25)

	// 25 kayıt / sayfada 10 → 3 sayfa; 4 ve sonrası aralık dışı.
	for _, path := range []string{"/forms/page/4", "/forms/page/99"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err, path)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, path)
	}
}

func TestEmptyArchiveServesFirstPageOnly(t *testing.T) {
	app := newArchiveTestApp(0)

	// TotalPages 1'in altına inmez: boş arşivde ilk sayfa boş liste ile
	// sunulur, sonraki sayfalar aralık dışıdır.
	resp, err := app.Test(httptest.NewRequest("GET", "/forms", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/forms/page/2", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHiddenArchiveSettingReturns404(t *testing.T) {
	app := fiber.New(fiber.Config{Views: newTestViewEngine()})
	h := NewFormPageHandlerWithDeps(
		stubFormService{},
		&stubArchiveService{total: 25},
		&stubSettingService{formsSlug: "forms", perPage: 10, hideArchive: true},
	)
	app.Get("/:section", h.HandleArchive)

	resp, err := app.Test(httptest.NewRequest("GET", "/forms", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUnresolvedSingleFormReturns404(t *testing.T) {
	app := newArchiveTestApp(25)

	resp, err := app.Test(httptest.NewRequest("GET", "/forms/yok-boyle-form", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
