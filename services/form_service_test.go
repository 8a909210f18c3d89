package services

import (
	"context"
	"strings"
	"testing"

	"formsayfa.link/models"
	"formsayfa.link/pkg/queryparams"
	"formsayfa.link/pkg/routing"
	"formsayfa.link/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFormRepository formları eklenme sırasında tutan bellek içi depo.
// Sıralama parametreleri yok sayılır; testler tarama sırasını bu sayede
// açıkça pinler.
type fakeFormRepository struct {
	forms []models.Form
}

func (r *fakeFormRepository) FindByID(_ context.Context, id uint) (*models.Form, error) {
	for i := range r.forms {
		if r.forms[i].ID == id {
			return &r.forms[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeFormRepository) FindAll(_ context.Context, activeOnly *bool, _, _ string) ([]models.Form, error) {
	var out []models.Form
	for _, f := range r.forms {
		if activeOnly != nil && f.IsActive != *activeOnly {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

func (r *fakeFormRepository) Search(ctx context.Context, term string, activeOnly *bool, orderBy, orderDir string) ([]models.Form, error) {
	all, err := r.FindAll(ctx, activeOnly, orderBy, orderDir)
	if err != nil {
		return nil, err
	}
	var out []models.Form
	for _, f := range all {
		if strings.Contains(strings.ToLower(f.Title), strings.ToLower(term)) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFormRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Form, int64, error) {
	all, err := r.FindAll(ctx, nil, params.SortBy, params.OrderBy)
	if err != nil {
		return nil, 0, err
	}
	return all, int64(len(all)), nil
}

func (r *fakeFormRepository) CountAll(_ context.Context) (int64, error) {
	return int64(len(r.forms)), nil
}

var _ repositories.IFormRepository = (*fakeFormRepository)(nil)

func newFormServiceForTest(forms ...models.Form) (IFormService, *fakeFormRepository) {
	repo := &fakeFormRepository{forms: forms}
	return NewFormServiceWithDeps(repo, NewVisibilityService()), repo
}

func TestGetFormByID(t *testing.T) {
	svc, _ := newFormServiceForTest(activeForm(1, "Contact Us"))
	ctx := context.Background()

	form, err := svc.GetFormByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Contact Us", form.Title)

	_, err = svc.GetFormByID(ctx, 99)
	assert.ErrorIs(t, err, ErrFormNotFound)

	_, err = svc.GetFormByID(ctx, 0)
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestGetFormBySlug(t *testing.T) {
	svc, _ := newFormServiceForTest(
		activeForm(1, "Contact Us"),
		activeForm(2, "Survey 2024"),
	)
	ctx := context.Background()

	form, err := svc.GetFormBySlug(ctx, "contact-us")
	require.NoError(t, err)
	assert.Equal(t, uint(1), form.ID)

	// Girdi slug'ı da normalize edilir: başlık verilse de eşleşir.
	form, err = svc.GetFormBySlug(ctx, "Survey 2024")
	require.NoError(t, err)
	assert.Equal(t, uint(2), form.ID)

	_, err = svc.GetFormBySlug(ctx, "yok-boyle-form")
	assert.ErrorIs(t, err, ErrFormNotFound)

	_, err = svc.GetFormBySlug(ctx, "")
	assert.ErrorIs(t, err, ErrFormNotFound)
}

// Aynı slug'a sahip iki form: depo sırasındaki ilk eşleşme kazanır.
// Çözümleme görünürlükten bağımsızdır; inaktif form da ilk sıradaysa o döner.
func TestGetFormBySlugFirstMatchWins(t *testing.T) {
	inactive := activeForm(2, "Contact Us")
	inactive.IsActive = false

	// Depo sırası pinlenir: önce inaktif (ID 2), sonra aktif (ID 1).
	svc, _ := newFormServiceForTest(inactive, activeForm(1, "Contact Us"))
	ctx := context.Background()

	form, err := svc.GetFormBySlug(ctx, "contact-us")
	require.NoError(t, err)
	assert.Equal(t, uint(2), form.ID, "depo sırasındaki ilk eşleşme dönmeli")
}

func TestResolveIdentifierNumericFallback(t *testing.T) {
	// Başlığı sayısal slug üretmeyen bir form, ID'si 7.
	form7 := activeForm(7, "Contact Us")
	svc, _ := newFormServiceForTest(form7)
	ctx := context.Background()

	// Pretty mod: "7" slug olarak eşleşmez, ama sayısal olduğu için ID
	// fallback'i devreye girer.
	form, err := svc.ResolveIdentifier(ctx, "7", true)
	require.NoError(t, err)
	assert.Equal(t, uint(7), form.ID)

	// Sayısal olmayan değer fallback almaz.
	_, err = svc.ResolveIdentifier(ctx, "yok-boyle", true)
	assert.ErrorIs(t, err, ErrFormNotFound)

	// Plain mod: yalnızca sayısal ID kabul edilir.
	form, err = svc.ResolveIdentifier(ctx, "7", false)
	require.NoError(t, err)
	assert.Equal(t, uint(7), form.ID)

	_, err = svc.ResolveIdentifier(ctx, "contact-us", false)
	assert.ErrorIs(t, err, ErrFormNotFound)
}

// Slug, sayısal görünümlü bir başlıkla çakışırsa slug kazanır; fallback
// yalnızca tarama boş döndüğünde çalışır.
func TestResolveIdentifierSlugBeatsNumericFallback(t *testing.T) {
	numericTitle := activeForm(3, "42")
	other := activeForm(42, "Kırk İki Değil")
	svc, _ := newFormServiceForTest(numericTitle, other)

	form, err := svc.ResolveIdentifier(context.Background(), "42", true)
	require.NoError(t, err)
	assert.Equal(t, uint(3), form.ID, "slug eşleşmesi ID fallback'inden önce gelir")
}

func TestResolveSingleFormRouteHidesUniformly(t *testing.T) {
	// Var olmayan form ile gizli form aynı hatayı üretmeli.
	hidden := activeForm(1, "Members Only")
	hidden.Detail.RequiresLogin = true
	svc, _ := newFormServiceForTest(hidden)
	ctx := context.Background()

	route := routing.Route{Kind: routing.KindSingleForm, Identifier: "members-only", IsSlug: true}
	_, err := svc.ResolveSingleFormRoute(ctx, route, defaultVctx())
	assert.ErrorIs(t, err, ErrFormNotFound)

	missing := routing.Route{Kind: routing.KindSingleForm, Identifier: "hic-yok", IsSlug: true}
	_, errMissing := svc.ResolveSingleFormRoute(ctx, missing, defaultVctx())
	assert.Equal(t, err, errMissing, "gizli ve yok aynı görünmeli")

	// Oturumla aynı form bulunur.
	vctx := defaultVctx()
	vctx.LoggedIn = true
	form, err := svc.ResolveSingleFormRoute(ctx, route, vctx)
	require.NoError(t, err)
	assert.Equal(t, uint(1), form.ID)
}

func TestResolveSingleFormRouteRejectsWrongKind(t *testing.T) {
	svc, _ := newFormServiceForTest()
	_, err := svc.ResolveSingleFormRoute(context.Background(), routing.Route{Kind: routing.KindArchive}, defaultVctx())
	assert.ErrorIs(t, err, ErrFormInvalidInput)
}
