package services

import (
	"context"
	"testing"

	"formsayfa.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArchiveServiceForTest(forms ...models.Form) IArchiveService {
	repo := &fakeFormRepository{forms: forms}
	return NewArchiveServiceWithDeps(repo, NewVisibilityService())
}

func manyForms(n int) []models.Form {
	forms := make([]models.Form, 0, n)
	for i := 1; i <= n; i++ {
		forms = append(forms, activeForm(uint(i), "Form "+string(rune('A'+(i-1)%26))+" No "+itoa(i)))
	}
	return forms
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

func TestArchivePageSlicing(t *testing.T) {
	svc := newArchiveServiceForTest(manyForms(25)...)
	ctx := context.Background()

	page, err := svc.GetArchivePage(ctx, ArchiveParams{
		Page: 3, PerPage: 10, Visibility: defaultVctx(),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(25), page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 3, page.CurrentPage)
	// 3. sayfa: 21-25 arası, 5 kayıt.
	require.Len(t, page.Forms, 5)
	assert.Equal(t, uint(21), page.Forms[0].ID)
	assert.Equal(t, uint(25), page.Forms[4].ID)
}

// Aralık dışı sayfa: boş liste döner ama sonuç bir hata değildir ve sayım
// bilgileri doğru kalır. 404 kararı HTTP katmanınındır.
func TestArchiveOverpagingReturnsEmptyPage(t *testing.T) {
	svc := newArchiveServiceForTest(manyForms(25)...)

	page, err := svc.GetArchivePage(context.Background(), ArchiveParams{
		Page: 99, PerPage: 10, Visibility: defaultVctx(),
	})
	require.NoError(t, err)

	assert.Empty(t, page.Forms)
	assert.Equal(t, int64(25), page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 99, page.CurrentPage, "istenen sayfa kırpılmadan raporlanır")
}

func TestArchivePageClampsLowPages(t *testing.T) {
	svc := newArchiveServiceForTest(manyForms(5)...)

	for _, requested := range []int{0, -5} {
		page, err := svc.GetArchivePage(context.Background(), ArchiveParams{
			Page: requested, PerPage: 10, Visibility: defaultVctx(),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, page.CurrentPage, "sayfa %d 1'e çekilmeli", requested)
		assert.Len(t, page.Forms, 5)
	}
}

func TestArchiveUnlimitedPerPage(t *testing.T) {
	svc := newArchiveServiceForTest(manyForms(25)...)

	page, err := svc.GetArchivePage(context.Background(), ArchiveParams{
		Page: 1, PerPage: 0, Visibility: defaultVctx(),
	})
	require.NoError(t, err)
	assert.Len(t, page.Forms, 25)
	assert.Equal(t, 1, page.TotalPages)
}

// Arşiv sonucu asla gizli form içermez; sayım da dilimden önce, filtre
// sonrası yapılır.
func TestArchiveFiltersHiddenForms(t *testing.T) {
	loginOnly := activeForm(2, "Members Only")
	loginOnly.Detail.RequiresLogin = true
	unavailable := activeForm(3, "Unavailable")
	unavailable.Detail.PageAvailability = boolPtr(false)

	svc := newArchiveServiceForTest(activeForm(1, "Public Form"), loginOnly, unavailable)

	page, err := svc.GetArchivePage(context.Background(), ArchiveParams{
		Page: 1, PerPage: 10, Visibility: defaultVctx(),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), page.TotalCount)
	require.Len(t, page.Forms, 1)
	assert.Equal(t, uint(1), page.Forms[0].ID)

	// Oturumlu ziyaretçi login zorunlu formu da görür.
	vctx := defaultVctx()
	vctx.LoggedIn = true
	page, err = svc.GetArchivePage(context.Background(), ArchiveParams{
		Page: 1, PerPage: 10, Visibility: vctx,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalCount)
}

// Yönetim ekranları için kaçış noktası: IncludeHidden görünürlük filtresini
// atlar ama aktiflik filtresi ayrıca yönetilir.
func TestArchiveIncludeHiddenEscapeHatch(t *testing.T) {
	loginOnly := activeForm(2, "Members Only")
	loginOnly.Detail.RequiresLogin = true

	svc := newArchiveServiceForTest(activeForm(1, "Public Form"), loginOnly)

	page, err := svc.GetArchivePage(context.Background(), ArchiveParams{
		Page: 1, PerPage: 10, IncludeHidden: true, Visibility: defaultVctx(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalCount)
}

func TestArchiveDefaultsToActiveOnly(t *testing.T) {
	inactive := activeForm(2, "Inactive Form")
	inactive.IsActive = false

	svc := newArchiveServiceForTest(activeForm(1, "Active Form"), inactive)

	// Varsayılan: yalnız aktif formlar sorgulanır.
	page, err := svc.GetArchivePage(context.Background(), ArchiveParams{
		Page: 1, PerPage: 10, Visibility: defaultVctx(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalCount)

	// ActiveOnly=false: yalnız inaktifler; görünürlük filtresi onları yine
	// gizleyeceği için kaçış noktasıyla birlikte kullanılır.
	onlyInactive := false
	page, err = svc.GetArchivePage(context.Background(), ArchiveParams{
		Page: 1, PerPage: 10, ActiveOnly: &onlyInactive, IncludeHidden: true,
		Visibility: defaultVctx(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalCount)
	assert.Equal(t, uint(2), page.Forms[0].ID)
}

func TestArchiveSearch(t *testing.T) {
	svc := newArchiveServiceForTest(
		activeForm(1, "Contact Us"),
		activeForm(2, "Feedback Survey"),
		activeForm(3, "Contact Sales"),
	)

	page, err := svc.GetArchivePage(context.Background(), ArchiveParams{
		Page: 1, PerPage: 10, Search: "contact", Visibility: defaultVctx(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalCount)
}
