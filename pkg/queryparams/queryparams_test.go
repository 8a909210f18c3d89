package queryparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateClampsPage(t *testing.T) {
	for _, page := range []int{0, -5} {
		p := ListParams{Page: page, PerPage: 10}
		p.Validate()
		assert.Equal(t, 1, p.Page, "sayfa %d 1'e çekilmeli", page)
	}
}

func TestValidatePerPageBounds(t *testing.T) {
	p := ListParams{Page: 1, PerPage: -3}
	p.Validate()
	assert.Equal(t, 0, p.PerPage, "negatif PerPage sınırsız (0) sayılmalı")

	p = ListParams{Page: 1, PerPage: 5000}
	p.Validate()
	assert.Equal(t, MaxPerPage, p.PerPage)
}

func TestCalculateOffset(t *testing.T) {
	p := ListParams{Page: 3, PerPage: 10}
	assert.Equal(t, 20, p.CalculateOffset())

	// Sayfalama kapalıyken offset her zaman 0.
	p = ListParams{Page: 7, PerPage: 0}
	assert.Equal(t, 0, p.CalculateOffset())

	// Aralık dışı sayfa kırpılmaz, offset büyümeye devam eder.
	p = ListParams{Page: 99, PerPage: 10}
	assert.Equal(t, 980, p.CalculateOffset())
}

func TestCalculateTotalPages(t *testing.T) {
	cases := []struct {
		total   int64
		perPage int
		want    int
	}{
		{25, 10, 3},
		{30, 10, 3},
		{1, 10, 1},
		{0, 10, 1},
		{0, 0, 1},
		{25, 0, 1},  // sınırsız: tek sayfa
		{25, -1, 1}, // negatif de sınırsız
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CalculateTotalPages(tc.total, tc.perPage),
			"total=%d perPage=%d", tc.total, tc.perPage)
	}
}

// Sayfalara bölünen dilim uzunluklarının toplamı her zaman toplam kayıt
// sayısına eşit olmalı ve hiçbir dilim PerPage'i aşmamalı.
func TestPaginationCoversAllItems(t *testing.T) {
	for _, total := range []int64{0, 1, 9, 10, 11, 25, 100, 101} {
		for _, perPage := range []int{1, 3, 10, 50} {
			pages := CalculateTotalPages(total, perPage)
			var covered int64
			for page := 1; page <= pages; page++ {
				p := ListParams{Page: page, PerPage: perPage}
				offset := int64(p.CalculateOffset())
				remain := total - offset
				if remain < 0 {
					remain = 0
				}
				sliceLen := remain
				if sliceLen > int64(perPage) {
					sliceLen = int64(perPage)
				}
				assert.LessOrEqual(t, sliceLen, int64(perPage))
				covered += sliceLen
			}
			assert.Equal(t, total, covered, "total=%d perPage=%d", total, perPage)
		}
	}
}
