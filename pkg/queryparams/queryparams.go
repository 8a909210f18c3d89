package queryparams

// Sayfalama ve listeleme parametreleri. Handler'lar query string'den parse eder,
// servisler Validate sonrası kullanır.

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
	DefaultSortBy  = "created_at"
	DefaultOrderBy = "desc"
)

// ListParams liste uçlarının ortak query parametreleri.
// PerPage <= 0 "sayfalama yok" anlamına gelir: tüm kayıtlar tek sayfada döner.
type ListParams struct {
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
	SortBy  string `query:"sort_by"`
	OrderBy string `query:"order_by"`
	Name    string `query:"name"`
	Status  string `query:"status"`
}

// DefaultListParams verilen sıralama sütunu ile varsayılan parametreleri döndürür.
func DefaultListParams(sortBy string) ListParams {
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	return ListParams{
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
		SortBy:  sortBy,
		OrderBy: DefaultOrderBy,
	}
}

// Validate parametreleri kullanılabilir aralıklara çeker.
// Sayfa 1'den küçükse 1 yapılır; negatif PerPage 0 (sınırsız) sayılır,
// üst sınır MaxPerPage'dir.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 0 {
		p.PerPage = 0
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if p.OrderBy != "asc" && p.OrderBy != "desc" {
		p.OrderBy = DefaultOrderBy
	}
	if p.SortBy == "" {
		p.SortBy = DefaultSortBy
	}
}

// CalculateOffset geçerli sayfa için dilim başlangıcını döndürür.
// Sayfalama kapalıyken (PerPage <= 0) her zaman 0'dır.
func (p *ListParams) CalculateOffset() int {
	if p.PerPage <= 0 {
		return 0
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * p.PerPage
}

// CalculateTotalPages toplam kayıt sayısından toplam sayfa sayısını hesaplar.
// PerPage <= 0 iken tek sayfa vardır. Sonuç hiçbir zaman 1'in altına düşmez.
// Aralık dışı sayfa istekleri burada kırpılmaz; o karar çağırana aittir.
func CalculateTotalPages(totalCount int64, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	pages := int((totalCount + int64(perPage) - 1) / int64(perPage))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// PaginationMeta sayfalı bir sonucun sayım bilgileri.
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
}

// PaginatedResult veri + meta ikilisi. Data handler'da render edilecek dilimdir.
type PaginatedResult struct {
	Data interface{}    `json:"data"`
	Meta PaginationMeta `json:"meta"`
}
