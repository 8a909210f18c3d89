package routing

import "strconv"

// İsteklerin sınıflandırılmasında kullanılan query parametre adları.
// Pretty URL rotaları da handler katmanında aynı parametrelere çevrilir,
// böylece sınıflandırma tek noktadan geçer.
const (
	ParamForm    = "fp_form"
	ParamArchive = "fp_archive"
	ParamPaged   = "paged"
)

// Kind bir isteğin hangi sayfa türünü hedeflediğini belirtir.
type Kind int

const (
	// KindNone istek bu uygulamanın sayfalarından birini hedeflemiyor.
	KindNone Kind = iota
	// KindSingleForm tekil form sayfası.
	KindSingleForm
	// KindArchive sayfalanmış form arşivi.
	KindArchive
)

// Route bir isteğin çözümlenmiş niyeti. İstek başına bir kez üretilir,
// değiştirilmez.
type Route struct {
	Kind Kind

	// Identifier tekil form rotasının ham tanımlayıcısı.
	// IsSlug true ise slug olarak, değilse sayısal ID olarak yorumlanır.
	Identifier string
	IsSlug     bool

	// Paged arşiv rotasında istenen sayfa numarası, her zaman >= 1.
	Paged int
}

// Classify query parametrelerinden Route üretir. Saf fonksiyondur.
//
// Tekil form parametresi dolu geldiyse arşiv parametresine bakılmaz:
// ikisi birlikte geldiğinde tekil form kazanır. Arşiv parametresinin
// varlığı yeterlidir, değeri okunmaz; sayfa numarası ayrı "paged"
// parametresinden gelir ve sayısal olmayan ya da 1'in altındaki
// değerler 1 kabul edilir.
func Classify(params map[string]string, pretty bool) Route {
	if v, ok := params[ParamForm]; ok && v != "" {
		return Route{
			Kind:       KindSingleForm,
			Identifier: v,
			IsSlug:     pretty,
		}
	}

	if _, ok := params[ParamArchive]; ok {
		return Route{
			Kind:  KindArchive,
			Paged: parsePaged(params[ParamPaged]),
		}
	}

	return Route{Kind: KindNone}
}

func parsePaged(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
