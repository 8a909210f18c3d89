package slugify

import (
	"strings"
	"unicode"
)

// Slug bir form başlığından URL-güvenli, deterministik bir slug türetir.
// Kurallar: küçük harf, ayraçlar (boşluk, tire, slash) tek '-' olur,
// [a-z0-9_-] dışındaki karakterler atılır, baştaki/sondaki tireler kırpılır.
// Slug hiçbir yerde saklanmaz; başlık değişirse slug da değişir.
func Slug(title string) string {
	title = strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	b.Grow(len(title))
	pendingDash := false

	for _, r := range title {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_':
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '/' || r == '–' || r == '—':
			pendingDash = true
		default:
			// güvensiz karakter, atlanır
		}
	}

	return b.String()
}

// IsNumeric değerin tamamen rakamlardan oluşup oluşmadığını döndürür.
// Slug araması boş dönen sayısal görünümlü değerler için ID fallback'inde kullanılır.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
