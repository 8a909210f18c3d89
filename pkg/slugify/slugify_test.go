package slugify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"basit başlık", "Contact Us", "contact-us"},
		{"fazla boşluk", "Contact   Us", "contact-us"},
		{"noktalama atılır", "Contact Us!", "contact-us"},
		{"apostrof atılır", "John's Form", "johns-form"},
		{"tire korunur", "Sign-up Sheet", "sign-up-sheet"},
		{"alt çizgi korunur", "internal_form", "internal_form"},
		{"slash ayraçtır", "Terms/Conditions", "terms-conditions"},
		{"baş ve son kırpılır", "  -Hello-  ", "hello"},
		{"sayılar kalır", "Survey 2024", "survey-2024"},
		{"yalnız noktalama", "!!!", ""},
		{"boş başlık", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slug(tc.title))
		})
	}
}

func TestSlugIdempotent(t *testing.T) {
	// Bir slug tekrar sluglanırsa değişmemeli.
	for _, title := range []string{"Contact Us", "Survey 2024", "Sign-up Sheet"} {
		s := Slug(title)
		assert.Equal(t, s, Slug(s), "slug kararlı olmalı: %q", title)
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("42"))
	assert.True(t, IsNumeric("007"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("42a"))
	assert.False(t, IsNumeric("-42"))
	assert.False(t, IsNumeric("4.2"))
}
