package models

// Option anahtar/değer biçiminde saklanan uygulama ayarı.
type Option struct {
	BaseModel
	Key   string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

// Ayar anahtarları. Tipli erişim SettingService üzerindendir.
const (
	OptionFormsSlug          = "forms_slug"
	OptionFormsPerPage       = "forms_per_page"
	OptionHideFormArchive    = "hide_form_archive"
	OptionHideClosedForms    = "hide_closed_forms"
	OptionDefaultAvail       = "default_availability"
	OptionForceAjax          = "force_ajax"
	OptionArchiveTitle       = "form_archive_title"
	OptionArchiveDescription = "form_archive_description"
)
