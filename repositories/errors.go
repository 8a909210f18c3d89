package repositories

import "errors"

// ErrNotFound aranan kaydın veritabanında bulunmadığını belirtir.
// Servis katmanı bunu kendi alan hatalarına (örn. ErrFormNotFound) çevirir.
var ErrNotFound = errors.New("kayıt bulunamadı")
