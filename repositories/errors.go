package repositories

import "errors"

// ErrNotFound kayıt bulunamadığında tüm repository'lerin döndürdüğü
// ortak hata. Servisler kendi tipli hatalarına çevirir.
var ErrNotFound = errors.New("kayıt bulunamadı")
