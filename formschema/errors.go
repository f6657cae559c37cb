package formschema

import (
	"sort"
	"strings"
)

// FieldErrors alan bazlı doğrulama hataları. Anahtar alan yoludur
// (örn. "celebrant_name", "events[1].title"), değer kullanıcıya
// gösterilecek mesajdır. Düzenleme arayüzü hataları inline basar.
type FieldErrors map[string]string

// Add bir alan hatası ekler. Aynı alana ilk yazılan mesaj korunur.
func (e FieldErrors) Add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

// Error error arayüzünü uygular; alanlar deterministik sırada birleştirilir.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return strings.Join(parts, "; ")
}

// HasErrors en az bir hata olup olmadığını söyler.
func (e FieldErrors) HasErrors() bool { return len(e) > 0 }
