package formschema

import (
	"fmt"
	"net/url"
)

// FieldKind bir alanın tipini belirtir.
type FieldKind int

const (
	KindString FieldKind = iota
	KindURL              // nullable URL: boş/nil kabul, doluysa geçerli URL olmalı
	KindArray            // yapılandırılmış alt nesnelerden oluşan sınırlı dizi
)

// FieldSpec tek bir alanın kuralları.
type FieldSpec struct {
	Name     string
	Kind     FieldKind
	Required bool
	MaxLen   int // KindString için; 0 = sınırsız
	MaxItems int // KindArray için
	Elem     *ObjectSchema
}

// ObjectSchema adlandırılmış, tipli alanlardan oluşan doğrulama şeması.
// Yeni bir tema eklemek: bir şema + bir registry kaydı; başka hiçbir
// bileşen değişmez.
type ObjectSchema struct {
	Theme  string
	Fields []FieldSpec
}

// Validate veriyi şemaya karşı doğrular. Hatalar alan adresli döner,
// hata yoksa nil döner. Şemada tanımlı olmayan anahtarlar yok sayılır.
func (s *ObjectSchema) Validate(data map[string]any) FieldErrors {
	errs := FieldErrors{}
	for _, f := range s.Fields {
		s.validateField(f, f.Name, data[f.Name], errs)
	}
	if !errs.HasErrors() {
		return nil
	}
	return errs
}

func (s *ObjectSchema) validateField(f FieldSpec, path string, value any, errs FieldErrors) {
	if value == nil || value == "" {
		if f.Required {
			errs.Add(path, "bu alan zorunludur")
		}
		return
	}

	switch f.Kind {
	case KindString:
		str, ok := value.(string)
		if !ok {
			errs.Add(path, "metin olmalıdır")
			return
		}
		if f.MaxLen > 0 && len([]rune(str)) > f.MaxLen {
			errs.Add(path, fmt.Sprintf("en fazla %d karakter olabilir", f.MaxLen))
		}
	case KindURL:
		str, ok := value.(string)
		if !ok {
			errs.Add(path, "URL metin olmalıdır")
			return
		}
		u, err := url.Parse(str)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs.Add(path, "geçerli bir URL değil")
		}
	case KindArray:
		items, ok := value.([]any)
		if !ok {
			errs.Add(path, "liste olmalıdır")
			return
		}
		if f.MaxItems > 0 && len(items) > f.MaxItems {
			errs.Add(path, fmt.Sprintf("en fazla %d kayıt eklenebilir", f.MaxItems))
			return
		}
		if f.Elem == nil {
			return
		}
		for i, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				errs.Add(fmt.Sprintf("%s[%d]", path, i), "geçersiz kayıt")
				continue
			}
			for _, sub := range f.Elem.Fields {
				s.validateField(sub, fmt.Sprintf("%s[%d].%s", path, i, sub.Name), obj[sub.Name], errs)
			}
		}
	}
}
