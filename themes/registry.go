package themes

import (
	"go.uber.org/zap"

	"davetiye.store/configs/configslog"
	"davetiye.store/formschema"
)

// registry tema kimliğinden renderer'a sabit eşleme. Veritabanından gelen
// string ile dosya yolu kurmak yerine kapalı bir küme üzerinden derleme
// zamanında bağlanır; kayıtsız kimlik tip kontrollü bir dal olarak ele
// alınır, exception yakalama değil.
var registry = map[string]Renderer{
	formschema.ThemeWeddingV1:  WeddingV1Renderer{},
	formschema.ThemeBirthdayV1: BirthdayV1Renderer{},
}

// Resolve tema kimliğini renderer'a çözer. Kimlik boşsa ya da kayıtlı
// değilse default renderer döner; ikinci dönüş değeri düşüş yaşandığını
// söyler. Kayıtsız kimlik sunucu tarafında loglanır, ziyaretçiye hata
// olarak yansımaz.
func Resolve(themeID string) (Renderer, bool) {
	if themeID == "" {
		return DefaultRenderer{}, true
	}
	r, ok := registry[themeID]
	if !ok {
		configslog.Log.Warn("Kayıtsız tema kimliği, default renderer kullanılacak",
			zap.String("theme_id", themeID))
		return DefaultRenderer{}, true
	}
	return r, false
}

// Registered kayıtlı tema kimliklerini döner (admin ürün formu için).
func Registered() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	return ids
}
