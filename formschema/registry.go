package formschema

// Tema kimlikleri. Product.ThemeID bu değerlerden birini taşır;
// tanımsız bir değer "şema yok, serbest veri" anlamına gelir.
const (
	ThemeWeddingV1  = "WEDDING_V1"
	ThemeBirthdayV1 = "BIRTHDAY_V1"
)

// registry tema kimliğinden şemaya sabit eşleme. Başlangıçta kurulur,
// çalışma zamanında değişmez.
var registry = map[string]*ObjectSchema{
	ThemeWeddingV1:  weddingSchema,
	ThemeBirthdayV1: birthdaySchema,
}

// Resolve tema kimliğine karşılık gelen şemayı döner. Bilinmeyen
// kimlikler nil döner: şema yok, serbest form verisi kabul edilir.
func Resolve(themeID string) *ObjectSchema {
	return registry[themeID]
}
