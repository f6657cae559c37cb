package themes

// Data bir renderer'a giden girdi: davetiyenin çözülmüş form alanları
// ve kimliği. Alanlar zarf çözümünden gelir, her zaman non-nil'dir.
type Data struct {
	InvitationID uint
	Subdomain    string
	Fields       map[string]any
}

// Page render sonucu: hangi view şablonunun hangi bağlamla basılacağı.
// Degraded, default renderer'a düşüldüğünü işaretler; sayfada görünür
// bir uyarı ile sunulur.
type Page struct {
	Template string
	Bind     map[string]any
	Degraded bool
}

// Renderer form verisini ziyaretçiye sunulacak sayfaya çevirir.
// Render hata döndürmez: her renderer eksik alanlarla da çalışmak
// zorundadır, render yolu ziyaretçi için asla patlamaz.
type Renderer interface {
	Render(data Data) Page
}
