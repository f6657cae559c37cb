package themes

// DefaultRenderer tasarımı yüklenemeyen ya da teması olmayan davetiyeler
// için jenerik sayfa üretir. Sadece genel alanları kullanır ve sayfada
// tasarımın yüklenemediğine dair görünür bir uyarı basar; sessiz bir
// düşüş değildir.
type DefaultRenderer struct{}

// genericNameFields hangi alan doluysa ondan bir başlık ismi çekilir.
var genericNameFields = []string{
	"celebrant_name", "groom_name", "bride_name", "host_name", "name",
}

func (DefaultRenderer) Render(data Data) Page {
	display := ""
	for _, field := range genericNameFields {
		if v, ok := data.Fields[field].(string); ok && v != "" {
			display = v
			break
		}
	}

	return Page{
		Template: "themes/default",
		Degraded: true,
		Bind: map[string]any{
			"InvitationID": data.InvitationID,
			"DisplayName":  display,
			"Notice":       "Bu davetiyenin özel tasarımı şu anda görüntülenemiyor.",
		},
	}
}
