package themes

// WeddingV1Renderer WEDDING_V1 temasının sayfasını üretir.
type WeddingV1Renderer struct{}

func (WeddingV1Renderer) Render(data Data) Page {
	f := data.Fields
	return Page{
		Template: "themes/wedding_v1",
		Bind: map[string]any{
			"InvitationID": data.InvitationID,
			"GroomName":    stringField(f, "groom_name"),
			"BrideName":    stringField(f, "bride_name"),
			"WeddingDate":  stringField(f, "wedding_date"),
			"Story":        stringField(f, "story"),
			"MusicURL":     stringField(f, "music_url"),
			"Events":       arrayField(f, "events"),
			"Gallery":      arrayField(f, "gallery"),
		},
	}
}

func stringField(fields map[string]any, name string) string {
	v, _ := fields[name].(string)
	return v
}

func arrayField(fields map[string]any, name string) []any {
	v, _ := fields[name].([]any)
	return v
}
