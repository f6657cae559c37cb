package themes

// BirthdayV1Renderer BIRTHDAY_V1 temasının sayfasını üretir.
type BirthdayV1Renderer struct{}

func (BirthdayV1Renderer) Render(data Data) Page {
	f := data.Fields
	return Page{
		Template: "themes/birthday_v1",
		Bind: map[string]any{
			"InvitationID":  data.InvitationID,
			"CelebrantName": stringField(f, "celebrant_name"),
			"Age":           stringField(f, "age"),
			"PartyDate":     stringField(f, "party_date"),
			"Note":          stringField(f, "note"),
			"MusicURL":      stringField(f, "music_url"),
			"Events":        arrayField(f, "events"),
			"Gallery":       arrayField(f, "gallery"),
		},
	}
}
