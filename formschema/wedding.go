package formschema

// weddingSchema WEDDING_V1 temasının form şeması.
var weddingSchema = &ObjectSchema{
	Theme: ThemeWeddingV1,
	Fields: []FieldSpec{
		{Name: "groom_name", Kind: KindString, Required: true, MaxLen: 100},
		{Name: "bride_name", Kind: KindString, Required: true, MaxLen: 100},
		{Name: "wedding_date", Kind: KindString, Required: true, MaxLen: 50},
		{Name: "story", Kind: KindString, MaxLen: 2000},
		{Name: "music_url", Kind: KindURL},
		{Name: "events", Kind: KindArray, MaxItems: 3, Elem: &ObjectSchema{
			Fields: []FieldSpec{
				{Name: "title", Kind: KindString, Required: true, MaxLen: 100},
				{Name: "datetime", Kind: KindString, Required: true, MaxLen: 50},
				{Name: "location", Kind: KindString, MaxLen: 255},
				{Name: "map_url", Kind: KindURL},
			},
		}},
		{Name: "gallery", Kind: KindArray, MaxItems: 10, Elem: &ObjectSchema{
			Fields: []FieldSpec{
				{Name: "photo_url", Kind: KindURL, Required: true},
				{Name: "caption", Kind: KindString, MaxLen: 150},
			},
		}},
	},
}
