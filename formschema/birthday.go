package formschema

// birthdaySchema BIRTHDAY_V1 temasının form şeması.
var birthdaySchema = &ObjectSchema{
	Theme: ThemeBirthdayV1,
	Fields: []FieldSpec{
		{Name: "celebrant_name", Kind: KindString, Required: true, MaxLen: 100},
		{Name: "age", Kind: KindString, MaxLen: 10},
		{Name: "party_date", Kind: KindString, Required: true, MaxLen: 50},
		{Name: "note", Kind: KindString, MaxLen: 1000},
		{Name: "music_url", Kind: KindURL},
		{Name: "events", Kind: KindArray, MaxItems: 3, Elem: &ObjectSchema{
			Fields: []FieldSpec{
				{Name: "title", Kind: KindString, Required: true, MaxLen: 100},
				{Name: "datetime", Kind: KindString, Required: true, MaxLen: 50},
				{Name: "location", Kind: KindString, MaxLen: 255},
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
