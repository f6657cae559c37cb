package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"davetiye.store/formschema"
)

func TestResolveKnownTheme(t *testing.T) {
	r, degraded := Resolve(formschema.ThemeWeddingV1)
	assert.False(t, degraded)
	assert.IsType(t, WeddingV1Renderer{}, r)

	r, degraded = Resolve(formschema.ThemeBirthdayV1)
	assert.False(t, degraded)
	assert.IsType(t, BirthdayV1Renderer{}, r)
}

func TestResolveUnknownThemeFallsBackToDefault(t *testing.T) {
	for _, id := range []string{"", "GARDEN_PARTY_V3", "WEDDING_V999", "../../etc/passwd"} {
		r, degraded := Resolve(id)
		assert.True(t, degraded, "tema %q", id)
		assert.IsType(t, DefaultRenderer{}, r, "tema %q", id)
	}
}

func TestDefaultRendererNeverPanicsAndShowsNotice(t *testing.T) {
	page := DefaultRenderer{}.Render(Data{InvitationID: 7, Fields: map[string]any{}})
	assert.True(t, page.Degraded)
	assert.Equal(t, "themes/default", page.Template)
	require.Contains(t, page.Bind, "Notice")
	assert.NotEmpty(t, page.Bind["Notice"])
}

func TestDefaultRendererPicksWhicheverNameIsPresent(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]any
		want   string
	}{
		{"celebrant", map[string]any{"celebrant_name": "Defne"}, "Defne"},
		{"groom", map[string]any{"groom_name": "Mert"}, "Mert"},
		{"bride only", map[string]any{"bride_name": "Elif"}, "Elif"},
		{"celebrant wins over groom", map[string]any{"celebrant_name": "Defne", "groom_name": "Mert"}, "Defne"},
		{"none", map[string]any{}, ""},
		{"non-string ignored", map[string]any{"celebrant_name": 42}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := DefaultRenderer{}.Render(Data{Fields: tt.fields})
			assert.Equal(t, tt.want, page.Bind["DisplayName"])
		})
	}
}

func TestWeddingRendererBindsFields(t *testing.T) {
	page := WeddingV1Renderer{}.Render(Data{
		InvitationID: 3,
		Fields: map[string]any{
			"groom_name":   "Mert",
			"bride_name":   "Elif",
			"wedding_date": "2026-06-20",
			"events":       []any{map[string]any{"title": "Nikah"}},
		},
	})
	assert.False(t, page.Degraded)
	assert.Equal(t, "themes/wedding_v1", page.Template)
	assert.Equal(t, "Mert", page.Bind["GroomName"])
	assert.Equal(t, "Elif", page.Bind["BrideName"])
	assert.Len(t, page.Bind["Events"], 1)
}

func TestBirthdayRendererToleratesMissingFields(t *testing.T) {
	page := BirthdayV1Renderer{}.Render(Data{Fields: map[string]any{}})
	assert.Equal(t, "themes/birthday_v1", page.Template)
	assert.Equal(t, "", page.Bind["CelebrantName"])
	assert.Nil(t, page.Bind["Events"])
}

func TestRegisteredCoversSchemaRegistry(t *testing.T) {
	ids := Registered()
	assert.ElementsMatch(t, []string{formschema.ThemeWeddingV1, formschema.ThemeBirthdayV1}, ids)
	for _, id := range ids {
		assert.NotNil(t, formschema.Resolve(id), "her kayıtlı temanın şeması olmalı: %s", id)
	}
}
