package formschema

import "encoding/json"

// CurrentSchemaVersion zarf formatının sürümü. İleride alan taşıma
// gerektiğinde bu etiket üzerinden migration yapılır.
const CurrentSchemaVersion = 1

// Envelope form verisinin kalıcı temsili. Tema etiketi hangi varyantın
// (hangi şemanın) geçerli olduğunu söyler; Fields o varyantın alanlarıdır.
type Envelope struct {
	SchemaVersion int            `json:"schema_version"`
	Theme         string         `json:"theme,omitempty"`
	Fields        map[string]any `json:"fields"`
}

// NewEnvelope güncel sürümle bir zarf oluşturur.
func NewEnvelope(theme string, fields map[string]any) Envelope {
	if fields == nil {
		fields = map[string]any{}
	}
	return Envelope{SchemaVersion: CurrentSchemaVersion, Theme: theme, Fields: fields}
}

// DecodeEnvelope kalıcı JSON'dan zarfı çözer. Public render yolunda
// kullanıldığı için toleranslıdır: boş ya da bozuk veri hata değil,
// boş alan kümesi üretir.
func DecodeEnvelope(raw []byte) Envelope {
	if len(raw) == 0 {
		return Envelope{SchemaVersion: CurrentSchemaVersion, Fields: map[string]any{}}
	}
	var env Envelope
	err := json.Unmarshal(raw, &env)
	if err != nil || (env.SchemaVersion == 0 && env.Theme == "" && env.Fields == nil) {
		// Zarf formatında değilse düz map olarak dene (eski kayıtlar)
		var flat map[string]any
		if err2 := json.Unmarshal(raw, &flat); err2 == nil && flat != nil {
			return Envelope{SchemaVersion: CurrentSchemaVersion, Fields: flat}
		}
		return Envelope{SchemaVersion: CurrentSchemaVersion, Fields: map[string]any{}}
	}
	// Zarf başlığı var ama fields anahtarı yok: boş alan kümesi
	if env.Fields == nil {
		env.Fields = map[string]any{}
	}
	if env.SchemaVersion == 0 {
		env.SchemaVersion = CurrentSchemaVersion
	}
	return env
}

// Encode zarfı kalıcı JSON'a çevirir.
func (e Envelope) Encode() ([]byte, error) {
	if e.SchemaVersion == 0 {
		e.SchemaVersion = CurrentSchemaVersion
	}
	if e.Fields == nil {
		e.Fields = map[string]any{}
	}
	return json.Marshal(e)
}
