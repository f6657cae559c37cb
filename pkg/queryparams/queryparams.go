package queryparams

import "strings"

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// ListParams listeleme uçlarında kullanılan sayfalama/sıralama parametreleri.
type ListParams struct {
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
	SortBy  string `query:"sort_by"`
	OrderBy string `query:"order_by"` // asc | desc
	Name    string `query:"name"`     // İsme göre filtre (opsiyonel)
}

// DefaultListParams verilen kolona göre azalan sıralı varsayılan
// parametre seti döner.
func DefaultListParams(sortBy string) ListParams {
	return ListParams{
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
		SortBy:  sanitizeSortColumn(sortBy),
		OrderBy: "desc",
	}
}

// Validate sayfalama değerlerini güvenli aralığa çeker.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if p.OrderBy != "asc" && p.OrderBy != "desc" {
		p.OrderBy = "desc"
	}
	p.SortBy = sanitizeSortColumn(p.SortBy)
}

// Offset OFFSET değerini hesaplar.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// OrderClause GORM Order() için güvenli bir ifade üretir.
func (p ListParams) OrderClause() string {
	return p.SortBy + " " + p.OrderBy
}

// sanitizeSortColumn sıralama kolonunu beyaz listeden seçer.
// Kullanıcı girdisinden SQL'e kolon adı taşındığı için zorunlu.
func sanitizeSortColumn(col string) string {
	switch strings.ToLower(col) {
	case "name", "created_at", "updated_at", "price", "status", "total_amount":
		return strings.ToLower(col)
	default:
		return "created_at"
	}
}

// PaginatedResult sayfalanmış sorgu sonucu.
type PaginatedResult struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PerPage    int         `json:"per_page"`
	TotalPages int         `json:"total_pages"`
}

// CalculateTotalPages toplam sayfa sayısını hesaplar.
func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	pages := int(total) / perPage
	if int(total)%perPage > 0 {
		pages++
	}
	return pages
}
