package seeders

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"davetiye.store/configs/configslog"
	"davetiye.store/formschema"
	"davetiye.store/models"
)

// SeedCatalog örnek şablon ve ürünleri yoksa oluşturur. Boş katalogla
// açılan vitrin için başlangıç verisidir, idempotenttir.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		configslog.SLog.Info("Katalog dolu, seed atlanıyor")
		return nil
	}

	template := models.DesignTemplate{
		Name:     "Klasik Düğün Düzeni",
		Document: datatypes.JSON(`{"version":"1.0","objects":[],"background":"#fdfbf7"}`),
	}
	if err := db.Create(&template).Error; err != nil {
		return err
	}

	weddingTheme := formschema.ThemeWeddingV1
	birthdayTheme := formschema.ThemeBirthdayV1
	products := []models.Product{
		{
			Name:             "Kır Düğünü Davetiyesi",
			Description:      "Pastel tonlarda, kişiselleştirilebilir dijital düğün davetiyesi.",
			Price:            decimal.RequireFromString("249.90"),
			Category:         models.ProductCategoryDigital,
			ThemeID:          &weddingTheme,
			IsActive:         true,
			DesignTemplateID: &template.ID,
		},
		{
			Name:        "Doğum Günü Davetiyesi",
			Description: "Renkli, eğlenceli dijital doğum günü davetiyesi.",
			Price:       decimal.RequireFromString("149.90"),
			Category:    models.ProductCategoryDigital,
			ThemeID:     &birthdayTheme,
			IsActive:    true,
		},
		{
			Name:        "Karton Baskı Paketi (50 adet)",
			Description: "Davetiyenizin lüks karton baskısı, zarflarıyla birlikte.",
			Price:       decimal.RequireFromString("899.00"),
			Category:    models.ProductCategoryPhysical,
			IsActive:    true,
		},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	configslog.SLog.Infof("Katalog seed edildi: %d ürün", len(products))
	return nil
}
