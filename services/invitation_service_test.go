package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"davetiye.store/formschema"
	"davetiye.store/models"
	"davetiye.store/themes"
)

func themedInvitation(repo *fakeInvitationRepo, userID uint, subdomain, themeID string) *models.UserInvitation {
	var themePtr *string
	if themeID != "" {
		themePtr = &themeID
	}
	return repo.add(&models.UserInvitation{
		UserID:    userID,
		Subdomain: subdomain,
		Status:    models.InvitationStatusActive,
		OrderItem: models.OrderItem{
			Product: models.Product{Name: "Davetiye", ThemeID: themePtr},
		},
	})
}

func TestGetPublicBySubdomain(t *testing.T) {
	repo := newFakeInvitationRepo()
	themedInvitation(repo, 1, "ayse-mehmet", formschema.ThemeWeddingV1)
	inactive := themedInvitation(repo, 1, "eski-dugun", formschema.ThemeWeddingV1)
	inactive.Status = models.InvitationStatusInactive

	service := NewInvitationService(repo)

	t.Run("aktif davetiye bulunur", func(t *testing.T) {
		inv, err := service.GetPublicBySubdomain(context.Background(), "ayse-mehmet")
		require.NoError(t, err)
		assert.Equal(t, "ayse-mehmet", inv.Subdomain)
	})

	t.Run("büyük harf ve boşluk normalize edilir", func(t *testing.T) {
		_, err := service.GetPublicBySubdomain(context.Background(), "  AYSE-MEHMET ")
		assert.NoError(t, err)
	})

	t.Run("pasif davetiye bulunamadı döner", func(t *testing.T) {
		_, err := service.GetPublicBySubdomain(context.Background(), "eski-dugun")
		assert.ErrorIs(t, err, ErrInvitationNotFound)
	})

	t.Run("olmayan subdomain bulunamadı döner", func(t *testing.T) {
		_, err := service.GetPublicBySubdomain(context.Background(), "yok-boyle-biri")
		assert.ErrorIs(t, err, ErrInvitationNotFound)
	})
}

func TestRenderPublicPage(t *testing.T) {
	t.Run("dolu form verisi tema şablonuyla render edilir", func(t *testing.T) {
		repo := newFakeInvitationRepo()
		inv := themedInvitation(repo, 1, "ayse-mehmet", formschema.ThemeWeddingV1)
		raw, err := formschema.NewEnvelope(formschema.ThemeWeddingV1, map[string]any{
			"groom_name":   "Mehmet",
			"bride_name":   "Ayşe",
			"wedding_date": "2026-09-12",
		}).Encode()
		require.NoError(t, err)
		inv.FormData = datatypes.JSON(raw)

		service := NewInvitationService(repo)
		page, err := service.RenderPublicPage(context.Background(), "ayse-mehmet")
		require.NoError(t, err)
		assert.False(t, page.Degraded)
		assert.Equal(t, "themes/wedding_v1", page.Template)
	})

	t.Run("boş form verisi ve temasız ürün hata değil default sayfa üretir", func(t *testing.T) {
		repo := newFakeInvitationRepo()
		inv := themedInvitation(repo, 1, "bos-davetiye", "")
		inv.FormData = datatypes.JSON(`{}`)

		service := NewInvitationService(repo)
		page, err := service.RenderPublicPage(context.Background(), "bos-davetiye")
		require.NoError(t, err)
		assert.True(t, page.Degraded)
		assert.Equal(t, "themes/default", page.Template)
	})

	t.Run("tanımsız tema default sayfaya düşer", func(t *testing.T) {
		repo := newFakeInvitationRepo()
		themedInvitation(repo, 1, "gizemli", "NEON_RAVE_V9")

		service := NewInvitationService(repo)
		page, err := service.RenderPublicPage(context.Background(), "gizemli")
		require.NoError(t, err)
		assert.True(t, page.Degraded)
	})

	t.Run("bozuk form verisi ziyaretçiye hata dönmez", func(t *testing.T) {
		repo := newFakeInvitationRepo()
		inv := themedInvitation(repo, 1, "bozuk-veri", formschema.ThemeWeddingV1)
		inv.FormData = datatypes.JSON(`{"schema_version": "çorba"`)

		service := NewInvitationService(repo)
		page, err := service.RenderPublicPage(context.Background(), "bozuk-veri")
		require.NoError(t, err)
		assert.NotEmpty(t, page.Template)
	})
}

func TestUpdateFormData(t *testing.T) {
	ctx := context.Background()

	t.Run("şema hatasında hiçbir şey kaydedilmez", func(t *testing.T) {
		repo := newFakeInvitationRepo()
		themedInvitation(repo, 1, "ayse-mehmet", formschema.ThemeWeddingV1)
		service := NewInvitationService(repo)

		err := service.UpdateFormData(ctx, 1, 1, map[string]any{"groom_name": "Mehmet"})
		var fieldErrs formschema.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Contains(t, fieldErrs, "bride_name")
		assert.Empty(t, repo.updates, "doğrulama hatası kalıcı yazma üretmemeli")
	})

	t.Run("geçerli veri zarf olarak kaydedilir", func(t *testing.T) {
		repo := newFakeInvitationRepo()
		themedInvitation(repo, 1, "ayse-mehmet", formschema.ThemeWeddingV1)
		service := NewInvitationService(repo)

		err := service.UpdateFormData(ctx, 1, 1, map[string]any{
			"groom_name":   "Mehmet",
			"bride_name":   "Ayşe",
			"wedding_date": "2026-09-12",
		})
		require.NoError(t, err)
		require.Len(t, repo.updates, 1)

		raw := repo.updates[0]["form_data"].(datatypes.JSON)
		env := formschema.DecodeEnvelope(raw)
		assert.Equal(t, formschema.CurrentSchemaVersion, env.SchemaVersion)
		assert.Equal(t, formschema.ThemeWeddingV1, env.Theme)
		assert.Equal(t, "Ayşe", env.Fields["bride_name"])
	})

	t.Run("temasız davetiyede serbest veri kabul edilir", func(t *testing.T) {
		repo := newFakeInvitationRepo()
		themedInvitation(repo, 1, "serbest", "")
		service := NewInvitationService(repo)

		err := service.UpdateFormData(ctx, 1, 1, map[string]any{"not": "tema yok, şema yok"})
		assert.NoError(t, err)
	})

	t.Run("sahibi olmayan güncelleyemez", func(t *testing.T) {
		repo := newFakeInvitationRepo()
		themedInvitation(repo, 1, "ayse-mehmet", "")
		service := NewInvitationService(repo)

		err := service.UpdateFormData(ctx, 1, 42, map[string]any{})
		assert.ErrorIs(t, err, ErrInvitationForbidden)
	})
}

func TestUpdateDesign(t *testing.T) {
	ctx := context.Background()
	repo := newFakeInvitationRepo()
	themedInvitation(repo, 1, "ayse-mehmet", "")
	service := NewInvitationService(repo)

	t.Run("geçerli JSON doküman kaydedilir", func(t *testing.T) {
		err := service.UpdateDesign(ctx, 1, 1, json.RawMessage(`{"objects":[],"background":"#fff"}`))
		assert.NoError(t, err)
	})

	t.Run("bozuk JSON reddedilir", func(t *testing.T) {
		err := service.UpdateDesign(ctx, 1, 1, json.RawMessage(`{"objects":[`))
		assert.ErrorIs(t, err, ErrInvalidDesignDocument)
	})
}

func TestGenerateSubdomain(t *testing.T) {
	ctx := context.Background()

	t.Run("üründen slug üretir", func(t *testing.T) {
		service := NewInvitationService(newFakeInvitationRepo())
		slug, err := service.GenerateSubdomain(ctx, "Kır Düğünü Davetiyesi!")
		require.NoError(t, err)
		assert.Equal(t, "k-r-d-n-davetiyesi", slug)
	})

	t.Run("çakışmada sonek ekler", func(t *testing.T) {
		repo := newFakeInvitationRepo()
		repo.add(&models.UserInvitation{UserID: 1, Subdomain: "dugun"})
		service := NewInvitationService(repo)

		slug, err := service.GenerateSubdomain(ctx, "dugun")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(slug, "dugun-"))
		assert.NotEqual(t, "dugun", slug)
	})

	t.Run("boş taban varsayılana düşer", func(t *testing.T) {
		service := NewInvitationService(newFakeInvitationRepo())
		slug, err := service.GenerateSubdomain(ctx, "!!!")
		require.NoError(t, err)
		assert.Equal(t, "davetiye", slug)
	})
}

func TestRenderedPageTemplatesExist(t *testing.T) {
	// Render hattının dönebileceği her şablon adı kayıtlı temalardan gelir
	for _, id := range themes.Registered() {
		renderer, degraded := themes.Resolve(id)
		assert.False(t, degraded)
		page := renderer.Render(themes.Data{Subdomain: "x"})
		assert.NotEmpty(t, page.Template)
	}
}
