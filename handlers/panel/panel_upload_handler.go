package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"davetiye.store/configs/configslog"
	"davetiye.store/middlewares"
	"davetiye.store/services"
)

// PanelUploadHandler imzalı yükleme URL'i taleplerini yönetir. Dosyanın
// kendisi bu sunucuya gelmez; istemci imzalı URL'e doğrudan yükler.
type PanelUploadHandler struct {
	uploadService services.IUploadService
}

// NewPanelUploadHandler yeni bir PanelUploadHandler örneği oluşturur.
func NewPanelUploadHandler(uploadService services.IUploadService) *PanelUploadHandler {
	return &PanelUploadHandler{uploadService: uploadService}
}

type signUploadRequest struct {
	FileType string `json:"file_type" form:"file_type"`
}

// SignUpload istenen MIME tipi için imzalı yükleme URL'i üretir.
func (h *PanelUploadHandler) SignUpload(c *fiber.Ctx) error {
	var req signUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek gövdesi"})
	}

	signed, err := h.uploadService.IssueSignedUpload(c.UserContext(), middlewares.CurrentUserID(c), req.FileType)
	if err != nil {
		if errors.Is(err, services.ErrUploadInvalidFileType) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("SignUpload hatası", zap.String("fileType", req.FileType), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": string(services.ErrUploadProviderFailed)})
	}
	return c.JSON(signed)
}
