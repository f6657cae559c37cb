package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"davetiye.store/configs/configslog"
	"davetiye.store/storage"
)

// UploadServiceError özel servis hataları.
type UploadServiceError string

func (e UploadServiceError) Error() string { return string(e) }

const (
	ErrUploadInvalidFileType UploadServiceError = "bu dosya tipi için yükleme kabul edilmiyor"
	ErrUploadProviderFailed  UploadServiceError = "yükleme adresi alınamadı"
)

// allowedPrefixes kabul edilen MIME tipi önekleri. Boş fileType da kabul
// edilir; sağlayıcı varsayılan content-type uygular.
var allowedPrefixes = []string{"image/", "audio/", "font/", "application/"}

// IUploadService imzalı yükleme URL'i üretimi için arayüz.
type IUploadService interface {
	IssueSignedUpload(ctx context.Context, userID uint, fileType string) (*storage.SignedUpload, error)
}

// UploadService IUploadService arayüzünü uygular.
type UploadService struct {
	provider storage.Provider
}

// NewUploadService verilen sağlayıcı ile bir UploadService oluşturur.
func NewUploadService(provider storage.Provider) IUploadService {
	return &UploadService{provider: provider}
}

// IssueSignedUpload MIME önekini doğrular ve sağlayıcıdan imzalı URL alır.
// Dosya yolu, kullanıcı kimliği ile namespace'lenir ve her yükleme için
// rastgele benzersiz bir ad taşır; çakışma olmaz. Sağlayıcı hatasında
// retry yoktur, hata olduğu gibi iç hataya çevrilir.
func (s *UploadService) IssueSignedUpload(ctx context.Context, userID uint, fileType string) (*storage.SignedUpload, error) {
	if !fileTypeAllowed(fileType) {
		return nil, ErrUploadInvalidFileType
	}

	filePath := fmt.Sprintf("%d/%s%s", userID, uuid.NewString(), extensionFor(fileType))
	signed, err := s.provider.SignUpload(ctx, filePath, fileType)
	if err != nil {
		configslog.Log.Error("İmzalı yükleme URL'i alınamadı",
			zap.Uint("userID", userID), zap.String("fileType", fileType), zap.Error(err))
		return nil, ErrUploadProviderFailed
	}
	return signed, nil
}

func fileTypeAllowed(fileType string) bool {
	if fileType == "" {
		return true
	}
	for _, prefix := range allowedPrefixes {
		if strings.HasPrefix(fileType, prefix) {
			return true
		}
	}
	return false
}

// extensionFor bilinen tiplere uzantı verir; gerisi uzantısız kalır.
func extensionFor(fileType string) string {
	switch fileType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	case "audio/mpeg":
		return ".mp3"
	case "font/woff2":
		return ".woff2"
	case "font/ttf":
		return ".ttf"
	default:
		return ""
	}
}
