package storage

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"davetiye.store/configs"
)

// SignedUpload tek kullanımlık imzalı yükleme bilgisi.
type SignedUpload struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
	FilePath  string `json:"filePath"`
}

// Provider nesne depolama sağlayıcısının dar sözleşmesi. İmzalı URL
// üretimi tek gidiş-dönüştür; retry politikası yoktur, sağlayıcı hatası
// çağırana olduğu gibi döner.
type Provider interface {
	SignUpload(ctx context.Context, filePath, fileType string) (*SignedUpload, error)
}

// HMACProvider paylaşılan gizli anahtarla presigned URL üreten sağlayıcı
// istemcisi. Gerçek depolama servisi imzayı aynı anahtarla doğrular.
type HMACProvider struct {
	cfg configs.StorageConfig
	ttl time.Duration
	now func() time.Time
}

// NewHMACProvider yapılandırmadan bir sağlayıcı oluşturur.
func NewHMACProvider(cfg configs.StorageConfig) *HMACProvider {
	return &HMACProvider{cfg: cfg, ttl: 15 * time.Minute, now: time.Now}
}

// SignUpload verilen dosya yolu için imzalı yükleme URL'i üretir.
func (p *HMACProvider) SignUpload(_ context.Context, filePath, fileType string) (*SignedUpload, error) {
	if p.cfg.SigningSecret == "" {
		return nil, fmt.Errorf("depolama imza anahtarı yapılandırılmamış")
	}

	expires := p.now().Add(p.ttl).Unix()
	mac := hmac.New(sha256.New, []byte(p.cfg.SigningSecret))
	fmt.Fprintf(mac, "PUT\n%s\n%s\n%s\n%d", p.cfg.Bucket, filePath, fileType, expires)
	signature := hex.EncodeToString(mac.Sum(nil))

	q := url.Values{}
	q.Set("expires", strconv.FormatInt(expires, 10))
	q.Set("signature", signature)
	if fileType != "" {
		q.Set("content_type", fileType)
	}

	return &SignedUpload{
		UploadURL: fmt.Sprintf("%s/%s/%s?%s", p.cfg.UploadBaseURL, p.cfg.Bucket, filePath, q.Encode()),
		PublicURL: fmt.Sprintf("%s/%s", p.cfg.PublicBaseURL, filePath),
		FilePath:  filePath,
	}, nil
}
