package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// EventType webhook olay tipi.
type EventType string

const (
	EventPaymentSucceeded EventType = "payment.succeeded"
	EventPaymentFailed    EventType = "payment.failed"
	EventPaymentCancelled EventType = "payment.cancelled"
)

// WebhookEvent ödeme sağlayıcısından gelen olay gövdesi.
type WebhookEvent struct {
	ID          string    `json:"id"`
	Type        EventType `json:"type"`
	OrderNumber string    `json:"order_number"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
}

// PaymentError ödeme katmanı hataları.
type PaymentError string

func (e PaymentError) Error() string { return string(e) }

const (
	ErrInvalidSignature PaymentError = "webhook imzası geçersiz"
	ErrMalformedEvent   PaymentError = "webhook gövdesi çözülemedi"
)

// VerifyAndParse webhook gövdesinin HMAC-SHA256 imzasını doğrular ve
// olayı çözer. İmza doğrulanmadan hiçbir durum geçişi yapılmaz.
func VerifyAndParse(body []byte, signature, secret string) (*WebhookEvent, error) {
	if secret == "" {
		return nil, fmt.Errorf("webhook secret yapılandırılmamış")
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return nil, ErrInvalidSignature
	}

	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, ErrMalformedEvent
	}
	if event.OrderNumber == "" || event.Type == "" {
		return nil, ErrMalformedEvent
	}
	return &event, nil
}

// Sign test ve sağlayıcı simülasyonu için gövdeyi imzalar.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
