package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"davetiye.store/configs"
	"davetiye.store/models"
)

// IMailService sipariş bildirim mailleri için arayüz.
type IMailService interface {
	SendOrderConfirmation(to string, order *models.Order) error
}

// MailService gomail ile SMTP üzerinden mail gönderir.
type MailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailService SMTP yapılandırmasından bir MailService oluşturur.
func NewMailService(cfg configs.SMTPConfig) *MailService {
	return &MailService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// SendOrderConfirmation ödemesi alınan sipariş için onay maili gönderir.
// Gönderim hatası webhook akışını bloklamaz; çağıran loglar.
func (m *MailService) SendOrderConfirmation(to string, order *models.Order) error {
	message := gomail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", fmt.Sprintf("Siparişiniz alındı: %s", order.OrderNumber))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; padding: 20px;">
			<h2 style="color: #333;">Ödemeniz alındı</h2>
			<p>%s numaralı siparişinizin ödemesi başarıyla tamamlandı.</p>
			<p>Toplam tutar: <strong>%s TL</strong></p>
			<p>Davetiye içeren ürünleriniz panelinizde kişiselleştirmeye hazır.</p>
			<p>Sevgiler,<br>davetiye.store ekibi</p>
		</div>
	`, order.OrderNumber, order.TotalAmount.StringFixed(2))
	message.SetBody("text/html", body)

	return m.dialer.DialAndSend(message)
}
