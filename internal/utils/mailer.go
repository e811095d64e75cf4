package utils

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/Monirul480/Language-club-serversite/internal/config"
	"github.com/Monirul480/Language-club-serversite/internal/models"
)

// Mailer sends payment receipts over SMTP.
type Mailer struct {
	cfg config.SMTPConfig
}

// NewMailer returns nil when no SMTP host is configured; receipts are then
// skipped entirely.
func NewMailer(cfg config.SMTPConfig) *Mailer {
	if cfg.Host == "" {
		return nil
	}
	return &Mailer{cfg: cfg}
}

// SendReceipt mails a short payment confirmation for a paid order.
func (m *Mailer) SendReceipt(order models.Order) error {
	body := fmt.Sprintf(`
	<html>
	<body>
		<p>Hi,</p>
		<p>Your payment for <b>%s</b> has been received.</p>
		<p>Amount: $%.2f</p>
		<p>Order ID: %s</p>
		<p>Thank you for learning with us!</p>
	</body>
	</html>`, order.ClassName, order.Price, order.ID.Hex())

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", m.cfg.Username)
	mailer.SetHeader("To", order.Email)
	mailer.SetHeader("Subject", "Payment received")
	mailer.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	return dialer.DialAndSend(mailer)
}
