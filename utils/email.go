package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
	"time"
)

// SendBookingConfirmationEmail sends a multipart text+HTML confirmation to
// the event contact when a booking is confirmed. When SMTP is not configured
// it falls back to a mock log entry so development setups keep working.
func SendBookingConfirmationEmail(
	recipientEmail,
	contactName,
	eventName,
	bookingID string,
	start, end time.Time,
	priceDisplay string,
) error {

	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := EnvOrDefault("SMTP_FROM_NAME", "Gestão de Reservas")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] to:%s booking:%s event:%q start:%s price:%s",
			recipientEmail, bookingID, eventName, start.Format("2006-01-02 15:04"), priceDisplay)
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}
	contactName = safe(contactName)
	eventName = safe(eventName)
	if contactName == "" {
		contactName = "Caro(a) cliente"
	}

	startStr := start.Format("02/01/2006 15:04")
	endStr := end.Format("02/01/2006 15:04")

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	to := []string{recipientEmail}
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	subject := fmt.Sprintf("Reserva confirmada — %s (#%s)", eventName, bookingID)
	boundary := "----=_RESERVA_EMAIL_BOUNDARY"

	plainBody := fmt.Sprintf(
		"%s,\n\n"+
			"A sua reserva foi confirmada.\n\n"+
			"Processo: #%s\n"+
			"Evento: %s\n"+
			"Início: %s\n"+
			"Fim: %s\n"+
			"Valor: %s\n\n"+
			"Cumprimentos,\n%s",
		contactName, bookingID, eventName, startStr, endStr, priceDisplay, fromName,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>Reserva confirmada</title></head>
<body style="font-family:Arial, Helvetica, sans-serif; color:#222;">
  <div style="max-width:640px; margin:20px auto; border:1px solid #e6eef6; padding:24px; border-radius:8px;">
    <h2>Reserva confirmada</h2>
    <p>%s,</p>
    <p>A sua reserva foi confirmada. Detalhes:</p>
    <p><strong>Processo:</strong> #%s</p>
    <p><strong>Evento:</strong> %s</p>
    <p><strong>Início:</strong> %s</p>
    <p><strong>Fim:</strong> %s</p>
    <p><strong>Valor:</strong> %s</p>
    <p>Cumprimentos,<br>%s</p>
  </div>
</body>
</html>`,
		htmlEscape(contactName), htmlEscape(bookingID), htmlEscape(eventName),
		startStr, endStr, htmlEscape(priceDisplay), htmlEscape(fromName),
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipientEmail))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	if err := smtp.SendMail(addr, auth, smtpUser, to, []byte(sb.String())); err != nil {
		log.Printf("❌ Failed to send confirmation email to %s: %v", recipientEmail, err)
		return err
	}

	log.Printf("📨 Confirmation email sent to %s (booking #%s)", recipientEmail, bookingID)
	return nil
}

// minimal html escaper for the small strings we use
func htmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	return replacer.Replace(s)
}
