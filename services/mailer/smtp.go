package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SMTPDispatcher sends mail over SMTP with STARTTLS. Unconfigured
// credentials make the dispatcher unavailable; Send fails fast before
// dialing in that case.
type SMTPDispatcher struct {
	host     string
	port     int
	username string
	password string
	logger   *zap.Logger
}

func NewSMTPDispatcher(host string, port int, username, password string, logger *zap.Logger) *SMTPDispatcher {
	d := &SMTPDispatcher{
		host:     host,
		port:     port,
		username: username,
		password: password,
		logger:   logger,
	}
	if !d.Available() {
		logger.Warn("SMTP credentials not set; email dispatch disabled")
	}
	return d
}

// Available reports whether the dispatcher has usable credentials.
func (d *SMTPDispatcher) Available() bool {
	return d.host != "" && d.username != "" && d.password != ""
}

// Send delivers msg and returns its generated message ID.
func (d *SMTPDispatcher) Send(ctx context.Context, msg Message) (string, error) {
	if !d.Available() {
		return "", fmt.Errorf("smtp dispatcher is not configured")
	}

	domain := d.username
	if at := strings.LastIndex(d.username, "@"); at >= 0 {
		domain = d.username[at+1:]
	}
	messageID := fmt.Sprintf("<%s@%s>", uuid.New().String(), domain)

	body := buildMIMEMessage(msg, messageID)

	addr := fmt.Sprintf("%s:%d", d.host, d.port)
	done := make(chan error, 1)
	go func() {
		done <- d.deliver(addr, msg, body)
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case err := <-done:
		if err != nil {
			d.logger.Error("smtp delivery failed", zap.String("to", msg.To), zap.Error(err))
			return "", err
		}
	}

	d.logger.Info("email sent", zap.String("to", msg.To), zap.String("messageId", messageID))
	return messageID, nil
}

func (d *SMTPDispatcher) deliver(addr string, msg Message, body []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("dial smtp server: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: d.host}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}

	auth := smtp.PlainAuth("", d.username, d.password, d.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Mail(msg.From); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close body: %w", err)
	}

	return client.Quit()
}

// buildMIMEMessage assembles a multipart/alternative message with text
// and HTML parts.
func buildMIMEMessage(msg Message, messageID string) []byte {
	boundary := "seven18-" + uuid.New().String()

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", msg.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&b, "Message-ID: %s\r\n", messageID)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(msg.Text)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(msg.HTML)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return []byte(b.String())
}
