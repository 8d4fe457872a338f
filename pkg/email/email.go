package email

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"os"
	"path/filepath"
	"time"

	"go-contact-backend/config"
	"go-contact-backend/internal/domain"
)

// contactSubject is the fixed subject line for relayed submissions
const contactSubject = "New Contact Form Submission"

// sendTimeout bounds one SMTP dispatch attempt
const sendTimeout = 30 * time.Second

// EmailService relays contact form submissions to the operator inbox via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	toEmail   string
}

// NewEmailService creates a new email service bound to the configured
// transport credentials and recipient.
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		toEmail:   cfg.ContactEmailTo,
	}
}

// SendContactEmail dispatches one submission to the fixed recipient. The
// attempt is bounded by sendTimeout; a timeout surfaces as a transport error.
func (s *EmailService) SendContactEmail(ctx context.Context, data domain.ContactEmail) error {
	msg, err := buildMessage(s.fromEmail, s.toEmail, data)
	if err != nil {
		return fmt.Errorf("failed to build email message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	// net/smtp has no context support, so the send runs in its own goroutine
	// and we give up waiting when the deadline passes.
	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, s.fromEmail, []string{s.toEmail}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("email dispatch timed out: %w", ctx.Err())
	}
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != "" && s.toEmail != ""
}

// buildMessage renders the full MIME message. Submissions without an
// attachment are plain text; with an attachment the message is
// multipart/mixed with the file carried as a base64 part under its
// original filename.
func buildMessage(from, to string, data domain.ContactEmail) ([]byte, error) {
	body := fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s", data.SenderName, data.SenderEmail, data.Message)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Reply-To: %s\r\n", data.SenderEmail)
	fmt.Fprintf(&buf, "Subject: %s\r\n", contactSubject)
	buf.WriteString("MIME-Version: 1.0\r\n")

	if data.Attachment == nil {
		buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
		buf.WriteString(body)
		return buf.Bytes(), nil
	}

	content, err := os.ReadFile(data.Attachment.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}

	writer := multipart.NewWriter(&buf)
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%s\r\n\r\n", writer.Boundary())

	textPart, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/plain; charset=UTF-8"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create text part: %w", err)
	}
	if _, err := textPart.Write([]byte(body)); err != nil {
		return nil, err
	}

	filename := filepath.Base(data.Attachment.Filename)
	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	attachPart, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {contentType},
		"Content-Transfer-Encoding": {"base64"},
		"Content-Disposition":       {fmt.Sprintf("attachment; filename=%q", filename)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create attachment part: %w", err)
	}
	if err := writeBase64(attachPart, content); err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeBase64 encodes content with RFC 2045 line wrapping at 76 characters
func writeBase64(w io.Writer, content []byte) error {
	encoded := base64.StdEncoding.EncodeToString(content)
	for len(encoded) > 0 {
		n := 76
		if len(encoded) < n {
			n = len(encoded)
		}
		if _, err := w.Write([]byte(encoded[:n])); err != nil {
			return err
		}
		if _, err := w.Write([]byte("\r\n")); err != nil {
			return err
		}
		encoded = encoded[n:]
	}
	return nil
}
