package email

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-contact-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactData() domain.ContactEmail {
	return domain.ContactEmail{
		SenderName:  "Jane Doe",
		SenderEmail: "jane@example.com",
		Message:     "Need a quote",
	}
}

func TestBuildMessagePlainText(t *testing.T) {
	msg, err := buildMessage("noreply@example.com", "ops@example.com", contactData())
	require.NoError(t, err)

	text := string(msg)
	assert.Contains(t, text, "From: noreply@example.com\r\n")
	assert.Contains(t, text, "To: ops@example.com\r\n")
	assert.Contains(t, text, "Reply-To: jane@example.com\r\n")
	assert.Contains(t, text, "Subject: New Contact Form Submission\r\n")
	assert.Contains(t, text, "Content-Type: text/plain; charset=UTF-8")

	// Submitter fields relayed verbatim in the structured body
	assert.Contains(t, text, "Name: Jane Doe")
	assert.Contains(t, text, "Email: jane@example.com")
	assert.Contains(t, text, "Message: Need a quote")
}

func TestBuildMessageWithAttachment(t *testing.T) {
	dir := t.TempDir()
	content := []byte("%PDF-1.4\nfake resume body")
	path := filepath.Join(dir, "upload-123.pdf")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	data := contactData()
	data.Attachment = &domain.ResumeFile{
		Filename: "jane-cv.pdf",
		Path:     path,
		Size:     int64(len(content)),
	}

	msg, err := buildMessage("noreply@example.com", "ops@example.com", data)
	require.NoError(t, err)

	text := string(msg)
	assert.Contains(t, text, "Content-Type: multipart/mixed; boundary=")
	assert.Contains(t, text, `attachment; filename="jane-cv.pdf"`)
	assert.Contains(t, text, "Content-Type: application/pdf")
	assert.Contains(t, text, "Content-Transfer-Encoding: base64")
	assert.Contains(t, text, "Name: Jane Doe")

	// The attachment bytes survive the encoding round trip
	encoded := base64.StdEncoding.EncodeToString(content)
	assert.Contains(t, strings.ReplaceAll(text, "\r\n", ""), encoded)
}

func TestBuildMessageAttachmentFilenameStripped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "upload-456.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\n"), 0o600))

	data := contactData()
	data.Attachment = &domain.ResumeFile{
		Filename: "../../etc/jane-cv.pdf",
		Path:     path,
	}

	msg, err := buildMessage("noreply@example.com", "ops@example.com", data)
	require.NoError(t, err)

	// Only the base name appears in the message
	assert.Contains(t, string(msg), `filename="jane-cv.pdf"`)
	assert.NotContains(t, string(msg), "../")
}

func TestBuildMessageMissingAttachmentFile(t *testing.T) {
	data := contactData()
	data.Attachment = &domain.ResumeFile{
		Filename: "jane-cv.pdf",
		Path:     filepath.Join(t.TempDir(), "gone.pdf"),
	}

	_, err := buildMessage("noreply@example.com", "ops@example.com", data)
	assert.Error(t, err)
}

func TestIsConfigured(t *testing.T) {
	svc := &EmailService{host: "smtp.example.com", username: "u", password: "p", toEmail: "ops@example.com"}
	assert.True(t, svc.IsConfigured())

	assert.False(t, (&EmailService{host: "smtp.example.com"}).IsConfigured())
	assert.False(t, (&EmailService{}).IsConfigured())
}
