package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const maxBytes = 1024

func pdfData(size int) []byte {
	data := make([]byte, size)
	copy(data, []byte("%PDF-1.4\n"))
	return data
}

func TestValidateResumePDF(t *testing.T) {
	result := ValidateResume("jane-cv.pdf", pdfData(256), "application/pdf", maxBytes)
	assert.True(t, result.Valid)
	assert.Equal(t, ".pdf", result.Extension)
}

func TestValidateResumeSizeBoundary(t *testing.T) {
	t.Run("exactly at the bound", func(t *testing.T) {
		result := ValidateResume("jane-cv.pdf", pdfData(maxBytes), "application/pdf", maxBytes)
		assert.True(t, result.Valid)
	})

	t.Run("one byte over", func(t *testing.T) {
		result := ValidateResume("jane-cv.pdf", pdfData(maxBytes+1), "application/pdf", maxBytes)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "size")
	})
}

func TestValidateResumeExtensionWhitelist(t *testing.T) {
	result := ValidateResume("malware.exe", []byte{0x4D, 0x5A, 0x90, 0x00}, "application/octet-stream", maxBytes)
	assert.False(t, result.Valid)

	result = ValidateResume("noextension", pdfData(64), "application/pdf", maxBytes)
	assert.False(t, result.Valid)
}

func TestValidateResumeSpoofedContent(t *testing.T) {
	// .pdf name over non-PDF bytes must be rejected
	result := ValidateResume("jane-cv.pdf", []byte("MZ\x90\x00 not a pdf"), "application/pdf", maxBytes)
	assert.False(t, result.Valid)
}

func TestValidateResumeWordFormats(t *testing.T) {
	doc := []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0x00}
	result := ValidateResume("cv.doc", doc, "application/msword", maxBytes)
	assert.True(t, result.Valid)

	docx := []byte{0x50, 0x4B, 0x03, 0x04, 0x00}
	result = ValidateResume("cv.docx", docx, "application/zip", maxBytes)
	assert.True(t, result.Valid)

	// Word formats are the only octet-stream exception
	result = ValidateResume("cv.docx", docx, "application/octet-stream", maxBytes)
	assert.True(t, result.Valid)

	result = ValidateResume("cv.pdf", pdfData(64), "application/octet-stream", maxBytes)
	assert.False(t, result.Valid)
}

func TestValidateResumeTooSmall(t *testing.T) {
	result := ValidateResume("cv.pdf", []byte("%P"), "application/pdf", maxBytes)
	assert.False(t, result.Valid)
}
