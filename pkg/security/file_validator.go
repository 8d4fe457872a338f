package security

import (
	"bytes"
	"path/filepath"
	"strings"
)

// ResumeValidationResult contains the result of resume file validation
type ResumeValidationResult struct {
	Valid        bool   // Whether the file passed all validation checks
	Extension    string // Detected file extension
	DetectedMIME string // Detected MIME type
	Error        string // Error message if validation failed
}

// Magic byte signatures for allowed resume types.
// Maps lowercase extension to possible magic byte prefixes.
var resumeMagicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                         // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}}, // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                         // ZIP (PK..)
}

// Allowed resume extensions (strict whitelist, PDF is the primary format)
var allowedResumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// MIME whitelist. application/octet-stream is rejected except for the
// OLE/ZIP based Word formats, which some detectors report that way.
var allowedResumeMIMEs = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/zip": true,
}

// ValidateResume performs layered validation of an uploaded resume:
// size bound, extension whitelist, magic byte verification and MIME
// whitelist. A file exactly at maxBytes is accepted.
func ValidateResume(filename string, data []byte, detectedMIME string, maxBytes int64) ResumeValidationResult {
	result := ResumeValidationResult{
		DetectedMIME: detectedMIME,
	}

	if int64(len(data)) > maxBytes {
		result.Error = "file exceeds maximum allowed size"
		return result
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	if !allowedResumeExtensions[ext] {
		result.Error = "file extension not allowed: " + ext
		return result
	}

	if !validateMagicBytes(ext, data) {
		result.Error = "file content does not match extension"
		return result
	}

	if detectedMIME == "application/octet-stream" {
		if ext != ".doc" && ext != ".docx" {
			result.Error = "binary files not allowed; file type could not be determined"
			return result
		}
	} else if !allowedResumeMIMEs[detectedMIME] {
		result.Error = "MIME type not allowed: " + detectedMIME
		return result
	}

	result.Valid = true
	return result
}

// validateMagicBytes checks if file content starts with expected magic bytes
func validateMagicBytes(ext string, data []byte) bool {
	if len(data) < 4 {
		return false
	}

	signatures, ok := resumeMagicBytes[ext]
	if !ok {
		return false
	}

	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.HasPrefix(data, sig) {
			return true
		}
	}

	return false
}
