package domain

import "context"

// ContactRequest represents one contact form submission. It lives for the
// duration of a single request and is never persisted.
type ContactRequest struct {
	Name         string
	Email        string
	Message      string
	CaptchaToken string
	Resume       *ResumeFile
}

// ResumeFile points at the request-scoped temporary copy of an uploaded
// resume. The handler that created the temp file owns its removal.
type ResumeFile struct {
	Filename string
	Path     string
	Size     int64
}

// ContactEmail holds the data handed to the mail transport.
type ContactEmail struct {
	SenderName  string
	SenderEmail string
	Message     string
	Attachment  *ResumeFile
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SubmitContact validates the submission, verifies the CAPTCHA token and
	// relays the message to the operator inbox.
	SubmitContact(ctx context.Context, req *ContactRequest) error
}

// Mailer dispatches contact notifications. Implementations must be safe for
// concurrent use by multiple in-flight requests.
type Mailer interface {
	SendContactEmail(ctx context.Context, data ContactEmail) error
}
