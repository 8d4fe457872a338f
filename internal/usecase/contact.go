package usecase

import (
	"context"
	"strings"

	"go-contact-backend/internal/domain"
	"go-contact-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	verifier domain.CaptchaVerifier
	mailer   domain.Mailer
	validate *validator.Validate
	minScore float64
	action   string
}

// NewContactUsecase creates the contact relay usecase. The validator instance
// must have the custom name validators registered (validation.RegisterValidators).
// minScore is the acceptance threshold for the CAPTCHA confidence score;
// action is the expected action name reported by the verification service.
func NewContactUsecase(verifier domain.CaptchaVerifier, mailer domain.Mailer, validate *validator.Validate, minScore float64, action string) domain.ContactUsecase {
	return &contactUsecase{
		verifier: verifier,
		mailer:   mailer,
		validate: validate,
		minScore: minScore,
		action:   action,
	}
}

// SubmitContact runs the relay steps in strict order: field validation,
// CAPTCHA verification, email dispatch. Each step gates the next; no external
// call is made for a submission that fails an earlier step, and no retries
// are performed anywhere.
func (uc *contactUsecase) SubmitContact(ctx context.Context, req *domain.ContactRequest) error {
	name := strings.TrimSpace(req.Name)
	senderEmail := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)
	token := strings.TrimSpace(req.CaptchaToken)

	if name == "" || senderEmail == "" || message == "" || token == "" {
		return domain.ErrMissingFields
	}
	if err := uc.validate.Var(senderEmail, "email"); err != nil {
		return domain.ErrInvalidEmail
	}
	if err := uc.validate.Var(name, "valid_name,no_emoji"); err != nil {
		return domain.ErrInvalidName
	}

	result, err := uc.verifier.Verify(ctx, token)
	if err != nil {
		logger.Log.Error("captcha service unreachable", "error", err)
		return domain.ErrCaptchaUnavailable
	}
	if !result.Valid {
		logger.Log.Warn("captcha token rejected", "error_codes", result.ErrorCodes)
		return &domain.CaptchaFailedError{}
	}
	// An empty action means the service did not report one (v2-style response)
	if uc.action != "" && result.Action != "" && result.Action != uc.action {
		logger.Log.Warn("captcha action mismatch", "action", result.Action, "expected", uc.action)
		score := result.Score
		return &domain.CaptchaFailedError{Score: &score}
	}
	if result.Score < uc.minScore {
		logger.Log.Warn("captcha score below threshold", "score", result.Score, "threshold", uc.minScore)
		score := result.Score
		return &domain.CaptchaFailedError{Score: &score}
	}

	data := domain.ContactEmail{
		SenderName:  name,
		SenderEmail: senderEmail,
		Message:     message,
		Attachment:  req.Resume,
	}
	if err := uc.mailer.SendContactEmail(ctx, data); err != nil {
		// Transport detail stays server-side; the caller only sees a generic code
		logger.Log.Error("contact email dispatch failed", "error", err)
		return domain.ErrEmailDelivery
	}

	logger.Log.Info("contact message relayed", "score", result.Score, "has_attachment", req.Resume != nil)
	return nil
}
