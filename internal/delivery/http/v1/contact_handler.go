package v1

import (
	"errors"
	"io"
	"net/http"
	"os"

	"go-contact-backend/config"
	"go-contact-backend/internal/delivery/http/response"
	"go-contact-backend/internal/domain"
	"go-contact-backend/pkg/apperror"
	"go-contact-backend/pkg/logger"
	"go-contact-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC      domain.ContactUsecase
	maxResumeBytes int64
	uploadDir      string
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, cfg *config.Config) {
	handler := &ContactHandler{
		contactUC:      contactUC,
		maxResumeBytes: cfg.MaxResumeBytes,
		uploadDir:      cfg.UploadDir,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Relay a contact form submission to the operator inbox after CAPTCHA verification. Public endpoint.
// @Tags         contact
// @Accept       multipart/form-data
// @Produce      json
// @Param        name     formData  string  true   "Submitter name"
// @Param        email    formData  string  true   "Submitter email"
// @Param        message  formData  string  true   "Message body"
// @Param        captcha  formData  string  true   "reCAPTCHA token"
// @Param        resume   formData  file    false  "Optional resume (PDF)"
// @Success      200      {object}  response.MessageBody
// @Failure      400      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /api/contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	req := domain.ContactRequest{
		Name:         c.PostForm("name"),
		Email:        c.PostForm("email"),
		Message:      c.PostForm("message"),
		CaptchaToken: c.PostForm("captcha"),
	}

	file, err := c.FormFile("resume")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		response.Error(c, http.StatusBadRequest, "Invalid resume upload")
		return
	}

	if file != nil {
		// Cheap size gate from the part header before reading anything
		if file.Size > h.maxResumeBytes {
			response.Error(c, http.StatusBadRequest, "Resume file too large")
			return
		}

		src, err := file.Open()
		if err != nil {
			c.Error(apperror.Internal(err))
			return
		}
		defer src.Close()

		data, err := io.ReadAll(io.LimitReader(src, h.maxResumeBytes+1))
		if err != nil {
			c.Error(apperror.Internal(err))
			return
		}

		result := security.ValidateResume(file.Filename, data, http.DetectContentType(data), h.maxResumeBytes)
		if !result.Valid {
			logger.Log.Warn("resume rejected", "filename", file.Filename, "reason", result.Error)
			response.Error(c, http.StatusBadRequest, "Invalid resume file")
			return
		}

		tmp, err := os.CreateTemp(h.uploadDir, "resume-*"+result.Extension)
		if err != nil {
			c.Error(apperror.Internal(err))
			return
		}
		tmpPath := tmp.Name()
		// The temp copy never outlives the request, whatever branch dispatch takes
		defer func() {
			if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
				logger.Log.Error("failed to remove temp resume", "path", tmpPath, "error", err)
			}
		}()

		_, writeErr := tmp.Write(data)
		closeErr := tmp.Close()
		if writeErr != nil || closeErr != nil {
			c.Error(apperror.Internal(errors.Join(writeErr, closeErr)))
			return
		}

		req.Resume = &domain.ResumeFile{
			Filename: file.Filename,
			Path:     tmpPath,
			Size:     int64(len(data)),
		}
	}

	if err := h.contactUC.SubmitContact(c.Request.Context(), &req); err != nil {
		h.respondError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Message sent successfully!")
}

// respondError maps the relay error taxonomy onto the wire contract
func (h *ContactHandler) respondError(c *gin.Context, err error) {
	var captchaErr *domain.CaptchaFailedError
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		response.Error(c, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, domain.ErrInvalidEmail):
		response.Error(c, http.StatusBadRequest, "Invalid email address")
	case errors.Is(err, domain.ErrInvalidName):
		response.Error(c, http.StatusBadRequest, "Invalid name")
	case errors.As(err, &captchaErr):
		response.CaptchaFailure(c, captchaErr.Score)
	case errors.Is(err, domain.ErrCaptchaUnavailable):
		response.Error(c, http.StatusInternalServerError, "CAPTCHA verification failed")
	case errors.Is(err, domain.ErrEmailDelivery):
		response.Error(c, http.StatusInternalServerError, "Email sending failed")
	default:
		c.Error(apperror.Internal(err))
	}
}
