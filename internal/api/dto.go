package api

import "github.com/starford/mannaz/internal/models"

// PortfolioDocument is the full portfolio response type (aliased from the domain layer).
type PortfolioDocument = models.PortfolioDocument

// ContactSubmission is the contact message response type (aliased from the domain layer).
type ContactSubmission = models.ContactSubmission

// StatusUpdateResponse confirms a submission status change.
type StatusUpdateResponse struct {
	Message string `json:"message" example:"status updated successfully" validate:"required"`
}

// MediaUploadResponse is returned after a successful media upload.
type MediaUploadResponse struct {
	Filename string `json:"filename" example:"avatar.png" validate:"required"`
	Size     int64  `json:"size" example:"12345" validate:"required"`
	URL      string `json:"url" example:"/api/media/avatar.png" validate:"required"`
}
