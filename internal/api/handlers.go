package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/starford/mannaz/internal/apperr"
	"github.com/starford/mannaz/internal/models"
	"github.com/starford/mannaz/internal/portfolioservice"
)

// EventPublisher is called after a successful content mutation.
// event is one of "portfolio.created", "portfolio.updated", "contact.received".
type EventPublisher func(event, id string)

// Handler holds API route handlers.
type Handler struct {
	svc    *portfolioservice.Service
	notify EventPublisher
}

// NewHandler creates a new Handler. notify may be nil.
func NewHandler(svc *portfolioservice.Service, notify EventPublisher) *Handler {
	return &Handler{svc: svc, notify: notify}
}

func (h *Handler) publish(event, id string) {
	if h.notify != nil {
		h.notify(event, id)
	}
}

// GetPortfolio handles GET /api/portfolio.
//
//	@Summary		Get the current portfolio document
//	@Tags			portfolio
//	@Produce		json
//	@Success		200	{object}	models.PortfolioDocument
//	@Failure		404	{object}	errResponse
//	@Router			/portfolio [get]
func (h *Handler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetPortfolio(r.Context())
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("portfolio not found"))
		} else {
			slog.Error("get portfolio failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// CreatePortfolio handles POST /api/portfolio.
//
//	@Summary		Create a new portfolio version and mark it current
//	@Tags			portfolio
//	@Accept			json
//	@Produce		json
//	@Param			body	body		models.PortfolioCreate	true	"Full portfolio content"
//	@Success		200		{object}	models.PortfolioDocument
//	@Failure		422		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/portfolio [post]
func (h *Handler) CreatePortfolio(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	var req models.PortfolioCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
		return
	}
	p, err := h.svc.CreatePortfolio(r.Context(), req)
	if err != nil {
		slog.Error("create portfolio failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	h.publish("portfolio.created", p.ID)
	writeJSON(w, http.StatusOK, p)
}

// UpdatePortfolio handles PUT /api/portfolio.
//
//	@Summary		Partially update the current portfolio
//	@Description	Only the top-level fields present in the body are replaced,
//	@Description	each wholesale; omitted fields keep their stored value.
//	@Tags			portfolio
//	@Accept			json
//	@Produce		json
//	@Param			body	body		models.PortfolioUpdate	true	"Subset of top-level fields"
//	@Success		200		{object}	models.PortfolioDocument
//	@Failure		404		{object}	errResponse
//	@Failure		422		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/portfolio [put]
func (h *Handler) UpdatePortfolio(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	var req models.PortfolioUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
		return
	}
	p, err := h.svc.UpdatePortfolio(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("portfolio not found"))
		} else {
			slog.Error("update portfolio failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	h.publish("portfolio.updated", p.ID)
	writeJSON(w, http.StatusOK, p)
}

// SubmitContact handles POST /api/contact.
//
//	@Summary		Submit a contact-form message
//	@Tags			contact
//	@Accept			json
//	@Produce		json
//	@Param			body	body		models.ContactCreate	true	"Contact message"
//	@Success		200		{object}	models.ContactSubmission
//	@Failure		422		{object}	errResponse
//	@Router			/contact [post]
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req models.ContactCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
		return
	}
	sub, err := h.svc.SubmitContact(r.Context(), req)
	if err != nil {
		slog.Error("submit contact failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	h.publish("contact.received", sub.ID)
	writeJSON(w, http.StatusOK, sub)
}

// ListContacts handles GET /api/contact.
//
//	@Summary		List contact submissions, newest first
//	@Tags			contact
//	@Produce		json
//	@Param			status	query		string	false	"Filter by status"
//	@Param			limit	query		int		false	"Page size (default 100)"
//	@Param			skip	query		int		false	"Page offset"
//	@Success		200		{array}		models.ContactSubmission
//	@Security		BearerAuth
//	@Router			/contact [get]
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	skip, _ := strconv.Atoi(q.Get("skip"))
	status := q.Get("status")

	subs, err := h.svc.ListContacts(r.Context(), status, limit, skip)
	if err != nil {
		slog.Error("list contacts failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

// UpdateContactStatus handles PUT /api/contact/{id}.
//
//	@Summary		Update the status of a contact submission
//	@Tags			contact
//	@Produce		json
//	@Param			id		path		string	true	"Submission id"
//	@Param			status	query		string	true	"New status"
//	@Success		200		{object}	StatusUpdateResponse
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/contact/{id} [put]
func (h *Handler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	status := r.URL.Query().Get("status")
	if status == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'status' is required"))
		return
	}
	if err := h.svc.UpdateContactStatus(r.Context(), id, status); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("submission not found"))
		} else {
			slog.Error("update contact status failed", slog.String("id", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, StatusUpdateResponse{Message: "status updated successfully"})
}
