// Package portfolioservice coordinates the data model and the document store
// for the API layer.
package portfolioservice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/starford/mannaz/internal/apperr"
	"github.com/starford/mannaz/internal/models"
	"github.com/starford/mannaz/internal/store"
)

// Collection names in the document store.
const (
	CollectionPortfolio = "portfolio"
	CollectionContacts  = "contact_submissions"
)

// DefaultContactLimit is the page size used when a listing request gives none.
const DefaultContactLimit = 100

// Service owns request-scoped portfolio and contact operations. It holds no
// mutable state; every call is independent.
type Service struct {
	db store.DocumentStore
}

// NewService creates a new portfolio service.
func NewService(db store.DocumentStore) *Service {
	return &Service{db: db}
}

// GetPortfolio returns the current portfolio document, or apperr.ErrNotFound
// when none has been created yet.
func (s *Service) GetPortfolio(_ context.Context) (*models.PortfolioDocument, error) {
	doc, err := s.db.FindCurrent(CollectionPortfolio)
	if err != nil {
		return nil, err
	}
	return decodePortfolio(doc.Body)
}

// CreatePortfolio stores a new portfolio version and marks it current. The id
// and timestamps are always server-assigned.
func (s *Service) CreatePortfolio(_ context.Context, in models.PortfolioCreate) (*models.PortfolioDocument, error) {
	now := time.Now().UTC()
	p := &models.PortfolioDocument{
		ID:             uuid.NewString(),
		Personal:       in.Personal,
		SocialLinks:    in.SocialLinks,
		Skills:         nonNilSlice(in.Skills),
		Projects:       nonNilSlice(in.Projects),
		Experience:     nonNilSlice(in.Experience),
		Certifications: nonNilSlice(in.Certifications),
		Achievements:   nonNilSlice(in.Achievements),
		CodingProfiles: nonNilSlice(in.CodingProfiles),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("portfolio: encode: %w", err)
	}
	if err := s.db.InsertCurrent(CollectionPortfolio, store.Document{
		ID:        p.ID,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdatePortfolio applies a partial update to the current portfolio: only the
// fields present in the payload are replaced, each wholesale. Returns
// apperr.ErrNotFound when no portfolio exists.
//
// The read-then-patch sequence is not serialized against concurrent updates;
// last write wins.
func (s *Service) UpdatePortfolio(_ context.Context, in models.PortfolioUpdate) (*models.PortfolioDocument, error) {
	current, err := s.db.FindCurrent(CollectionPortfolio)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	patch := in.Fields()
	patch["updatedAt"] = now

	n, err := s.db.UpdateFields(CollectionPortfolio, current.ID, patch, now)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("portfolio: update of %s modified no rows", current.ID)
	}

	doc, err := s.db.FindByID(CollectionPortfolio, current.ID)
	if err != nil {
		return nil, err
	}
	return decodePortfolio(doc.Body)
}

// SubmitContact stores a new contact-form submission. Status always starts as
// "new" and id/submittedAt are server-assigned regardless of client input.
func (s *Service) SubmitContact(_ context.Context, in models.ContactCreate) (*models.ContactSubmission, error) {
	now := time.Now().UTC()
	sub := &models.ContactSubmission{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Email:       in.Email,
		Subject:     in.Subject,
		Message:     in.Message,
		SubmittedAt: now,
		Status:      models.StatusNew,
	}
	body, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("contact: encode: %w", err)
	}
	if err := s.db.InsertOne(CollectionContacts, store.Document{
		ID:        sub.ID,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		return nil, err
	}
	return sub, nil
}

// ListContacts returns submissions newest-first, optionally filtered by
// status. An empty result is an empty slice, never an error.
func (s *Service) ListContacts(_ context.Context, status string, limit, skip int) ([]models.ContactSubmission, error) {
	if limit <= 0 {
		limit = DefaultContactLimit
	}
	filter := map[string]string{}
	if status != "" {
		filter["status"] = status
	}
	docs, err := s.db.FindMany(CollectionContacts, filter, limit, skip)
	if err != nil {
		return nil, err
	}
	out := make([]models.ContactSubmission, 0, len(docs))
	for _, d := range docs {
		var sub models.ContactSubmission
		if err := json.Unmarshal(d.Body, &sub); err != nil {
			return nil, fmt.Errorf("contact: decode %s: %w", d.ID, err)
		}
		out = append(out, sub)
	}
	return out, nil
}

// UpdateContactStatus sets the status of one submission. Any status string is
// accepted; new/read/responded are conventional values, not a closed set.
// Returns apperr.ErrNotFound when the id matches nothing.
func (s *Service) UpdateContactStatus(_ context.Context, id, status string) error {
	n, err := s.db.UpdateFields(CollectionContacts, id, map[string]any{"status": status}, time.Now().UTC())
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func decodePortfolio(body json.RawMessage) (*models.PortfolioDocument, error) {
	var p models.PortfolioDocument
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("portfolio: decode: %w", err)
	}
	return &p, nil
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
