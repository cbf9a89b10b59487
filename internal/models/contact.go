package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Conventional contact submission statuses. The status field is an open
// string; these are the values the admin UI uses, not a closed set.
const (
	StatusNew       = "new"
	StatusRead      = "read"
	StatusResponded = "responded"
)

// ContactSubmission is one inbound contact-form message.
// ID, SubmittedAt and the initial Status are server-controlled.
type ContactSubmission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
	Status      string    `json:"status"`
}

// ContactCreate is the public contact-form payload.
type ContactCreate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate requires every field to be non-empty. The email address is taken
// as-is; there is no format check.
func (c ContactCreate) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Email, validation.Required),
		validation.Field(&c.Subject, validation.Required),
		validation.Field(&c.Message, validation.Required),
	)
}
