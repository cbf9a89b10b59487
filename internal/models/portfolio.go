// Package models defines the domain types for Mannaz.
package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// PersonalInfo holds the bio block of a portfolio.
type PersonalInfo struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	Avatar      string `json:"avatar"`
}

// Validate checks the required identity fields. Email format is deliberately
// not checked; the value is stored as given.
func (p PersonalInfo) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Title, validation.Required),
	)
}

// SocialLinks is the fixed set of platform URLs shown on the portfolio.
type SocialLinks struct {
	GitHub        string `json:"github"`
	LinkedIn      string `json:"linkedin"`
	GeeksForGeeks string `json:"geeksforgeeks"`
	LeetCode      string `json:"leetcode"`
}

// SkillItem is a single skill with a 0-100 proficiency level.
type SkillItem struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	Icon  string `json:"icon"`
}

// Validate bounds the proficiency level to [0, 100].
func (s SkillItem) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.Level, validation.Min(0), validation.Max(100)),
	)
}

// SkillCategory groups skills under a named category, in display order.
type SkillCategory struct {
	Category string      `json:"category"`
	Items    []SkillItem `json:"items"`
}

// Validate requires a category name and validates each item.
func (c SkillCategory) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Category, validation.Required),
		validation.Field(&c.Items),
	)
}

// Project describes one portfolio project entry.
type Project struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Image           string   `json:"image"`
	Tags            []string `json:"tags"`
	LiveURL         string   `json:"liveUrl"`
	GithubURL       string   `json:"githubUrl"`
	Featured        bool     `json:"featured"`
}

func (p Project) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
	)
}

// Experience describes one work-experience entry.
type Experience struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Duration     string   `json:"duration"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

func (e Experience) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Title, validation.Required),
		validation.Field(&e.Company, validation.Required),
	)
}

// Certification describes one certification entry.
type Certification struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	Image        string `json:"image"`
	CredentialID string `json:"credentialId"`
}

func (c Certification) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.Issuer, validation.Required),
	)
}

// Achievement describes one achievement entry.
type Achievement struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Date        string `json:"date"`
}

func (a Achievement) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Title, validation.Required),
	)
}

// CodingProfileStats carries sparse per-platform counters. Only fields the
// platform actually reports are set; absent fields are omitted from JSON.
type CodingProfileStats struct {
	Repositories *int    `json:"repositories,omitempty"`
	Stars        *int    `json:"stars,omitempty"`
	Followers    *int    `json:"followers,omitempty"`
	Problems     *int    `json:"problems,omitempty"`
	Rank         *string `json:"rank,omitempty"`
	Rating       *int    `json:"rating,omitempty"`
	Connections  *int    `json:"connections,omitempty"`
	Posts        *int    `json:"posts,omitempty"`
	Score        *int    `json:"score,omitempty"`
}

// CodingProfile links a coding-platform account with its stats.
type CodingProfile struct {
	Platform string             `json:"platform"`
	Username string             `json:"username"`
	Stats    CodingProfileStats `json:"stats"`
	Icon     string             `json:"icon"`
	URL      string             `json:"url"`
}

func (c CodingProfile) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Platform, validation.Required),
		validation.Field(&c.Username, validation.Required),
	)
}

// PortfolioDocument is the full portfolio content document. One document is
// current per deployment; older versions remain in the store as history.
// ID, CreatedAt and UpdatedAt are server-controlled.
type PortfolioDocument struct {
	ID             string          `json:"id"`
	Personal       PersonalInfo    `json:"personal"`
	SocialLinks    SocialLinks     `json:"socialLinks"`
	Skills         []SkillCategory `json:"skills"`
	Projects       []Project       `json:"projects"`
	Experience     []Experience    `json:"experience"`
	Certifications []Certification `json:"certifications"`
	Achievements   []Achievement   `json:"achievements"`
	CodingProfiles []CodingProfile `json:"codingProfiles"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// PortfolioCreate is the client payload for creating a portfolio document.
// Server-controlled fields are absent; any client-supplied values for them
// are ignored at the decoding boundary.
type PortfolioCreate struct {
	Personal       PersonalInfo    `json:"personal"`
	SocialLinks    SocialLinks     `json:"socialLinks"`
	Skills         []SkillCategory `json:"skills"`
	Projects       []Project       `json:"projects"`
	Experience     []Experience    `json:"experience"`
	Certifications []Certification `json:"certifications"`
	Achievements   []Achievement   `json:"achievements"`
	CodingProfiles []CodingProfile `json:"codingProfiles"`
}

// Validate runs field-level validation across all nested sections.
func (p PortfolioCreate) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Personal),
		validation.Field(&p.Skills),
		validation.Field(&p.Projects),
		validation.Field(&p.Experience),
		validation.Field(&p.Certifications),
		validation.Field(&p.Achievements),
		validation.Field(&p.CodingProfiles),
	)
}

// PortfolioUpdate is a partial-update payload. Nil fields are left untouched;
// set fields replace the stored value wholesale (no deep merge of lists).
type PortfolioUpdate struct {
	Personal       *PersonalInfo    `json:"personal,omitempty"`
	SocialLinks    *SocialLinks     `json:"socialLinks,omitempty"`
	Skills         *[]SkillCategory `json:"skills,omitempty"`
	Projects       *[]Project       `json:"projects,omitempty"`
	Experience     *[]Experience    `json:"experience,omitempty"`
	Certifications *[]Certification `json:"certifications,omitempty"`
	Achievements   *[]Achievement   `json:"achievements,omitempty"`
	CodingProfiles *[]CodingProfile `json:"codingProfiles,omitempty"`
}

// Validate validates only the sections present in the update.
func (u PortfolioUpdate) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Personal),
		validation.Field(&u.Skills),
		validation.Field(&u.Projects),
		validation.Field(&u.Experience),
		validation.Field(&u.Certifications),
		validation.Field(&u.Achievements),
		validation.Field(&u.CodingProfiles),
	)
}

// Fields returns the set top-level fields keyed by their JSON names, ready to
// be applied as a shallow patch.
func (u PortfolioUpdate) Fields() map[string]any {
	out := make(map[string]any)
	if u.Personal != nil {
		out["personal"] = *u.Personal
	}
	if u.SocialLinks != nil {
		out["socialLinks"] = *u.SocialLinks
	}
	if u.Skills != nil {
		out["skills"] = *u.Skills
	}
	if u.Projects != nil {
		out["projects"] = *u.Projects
	}
	if u.Experience != nil {
		out["experience"] = *u.Experience
	}
	if u.Certifications != nil {
		out["certifications"] = *u.Certifications
	}
	if u.Achievements != nil {
		out["achievements"] = *u.Achievements
	}
	if u.CodingProfiles != nil {
		out["codingProfiles"] = *u.CodingProfiles
	}
	return out
}
