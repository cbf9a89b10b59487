package models

import (
	"encoding/json"
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func TestContactCreate_Valid(t *testing.T) {
	c := ContactCreate{Name: "A", Email: "a@b.com", Subject: "S", Message: "M"}
	if err := c.Validate(); err != nil {
		t.Fatalf("valid submission rejected: %v", err)
	}
}

func TestContactCreate_EachFieldRequired(t *testing.T) {
	cases := []struct {
		name string
		in   ContactCreate
		want string
	}{
		{"empty name", ContactCreate{Email: "a@b.com", Subject: "S", Message: "M"}, "name"},
		{"empty email", ContactCreate{Name: "A", Subject: "S", Message: "M"}, "email"},
		{"empty subject", ContactCreate{Name: "A", Email: "a@b.com", Message: "M"}, "subject"},
		{"empty message", ContactCreate{Name: "A", Email: "a@b.com", Subject: "S"}, "message"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			var errs validation.Errors
			if !errors.As(err, &errs) {
				t.Fatalf("error is not field-level: %v", err)
			}
			if _, ok := errs[tc.want]; !ok {
				t.Errorf("missing field error for %q in %v", tc.want, errs)
			}
		})
	}
}

func TestContactCreate_EmailNotFormatChecked(t *testing.T) {
	c := ContactCreate{Name: "A", Email: "not-an-email", Subject: "S", Message: "M"}
	if err := c.Validate(); err != nil {
		t.Errorf("email format should not be validated: %v", err)
	}
}

func TestSkillItem_LevelBounds(t *testing.T) {
	if err := (SkillItem{Name: "Go", Level: 100}).Validate(); err != nil {
		t.Errorf("level 100 should pass: %v", err)
	}
	if err := (SkillItem{Name: "Go", Level: 0}).Validate(); err != nil {
		t.Errorf("level 0 should pass: %v", err)
	}
	if err := (SkillItem{Name: "Go", Level: 101}).Validate(); err == nil {
		t.Error("level 101 should fail")
	}
	if err := (SkillItem{Name: "Go", Level: -1}).Validate(); err == nil {
		t.Error("level -1 should fail")
	}
}

func TestPortfolioCreate_NestedErrorsSurface(t *testing.T) {
	p := PortfolioCreate{
		Personal: PersonalInfo{Name: "Jordan"}, // title missing
		Skills: []SkillCategory{
			{Category: "Backend", Items: []SkillItem{{Name: "Go", Level: 150}}},
		},
	}
	err := p.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	var errs validation.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("error is not field-level: %v", err)
	}
	if _, ok := errs["personal"]; !ok {
		t.Errorf("missing personal error in %v", errs)
	}
	if _, ok := errs["skills"]; !ok {
		t.Errorf("missing skills error in %v", errs)
	}
}

func TestPortfolioUpdate_Fields(t *testing.T) {
	personal := PersonalInfo{Name: "Jordan", Title: "Engineer"}
	skills := []SkillCategory{{Category: "Backend"}}
	u := PortfolioUpdate{Personal: &personal, Skills: &skills}

	fields := u.Fields()
	if len(fields) != 2 {
		t.Fatalf("len(fields) = %d, want 2", len(fields))
	}
	if _, ok := fields["personal"]; !ok {
		t.Error("personal missing from patch")
	}
	if _, ok := fields["skills"]; !ok {
		t.Error("skills missing from patch")
	}
	if _, ok := fields["projects"]; ok {
		t.Error("unset projects should not appear in patch")
	}
}

func TestPortfolioUpdate_DecodeOmitsAbsentFields(t *testing.T) {
	var u PortfolioUpdate
	if err := json.Unmarshal([]byte(`{"personal":{"name":"J","title":"E"}}`), &u); err != nil {
		t.Fatal(err)
	}
	if u.Personal == nil {
		t.Error("personal should be set")
	}
	if u.Projects != nil || u.Skills != nil {
		t.Error("absent sections should stay nil")
	}
}

func TestCodingProfileStats_SparseJSON(t *testing.T) {
	repos := 42
	s := CodingProfileStats{Repositories: &repos}
	out, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"repositories":42}` {
		t.Errorf("sparse stats = %s", out)
	}
}
