package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"time"
)

// User roles. Role is fixed at signup; no route mutates it afterwards.
const (
	RoleCandidate = "candidate"
	RoleEmployer  = "employer"
)

// StringList is a []string that tolerates sloppy clients: if the submitted
// JSON value is not an array (e.g. an empty string), it decodes to an empty
// list instead of failing the whole request.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		*s = StringList{}
		return nil
	}
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = raw
	return nil
}

type Location struct {
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// SocialLinks are the candidate-facing profile links.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

// CompanySocialLinks are the employer-facing company links.
type CompanySocialLinks struct {
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Facebook string `json:"facebook,omitempty"`
}

type ExperienceEntry struct {
	Title       string `json:"title" validate:"required,max=100"`
	Company     string `json:"company" validate:"required,max=100"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty" validate:"max=1000"`
}

type EducationEntry struct {
	Degree      string `json:"degree" validate:"required,max=100"`
	Institution string `json:"institution" validate:"required,max=100"`
	StartYear   int    `json:"start_year,omitempty"`
	EndYear     int    `json:"end_year,omitempty"`
	Description string `json:"description,omitempty" validate:"max=1000"`
}

// ExperienceList / EducationList share StringList's coercion rule for
// non-array payloads.
type ExperienceList []ExperienceEntry

func (l *ExperienceList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		*l = ExperienceList{}
		return nil
	}
	var raw []ExperienceEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = raw
	return nil
}

type EducationList []EducationEntry

func (l *EducationList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		*l = EducationList{}
		return nil
	}
	var raw []EducationEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = raw
	return nil
}

// User is the single polymorphic account record, discriminated by Role.
// Candidate-only and employer-only fields coexist on the struct; the profile
// usecase guarantees only the fields of the user's own role are ever written.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`

	// Shared optional fields
	Phone    string    `json:"phone,omitempty"`
	Headline string    `json:"headline,omitempty"`
	Avatar   string    `json:"avatar,omitempty"`
	AvatarID string    `json:"-"` // storage provider id, never serialized
	Location *Location `json:"location,omitempty"`

	// Candidate fields
	Bio         string         `json:"bio,omitempty"`
	Skills      StringList     `json:"skills,omitempty"`
	Experience  ExperienceList `json:"experience,omitempty"`
	Education   EducationList  `json:"education,omitempty"`
	Resume      string         `json:"resume,omitempty"`
	ResumeID    string         `json:"-"`
	SocialLinks *SocialLinks   `json:"social_links,omitempty"`

	// Employer fields
	Company            string              `json:"company,omitempty"`
	CompanyDescription string              `json:"company_description,omitempty"`
	Industry           string              `json:"industry,omitempty"`
	CompanySize        string              `json:"company_size,omitempty"`
	Website            string              `json:"website,omitempty"`
	Logo               string              `json:"logo,omitempty"`
	LogoID             string              `json:"-"`
	CompanyBenefits    StringList          `json:"company_benefits,omitempty"`
	CompanySocialLinks *CompanySocialLinks `json:"company_social_links,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicProfile is the role-filtered public view of a user. Password and
// storage provider ids are never present. Candidate contact info (email,
// phone) is stripped; employer contact info is intentionally exposed since
// employers are recruiting entities.
type PublicProfile struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	Headline string    `json:"headline,omitempty"`
	Avatar   string    `json:"avatar,omitempty"`
	Location *Location `json:"location,omitempty"`

	// Candidate fields
	Bio         string         `json:"bio,omitempty"`
	Skills      StringList     `json:"skills,omitempty"`
	Experience  ExperienceList `json:"experience,omitempty"`
	Education   EducationList  `json:"education,omitempty"`
	Resume      string         `json:"resume,omitempty"`
	SocialLinks *SocialLinks   `json:"social_links,omitempty"`

	// Employer fields
	Company            string              `json:"company,omitempty"`
	CompanyDescription string              `json:"company_description,omitempty"`
	Industry           string              `json:"industry,omitempty"`
	CompanySize        string              `json:"company_size,omitempty"`
	Website            string              `json:"website,omitempty"`
	Logo               string              `json:"logo,omitempty"`
	CompanyBenefits    StringList          `json:"company_benefits,omitempty"`
	CompanySocialLinks *CompanySocialLinks `json:"company_social_links,omitempty"`

	Completeness Completeness `json:"completeness"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
}
