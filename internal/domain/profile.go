package domain

import (
	"context"
	"math"
)

// Completeness summarizes how much of the profile checklist is filled.
// It is derived on every read, never stored.
type Completeness struct {
	Score   int      `json:"score"`
	Missing []string `json:"missing"`
}

// profileCheck is one entry of the completeness checklist.
type profileCheck struct {
	Label  string
	Filled func(u *User) bool
}

// The checklist is role-agnostic on purpose: employers are scored against the
// same checks as candidates. Order here is the order of the Missing list.
var profileChecklist = []profileCheck{
	{"Full Name", func(u *User) bool { return u.Name != "" }},
	{"Bio", func(u *User) bool { return u.Bio != "" }},
	{"Headline", func(u *User) bool { return u.Headline != "" }},
	{"Profile Photo", func(u *User) bool { return u.Avatar != "" }},
	{"Resume", func(u *User) bool { return u.Resume != "" }},
	{"Skills", func(u *User) bool { return len(u.Skills) > 0 }},
	{"Experience", func(u *User) bool { return len(u.Experience) > 0 }},
	{"Education", func(u *User) bool { return len(u.Education) > 0 }},
	{"LinkedIn Profile", func(u *User) bool { return u.SocialLinks != nil && u.SocialLinks.LinkedIn != "" }},
}

// ComputeCompleteness scores a user snapshot against the fixed checklist.
// Pure function: no I/O, same snapshot always yields the same result.
func ComputeCompleteness(u *User) Completeness {
	filled := 0
	missing := make([]string, 0, len(profileChecklist))
	for _, check := range profileChecklist {
		if check.Filled(u) {
			filled++
		} else {
			missing = append(missing, check.Label)
		}
	}
	score := int(math.Round(float64(filled) / float64(len(profileChecklist)) * 100))
	return Completeness{Score: score, Missing: missing}
}

// ProfilePatch carries the fields every role may update. All fields are
// optional; nil means "leave unchanged".
type ProfilePatch struct {
	Name     *string   `json:"name" validate:"omitempty,min=2,max=50,valid_name"`
	Phone    *string   `json:"phone" validate:"omitempty,valid_phone"`
	Headline *string   `json:"headline" validate:"omitempty,max=120"`
	Avatar   *string   `json:"avatar"`
	Location *Location `json:"location"`
}

// CandidateProfilePatch is the full set of fields a candidate may write.
// Employer-only fields have no place to land here, so an "unauthorized
// field" in the request body is dropped by construction.
type CandidateProfilePatch struct {
	ProfilePatch
	Bio         *string         `json:"bio" validate:"omitempty,max=1000"`
	Skills      *StringList     `json:"skills" validate:"omitempty,max=30,dive,min=1,max=50"`
	Experience  *ExperienceList `json:"experience" validate:"omitempty,max=20,dive"`
	Education   *EducationList  `json:"education" validate:"omitempty,max=20,dive"`
	Resume      *string         `json:"resume"`
	SocialLinks *SocialLinks    `json:"social_links"`
}

// EmployerProfilePatch is the full set of fields an employer may write.
type EmployerProfilePatch struct {
	ProfilePatch
	Company            *string             `json:"company" validate:"omitempty,max=100"`
	CompanyDescription *string             `json:"company_description" validate:"omitempty,max=2000"`
	Industry           *string             `json:"industry" validate:"omitempty,max=100"`
	CompanySize        *string             `json:"company_size" validate:"omitempty,max=50"`
	Website            *string             `json:"website" validate:"omitempty,max=200"`
	Logo               *string             `json:"logo"`
	CompanyBenefits    *StringList         `json:"company_benefits" validate:"omitempty,max=30,dive,min=1,max=100"`
	CompanySocialLinks *CompanySocialLinks `json:"company_social_links"`
}

// ProfileWithCompleteness pairs a persisted user with its derived score.
type ProfileWithCompleteness struct {
	User         *User        `json:"user"`
	Completeness Completeness `json:"completeness"`
}

type ProfileUsecase interface {
	GetMyProfile(ctx context.Context, userID string) (*ProfileWithCompleteness, error)
	UpdateCandidateProfile(ctx context.Context, userID string, patch *CandidateProfilePatch) (*ProfileWithCompleteness, error)
	UpdateEmployerProfile(ctx context.Context, userID string, patch *EmployerProfilePatch) (*ProfileWithCompleteness, error)
	GetPublicProfile(ctx context.Context, userID string) (*PublicProfile, error)
}
