package usecase

import (
	"context"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	userRepo domain.UserRepository
	validate *validator.Validate
}

func NewProfileUsecase(userRepo domain.UserRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		userRepo: userRepo,
		validate: validate,
	}
}

func (u *profileUsecase) GetMyProfile(ctx context.Context, userID string) (*domain.ProfileWithCompleteness, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.ProfileWithCompleteness{
		User:         user,
		Completeness: domain.ComputeCompleteness(user),
	}, nil
}

// UpdateCandidateProfile applies a candidate patch to the caller's record.
// The patch type carries only fields candidates may write, so anything else
// in the raw request body was already dropped at bind time.
func (u *profileUsecase) UpdateCandidateProfile(ctx context.Context, userID string, patch *domain.CandidateProfilePatch) (*domain.ProfileWithCompleteness, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleCandidate {
		return nil, apperror.Forbidden("Only candidates can update a candidate profile")
	}

	if err := u.validatePatch(patch); err != nil {
		return nil, err
	}

	applyCommonPatch(user, &patch.ProfilePatch)
	if patch.Bio != nil {
		user.Bio = *patch.Bio
	}
	if patch.Skills != nil {
		user.Skills = *patch.Skills
	}
	if patch.Experience != nil {
		user.Experience = *patch.Experience
	}
	if patch.Education != nil {
		user.Education = *patch.Education
	}
	if patch.Resume != nil {
		user.Resume = *patch.Resume
	}
	if patch.SocialLinks != nil {
		user.SocialLinks = patch.SocialLinks
	}

	return u.save(ctx, user)
}

// UpdateEmployerProfile is the employer counterpart of UpdateCandidateProfile.
func (u *profileUsecase) UpdateEmployerProfile(ctx context.Context, userID string, patch *domain.EmployerProfilePatch) (*domain.ProfileWithCompleteness, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleEmployer {
		return nil, apperror.Forbidden("Only employers can update an employer profile")
	}

	if err := u.validatePatch(patch); err != nil {
		return nil, err
	}

	applyCommonPatch(user, &patch.ProfilePatch)
	if patch.Company != nil {
		user.Company = *patch.Company
	}
	if patch.CompanyDescription != nil {
		user.CompanyDescription = *patch.CompanyDescription
	}
	if patch.Industry != nil {
		user.Industry = *patch.Industry
	}
	if patch.CompanySize != nil {
		user.CompanySize = *patch.CompanySize
	}
	if patch.Website != nil {
		user.Website = *patch.Website
	}
	if patch.Logo != nil {
		user.Logo = *patch.Logo
	}
	if patch.CompanyBenefits != nil {
		user.CompanyBenefits = *patch.CompanyBenefits
	}
	if patch.CompanySocialLinks != nil {
		user.CompanySocialLinks = patch.CompanySocialLinks
	}

	return u.save(ctx, user)
}

// GetPublicProfile strips the password and storage provider ids always, and
// candidate contact info (email, phone) additionally. Employer contact info
// stays visible: employers are recruiting entities.
func (u *profileUsecase) GetPublicProfile(ctx context.Context, userID string) (*domain.PublicProfile, error) {
	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &domain.PublicProfile{
		ID:           user.ID,
		Name:         user.Name,
		Role:         user.Role,
		Headline:     user.Headline,
		Avatar:       user.Avatar,
		Location:     user.Location,
		Completeness: domain.ComputeCompleteness(user),
	}

	switch user.Role {
	case domain.RoleCandidate:
		profile.Bio = user.Bio
		profile.Skills = user.Skills
		profile.Experience = user.Experience
		profile.Education = user.Education
		profile.Resume = user.Resume
		profile.SocialLinks = user.SocialLinks
	case domain.RoleEmployer:
		profile.Email = user.Email
		profile.Phone = user.Phone
		profile.Company = user.Company
		profile.CompanyDescription = user.CompanyDescription
		profile.Industry = user.Industry
		profile.CompanySize = user.CompanySize
		profile.Website = user.Website
		profile.Logo = user.Logo
		profile.CompanyBenefits = user.CompanyBenefits
		profile.CompanySocialLinks = user.CompanySocialLinks
	}

	return profile, nil
}

func (u *profileUsecase) loadUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (u *profileUsecase) validatePatch(patch interface{}) error {
	if err := u.validate.Struct(patch); err != nil {
		messages := validation.FormatValidationErrors(err)
		return apperror.BadRequest(strings.Join(messages, "; "))
	}
	return nil
}

func (u *profileUsecase) save(ctx context.Context, user *domain.User) (*domain.ProfileWithCompleteness, error) {
	user.UpdatedAt = time.Now()
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return &domain.ProfileWithCompleteness{
		User:         user,
		Completeness: domain.ComputeCompleteness(user),
	}, nil
}

func applyCommonPatch(user *domain.User, patch *domain.ProfilePatch) {
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Headline != nil {
		user.Headline = *patch.Headline
	}
	if patch.Avatar != nil {
		user.Avatar = *patch.Avatar
	}
	if patch.Location != nil {
		user.Location = patch.Location
	}
}
