package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func strptr(s string) *string { return &s }

func candidateUser() *domain.User {
	return &domain.User{
		ID:    "user1",
		Email: "jane@example.com",
		Phone: "+15550001111",
		Name:  "Jane Doe",
		Role:  domain.RoleCandidate,
	}
}

func employerUser() *domain.User {
	return &domain.User{
		ID:      "emp1",
		Email:   "hr@acme.example.com",
		Phone:   "+15550002222",
		Name:    "Acme HR",
		Role:    domain.RoleEmployer,
		Company: "Acme Corp",
	}
}

func TestUpdateCandidateProfile(t *testing.T) {
	t.Run("Should apply patch fields and persist", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidator())

		mockRepo.On("GetByID", mock.Anything, "user1").Return(candidateUser(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, "Backend engineer with 5 years of Go", u.Bio)
			assert.Equal(t, domain.StringList{"Go", "PostgreSQL"}, u.Skills)
			assert.Equal(t, "Jane Doe", u.Name) // untouched fields stay
		})

		skills := domain.StringList{"Go", "PostgreSQL"}
		patch := &domain.CandidateProfilePatch{
			Bio:    strptr("Backend engineer with 5 years of Go"),
			Skills: &skills,
		}

		profile, err := uc.UpdateCandidateProfile(context.Background(), "user1", patch)
		assert.NoError(t, err)
		assert.NotNil(t, profile)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should return updated completeness", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidator())

		mockRepo.On("GetByID", mock.Anything, "user1").Return(candidateUser(), nil)
		mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		patch := &domain.CandidateProfilePatch{Bio: strptr("Short bio")}

		profile, err := uc.UpdateCandidateProfile(context.Background(), "user1", patch)
		assert.NoError(t, err)
		// Name + Bio filled: 2 of 9 checks.
		assert.Equal(t, 22, profile.Completeness.Score)
		assert.NotContains(t, profile.Completeness.Missing, "Bio")
	})

	t.Run("Should reject employer caller", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidator())

		mockRepo.On("GetByID", mock.Anything, "emp1").Return(employerUser(), nil)

		_, err := uc.UpdateCandidateProfile(context.Background(), "emp1", &domain.CandidateProfilePatch{})
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 403, appErr.Code)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Should reject more than 30 skills", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidator())

		mockRepo.On("GetByID", mock.Anything, "user1").Return(candidateUser(), nil)

		skills := make(domain.StringList, 31)
		for i := range skills {
			skills[i] = "skill"
		}
		patch := &domain.CandidateProfilePatch{Skills: &skills}

		_, err := uc.UpdateCandidateProfile(context.Background(), "user1", patch)
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 400, appErr.Code)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Should collapse duplicate validation messages", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidator())

		mockRepo.On("GetByID", mock.Anything, "user1").Return(candidateUser(), nil)

		// Two experience entries missing the same required fields produce
		// identical messages; the response must carry each once.
		experience := domain.ExperienceList{{}, {}}
		patch := &domain.CandidateProfilePatch{Experience: &experience}

		_, err := uc.UpdateCandidateProfile(context.Background(), "user1", patch)
		assert.Error(t, err)
		assert.Equal(t, 1, strings.Count(err.Error(), "Job Title is required"))
	})

	t.Run("Should return not found for missing user", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidator())

		mockRepo.On("GetByID", mock.Anything, "ghost").Return(nil, nil)

		_, err := uc.UpdateCandidateProfile(context.Background(), "ghost", &domain.CandidateProfilePatch{})
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestUpdateEmployerProfile(t *testing.T) {
	t.Run("Should apply employer fields", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidator())

		mockRepo.On("GetByID", mock.Anything, "emp1").Return(employerUser(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, "We build rockets", u.CompanyDescription)
			assert.Equal(t, "Aerospace", u.Industry)
		})

		patch := &domain.EmployerProfilePatch{
			CompanyDescription: strptr("We build rockets"),
			Industry:           strptr("Aerospace"),
		}

		_, err := uc.UpdateEmployerProfile(context.Background(), "emp1", patch)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject candidate caller", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidator())

		mockRepo.On("GetByID", mock.Anything, "user1").Return(candidateUser(), nil)

		_, err := uc.UpdateEmployerProfile(context.Background(), "user1", &domain.EmployerProfilePatch{})
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 403, appErr.Code)
	})
}

func TestGetPublicProfile(t *testing.T) {
	t.Run("Candidate profile hides contact info", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidator())

		user := candidateUser()
		user.Bio = "Backend engineer"
		user.Skills = domain.StringList{"Go"}
		mockRepo.On("GetByID", mock.Anything, "user1").Return(user, nil)

		profile, err := uc.GetPublicProfile(context.Background(), "user1")
		assert.NoError(t, err)
		assert.Empty(t, profile.Email)
		assert.Empty(t, profile.Phone)
		assert.Equal(t, "Backend engineer", profile.Bio)
		assert.Equal(t, domain.StringList{"Go"}, profile.Skills)
	})

	t.Run("Employer profile keeps contact info", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidator())

		mockRepo.On("GetByID", mock.Anything, "emp1").Return(employerUser(), nil)

		profile, err := uc.GetPublicProfile(context.Background(), "emp1")
		assert.NoError(t, err)
		assert.Equal(t, "hr@acme.example.com", profile.Email)
		assert.Equal(t, "+15550002222", profile.Phone)
		assert.Equal(t, "Acme Corp", profile.Company)
	})

	t.Run("Unknown user returns not found", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewProfileUsecase(mockRepo, newValidator())

		mockRepo.On("GetByID", mock.Anything, "ghost").Return(nil, nil)

		_, err := uc.GetPublicProfile(context.Background(), "ghost")
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Code)
	})
}
