package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockProfileUC struct {
	mock.Mock
}

func (m *MockProfileUC) GetMyProfile(ctx context.Context, userID string) (*domain.ProfileWithCompleteness, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileWithCompleteness), args.Error(1)
}

func (m *MockProfileUC) UpdateCandidateProfile(ctx context.Context, userID string, patch *domain.CandidateProfilePatch) (*domain.ProfileWithCompleteness, error) {
	args := m.Called(ctx, userID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileWithCompleteness), args.Error(1)
}

func (m *MockProfileUC) UpdateEmployerProfile(ctx context.Context, userID string, patch *domain.EmployerProfilePatch) (*domain.ProfileWithCompleteness, error) {
	args := m.Called(ctx, userID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileWithCompleteness), args.Error(1)
}

func (m *MockProfileUC) GetPublicProfile(ctx context.Context, userID string) (*domain.PublicProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PublicProfile), args.Error(1)
}

// identityStub plays the part of the auth middleware.
func identityStub(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(domain.KeyUserID), userID)
		c.Set(string(domain.KeyUserRole), role)
		c.Next()
	}
}

func newProfileRouter(uc domain.ProfileUsecase, userID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	public := r.Group("/v1")
	protected := r.Group("/v1")
	protected.Use(identityStub(userID, role))
	v1.NewProfileHandler(public, protected, uc)
	return r
}

func TestUpdateMyProfileBinding(t *testing.T) {
	t.Run("Candidate body binds to the candidate patch and drops foreign fields", func(t *testing.T) {
		mockUC := new(MockProfileUC)
		mockUC.On("UpdateCandidateProfile", mock.Anything, "user1", mock.AnythingOfType("*domain.CandidateProfilePatch")).
			Return(&domain.ProfileWithCompleteness{User: &domain.User{ID: "user1"}}, nil).
			Run(func(args mock.Arguments) {
				patch := args.Get(2).(*domain.CandidateProfilePatch)
				assert.NotNil(t, patch.Bio)
				assert.Equal(t, "Backend engineer", *patch.Bio)
			})

		r := newProfileRouter(mockUC, "user1", domain.RoleCandidate)

		// company and company_description have no field to land on in the
		// candidate patch, so they vanish at bind time.
		body := `{"bio":"Backend engineer","company":"Evil Corp","company_description":"should be dropped"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/v1/users/me", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockUC.AssertExpectations(t)
	})

	t.Run("Employer body binds to the employer patch", func(t *testing.T) {
		mockUC := new(MockProfileUC)
		mockUC.On("UpdateEmployerProfile", mock.Anything, "emp1", mock.AnythingOfType("*domain.EmployerProfilePatch")).
			Return(&domain.ProfileWithCompleteness{User: &domain.User{ID: "emp1"}}, nil).
			Run(func(args mock.Arguments) {
				patch := args.Get(2).(*domain.EmployerProfilePatch)
				assert.NotNil(t, patch.Company)
				assert.Equal(t, "Acme Corp", *patch.Company)
			})

		r := newProfileRouter(mockUC, "emp1", domain.RoleEmployer)

		body := `{"company":"Acme Corp","bio":"employers have no bio"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/v1/users/me", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockUC.AssertExpectations(t)
	})

	t.Run("Non-array skills coerce instead of failing the request", func(t *testing.T) {
		mockUC := new(MockProfileUC)
		mockUC.On("UpdateCandidateProfile", mock.Anything, "user1", mock.Anything).
			Return(&domain.ProfileWithCompleteness{User: &domain.User{ID: "user1"}}, nil).
			Run(func(args mock.Arguments) {
				patch := args.Get(2).(*domain.CandidateProfilePatch)
				assert.NotNil(t, patch.Skills)
				assert.Empty(t, *patch.Skills)
			})

		r := newProfileRouter(mockUC, "user1", domain.RoleCandidate)

		body := `{"skills":""}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/v1/users/me", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockUC.AssertExpectations(t)
	})
}
