package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithCompany), args.Error(1)
}

func (m *MockJobRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.JobWithCompany), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) FetchByEmployerID(ctx context.Context, employerID string, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, employerID, limit, offset)
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func employerCtx() context.Context {
	return context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleEmployer)
}

func candidateCtx() context.Context {
	return context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleCandidate)
}

func TestCreateJob(t *testing.T) {
	t.Run("Should stamp employer id from the caller", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil).Run(func(args mock.Arguments) {
			j := args.Get(1).(*domain.Job)
			assert.Equal(t, "emp1", j.EmployerID)
		})

		job := &domain.Job{Title: "Go Developer", EmployerID: "spoofed"}
		err := uc.CreateJob(employerCtx(), "emp1", job)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject candidates", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		err := uc.CreateJob(candidateCtx(), "user1", &domain.Job{Title: "Go Developer"})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should fail safe without a role in context", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		err := uc.CreateJob(context.Background(), "user1", &domain.Job{Title: "Go Developer"})
		assert.Error(t, err)
	})

	t.Run("Should reject inverted salary range", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		job := &domain.Job{Title: "Go Developer", SalaryMin: 90000, SalaryMax: 50000}
		err := uc.CreateJob(employerCtx(), "emp1", job)
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("Should allow open-ended salary", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		job := &domain.Job{Title: "Go Developer", SalaryMin: 90000, SalaryMax: 0}
		err := uc.CreateJob(employerCtx(), "emp1", job)
		assert.NoError(t, err)
	})
}

func TestUpdateJob(t *testing.T) {
	existing := func() *domain.Job {
		return &domain.Job{ID: 7, EmployerID: "emp1", Title: "Go Developer"}
	}

	t.Run("Should reject edits by another employer", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(existing(), nil)

		err := uc.UpdateJob(employerCtx(), "emp2", &domain.Job{ID: 7, Title: "Hijacked"})
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 403, appErr.Code)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Should keep the original employer id", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(existing(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil).Run(func(args mock.Arguments) {
			j := args.Get(1).(*domain.Job)
			assert.Equal(t, "emp1", j.EmployerID)
		})

		err := uc.UpdateJob(employerCtx(), "emp1", &domain.Job{ID: 7, Title: "Senior Go Developer"})
		assert.NoError(t, err)
	})

	t.Run("Should 404 for a missing job", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		mockRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

		err := uc.UpdateJob(employerCtx(), "emp1", &domain.Job{ID: 99, Title: "Ghost"})
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestDeleteJob(t *testing.T) {
	t.Run("Should only delete own postings", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Job{ID: 7, EmployerID: "emp1"}, nil)

		err := uc.DeleteJob(employerCtx(), "emp2", 7)
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Delete")
	})
}

func TestListJobs(t *testing.T) {
	t.Run("Should normalize pagination", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		mockRepo.On("Fetch", mock.Anything, 10, 0).Return([]domain.JobWithCompany{}, int64(0), nil)

		_, _, err := uc.ListJobs(context.Background(), 0, -5)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
