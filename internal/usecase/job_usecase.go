package usecase

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) CreateJob(ctx context.Context, userID string, job *domain.Job) error {
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	if role != domain.RoleEmployer {
		return apperror.Forbidden("Only employers can post jobs")
	}

	if err := validateJob(job); err != nil {
		return err
	}

	job.EmployerID = userID
	job.CreatedAt = time.Now()
	job.UpdatedAt = time.Now()

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	job, err := u.jobRepo.GetByIDWithCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, page, pageSize int) ([]domain.JobWithCompany, int64, error) {
	limit, offset := paginate(page, pageSize)
	return u.jobRepo.Fetch(ctx, limit, offset)
}

func (u *jobUsecase) ListMyJobs(ctx context.Context, userID string, page, pageSize int) ([]domain.Job, int64, error) {
	limit, offset := paginate(page, pageSize)
	return u.jobRepo.FetchByEmployerID(ctx, userID, limit, offset)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, userID string, job *domain.Job) error {
	existing, err := u.jobRepo.GetByID(ctx, job.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("Job not found")
	}
	if existing.EmployerID != userID {
		return apperror.Forbidden("You can only edit your own job postings")
	}

	if err := validateJob(job); err != nil {
		return err
	}

	job.EmployerID = existing.EmployerID
	job.UpdatedAt = time.Now()

	return u.jobRepo.Update(ctx, job)
}

func (u *jobUsecase) DeleteJob(ctx context.Context, userID string, id int64) error {
	existing, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("Job not found")
	}
	if existing.EmployerID != userID {
		return apperror.Forbidden("You can only delete your own job postings")
	}

	return u.jobRepo.Delete(ctx, id)
}

func validateJob(job *domain.Job) error {
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.SalaryMin > job.SalaryMax && job.SalaryMax != 0 {
		return apperror.BadRequest("SalaryMin cannot be greater than SalaryMax")
	}
	return nil
}

func paginate(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return pageSize, (page - 1) * pageSize
}
