package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
	}
}

// ApplyToJob lets a candidate apply to an existing job. An application is
// unique per (job, applicant); a second attempt is a conflict.
func (uc *applicationUsecase) ApplyToJob(ctx context.Context, userID string, jobID int64, resume, coverLetter string) (*domain.Application, error) {
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	if role != domain.RoleCandidate {
		return nil, apperror.Forbidden("Only candidates can apply to jobs")
	}

	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NotFound("Job not found")
	}

	exists, err := uc.applicationRepo.Exists(ctx, jobID, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job")
	}

	app := &domain.Application{
		JobID:       jobID,
		ApplicantID: userID,
		Resume:      resume,
		CoverLetter: coverLetter,
		Status:      domain.ApplicationStatusApplied,
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}

// GetMyApplications returns all applications submitted by the current user
func (uc *applicationUsecase) GetMyApplications(ctx context.Context, userID string) ([]domain.Application, error) {
	return uc.applicationRepo.GetByApplicantID(ctx, userID)
}

// ListByJobID returns all applications for a job (employer only, validated by ownership)
func (uc *applicationUsecase) ListByJobID(ctx context.Context, userID string, jobID int64) ([]domain.Application, error) {
	if err := uc.validateJobOwnership(ctx, userID, jobID); err != nil {
		return nil, err
	}
	return uc.applicationRepo.GetByJobID(ctx, jobID)
}

// UpdateApplicationStatus moves an application through its status flow
func (uc *applicationUsecase) UpdateApplicationStatus(ctx context.Context, userID string, applicationID int64, status string) error {
	switch status {
	case domain.ApplicationStatusApplied, domain.ApplicationStatusReviewed,
		domain.ApplicationStatusAccepted, domain.ApplicationStatusRejected:
	default:
		return apperror.BadRequest("Invalid application status")
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if app == nil {
		return apperror.NotFound("Application not found")
	}

	if err := uc.validateJobOwnership(ctx, userID, app.JobID); err != nil {
		return err
	}

	return uc.applicationRepo.UpdateStatus(ctx, applicationID, status)
}

func (uc *applicationUsecase) validateJobOwnership(ctx context.Context, userID string, jobID int64) error {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job == nil {
		return apperror.NotFound("Job not found")
	}
	if job.EmployerID != userID {
		return apperror.Forbidden("You do not own this job posting")
	}
	return nil
}
