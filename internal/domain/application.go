package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusApplied  = "applied"
	ApplicationStatusReviewed = "reviewed"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// Application represents a job application. Unique per (job, applicant).
type Application struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	ApplicantID string    `json:"applicant_id"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	Resume      string    `json:"resume,omitempty"`
	Status      string    `json:"status"` // applied -> reviewed -> accepted / rejected
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined data for list responses
	JobTitle      string `json:"job_title,omitempty"`
	ApplicantName string `json:"applicant_name,omitempty"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByJobID(ctx context.Context, jobID int64) ([]Application, error)
	GetByApplicantID(ctx context.Context, applicantID string) ([]Application, error)
	Exists(ctx context.Context, jobID int64, applicantID string) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type ApplicationUsecase interface {
	// Candidate operations
	ApplyToJob(ctx context.Context, userID string, jobID int64, resume, coverLetter string) (*Application, error)
	GetMyApplications(ctx context.Context, userID string) ([]Application, error)

	// Employer operations
	ListByJobID(ctx context.Context, userID string, jobID int64) ([]Application, error)
	UpdateApplicationStatus(ctx context.Context, userID string, applicationID int64, status string) error
}
