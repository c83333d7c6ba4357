package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type Job struct {
	ID             int64      `json:"id"`
	EmployerID     string     `json:"employer_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Location       string     `json:"location"`
	SalaryMin      float64    `json:"salary_min"`
	SalaryMax      float64    `json:"salary_max"`
	EmploymentType string     `json:"employment_type"`
	Skills         StringList `json:"skills"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// JobWithCompany extends Job with the posting employer's company fields for
// public listings.
type JobWithCompany struct {
	Job
	CompanyName string `json:"company_name"`
	CompanyLogo string `json:"company_logo,omitempty"`
	Industry    string `json:"industry,omitempty"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetByIDWithCompany(ctx context.Context, id int64) (*JobWithCompany, error)
	Fetch(ctx context.Context, limit, offset int) ([]JobWithCompany, int64, error)
	FetchByEmployerID(ctx context.Context, employerID string, limit, offset int) ([]Job, int64, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID string, job *Job) error
	GetJobDetails(ctx context.Context, id int64) (*JobWithCompany, error)
	ListJobs(ctx context.Context, page, pageSize int) ([]JobWithCompany, int64, error)
	ListMyJobs(ctx context.Context, userID string, page, pageSize int) ([]Job, int64, error)
	UpdateJob(ctx context.Context, userID string, job *Job) error
	DeleteJob(ctx context.Context, userID string, id int64) error
}
