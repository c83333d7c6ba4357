package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (employer_id, title, description, location, salary_min, salary_max, employment_type, skills, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	return r.db.QueryRow(ctx, query,
		job.EmployerID, job.Title, job.Description, job.Location,
		job.SalaryMin, job.SalaryMax, job.EmploymentType,
		pq.Array([]string(job.Skills)), job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `
		SELECT id, employer_id, title, description, COALESCE(location, ''),
		       salary_min, salary_max, COALESCE(employment_type, ''), skills, created_at, updated_at
		FROM jobs WHERE id = $1`

	var j domain.Job
	var skills []string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.Location,
		&j.SalaryMin, &j.SalaryMax, &j.EmploymentType, pq.Array(&skills),
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	j.Skills = skills
	return &j, nil
}

func (r *jobRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	query := `
		SELECT j.id, j.employer_id, j.title, j.description, COALESCE(j.location, ''),
		       j.salary_min, j.salary_max, COALESCE(j.employment_type, ''), j.skills,
		       j.created_at, j.updated_at,
		       COALESCE(u.company_name, u.name), COALESCE(u.logo_url, ''), COALESCE(u.industry, '')
		FROM jobs j
		JOIN users u ON u.id = j.employer_id
		WHERE j.id = $1`

	var j domain.JobWithCompany
	var skills []string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.Location,
		&j.SalaryMin, &j.SalaryMax, &j.EmploymentType, pq.Array(&skills),
		&j.CreatedAt, &j.UpdatedAt,
		&j.CompanyName, &j.CompanyLogo, &j.Industry,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	j.Skills = skills
	return &j, nil
}

func (r *jobRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT j.id, j.employer_id, j.title, j.description, COALESCE(j.location, ''),
		       j.salary_min, j.salary_max, COALESCE(j.employment_type, ''), j.skills,
		       j.created_at, j.updated_at,
		       COALESCE(u.company_name, u.name), COALESCE(u.logo_url, ''), COALESCE(u.industry, '')
		FROM jobs j
		JOIN users u ON u.id = j.employer_id
		ORDER BY j.created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs := []domain.JobWithCompany{}
	for rows.Next() {
		var j domain.JobWithCompany
		var skills []string
		if err := rows.Scan(
			&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.Location,
			&j.SalaryMin, &j.SalaryMax, &j.EmploymentType, pq.Array(&skills),
			&j.CreatedAt, &j.UpdatedAt,
			&j.CompanyName, &j.CompanyLogo, &j.Industry,
		); err != nil {
			return nil, 0, err
		}
		j.Skills = skills
		jobs = append(jobs, j)
	}
	return jobs, total, rows.Err()
}

func (r *jobRepo) FetchByEmployerID(ctx context.Context, employerID string, limit, offset int) ([]domain.Job, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE employer_id = $1`, employerID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, employer_id, title, description, COALESCE(location, ''),
		       salary_min, salary_max, COALESCE(employment_type, ''), skills, created_at, updated_at
		FROM jobs
		WHERE employer_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, employerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		var j domain.Job
		var skills []string
		if err := rows.Scan(
			&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.Location,
			&j.SalaryMin, &j.SalaryMax, &j.EmploymentType, pq.Array(&skills),
			&j.CreatedAt, &j.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		j.Skills = skills
		jobs = append(jobs, j)
	}
	return jobs, total, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `
		UPDATE jobs SET
			title = $2, description = $3, location = $4,
			salary_min = $5, salary_max = $6, employment_type = $7, skills = $8,
			updated_at = $9
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Location,
		job.SalaryMin, job.SalaryMax, job.EmploymentType,
		pq.Array([]string(job.Skills)), job.UpdatedAt,
	)
	return err
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	return err
}
