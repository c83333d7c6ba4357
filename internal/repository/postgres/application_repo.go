package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (job_id, applicant_id, resume_url, cover_letter, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		app.JobID, app.ApplicantID, app.Resume, app.CoverLetter, app.Status,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		// The (job_id, applicant_id) unique index is the backstop for the
		// usecase-level existence check.
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("You have already applied to this job")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `
		SELECT id, job_id, applicant_id, COALESCE(resume_url, ''), COALESCE(cover_letter, ''),
		       status, created_at, updated_at
		FROM applications WHERE id = $1`

	var a domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.JobID, &a.ApplicantID, &a.Resume, &a.CoverLetter,
		&a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.applicant_id, COALESCE(a.resume_url, ''), COALESCE(a.cover_letter, ''),
		       a.status, a.created_at, a.updated_at, u.name
		FROM applications a
		JOIN users u ON u.id = a.applicant_id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []domain.Application{}
	for rows.Next() {
		var a domain.Application
		if err := rows.Scan(
			&a.ID, &a.JobID, &a.ApplicantID, &a.Resume, &a.CoverLetter,
			&a.Status, &a.CreatedAt, &a.UpdatedAt, &a.ApplicantName,
		); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) GetByApplicantID(ctx context.Context, applicantID string) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.applicant_id, COALESCE(a.resume_url, ''), COALESCE(a.cover_letter, ''),
		       a.status, a.created_at, a.updated_at, j.title
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.applicant_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []domain.Application{}
	for rows.Next() {
		var a domain.Application
		if err := rows.Scan(
			&a.ID, &a.JobID, &a.ApplicantID, &a.Resume, &a.CoverLetter,
			&a.Status, &a.CreatedAt, &a.UpdatedAt, &a.JobTitle,
		); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) Exists(ctx context.Context, jobID int64, applicantID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`,
		jobID, applicantID,
	).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	return err
}
