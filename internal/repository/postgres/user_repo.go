package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

const userColumns = `
	id, email, name, password_hash, role,
	COALESCE(phone, ''), COALESCE(headline, ''), COALESCE(avatar_url, ''), COALESCE(avatar_id, ''),
	location,
	COALESCE(bio, ''), skills, experience, education,
	COALESCE(resume_url, ''), COALESCE(resume_id, ''), social_links,
	COALESCE(company_name, ''), COALESCE(company_description, ''), COALESCE(industry, ''),
	COALESCE(company_size, ''), COALESCE(website, ''), COALESCE(logo_url, ''), COALESCE(logo_id, ''),
	company_benefits, company_social_links,
	created_at, updated_at`

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.Name, user.PasswordHash, user.Role,
		user.CreatedAt, user.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("A user with this email already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *userRepo) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var (
		u                 domain.User
		skills            []string
		benefits          []string
		locationJSON      []byte
		experienceJSON    []byte
		educationJSON     []byte
		socialJSON        []byte
		companySocialJSON []byte
	)

	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role,
		&u.Phone, &u.Headline, &u.Avatar, &u.AvatarID,
		&locationJSON,
		&u.Bio, pq.Array(&skills), &experienceJSON, &educationJSON,
		&u.Resume, &u.ResumeID, &socialJSON,
		&u.Company, &u.CompanyDescription, &u.Industry,
		&u.CompanySize, &u.Website, &u.Logo, &u.LogoID,
		pq.Array(&benefits), &companySocialJSON,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	u.Skills = skills
	u.CompanyBenefits = benefits
	if err := unmarshalInto(locationJSON, &u.Location); err != nil {
		return nil, err
	}
	if err := unmarshalInto(experienceJSON, &u.Experience); err != nil {
		return nil, err
	}
	if err := unmarshalInto(educationJSON, &u.Education); err != nil {
		return nil, err
	}
	if err := unmarshalInto(socialJSON, &u.SocialLinks); err != nil {
		return nil, err
	}
	if err := unmarshalInto(companySocialJSON, &u.CompanySocialLinks); err != nil {
		return nil, err
	}
	return &u, nil
}

// Update persists the full record in one statement. Single-document
// atomicity is all we rely on: concurrent updates are last-write-wins.
func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users SET
			email = $2, name = $3, password_hash = $4, role = $5,
			phone = $6, headline = $7, avatar_url = $8, avatar_id = $9,
			location = $10,
			bio = $11, skills = $12, experience = $13, education = $14,
			resume_url = $15, resume_id = $16, social_links = $17,
			company_name = $18, company_description = $19, industry = $20,
			company_size = $21, website = $22, logo_url = $23, logo_id = $24,
			company_benefits = $25, company_social_links = $26,
			updated_at = $27
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.Name, user.PasswordHash, user.Role,
		user.Phone, user.Headline, user.Avatar, user.AvatarID,
		marshalOrNil(user.Location),
		user.Bio, pq.Array([]string(user.Skills)), marshalOrNil(user.Experience), marshalOrNil(user.Education),
		user.Resume, user.ResumeID, marshalOrNil(user.SocialLinks),
		user.Company, user.CompanyDescription, user.Industry,
		user.CompanySize, user.Website, user.Logo, user.LogoID,
		pq.Array([]string(user.CompanyBenefits)), marshalOrNil(user.CompanySocialLinks),
		user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("A user with this email already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

// unmarshalInto decodes a nullable jsonb column into target, leaving it
// untouched when the column is NULL.
func unmarshalInto(data []byte, target any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, target)
}

// marshalOrNil encodes a value to jsonb, writing SQL NULL for nil pointers
// and nil slices.
func marshalOrNil(v any) any {
	switch val := v.(type) {
	case *domain.Location:
		if val == nil {
			return nil
		}
	case *domain.SocialLinks:
		if val == nil {
			return nil
		}
	case *domain.CompanySocialLinks:
		if val == nil {
			return nil
		}
	case domain.ExperienceList:
		if val == nil {
			return nil
		}
	case domain.EducationList:
		if val == nil {
			return nil
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return data
}
