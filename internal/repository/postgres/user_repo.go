package postgres

import (
	"context"
	"errors"
	"go-onboarding-backend/internal/domain"
	"go-onboarding-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, email, name, password_hash, role, program_type, start_date, onboarding_progress, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.Name, user.PasswordHash, user.Role,
		user.ProgramType, user.StartDate, user.OnboardingProgress,
		user.CreatedAt, user.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("User with this email already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, email, name, password_hash, role, program_type, start_date, onboarding_progress, created_at, updated_at
	          FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, name, password_hash, role, program_type, start_date, onboarding_progress, created_at, updated_at
	          FROM users WHERE email = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *userRepo) scanOne(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.Role,
		&user.ProgramType, &user.StartDate, &user.OnboardingProgress,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, email, name, password_hash, role, program_type, start_date, onboarding_progress, created_at, updated_at
	          FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.Role,
			&user.ProgramType, &user.StartDate, &user.OnboardingProgress,
			&user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET email = $2, name = $3, role = $4, program_type = $5, start_date = $6, updated_at = $7
	          WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.Name, user.Role, user.ProgramType, user.StartDate, user.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
