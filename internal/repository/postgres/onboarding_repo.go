package postgres

import (
	"context"
	"errors"
	"fmt"
	"go-onboarding-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type onboardingRepo struct {
	db *pgxpool.Pool
}

func NewOnboardingRepository(db *pgxpool.Pool) domain.OnboardingRepository {
	return &onboardingRepo{db: db}
}

func (r *onboardingRepo) GetByUserID(ctx context.Context, userID string) (*domain.OnboardingProgress, error) {
	query := `SELECT user_id, stage, progress, stage_start_date, estimated_completion_date, created_at, updated_at
	          FROM onboarding_progress WHERE user_id = $1`

	var p domain.OnboardingProgress
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.Stage, &p.Progress, &p.StageStartDate, &p.EstimatedCompletionDate,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get onboarding progress: %w", err)
	}
	return &p, nil
}

func (r *onboardingRepo) GetWithUser(ctx context.Context, userID string) (*domain.OnboardingProgress, error) {
	query := `SELECT op.user_id, op.stage, op.progress, op.stage_start_date, op.estimated_completion_date,
	                 op.created_at, op.updated_at,
	                 u.id, u.name, u.email, u.program_type, u.start_date
	          FROM onboarding_progress op
	          JOIN users u ON op.user_id = u.id
	          WHERE op.user_id = $1`

	var p domain.OnboardingProgress
	var u domain.UserSummary
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.Stage, &p.Progress, &p.StageStartDate, &p.EstimatedCompletionDate,
		&p.CreatedAt, &p.UpdatedAt,
		&u.ID, &u.Name, &u.Email, &u.ProgramType, &u.StartDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get onboarding progress with user: %w", err)
	}
	p.User = &u
	return &p, nil
}

func (r *onboardingRepo) Update(ctx context.Context, progress *domain.OnboardingProgress, mirrorUserProgress bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE onboarding_progress
		SET stage = $2, progress = $3, stage_start_date = $4, estimated_completion_date = $5, updated_at = $6
		WHERE user_id = $1
	`, progress.UserID, string(progress.Stage), progress.Progress,
		progress.StageStartDate, progress.EstimatedCompletionDate, progress.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update onboarding progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	// The denormalized users.onboarding_progress column is a read projection
	// of progress.progress; keep both writes in one transaction.
	if mirrorUserProgress {
		_, err = tx.Exec(ctx, `
			UPDATE users SET onboarding_progress = $2, updated_at = $3 WHERE id = $1
		`, progress.UserID, progress.Progress, progress.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to mirror progress onto user: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *onboardingRepo) CreateWithTasks(ctx context.Context, progress *domain.OnboardingProgress, createProgress bool, tasks []domain.Task) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if createProgress {
		_, err = tx.Exec(ctx, `
			INSERT INTO onboarding_progress (user_id, stage, progress, stage_start_date, estimated_completion_date, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, progress.UserID, string(progress.Stage), progress.Progress,
			progress.StageStartDate, progress.EstimatedCompletionDate,
			progress.CreatedAt, progress.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create onboarding progress: %w", err)
		}
	}

	for _, task := range tasks {
		_, err = tx.Exec(ctx, `
			INSERT INTO tasks (user_id, title, description, due_date, priority, is_completed, onboarding_stage, controlled_by, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, task.UserID, task.Title, task.Description, task.DueDate, string(task.Priority),
			task.IsCompleted, stageToNullable(task.OnboardingStage), string(task.ControlledBy),
			task.CreatedAt, task.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert task %q: %w", task.Title, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
