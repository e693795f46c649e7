package postgres

import (
	"context"
	"errors"
	"fmt"
	"go-onboarding-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type taskRepo struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) domain.TaskRepository {
	return &taskRepo{db: db}
}

const taskColumns = `id, user_id, title, description, due_date, priority, is_completed, onboarding_stage, controlled_by, created_at, updated_at`

func (r *taskRepo) Create(ctx context.Context, task *domain.Task) error {
	query := `INSERT INTO tasks (user_id, title, description, due_date, priority, is_completed, onboarding_stage, controlled_by, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	          RETURNING id`
	err := r.db.QueryRow(ctx, query,
		task.UserID, task.Title, task.Description, task.DueDate, string(task.Priority),
		task.IsCompleted, stageToNullable(task.OnboardingStage), string(task.ControlledBy),
		task.CreatedAt, task.UpdatedAt,
	).Scan(&task.ID)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *taskRepo) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	task, err := scanTask(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return task, nil
}

func (r *taskRepo) FetchByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1 ORDER BY due_date ASC NULLS LAST, id ASC`
	return r.fetch(ctx, query, userID)
}

func (r *taskRepo) FetchOnboardingByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
	          WHERE user_id = $1 AND onboarding_stage IS NOT NULL
	          ORDER BY due_date ASC NULLS LAST, id ASC`
	return r.fetch(ctx, query, userID)
}

func (r *taskRepo) fetch(ctx context.Context, query string, args ...interface{}) ([]domain.Task, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}

	return tasks, nil
}

func (r *taskRepo) Update(ctx context.Context, task *domain.Task) error {
	query := `UPDATE tasks SET title = $2, description = $3, due_date = $4, priority = $5,
	          is_completed = $6, onboarding_stage = $7, controlled_by = $8, updated_at = $9
	          WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		task.ID, task.Title, task.Description, task.DueDate, string(task.Priority),
		task.IsCompleted, stageToNullable(task.OnboardingStage), string(task.ControlledBy),
		task.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *taskRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	var stage *string
	err := row.Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description, &task.DueDate,
		&task.Priority, &task.IsCompleted, &stage, &task.ControlledBy,
		&task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if stage != nil {
		s := domain.Stage(*stage)
		task.OnboardingStage = &s
	}
	return &task, nil
}

func stageToNullable(s *domain.Stage) *string {
	if s == nil {
		return nil
	}
	str := string(*s)
	return &str
}
