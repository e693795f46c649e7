package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"go-onboarding-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type templateRepo struct {
	db *pgxpool.Pool
}

func NewTemplateRepository(db *pgxpool.Pool) domain.TemplateRepository {
	return &templateRepo{db: db}
}

func (r *templateRepo) Create(ctx context.Context, tmpl *domain.OnboardingTemplate) error {
	phases, err := json.Marshal(tmpl.Phases)
	if err != nil {
		return fmt.Errorf("failed to marshal template phases: %w", err)
	}

	query := `INSERT INTO onboarding_templates (name, description, program_type, phases, created_by, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id`
	err = r.db.QueryRow(ctx, query,
		tmpl.Name, tmpl.Description, tmpl.ProgramType, phases,
		tmpl.CreatedBy, tmpl.IsActive, tmpl.CreatedAt, tmpl.UpdatedAt,
	).Scan(&tmpl.ID)
	if err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}
	return nil
}

func (r *templateRepo) GetByID(ctx context.Context, id int64) (*domain.OnboardingTemplate, error) {
	query := `SELECT id, name, description, program_type, phases, created_by, is_active, created_at, updated_at
	          FROM onboarding_templates WHERE id = $1`

	tmpl, err := scanTemplate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return tmpl, nil
}

func (r *templateRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.OnboardingTemplate, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM onboarding_templates`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, name, description, program_type, phases, created_by, is_active, created_at, updated_at
	          FROM onboarding_templates ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch templates: %w", err)
	}
	defer rows.Close()

	var templates []domain.OnboardingTemplate
	for rows.Next() {
		tmpl, err := scanTemplate(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan template row: %w", err)
		}
		templates = append(templates, *tmpl)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating template rows: %w", err)
	}

	return templates, total, nil
}

func (r *templateRepo) Update(ctx context.Context, tmpl *domain.OnboardingTemplate) error {
	phases, err := json.Marshal(tmpl.Phases)
	if err != nil {
		return fmt.Errorf("failed to marshal template phases: %w", err)
	}

	query := `UPDATE onboarding_templates
	          SET name = $2, description = $3, program_type = $4, phases = $5, is_active = $6, updated_at = $7
	          WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		tmpl.ID, tmpl.Name, tmpl.Description, tmpl.ProgramType, phases, tmpl.IsActive, tmpl.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *templateRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM onboarding_templates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanTemplate(row pgx.Row) (*domain.OnboardingTemplate, error) {
	var tmpl domain.OnboardingTemplate
	var phases []byte
	err := row.Scan(
		&tmpl.ID, &tmpl.Name, &tmpl.Description, &tmpl.ProgramType, &phases,
		&tmpl.CreatedBy, &tmpl.IsActive, &tmpl.CreatedAt, &tmpl.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(phases) > 0 {
		if err := json.Unmarshal(phases, &tmpl.Phases); err != nil {
			return nil, fmt.Errorf("failed to unmarshal template phases: %w", err)
		}
	}
	return &tmpl, nil
}
