package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"campusevents/internal/domain"
)

type collegeRepository struct {
	DB *sql.DB
}

func NewCollegeRepository(db *sql.DB) domain.CollegeRepository {
	return &collegeRepository{
		DB: db,
	}
}

func (r *collegeRepository) Create(ctx context.Context, c *domain.College) error {
	c.ID = uuid.New().String()
	query := `
		INSERT INTO colleges (id, name, location, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, query,
		c.ID, c.Name, c.Location, c.Description, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCollege
		}
		return err
	}
	return nil
}

func (r *collegeRepository) GetByID(ctx context.Context, id string) (*domain.College, error) {
	query := `
		SELECT id, name, location, description, created_at, updated_at
		FROM colleges
		WHERE id = $1
	`
	return r.scanCollege(r.DB.QueryRowContext(ctx, query, id))
}

func (r *collegeRepository) GetByName(ctx context.Context, name string) (*domain.College, error) {
	query := `
		SELECT id, name, location, description, created_at, updated_at
		FROM colleges
		WHERE name = $1
	`
	return r.scanCollege(r.DB.QueryRowContext(ctx, query, name))
}

func (r *collegeRepository) List(ctx context.Context) ([]*domain.College, error) {
	query := `
		SELECT id, name, location, description, created_at, updated_at
		FROM colleges
		ORDER BY name ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	colleges := make([]*domain.College, 0)
	for rows.Next() {
		c := &domain.College{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		colleges = append(colleges, c)
	}
	return colleges, rows.Err()
}

func (r *collegeRepository) Update(ctx context.Context, c *domain.College) error {
	query := `
		UPDATE colleges
		SET name = $1, location = $2, description = $3, updated_at = NOW()
		WHERE id = $4
	`
	result, err := r.DB.ExecContext(ctx, query, c.Name, c.Location, c.Description, c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCollege
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *collegeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM colleges WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *collegeRepository) scanCollege(row *sql.Row) (*domain.College, error) {
	c := &domain.College{}
	err := row.Scan(&c.ID, &c.Name, &c.Location, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}
