package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"campusevents/internal/domain"
)

const studentColumns = `id, student_code, first_name, last_name, email, phone_number, department, year_of_study, college_id, created_at, updated_at`

type studentRepository struct {
	DB *sql.DB
}

func NewStudentRepository(db *sql.DB) domain.StudentRepository {
	return &studentRepository{
		DB: db,
	}
}

func (r *studentRepository) Create(ctx context.Context, s *domain.Student) error {
	s.ID = uuid.New().String()
	query := `
		INSERT INTO students (` + studentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.DB.ExecContext(ctx, query,
		s.ID, s.StudentCode, s.FirstName, s.LastName, s.Email,
		s.PhoneNumber, s.Department, s.YearOfStudy, s.CollegeID,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uniqueStudentError(err)
		}
		return err
	}
	return nil
}

func (r *studentRepository) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	return r.scanStudent(r.DB.QueryRowContext(ctx, query, id))
}

func (r *studentRepository) GetByStudentCode(ctx context.Context, code string) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_code = $1`
	return r.scanStudent(r.DB.QueryRowContext(ctx, query, code))
}

func (r *studentRepository) GetByEmail(ctx context.Context, email string) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE email = $1`
	return r.scanStudent(r.DB.QueryRowContext(ctx, query, email))
}

func (r *studentRepository) List(ctx context.Context) ([]*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY created_at DESC`
	return r.queryStudents(ctx, query)
}

func (r *studentRepository) ListByCollegeID(ctx context.Context, collegeID string) ([]*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE college_id = $1 ORDER BY created_at DESC`
	return r.queryStudents(ctx, query, collegeID)
}

func (r *studentRepository) Update(ctx context.Context, s *domain.Student) error {
	query := `
		UPDATE students
		SET student_code = $1, first_name = $2, last_name = $3, email = $4,
		    phone_number = $5, department = $6, year_of_study = $7, college_id = $8,
		    updated_at = NOW()
		WHERE id = $9
	`
	result, err := r.DB.ExecContext(ctx, query,
		s.StudentCode, s.FirstName, s.LastName, s.Email,
		s.PhoneNumber, s.Department, s.YearOfStudy, s.CollegeID, s.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uniqueStudentError(err)
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

func (r *studentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

// uniqueStudentError distinguishes which unique constraint fired by its name.
func uniqueStudentError(err error) error {
	if strings.Contains(err.Error(), "students_email") {
		return domain.ErrDuplicateEmail
	}
	return domain.ErrDuplicateStudentCode
}

func (r *studentRepository) scanStudent(row *sql.Row) (*domain.Student, error) {
	s := &domain.Student{}
	err := row.Scan(
		&s.ID, &s.StudentCode, &s.FirstName, &s.LastName, &s.Email,
		&s.PhoneNumber, &s.Department, &s.YearOfStudy, &s.CollegeID,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *studentRepository) queryStudents(ctx context.Context, query string, args ...any) ([]*domain.Student, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]*domain.Student, 0)
	for rows.Next() {
		s := &domain.Student{}
		if err := rows.Scan(
			&s.ID, &s.StudentCode, &s.FirstName, &s.LastName, &s.Email,
			&s.PhoneNumber, &s.Department, &s.YearOfStudy, &s.CollegeID,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
