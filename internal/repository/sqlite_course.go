package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/cgpa/internal/db"
	"github.com/alexanderramin/cgpa/internal/domain"
)

const courseColumns = `id, seq, code, credit_hours, grade, created_at, updated_at`

// SQLiteCourseRepo implements CourseRepo for the current-term table.
type SQLiteCourseRepo struct {
	db db.DBTX
}

func NewSQLiteCourseRepo(conn db.DBTX) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: conn}
}

// Create inserts c. A zero Seq is allocated as max(seq)+1 and written
// back to c.
func (r *SQLiteCourseRepo) Create(ctx context.Context, c *domain.Course) error {
	query := `INSERT INTO courses (id, seq, code, credit_hours, grade, created_at, updated_at)
		VALUES (?, COALESCE(NULLIF(?, 0), (SELECT COALESCE(MAX(seq), 0) + 1 FROM courses)), ?, ?, ?, ?, ?)
		RETURNING seq`
	err := r.db.QueryRowContext(ctx, query,
		c.ID,
		c.Seq,
		c.Code,
		string(c.CreditHours),
		string(c.Grade),
		formatTime(c.CreatedAt),
		formatTime(c.UpdatedAt),
	).Scan(&c.Seq)
	if err != nil {
		return fmt.Errorf("inserting course: %w", err)
	}
	return nil
}

func (r *SQLiteCourseRepo) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = ?`, id)
	return scanCourse(row)
}

func (r *SQLiteCourseRepo) GetBySeq(ctx context.Context, seq int) (*domain.Course, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+courseColumns+` FROM courses WHERE seq = ?`, seq)
	return scanCourse(row)
}

func (r *SQLiteCourseRepo) List(ctx context.Context) ([]*domain.Course, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+courseColumns+` FROM courses ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}
	return courses, nil
}

func (r *SQLiteCourseRepo) Update(ctx context.Context, c *domain.Course) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE courses SET code = ?, credit_hours = ?, grade = ?, updated_at = ? WHERE id = ?`,
		c.Code,
		string(c.CreditHours),
		string(c.Grade),
		formatTime(c.UpdatedAt),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating course: %w", err)
	}
	return requireAffected(res, "course")
}

func (r *SQLiteCourseRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting course: %w", err)
	}
	return requireAffected(res, "course")
}

func (r *SQLiteCourseRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM courses`); err != nil {
		return fmt.Errorf("clearing courses: %w", err)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(s rowScanner) (*domain.Course, error) {
	var c domain.Course
	var credits, grade, createdAt, updatedAt string
	err := s.Scan(&c.ID, &c.Seq, &c.Code, &credits, &grade, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("course: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning course: %w", err)
	}
	c.CreditHours = domain.Numeric(credits)
	c.Grade = domain.GradeSymbol(grade)
	c.CreatedAt = parseTime(createdAt)
	c.UpdatedAt = parseTime(updatedAt)
	return &c, nil
}

func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected %s rows: %w", what, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
