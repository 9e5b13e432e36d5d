package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/cgpa/internal/db"
	"github.com/alexanderramin/cgpa/internal/domain"
)

// SQLiteSemesterRepo implements SemesterRepo for what-if semesters and
// their course rows.
type SQLiteSemesterRepo struct {
	db db.DBTX
}

func NewSQLiteSemesterRepo(conn db.DBTX) *SQLiteSemesterRepo {
	return &SQLiteSemesterRepo{db: conn}
}

func (r *SQLiteSemesterRepo) Create(ctx context.Context, s *domain.Semester) error {
	query := `INSERT INTO semesters (id, seq, name, is_open, created_at)
		VALUES (?, COALESCE(NULLIF(?, 0), (SELECT COALESCE(MAX(seq), 0) + 1 FROM semesters)), ?, ?, ?)
		RETURNING seq`
	err := r.db.QueryRowContext(ctx, query,
		s.ID,
		s.Seq,
		s.Name,
		boolToInt(s.IsOpen),
		formatTime(s.CreatedAt),
	).Scan(&s.Seq)
	if err != nil {
		return fmt.Errorf("inserting semester: %w", err)
	}
	for i := range s.Courses {
		s.Courses[i].SemesterID = s.ID
		if err := r.AddCourse(ctx, &s.Courses[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteSemesterRepo) GetByID(ctx context.Context, id string) (*domain.Semester, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, seq, name, is_open, created_at FROM semesters WHERE id = ?`, id)
	s, err := scanSemester(row)
	if err != nil {
		return nil, err
	}
	courses, err := r.listCourses(ctx, `WHERE semester_id = ?`, id)
	if err != nil {
		return nil, err
	}
	s.Courses = courses[id]
	return s, nil
}

func (r *SQLiteSemesterRepo) List(ctx context.Context) ([]*domain.Semester, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, seq, name, is_open, created_at FROM semesters ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing semesters: %w", err)
	}
	var semesters []*domain.Semester
	for rows.Next() {
		s, err := scanSemester(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		semesters = append(semesters, s)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating semesters: %w", err)
	}
	rows.Close()

	// Single-connection databases cannot run a second query while rows
	// are open, so courses are loaded after the cursor is released.
	courses, err := r.listCourses(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, s := range semesters {
		s.Courses = courses[s.ID]
	}
	return semesters, nil
}

func (r *SQLiteSemesterRepo) Update(ctx context.Context, s *domain.Semester) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE semesters SET name = ?, is_open = ? WHERE id = ?`,
		s.Name, boolToInt(s.IsOpen), s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating semester: %w", err)
	}
	return requireAffected(res, "semester")
}

// Delete removes the semester; its course rows cascade.
func (r *SQLiteSemesterRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM semesters WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting semester: %w", err)
	}
	return requireAffected(res, "semester")
}

func (r *SQLiteSemesterRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM semesters`); err != nil {
		return fmt.Errorf("clearing semesters: %w", err)
	}
	return nil
}

// AddCourse inserts c under c.SemesterID, allocating the next per-semester
// seq when c.Seq is zero.
func (r *SQLiteSemesterRepo) AddCourse(ctx context.Context, c *domain.SemesterCourse) error {
	query := `INSERT INTO semester_courses (id, semester_id, seq, credit_hours, grade)
		VALUES (?, ?, COALESCE(NULLIF(?, 0),
			(SELECT COALESCE(MAX(seq), 0) + 1 FROM semester_courses WHERE semester_id = ?)), ?, ?)
		RETURNING seq`
	err := r.db.QueryRowContext(ctx, query,
		c.ID,
		c.SemesterID,
		c.Seq,
		c.SemesterID,
		string(c.CreditHours),
		string(c.Grade),
	).Scan(&c.Seq)
	if err != nil {
		return fmt.Errorf("inserting semester course: %w", err)
	}
	return nil
}

func (r *SQLiteSemesterRepo) UpdateCourse(ctx context.Context, c *domain.SemesterCourse) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE semester_courses SET credit_hours = ?, grade = ? WHERE id = ?`,
		string(c.CreditHours), string(c.Grade), c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating semester course: %w", err)
	}
	return requireAffected(res, "semester course")
}

func (r *SQLiteSemesterRepo) DeleteCourse(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM semester_courses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting semester course: %w", err)
	}
	return requireAffected(res, "semester course")
}

// listCourses loads semester course rows grouped by semester ID.
func (r *SQLiteSemesterRepo) listCourses(ctx context.Context, where string, args ...any) (map[string][]domain.SemesterCourse, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, semester_id, seq, credit_hours, grade FROM semester_courses `+where+` ORDER BY semester_id, seq`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("listing semester courses: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.SemesterCourse)
	for rows.Next() {
		var c domain.SemesterCourse
		var credits, grade string
		if err := rows.Scan(&c.ID, &c.SemesterID, &c.Seq, &credits, &grade); err != nil {
			return nil, fmt.Errorf("scanning semester course: %w", err)
		}
		c.CreditHours = domain.Numeric(credits)
		c.Grade = domain.GradeSymbol(grade)
		out[c.SemesterID] = append(out[c.SemesterID], c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating semester courses: %w", err)
	}
	return out, nil
}

func scanSemester(s rowScanner) (*domain.Semester, error) {
	var sem domain.Semester
	var isOpen int
	var createdAt string
	if err := s.Scan(&sem.ID, &sem.Seq, &sem.Name, &isOpen, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("semester: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning semester: %w", err)
	}
	sem.IsOpen = intToBool(isOpen)
	sem.CreatedAt = parseTime(createdAt)
	return &sem, nil
}
