package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/cgpa/internal/db"
	"github.com/alexanderramin/cgpa/internal/domain"
)

// SQLiteAcademicStateRepo stores the single prior-standing row.
type SQLiteAcademicStateRepo struct {
	db db.DBTX
}

func NewSQLiteAcademicStateRepo(conn db.DBTX) *SQLiteAcademicStateRepo {
	return &SQLiteAcademicStateRepo{db: conn}
}

func (r *SQLiteAcademicStateRepo) Get(ctx context.Context) (*domain.AcademicState, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT current_cgpa, credits_earned, updated_at FROM academic_state WHERE id = 'default'`)

	var s domain.AcademicState
	var cgpa, credits string
	var updatedAt sql.NullString
	if err := row.Scan(&cgpa, &credits, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("academic state: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning academic state: %w", err)
	}
	s.CurrentCGPA = domain.Numeric(cgpa)
	s.CreditsEarned = domain.Numeric(credits)
	s.UpdatedAt = parseNullableTime(updatedAt)
	return &s, nil
}

func (r *SQLiteAcademicStateRepo) Upsert(ctx context.Context, s *domain.AcademicState) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO academic_state (id, current_cgpa, credits_earned, updated_at)
		VALUES ('default', ?, ?, ?)`,
		string(s.CurrentCGPA),
		string(s.CreditsEarned),
		nullableTimeToString(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upserting academic state: %w", err)
	}
	return nil
}

// SQLiteSettingsRepo stores workspace preferences.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, default_rows FROM settings WHERE id = 'default'`)

	var s domain.Settings
	if err := row.Scan(&s.ID, &s.DefaultRows); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning settings: %w", err)
	}
	return &s, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s *domain.Settings) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO settings (id, default_rows) VALUES ('default', ?)`,
		s.DefaultRows,
	)
	if err != nil {
		return fmt.Errorf("upserting settings: %w", err)
	}
	return nil
}
