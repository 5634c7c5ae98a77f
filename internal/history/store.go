package history

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"chanarr/internal/domain/consts"
	"chanarr/internal/models"

	"github.com/Masterminds/squirrel"
)

// Store provides access to the downloads history table.
type Store struct {
	DB *sql.DB
}

// GetStore returns a history store instance with injected database.
func GetStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

// IsGrabbed reports whether the URL already completed in an earlier run.
func (s *Store) IsGrabbed(url string) (bool, error) {
	query := squirrel.
		Select("status").
		From("downloads").
		Where(squirrel.Eq{"url": url}).
		RunWith(s.DB)

	var status string
	if err := query.QueryRow().Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to query download history for %q: %w", url, err)
	}

	return status == string(consts.DLStatusCompleted), nil
}

// RecordResult upserts the outcome of a single item.
func (s *Store) RecordResult(item models.ItemResult) error {
	now := time.Now()

	var reason string
	if item.Err != nil {
		reason = item.Err.Error()
	}

	query := squirrel.
		Insert("downloads").
		Columns("url", "title", "status", "error", "created_at", "updated_at").
		Values(item.URL, item.Title, string(item.Status), reason, now, now).
		Suffix("ON CONFLICT(url) DO UPDATE SET title = excluded.title, status = excluded.status, error = excluded.error, updated_at = excluded.updated_at").
		RunWith(s.DB)

	if _, err := query.Exec(); err != nil {
		return fmt.Errorf("failed to record result for %q: %w", item.URL, err)
	}
	return nil
}

// GrabbedCount returns the number of completed downloads on record.
func (s *Store) GrabbedCount() (int, error) {
	query := squirrel.
		Select("COUNT(*)").
		From("downloads").
		Where(squirrel.Eq{"status": string(consts.DLStatusCompleted)}).
		RunWith(s.DB)

	var count int
	if err := query.QueryRow().Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count download history: %w", err)
	}
	return count, nil
}
