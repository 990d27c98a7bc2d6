package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ecorun/activity-backend-go/internal/models"
)

// ActivityRepository handles database operations for activities. The codec
// never touches serialization: this layer alone turns the optimized track into
// the JSON stored in the positions column and back.
type ActivityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

const activityColumns = `id, user_id, kind, name, distance_km, duration_seconds,
	pace_min_per_km, co2_saved_kg, life_gained_hours, positions, created_at`

// Create inserts a new activity
func (r *ActivityRepository) Create(a *models.Activity) error {
	positions, err := json.Marshal(a.Positions)
	if err != nil {
		return fmt.Errorf("failed to serialize positions: %w", err)
	}

	query := `INSERT INTO activities (` + activityColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.Exec(query,
		a.ID, a.UserID, string(a.Kind), a.Name, a.DistanceKm, a.DurationSeconds,
		a.PaceMinPerKm, a.CO2SavedKg, a.LifeGainedHours, string(positions), a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}

	return nil
}

// GetByID retrieves a single activity, or nil when it does not exist
func (r *ActivityRepository) GetByID(userID, id string) (*models.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = ? AND user_id = ?`

	a, err := r.scanActivity(r.db.QueryRow(query, id, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	return a, nil
}

// List retrieves activities with filtering and pagination, newest first
func (r *ActivityRepository) List(userID string, filter models.ActivityFilter) ([]models.Activity, int64, error) {
	conditions := []string{"user_id = ?"}
	args := []interface{}{userID}

	if filter.Kind != "" {
		conditions = append(conditions, "kind = ?")
		args = append(args, filter.Kind)
	}
	if filter.StartTime > 0 {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, filter.StartTime)
	}
	if filter.EndTime > 0 {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, filter.EndTime)
	}

	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM activities"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count activities: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	query := `SELECT ` + activityColumns + ` FROM activities` + where +
		` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, filter.PageSize, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		a, err := r.scanActivity(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, *a)
	}

	return activities, total, rows.Err()
}

// Summary aggregates eco-impact totals over a user's activities
func (r *ActivityRepository) Summary(userID string) (*models.ActivitySummary, error) {
	query := `SELECT COUNT(*),
		COALESCE(SUM(distance_km), 0),
		COALESCE(SUM(duration_seconds), 0),
		COALESCE(SUM(co2_saved_kg), 0),
		COALESCE(SUM(life_gained_hours), 0)
		FROM activities WHERE user_id = ?`

	var s models.ActivitySummary
	err := r.db.QueryRow(query, userID).Scan(
		&s.Count, &s.DistanceKm, &s.DurationSeconds, &s.CO2SavedKg, &s.LifeGainedHours,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate activities: %w", err)
	}

	return &s, nil
}

// Delete removes an activity; reports whether a row was deleted
func (r *ActivityRepository) Delete(userID, id string) (bool, error) {
	res, err := r.db.Exec("DELETE FROM activities WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete activity: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *ActivityRepository) scanActivity(row rowScanner) (*models.Activity, error) {
	var a models.Activity
	var kind, positions string

	err := row.Scan(
		&a.ID, &a.UserID, &kind, &a.Name, &a.DistanceKm, &a.DurationSeconds,
		&a.PaceMinPerKm, &a.CO2SavedKg, &a.LifeGainedHours, &positions, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Kind = models.ActivityKind(kind)
	if err := json.Unmarshal([]byte(positions), &a.Positions); err != nil {
		return nil, fmt.Errorf("failed to parse positions for activity %s: %w", a.ID, err)
	}

	return &a, nil
}
