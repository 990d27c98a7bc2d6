package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/ecorun/activity-backend-go/internal/codec"
	"github.com/ecorun/activity-backend-go/internal/gpx"
	"github.com/ecorun/activity-backend-go/internal/models"
	"github.com/ecorun/activity-backend-go/internal/repository"
	"github.com/ecorun/activity-backend-go/internal/spatial"
)

// ErrNotFound is returned when an activity does not exist for the user.
var ErrNotFound = errors.New("activity not found")

// ActivityService handles business logic for activities: it is the only place
// where tracks are encoded for storage and decoded back for display/export.
type ActivityService struct {
	activityRepo *repository.ActivityRepository
}

// NewActivityService creates a new activity service
func NewActivityService(activityRepo *repository.ActivityRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
	}
}

// Save encodes the raw track, derives the activity's statistics from it, and
// persists the record. The first sample's timestamp becomes created_at, which
// is later the decode reference.
func (s *ActivityService) Save(userID string, req models.CreateActivityRequest) (*models.Activity, error) {
	if !req.Kind.Valid() {
		return nil, fmt.Errorf("unsupported activity kind %q", req.Kind)
	}

	activity := &models.Activity{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      req.Kind,
		Name:      req.Name,
		Positions: codec.Optimize(req.Positions),
	}

	activity.CreatedAt = time.Now().UnixMilli()
	if len(req.Positions) > 0 {
		activity.CreatedAt = req.Positions[0].Timestamp

		distanceM := trackDistanceMeters(req.Positions)
		last := req.Positions[len(req.Positions)-1]
		activity.DistanceKm = distanceM / 1000
		activity.DurationSeconds = (last.Timestamp - req.Positions[0].Timestamp) / 1000
		activity.PaceMinPerKm = spatial.Pace(activity.DistanceKm, float64(activity.DurationSeconds))
		activity.CO2SavedKg = spatial.CO2Savings(activity.DistanceKm)
		activity.LifeGainedHours = spatial.LifeGained(float64(activity.DurationSeconds) / 3600)
	}

	if err := s.activityRepo.Create(activity); err != nil {
		return nil, fmt.Errorf("failed to save activity: %w", err)
	}

	return activity, nil
}

// Get returns an activity by id.
func (s *ActivityService) Get(userID, id string) (*models.Activity, error) {
	activity, err := s.activityRepo.GetByID(userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	if activity == nil {
		return nil, ErrNotFound
	}
	return activity, nil
}

// Track returns the decoded position sequence of an activity. The record's
// created_at is the encode-time reference, so timestamps come back exact to
// the second.
func (s *ActivityService) Track(userID, id string) ([]models.RawPosition, error) {
	activity, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	return codec.Restore(activity.Positions, activity.CreatedAt), nil
}

// ExportGPX renders an activity's decoded track as a GPX document.
func (s *ActivityService) ExportGPX(userID, id string) (string, error) {
	activity, err := s.Get(userID, id)
	if err != nil {
		return "", err
	}

	positions := codec.Restore(activity.Positions, activity.CreatedAt)
	doc, err := gpx.Generate(positions, activity.Name)
	if err != nil {
		return "", fmt.Errorf("failed to export activity %s: %w", id, err)
	}

	return doc, nil
}

// List retrieves activities with filtering and pagination.
func (s *ActivityService) List(userID string, filter models.ActivityFilter) (*models.ActivitiesResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 50
	}
	if filter.PageSize > 500 {
		filter.PageSize = 500
	}

	activities, total, err := s.activityRepo.List(userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.PageSize)))

	return &models.ActivitiesResponse{
		Data:       activities,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// Summary aggregates eco-impact totals over a user's activities.
func (s *ActivityService) Summary(userID string) (*models.ActivitySummary, error) {
	summary, err := s.activityRepo.Summary(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize activities: %w", err)
	}
	return summary, nil
}

// Delete removes an activity.
func (s *ActivityService) Delete(userID, id string) error {
	deleted, err := s.activityRepo.Delete(userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// trackDistanceMeters sums great-circle distances over consecutive samples.
func trackDistanceMeters(positions []models.RawPosition) float64 {
	var total float64
	for i := 1; i < len(positions); i++ {
		total += spatial.Distance(positions[i-1], positions[i])
	}
	return total
}
