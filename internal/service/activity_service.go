package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"taskmanager/internal/models"
	"taskmanager/internal/repository"
)

type ActivityService struct {
	activityRepo repository.Activity
}

func NewActivityService(activityRepo repository.Activity) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeAndValidateFilter prepares query parameters and validates the time range.
func normalizeAndValidateFilter(f ActivityFilter) (time.Time, time.Time, string, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, "", errInvalidTimeRange
	}

	typ := strings.TrimSpace(strings.ToUpper(f.Type))
	return from, to, typ, nil
}

func (s *ActivityService) List(ctx context.Context, f ActivityFilter) ([]models.Activity, error) {
	from, to, typ, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.activityRepo.List(ctx, from, to, typ)
}
