package tracking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fieldtrack/fieldtrack/internal/models"
	sessionRepo "github.com/fieldtrack/fieldtrack/internal/repositories/session"
	userRepo "github.com/fieldtrack/fieldtrack/internal/repositories/user"
)

const earthRadiusMeters = 6371000

// GetSessionStats summarises the track recorded for a session
func (s *service) GetSessionStats(ctx context.Context, input *GetSessionStatsInput) (*GetSessionStatsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrInvalidInput
	}

	if _, err := s.getSession(ctx, input.SessionID); err != nil {
		return nil, err
	}

	output, err := s.sessionRepo.ListSessionPositions(ctx, &sessionRepo.ListSessionPositionsInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list session positions: %w", err)
	}

	stats := &models.SessionStats{
		SessionID:     input.SessionID,
		PositionCount: len(output.Positions),
	}

	if len(output.Positions) == 0 {
		return &GetSessionStatsOutput{
			Stats: stats,
		}, nil
	}

	first := output.Positions[0]
	last := output.Positions[len(output.Positions)-1]
	stats.FirstFix = &first.Timestamp
	stats.LastFix = &last.Timestamp
	stats.Duration = last.Timestamp.Sub(first.Timestamp)

	for i := 1; i < len(output.Positions); i++ {
		prev, cur := output.Positions[i-1], output.Positions[i]
		stats.DistanceMeters += haversineMeters(prev.Latitude, prev.Longitude, cur.Latitude, cur.Longitude)
	}

	return &GetSessionStatsOutput{
		Stats: stats,
	}, nil
}

// IsWorkingHours reports whether the current time of day falls inside the
// user's company window. Windows that cross midnight are supported. Users
// without a company are never within working hours.
func (s *service) IsWorkingHours(ctx context.Context, input *IsWorkingHoursInput) (*IsWorkingHoursOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.CompanyID == nil {
		return &IsWorkingHoursOutput{}, nil
	}

	company, err := s.userRepo.GetCompany(ctx, &userRepo.GetCompanyInput{
		CompanyID: *user.CompanyID,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrCompanyNotFound) {
			return &IsWorkingHoursOutput{}, nil
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	working, err := withinWindow(s.clock.Now(), company)
	if err != nil {
		return nil, err
	}

	return &IsWorkingHoursOutput{
		WorkingHours: working,
	}, nil
}

func withinWindow(now time.Time, company *models.Company) (bool, error) {
	if company.WorkStart == "" || company.WorkEnd == "" {
		return false, nil
	}

	loc := time.UTC
	if tz := strings.TrimSpace(company.Timezone); tz != "" {
		var err error
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return false, fmt.Errorf("%w: timezone %q: %v", ErrInvalidWorkHours, tz, err)
		}
	}

	start, err := minuteOfDay(company.WorkStart)
	if err != nil {
		return false, err
	}

	end, err := minuteOfDay(company.WorkEnd)
	if err != nil {
		return false, err
	}

	local := now.In(loc)
	current := local.Hour()*60 + local.Minute()

	if start == end {
		return false, nil
	}

	if start < end {
		return current >= start && current < end, nil
	}

	// overnight shift
	return current >= start || current < end, nil
}

func minuteOfDay(value string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWorkHours, value)
	}

	return t.Hour()*60 + t.Minute(), nil
}

// haversineMeters returns the great-circle distance between two points in meters
func haversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}
