package services

import (
	"errors"

	"kudospot/models"

	"gorm.io/gorm"
)

// AnalyticsService computes the reporting views. Every method is a pure
// query — nothing here mutates.
type AnalyticsService struct {
	DB *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db}
}

// BadgeCount is one bucket of the badge-distribution histogram.
type BadgeCount struct {
	Badge string `json:"badge"`
	Count int64  `json:"count"`
}

// LeaderboardEntry projects just the ranking fields of a user.
type LeaderboardEntry struct {
	Name          string `json:"name"`
	KudosReceived int64  `json:"kudosReceived"`
}

// UserStats is the composite per-user report.
type UserStats struct {
	User  *models.User   `json:"user"`
	Stats UserStatCounts `json:"stats"`
}

type UserStatCounts struct {
	KudosGiven        int64       `json:"kudosGiven"`
	KudosReceived     int64       `json:"kudosReceived"`
	MostReceivedBadge *BadgeCount `json:"mostReceivedBadge"`
}

// KudosByBadge groups all kudos by badge, most-awarded first.
// The counts always sum to the total number of kudos.
func (s *AnalyticsService) KudosByBadge() ([]BadgeCount, error) {
	var stats []BadgeCount
	if err := s.DB.Model(&models.Kudos{}).
		Select("badge, COUNT(*) as count").
		Group("badge").
		Order("count DESC").
		Scan(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// Leaderboard returns the top 10 users by kudos received.
func (s *AnalyticsService) Leaderboard() ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	if err := s.DB.Model(&models.User{}).
		Select("name, kudos_received").
		Order("kudos_received DESC").
		Limit(10).
		Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// MostLiked returns the top 5 kudos by like count.
func (s *AnalyticsService) MostLiked() ([]KudosResponse, error) {
	var kudos []models.Kudos
	if err := s.DB.Preload("LikedBy").
		Order("likes DESC").
		Limit(5).
		Find(&kudos).Error; err != nil {
		return nil, err
	}
	return toKudosResponses(kudos), nil
}

// GetUserStats builds the composite report for one user. An unknown name
// is not an error: User comes back nil and the counts are zero, matching
// what the client renders for a fresh profile.
func (s *AnalyticsService) GetUserStats(name string) (*UserStats, error) {
	stats := &UserStats{}

	var user models.User
	err := s.DB.Where("name = ?", name).First(&user).Error
	switch {
	case err == nil:
		stats.User = &user
	case errors.Is(err, gorm.ErrRecordNotFound):
		// fall through with User == nil
	default:
		return nil, err
	}

	if err := s.DB.Model(&models.Kudos{}).Where("from_user = ?", name).
		Count(&stats.Stats.KudosGiven).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Kudos{}).Where("to_user = ?", name).
		Count(&stats.Stats.KudosReceived).Error; err != nil {
		return nil, err
	}

	var top []BadgeCount
	if err := s.DB.Model(&models.Kudos{}).
		Select("badge, COUNT(*) as count").
		Where("to_user = ?", name).
		Group("badge").
		Order("count DESC").
		Limit(1).
		Scan(&top).Error; err != nil {
		return nil, err
	}
	if len(top) > 0 {
		stats.Stats.MostReceivedBadge = &top[0]
	}

	return stats, nil
}
