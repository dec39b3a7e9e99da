package services

import (
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kudospot/models"
)

type BadgeService struct {
	DB *gorm.DB
}

func NewBadgeService(db *gorm.DB) *BadgeService {
	return &BadgeService{DB: db}
}

// GetAllBadges returns the badge catalog with live award counts.
func (s *BadgeService) GetAllBadges() ([]models.Badge, error) {
	var badges []models.Badge
	if err := s.DB.Order("name ASC").Find(&badges).Error; err != nil {
		return nil, err
	}
	return badges, nil
}

// InitBadges upserts the fixed badge catalog. Safe to call any number of
// times: existing rows keep their ID and TimesAwarded, only name/slug/
// description are refreshed. Returns the full catalog afterwards.
func (s *BadgeService) InitBadges() ([]models.Badge, error) {
	for _, b := range models.BadgeCatalog {
		badge := models.Badge{
			ID:          uuid.NewString(),
			Name:        b.Name,
			Slug:        slug.Make(b.Name),
			Description: b.Description,
		}
		if err := s.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"slug", "description"}),
		}).Create(&badge).Error; err != nil {
			return nil, err
		}
	}
	return s.GetAllBadges()
}
