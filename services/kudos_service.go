package services

import (
	"errors"
	"math"
	"time"

	"kudospot/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KudosService struct {
	DB *gorm.DB
}

func NewKudosService(db *gorm.DB) *KudosService {
	return &KudosService{DB: db}
}

// CreateKudosInput is the POST /kudos body.
type CreateKudosInput struct {
	FromUser string `json:"fromUser"`
	ToUser   string `json:"toUser"`
	Badge    string `json:"badge"`
	Message  string `json:"message"`
}

// KudosResponse is the wire shape of a kudos, with likedBy flattened to
// the name list the client renders.
type KudosResponse struct {
	ID        string    `json:"id"`
	FromUser  string    `json:"fromUser"`
	ToUser    string    `json:"toUser"`
	Badge     string    `json:"badge"`
	Message   string    `json:"message"`
	Likes     int64     `json:"likes"`
	LikedBy   []string  `json:"likedBy"`
	Timestamp time.Time `json:"timestamp"`
}

// FeedPage is one page of the reverse-chronological feed plus totals.
type FeedPage struct {
	Kudos       []KudosResponse `json:"kudos"`
	CurrentPage int             `json:"currentPage"`
	TotalPages  int             `json:"totalPages"`
	TotalKudos  int64           `json:"totalKudos"`
}

func toKudosResponse(k *models.Kudos) KudosResponse {
	return KudosResponse{
		ID:        k.ID,
		FromUser:  k.FromUser,
		ToUser:    k.ToUser,
		Badge:     k.Badge,
		Message:   k.Message,
		Likes:     k.Likes,
		LikedBy:   k.LikedByNames(),
		Timestamp: k.Timestamp,
	}
}

func toKudosResponses(kudos []models.Kudos) []KudosResponse {
	res := make([]KudosResponse, len(kudos))
	for i := range kudos {
		res[i] = toKudosResponse(&kudos[i])
	}
	return res
}

// CreateKudos records a recognition event and keeps the three denormalized
// counters (giver's given, receiver's received, badge's awarded) in step.
// The insert and all three increments run in one transaction, so a failure
// anywhere leaves no drift.
func (s *KudosService) CreateKudos(input CreateKudosInput) (*KudosResponse, error) {
	if input.FromUser == "" || input.ToUser == "" || input.Badge == "" || input.Message == "" {
		return nil, ErrMissingFields
	}
	if !models.IsValidBadge(input.Badge) {
		return nil, ErrUnknownBadge
	}
	if input.FromUser == input.ToUser {
		return nil, ErrSelfKudos
	}

	kudos := &models.Kudos{
		ID:        uuid.NewString(),
		FromUser:  input.FromUser,
		ToUser:    input.ToUser,
		Badge:     input.Badge,
		Message:   input.Message,
		Timestamp: time.Now(),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// Dangling references are rejected up front rather than written.
		for _, name := range []string{input.FromUser, input.ToUser} {
			var count int64
			if err := tx.Model(&models.User{}).Where("name = ?", name).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrUserNotFound
			}
		}
		var badgeCount int64
		if err := tx.Model(&models.Badge{}).Where("name = ?", input.Badge).Count(&badgeCount).Error; err != nil {
			return err
		}
		if badgeCount == 0 {
			return ErrBadgeNotFound
		}

		if err := tx.Create(kudos).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).Where("name = ?", input.FromUser).
			UpdateColumn("kudos_given", gorm.Expr("kudos_given + 1")).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Where("name = ?", input.ToUser).
			UpdateColumn("kudos_received", gorm.Expr("kudos_received + 1")).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Badge{}).Where("name = ?", input.Badge).
			UpdateColumn("times_awarded", gorm.Expr("times_awarded + 1")).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	res := toKudosResponse(kudos)
	return &res, nil
}

// GetFeed returns one page of kudos ordered newest first. A page beyond
// the end is not an error — just an empty slice with the totals intact.
func (s *KudosService) GetFeed(page, limit int) (*FeedPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	var total int64
	if err := s.DB.Model(&models.Kudos{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var kudos []models.Kudos
	if err := s.DB.Preload("LikedBy").
		Order("timestamp DESC").
		Limit(limit).Offset(offset).
		Find(&kudos).Error; err != nil {
		return nil, err
	}

	return &FeedPage{
		Kudos:       toKudosResponses(kudos),
		CurrentPage: page,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		TotalKudos:  total,
	}, nil
}

// GetByUser returns every kudos the named user gave or received,
// newest first, unpaginated.
func (s *KudosService) GetByUser(name string) ([]KudosResponse, error) {
	var kudos []models.Kudos
	if err := s.DB.Preload("LikedBy").
		Where("from_user = ? OR to_user = ?", name, name).
		Order("timestamp DESC").
		Find(&kudos).Error; err != nil {
		return nil, err
	}
	return toKudosResponses(kudos), nil
}

// LikeKudos records at most one like per user per kudos. The like row and
// the counter increment commit together; the unique index on
// (kudos_id, user_name) is what decides races, so two concurrent likes by
// the same user net exactly one increment and one conflict.
func (s *KudosService) LikeKudos(kudosID, userName string) (*KudosResponse, error) {
	if userName == "" {
		return nil, ErrNameRequired
	}

	var likerCount int64
	if err := s.DB.Model(&models.User{}).Where("name = ?", userName).Count(&likerCount).Error; err != nil {
		return nil, err
	}
	if likerCount == 0 {
		return nil, ErrUserNotFound
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var kudos models.Kudos
		if err := tx.First(&kudos, "id = ?", kudosID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrKudosNotFound
			}
			return err
		}

		like := models.KudosLike{
			KudosID:  kudosID,
			UserName: userName,
		}
		if err := tx.Create(&like).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyLiked
			}
			return err
		}

		return tx.Model(&models.Kudos{}).Where("id = ?", kudosID).
			UpdateColumn("likes", gorm.Expr("likes + 1")).Error
	})
	if err != nil {
		return nil, err
	}

	var updated models.Kudos
	if err := s.DB.Preload("LikedBy").First(&updated, "id = ?", kudosID).Error; err != nil {
		return nil, err
	}
	res := toKudosResponse(&updated)
	return &res, nil
}
