package models

import (
	"time"
)

// Kudos is a single recognition event: FromUser awards ToUser one badge
// with a message. Likes/LikedBy only ever grow.
type Kudos struct {
	ID       string `json:"id" gorm:"primaryKey"`
	FromUser string `json:"fromUser" gorm:"index;not null"` // User.Name
	ToUser   string `json:"toUser" gorm:"index;not null"`   // User.Name
	Badge    string `json:"badge" gorm:"index;not null"`    // Badge.Name, fixed enum
	Message  string `json:"message" gorm:"not null"`

	// Likes mirrors the number of KudosLike rows for this kudos.
	Likes int64 `json:"likes" gorm:"default:0"`

	Timestamp time.Time `json:"timestamp" gorm:"index;autoCreateTime"`

	// LikedBy rows are loaded for responses; the composite unique index on
	// (kudos_id, user_name) is what makes a double-like impossible.
	LikedBy []KudosLike `json:"-" gorm:"foreignKey:KudosID"`
}

// KudosLike records one user liking one kudos. The unique index turns a
// repeat like into a constraint violation instead of a silent double count.
type KudosLike struct {
	ID       uint      `json:"-" gorm:"primaryKey;autoIncrement"`
	KudosID  string    `json:"-" gorm:"uniqueIndex:idx_kudos_liker;not null"`
	UserName string    `json:"userName" gorm:"uniqueIndex:idx_kudos_liker;not null"`
	LikedAt  time.Time `json:"likedAt" gorm:"autoCreateTime"`
}

func (Kudos) TableName() string { return "kudos" }

func (KudosLike) TableName() string { return "kudos_likes" }

// LikedByNames flattens the like rows into the likedBy name list the
// client expects.
func (k *Kudos) LikedByNames() []string {
	names := make([]string, len(k.LikedBy))
	for i, l := range k.LikedBy {
		names[i] = l.UserName
	}
	return names
}
