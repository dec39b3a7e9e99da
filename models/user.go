package models

import (
	"time"
)

// User is identified by display name alone — no credential, no email.
// Login creates the row on first sight; rows are never deleted.
type User struct {
	ID   string `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`

	// Denormalized counters, incremented on kudos creation.
	// Must always equal the count of matching Kudos rows.
	KudosReceived int64 `json:"kudosReceived" gorm:"default:0"`
	KudosGiven    int64 `json:"kudosGiven" gorm:"default:0"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
