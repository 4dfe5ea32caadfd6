package models

import "time"

// Rating joins a user to a media item. At most one rating may exist per
// (user, media) pair; the unique_reviews constraint backs that up at the
// storage layer so a concurrent double-submit cannot slip past the
// application-level pre-check.
type Rating struct {
	ID       int64    `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID   string   `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:unique_reviews"`
	MediaID  int64    `json:"media_id" gorm:"not null;uniqueIndex:unique_reviews"`
	Score    *float64 `json:"score,omitempty" gorm:"type:decimal(3,1)"`
	Review   *string  `json:"review,omitempty"`
	Status   *string  `json:"status,omitempty" gorm:"size:2"`
	IsHidden bool     `json:"is_hidden" gorm:"not null;default:true"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Media Media `json:"media,omitempty" gorm:"foreignKey:MediaID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "user_media_ratings"
}
