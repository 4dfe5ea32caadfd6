package dto

import (
	"time"

	"mediavault/internal/api/models"
)

// RatingInput creates or updates a rating. Score, review and status are all
// optional; a participant row with none of them set is valid.
type RatingInput struct {
	MediaID  int64    `json:"media_id"`
	Score    *float64 `json:"score,omitempty"`
	Review   *string  `json:"review,omitempty"`
	Status   string   `json:"status,omitempty"` // stored code
	IsHidden *bool    `json:"is_hidden,omitempty"`
}

type RatingResponse struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	MediaID   int64     `json:"media_id"`
	Title     string    `json:"title,omitempty"`
	Score     *float64  `json:"score,omitempty"`
	Review    *string   `json:"review,omitempty"`
	Status    *string   `json:"status,omitempty"`
	IsHidden  bool      `json:"is_hidden"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func RatingFromModel(r models.Rating) RatingResponse {
	return RatingResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Username:  r.User.Username,
		MediaID:   r.MediaID,
		Title:     r.Media.Title,
		Score:     r.Score,
		Review:    r.Review,
		Status:    r.Status,
		IsHidden:  r.IsHidden,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// MutateResponse wraps a successful create/update with the redirect target
// the client should navigate to.
type MutateResponse struct {
	Data        interface{} `json:"data"`
	RedirectURL string      `json:"redirect_url"`
}
