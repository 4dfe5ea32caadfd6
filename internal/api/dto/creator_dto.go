package dto

import (
	"time"

	"mediavault/internal/api/models"
)

type CreatorInput struct {
	FirstName  string  `json:"first_name"`
	MiddleName *string `json:"middle_name,omitempty"`
	LastName   string  `json:"last_name"`
	BirthDate  string  `json:"birth_date"` // YYYY-MM-DD
}

type CreatorResponse struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"first_name"`
	MiddleName *string   `json:"middle_name,omitempty"`
	LastName   string    `json:"last_name"`
	BirthDate  time.Time `json:"birth_date"`
	MediaCount int64     `json:"media_count"`
}

func CreatorFromModel(c models.Creator) CreatorResponse {
	return CreatorResponse{
		ID:         c.ID,
		FirstName:  c.FirstName,
		MiddleName: c.MiddleName,
		LastName:   c.LastName,
		BirthDate:  c.BirthDate,
		MediaCount: c.MediaCount,
	}
}

// QuickCreateResponse is the alternate response mode of the creator
// quick-create endpoint, consumed by asynchronous form submission.
type QuickCreateResponse struct {
	Success bool          `json:"success"`
	Author  *QuickAuthor  `json:"author,omitempty"`
	Errors  interface{}   `json:"errors,omitempty"`
}

type QuickAuthor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
