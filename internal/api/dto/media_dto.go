package dto

import (
	"time"

	"mediavault/internal/api/models"
)

// MediaInput carries the shared field set of every media mutate request.
// Kind-specific fields ride alongside; the handler's route fixes the kind.
type MediaInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ReleasedOn  *string `json:"released_on,omitempty"` // YYYY-MM-DD
	GenreIDs    []int64 `json:"genre_ids"`
	CreatorIDs  []int64 `json:"creator_ids"`

	// book
	Chapters *int   `json:"chapters,omitempty"`
	Type     string `json:"type,omitempty"` // stored code (book or series subtype)

	// film / series
	Country     *string `json:"country,omitempty"`
	DurationMin *int    `json:"duration_min,omitempty"`

	// series
	Status       string `json:"status,omitempty"` // stored code
	Seasons      *int   `json:"seasons,omitempty"`
	SeriesNumber *int   `json:"series_number,omitempty"`
}

// MediaInitial is the pre-populated form state for a create page, derived
// from query-string hints.
type MediaInitial struct {
	GenreIDs   []int64 `json:"genre_ids"`
	CreatorIDs []int64 `json:"creator_ids"`
	Type       string  `json:"type,omitempty"`
	Status     string  `json:"status,omitempty"`
}

// MediaResponse carries one media row plus its visible-review aggregates.
type MediaResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ReleasedOn  *time.Time `json:"released_on,omitempty"`
	MediaKind   string     `json:"media_kind"`
	CreatedBy   string     `json:"created_by"`

	Chapters     *int    `json:"chapters,omitempty"`
	BookType     *string `json:"book_type,omitempty"`
	Country      *string `json:"country,omitempty"`
	DurationMin  *int    `json:"duration_min,omitempty"`
	Status       *string `json:"status,omitempty"`
	Seasons      *int    `json:"seasons,omitempty"`
	SeriesNumber *int    `json:"series_number,omitempty"`
	SeriesType   *string `json:"series_type,omitempty"`

	ReviewsNum int64    `json:"reviews_num"`
	ReviewsAvg *float64 `json:"reviews_avg,omitempty"`

	Genres   []GenreResponse   `json:"genres"`
	Creators []CreatorResponse `json:"creators"`
}

func MediaFromModel(m models.Media) MediaResponse {
	genres := make([]GenreResponse, 0, len(m.Genres))
	for _, g := range m.Genres {
		genres = append(genres, GenreFromModel(g))
	}
	creators := make([]CreatorResponse, 0, len(m.Creators))
	for _, c := range m.Creators {
		creators = append(creators, CreatorFromModel(c))
	}
	return MediaResponse{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		ReleasedOn:   m.ReleasedOn,
		MediaKind:    m.MediaKind,
		CreatedBy:    m.CreatedBy,
		Chapters:     m.Chapters,
		BookType:     m.BookType,
		Country:      m.Country,
		DurationMin:  m.DurationMin,
		Status:       m.Status,
		Seasons:      m.Seasons,
		SeriesNumber: m.SeriesNumber,
		SeriesType:   m.SeriesType,
		ReviewsNum:   m.ReviewsNum,
		ReviewsAvg:   m.ReviewsAvg,
		Genres:       genres,
		Creators:     creators,
	}
}
