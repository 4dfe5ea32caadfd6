package models

import "time"

// Media kinds. The kind is fixed at creation and never changes afterwards.
const (
	KindBook   = "book"
	KindFilm   = "film"
	KindSeries = "series"
)

// Media is the shared record for books, films and series. Kind-specific
// columns are nullable and only populated for the matching media_kind.
type Media struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string     `json:"title" gorm:"not null;index"`
	Description string     `json:"description" gorm:"not null"`
	ReleasedOn  *time.Time `json:"released_on,omitempty"`
	MediaKind   string     `json:"media_kind" gorm:"->;<-:create;not null;index"`
	CreatedBy   string     `json:"created_by" gorm:"->;<-:create"`

	// book
	Chapters *int    `json:"chapters,omitempty"`
	BookType *string `json:"book_type,omitempty" gorm:"size:2"`

	// film / series
	Country     *string `json:"country,omitempty"`
	DurationMin *int    `json:"duration_min,omitempty"`

	// series
	Status       *string `json:"status,omitempty" gorm:"size:2"`
	Seasons      *int    `json:"seasons,omitempty"`
	SeriesNumber *int    `json:"series_number,omitempty"`
	SeriesType   *string `json:"series_type,omitempty" gorm:"size:2"`

	// review aggregates computed per list query over visible ratings only,
	// never written back
	ReviewsNum int64    `json:"reviews_num" gorm:"->;-:migration"`
	ReviewsAvg *float64 `json:"reviews_avg,omitempty" gorm:"->;-:migration"`

	// associations
	Genres   []Genre  `json:"genres,omitempty" gorm:"many2many:media_genres;constraint:OnDelete:CASCADE;"`
	Creators []Creator `json:"creators,omitempty" gorm:"many2many:media_creators;constraint:OnDelete:CASCADE;"`
	Ratings  []Rating `json:"ratings,omitempty" gorm:"foreignKey:MediaID"`
}

func (Media) TableName() string {
	return "media"
}
