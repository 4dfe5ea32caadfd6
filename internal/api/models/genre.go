package models

type Genre struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"unique;not null"`

	// how many media rows of the session's active kind carry this genre,
	// annotated on list queries only
	MediaCount int64 `json:"media_count" gorm:"->;-:migration"`
}

func (Genre) TableName() string {
	return "genres"
}
