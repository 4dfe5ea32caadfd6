package models

import "time"

// Creator is uniquely identified by (first_name, last_name, birth_date),
// enforced by the unique_creators constraint in the migration.
type Creator struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName  string    `json:"first_name" gorm:"not null;index"`
	MiddleName *string   `json:"middle_name,omitempty"`
	LastName   string    `json:"last_name" gorm:"not null"`
	BirthDate  time.Time `json:"birth_date" gorm:"not null"`

	MediaCount int64 `json:"media_count" gorm:"->;-:migration"`
}

func (Creator) TableName() string {
	return "creators"
}

// FullName is the display label used by the quick-create response.
func (c Creator) FullName() string {
	return c.FirstName + " " + c.LastName
}
