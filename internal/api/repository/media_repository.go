package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mediavault/internal/api/models"
	"mediavault/internal/api/query"
)

type MediaRepo struct {
	db *gorm.DB
}

func NewMediaRepo(db *gorm.DB) *MediaRepo {
	return &MediaRepo{db: db}
}

// List runs the composed filter pipeline twice: once bare for the total
// count, once with annotation, preloading, order and pagination for the
// page rows. Filters always compose conjunctively.
func (r *MediaRepo) List(ctx context.Context, filters query.Pipeline, page int) ([]models.Media, int64, error) {
	var total int64
	counter := filters.Apply(r.db.WithContext(ctx).Model(&models.Media{}))
	if err := counter.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count media: %w", err)
	}

	full := append(query.Pipeline{}, filters...)
	full = append(full,
		query.ReviewStats(),
		query.PreloadAssociations(),
		query.OrderBy("title asc"),
		query.Paginate(page),
	)

	var list []models.Media
	if err := full.Apply(r.db.WithContext(ctx).Model(&models.Media{})).Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list media: %w", err)
	}
	return list, total, nil
}

func (r *MediaRepo) GetByID(ctx context.Context, id int64) (*models.Media, error) {
	var m models.Media
	err := query.Pipeline{
		query.ReviewStats(),
		query.PreloadAssociations(),
	}.Apply(r.db.WithContext(ctx).Model(&models.Media{})).First(&m, "media.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts the media row, attaches its genres and creators, and adds
// the creating user as a participant through an empty hidden rating, all in
// one transaction.
func (r *MediaRepo) Create(ctx context.Context, m *models.Media, participantID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return fmt.Errorf("create media: %w", err)
		}
		return addParticipant(tx, m.ID, participantID)
	})
}

// AddParticipant joins a user to a media item through an empty hidden
// rating. A user who already participates is left untouched.
func (r *MediaRepo) AddParticipant(ctx context.Context, mediaID int64, userID string) error {
	return addParticipant(r.db.WithContext(ctx), mediaID, userID)
}

func addParticipant(tx *gorm.DB, mediaID int64, userID string) error {
	if userID == "" {
		return nil
	}
	participant := &models.Rating{
		UserID:   userID,
		MediaID:  mediaID,
		IsHidden: true,
	}
	err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(participant).Error
	if err != nil {
		return fmt.Errorf("add participant: %w", err)
	}
	return nil
}

// Update saves the field set and replaces the genre/creator associations.
// media_kind is write-once at the model level, so the stored kind survives.
func (r *MediaRepo) Update(ctx context.Context, id int64, m *models.Media) error {
	m.ID = id
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		genres := m.Genres
		creators := m.Creators
		m.Genres = nil
		m.Creators = nil
		if err := tx.Omit("Genres", "Creators", "Ratings").Save(m).Error; err != nil {
			return fmt.Errorf("update media: %w", err)
		}
		if err := tx.Model(m).Association("Genres").Replace(genres); err != nil {
			return fmt.Errorf("replace genres: %w", err)
		}
		if err := tx.Model(m).Association("Creators").Replace(creators); err != nil {
			return fmt.Errorf("replace creators: %w", err)
		}
		m.Genres = genres
		m.Creators = creators
		return nil
	})
}

func (r *MediaRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Media{}, id).Error; err != nil {
		return fmt.Errorf("delete media: %w", err)
	}
	return nil
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation, optionally for one named constraint. Lets a duplicate insert
// racing past the application pre-check surface as the same field error.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != "23505" {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
