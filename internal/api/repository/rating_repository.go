package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"mediavault/internal/api/models"
	"mediavault/internal/api/query"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	Update(ctx context.Context, rating *models.Rating) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Rating, error)
	GetByUserAndMedia(ctx context.Context, userID string, mediaID int64) (*models.Rating, error)
	List(ctx context.Context, filters query.Pipeline, page int) ([]models.Rating, int64, error)
	ListByUser(ctx context.Context, userID string, includeHidden bool) ([]models.Rating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepository) Update(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Omit("User", "Media").Save(rating).Error
}

func (r *ratingRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Rating{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ratingRepository) GetByID(ctx context.Context, id int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Media").
		First(&rating, id).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) GetByUserAndMedia(ctx context.Context, userID string, mediaID int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND media_id = ?", userID, mediaID).
		Preload("User").
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// List pages ratings through the composed filter pipeline (visibility,
// active media kind, title search).
func (r *ratingRepository) List(ctx context.Context, filters query.Pipeline, page int) ([]models.Rating, int64, error) {
	var total int64
	if err := filters.Apply(r.db.WithContext(ctx).Model(&models.Rating{})).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count ratings: %w", err)
	}

	full := append(query.Pipeline{}, filters...)
	full = append(full, query.OrderBy("user_media_ratings.id asc"), query.Paginate(page))

	var list []models.Rating
	err := full.Apply(r.db.WithContext(ctx).Model(&models.Rating{})).
		Preload("User").
		Preload("Media").
		Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list ratings: %w", err)
	}
	return list, total, nil
}

// ListByUser returns a user's ratings with their media. Hidden ratings are
// included only when the viewer is the author.
func (r *ratingRepository) ListByUser(ctx context.Context, userID string, includeHidden bool) ([]models.Rating, error) {
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if !includeHidden {
		tx = tx.Where("is_hidden = ?", false)
	}
	var list []models.Rating
	if err := tx.Preload("Media").Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list user ratings: %w", err)
	}
	return list, nil
}
