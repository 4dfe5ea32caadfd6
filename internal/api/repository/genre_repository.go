package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"mediavault/internal/api/models"
	"mediavault/internal/api/query"
)

type GenreRepo struct {
	db *gorm.DB
}

func NewGenreRepo(db *gorm.DB) *GenreRepo {
	return &GenreRepo{db: db}
}

// List pages genres in name order, annotated with the media count of the
// active kind.
func (r *GenreRepo) List(ctx context.Context, filters query.Pipeline, activeKind string, page int) ([]models.Genre, int64, error) {
	var total int64
	if err := filters.Apply(r.db.WithContext(ctx).Model(&models.Genre{})).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count genres: %w", err)
	}

	full := append(query.Pipeline{}, filters...)
	full = append(full,
		query.GenreMediaCount(activeKind),
		query.OrderBy("name asc"),
		query.Paginate(page),
	)

	var list []models.Genre
	if err := full.Apply(r.db.WithContext(ctx).Model(&models.Genre{})).Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list genres: %w", err)
	}
	return list, total, nil
}

// Names returns every genre name in name order; the facet form's live
// choice set.
func (r *GenreRepo) Names(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).Model(&models.Genre{}).Order("name asc").Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("genre names: %w", err)
	}
	return names, nil
}

// FindByNames resolves genre names to rows by exact match. Unresolvable
// names are silently dropped.
func (r *GenreRepo) FindByNames(ctx context.Context, names []string) ([]models.Genre, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var list []models.Genre
	if err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("find genres by name: %w", err)
	}
	return list, nil
}

func (r *GenreRepo) FindByIDs(ctx context.Context, ids []int64) ([]models.Genre, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var list []models.Genre
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("find genres: %w", err)
	}
	return list, nil
}

func (r *GenreRepo) GetByID(ctx context.Context, id int64) (*models.Genre, error) {
	var g models.Genre
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GenreRepo) Create(ctx context.Context, g *models.Genre) error {
	if err := r.db.WithContext(ctx).Create(g).Error; err != nil {
		return fmt.Errorf("create genre: %w", err)
	}
	return nil
}

func (r *GenreRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Genre{}, id).Error; err != nil {
		return fmt.Errorf("delete genre: %w", err)
	}
	return nil
}
