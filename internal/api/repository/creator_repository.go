package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"mediavault/internal/api/models"
	"mediavault/internal/api/query"
)

type CreatorRepo struct {
	db *gorm.DB
}

func NewCreatorRepo(db *gorm.DB) *CreatorRepo {
	return &CreatorRepo{db: db}
}

// List pages creators in first-name order, annotated with the media count
// of the active kind.
func (r *CreatorRepo) List(ctx context.Context, filters query.Pipeline, activeKind string, page int) ([]models.Creator, int64, error) {
	var total int64
	if err := filters.Apply(r.db.WithContext(ctx).Model(&models.Creator{})).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count creators: %w", err)
	}

	full := append(query.Pipeline{}, filters...)
	full = append(full,
		query.CreatorMediaCount(activeKind),
		query.OrderBy("first_name asc"),
		query.Paginate(page),
	)

	var list []models.Creator
	if err := full.Apply(r.db.WithContext(ctx).Model(&models.Creator{})).Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list creators: %w", err)
	}
	return list, total, nil
}

// FirstNames returns the distinct creator first names in order; the facet
// form's live choice set.
func (r *CreatorRepo) FirstNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&models.Creator{}).
		Distinct("first_name").
		Order("first_name asc").
		Pluck("first_name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("creator first names: %w", err)
	}
	return names, nil
}

// FindByFirstNames resolves creator first names to rows by exact match.
// Unresolvable names are silently dropped.
func (r *CreatorRepo) FindByFirstNames(ctx context.Context, names []string) ([]models.Creator, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var list []models.Creator
	if err := r.db.WithContext(ctx).Where("first_name IN ?", names).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("find creators by first name: %w", err)
	}
	return list, nil
}

func (r *CreatorRepo) FindByIDs(ctx context.Context, ids []int64) ([]models.Creator, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var list []models.Creator
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("find creators: %w", err)
	}
	return list, nil
}

func (r *CreatorRepo) GetByID(ctx context.Context, id int64) (*models.Creator, error) {
	var c models.Creator
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CreatorRepo) Create(ctx context.Context, c *models.Creator) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create creator: %w", err)
	}
	return nil
}

func (r *CreatorRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Creator{}, id).Error; err != nil {
		return fmt.Errorf("delete creator: %w", err)
	}
	return nil
}
