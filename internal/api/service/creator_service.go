package service

import (
	"context"
	"errors"
	"net/url"
	"time"

	"gorm.io/gorm"

	"mediavault/internal/api/dto"
	"mediavault/internal/api/forms"
	"mediavault/internal/api/models"
	"mediavault/internal/api/query"
	"mediavault/internal/api/repository"
	"mediavault/internal/api/session"
)

// CreatorListResult is a searchable page of creators annotated with the
// media count of the session's active kind.
type CreatorListResult struct {
	Items []models.Creator
	Total int64
	Page  int

	Search      *forms.SearchForm
	Media       string
	RedirectURL string
}

type CreatorService interface {
	List(ctx context.Context, userID string, params url.Values, page int) (*CreatorListResult, error)
	Get(ctx context.Context, id int64) (*models.Creator, error)
	Create(ctx context.Context, in dto.CreatorInput) (*models.Creator, error)
	Delete(ctx context.Context, id int64) error
}

type creatorService struct {
	creatorRepo *repository.CreatorRepo
	tracker     *session.Tracker
}

func NewCreatorService(creatorRepo *repository.CreatorRepo, tracker *session.Tracker) CreatorService {
	return &creatorService{creatorRepo: creatorRepo, tracker: tracker}
}

func (s *creatorService) List(ctx context.Context, userID string, params url.Values, page int) (*CreatorListResult, error) {
	kind, redirect, err := s.tracker.Resolve(ctx, userID, params.Get("media"))
	if err != nil {
		return nil, err
	}

	search := forms.NewSearchForm("first_name", params)
	filters := query.Pipeline{
		query.Search("creators.first_name", search),
	}

	items, total, err := s.creatorRepo.List(ctx, filters, kind, page)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	return &CreatorListResult{
		Items:       items,
		Total:       total,
		Page:        page,
		Search:      search,
		Media:       kind,
		RedirectURL: redirect,
	}, nil
}

func (s *creatorService) Get(ctx context.Context, id int64) (*models.Creator, error) {
	c, err := s.creatorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// Create validates and inserts a creator. The (first, last, birth date)
// triple is unique; a duplicate surfaces as field errors, matching the
// quick-create contract.
func (s *creatorService) Create(ctx context.Context, in dto.CreatorInput) (*models.Creator, error) {
	verr := newValidationError()
	if in.FirstName == "" {
		verr.Fields.Add("first_name", "This field is required.")
	}
	if in.LastName == "" {
		verr.Fields.Add("last_name", "This field is required.")
	}
	var birthDate time.Time
	if in.BirthDate == "" {
		verr.Fields.Add("birth_date", "This field is required.")
	} else {
		var err error
		birthDate, err = time.Parse("2006-01-02", in.BirthDate)
		if err != nil {
			verr.Fields.Add("birth_date", "Enter a valid date.")
		}
	}
	if verr.Fields.Has() {
		return nil, verr
	}

	c := &models.Creator{
		FirstName:  in.FirstName,
		MiddleName: in.MiddleName,
		LastName:   in.LastName,
		BirthDate:  birthDate,
	}
	if err := s.creatorRepo.Create(ctx, c); err != nil {
		if repository.IsUniqueViolation(err, "unique_creators") {
			verr.Fields.Add("__all__", "Creator with this First name, Last name and Birth date already exists.")
			return nil, verr
		}
		return nil, err
	}
	return c, nil
}

func (s *creatorService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.creatorRepo.Delete(ctx, id)
}
