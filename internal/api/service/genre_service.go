package service

import (
	"context"
	"errors"
	"net/url"

	"gorm.io/gorm"

	"mediavault/internal/api/forms"
	"mediavault/internal/api/models"
	"mediavault/internal/api/query"
	"mediavault/internal/api/repository"
	"mediavault/internal/api/session"
)

// GenreListResult is a searchable page of genres annotated with the media
// count of the session's active kind.
type GenreListResult struct {
	Items []models.Genre
	Total int64
	Page  int

	Search      *forms.SearchForm
	Media       string
	RedirectURL string
}

type GenreService interface {
	List(ctx context.Context, userID string, params url.Values, page int) (*GenreListResult, error)
	Get(ctx context.Context, id int64) (*models.Genre, error)
	Create(ctx context.Context, name string) (*models.Genre, error)
	Delete(ctx context.Context, id int64) error
}

type genreService struct {
	genreRepo *repository.GenreRepo
	tracker   *session.Tracker
}

func NewGenreService(genreRepo *repository.GenreRepo, tracker *session.Tracker) GenreService {
	return &genreService{genreRepo: genreRepo, tracker: tracker}
}

func (s *genreService) List(ctx context.Context, userID string, params url.Values, page int) (*GenreListResult, error) {
	kind, redirect, err := s.tracker.Resolve(ctx, userID, params.Get("media"))
	if err != nil {
		return nil, err
	}

	search := forms.NewSearchForm("name", params)
	filters := query.Pipeline{
		query.Search("genres.name", search),
	}

	items, total, err := s.genreRepo.List(ctx, filters, kind, page)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	return &GenreListResult{
		Items:       items,
		Total:       total,
		Page:        page,
		Search:      search,
		Media:       kind,
		RedirectURL: redirect,
	}, nil
}

func (s *genreService) Get(ctx context.Context, id int64) (*models.Genre, error) {
	g, err := s.genreRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (s *genreService) Create(ctx context.Context, name string) (*models.Genre, error) {
	verr := newValidationError()
	if name == "" {
		verr.Fields.Add("name", "This field is required.")
		return nil, verr
	}

	g := &models.Genre{Name: name}
	if err := s.genreRepo.Create(ctx, g); err != nil {
		if repository.IsUniqueViolation(err, "") {
			verr.Fields.Add("name", "Genre with this Name already exists.")
			return nil, verr
		}
		return nil, err
	}
	return g, nil
}

func (s *genreService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.genreRepo.Delete(ctx, id)
}
