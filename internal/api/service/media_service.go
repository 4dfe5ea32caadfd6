package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"mediavault/internal/api/choices"
	"mediavault/internal/api/dto"
	"mediavault/internal/api/forms"
	"mediavault/internal/api/models"
	"mediavault/internal/api/query"
	"mediavault/internal/api/repository"
)

// MediaListResult is a filtered, annotated, paginated page of one media
// kind, together with the bound forms so the caller can redisplay them,
// errors included.
type MediaListResult struct {
	Items []models.Media
	Total int64
	Page  int

	Search        *forms.SearchForm
	GenreFilter   *forms.FacetForm
	CreatorFilter *forms.FacetForm
}

type MediaService interface {
	List(ctx context.Context, kind string, params url.Values, page int) (*MediaListResult, error)
	Get(ctx context.Context, kind string, id int64) (*models.Media, error)
	Create(ctx context.Context, kind string, in dto.MediaInput, userID, username string) (*models.Media, error)
	Update(ctx context.Context, kind string, id int64, in dto.MediaInput, userID string) (*models.Media, error)
	Delete(ctx context.Context, kind string, id int64) error
	Prepopulate(ctx context.Context, kind string, params url.Values) (*dto.MediaInitial, error)
}

type mediaService struct {
	mediaRepo   *repository.MediaRepo
	genreRepo   *repository.GenreRepo
	creatorRepo *repository.CreatorRepo
}

func NewMediaService(
	mediaRepo *repository.MediaRepo,
	genreRepo *repository.GenreRepo,
	creatorRepo *repository.CreatorRepo,
) MediaService {
	return &mediaService{
		mediaRepo:   mediaRepo,
		genreRepo:   genreRepo,
		creatorRepo: creatorRepo,
	}
}

// List composes the fixed stage order for one media kind: kind filter,
// search, decoded type/status codes, genre facet, creator facet. The repo
// adds annotation, order and pagination on top. An invalid facet narrows
// nothing; it only comes back marked invalid.
func (s *mediaService) List(ctx context.Context, kind string, params url.Values, page int) (*MediaListResult, error) {
	search := forms.NewSearchForm("title", params)

	genreNames, err := s.genreRepo.Names(ctx)
	if err != nil {
		return nil, err
	}
	creatorNames, err := s.creatorRepo.FirstNames(ctx)
	if err != nil {
		return nil, err
	}
	genreFilter := forms.NewFacetForm("genres", genreNames, params)
	creatorFilter := forms.NewFacetForm("creators", creatorNames, params)

	filters := query.Pipeline{
		query.Kind(kind),
		query.Search("media.title", search),
	}
	switch kind {
	case models.KindBook:
		filters = append(filters,
			query.Code("media.book_type", choices.BookTypes.Decode(params.Get("type"))))
	case models.KindSeries:
		filters = append(filters,
			query.Code("media.series_type", choices.SeriesTypes.Decode(params.Get("type"))),
			query.Code("media.status", choices.Statuses.Decode(params.Get("status"))))
	}
	filters = append(filters,
		query.GenreFacet(genreFilter),
		query.CreatorFacet(creatorFilter),
	)

	items, total, err := s.mediaRepo.List(ctx, filters, page)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	return &MediaListResult{
		Items:         items,
		Total:         total,
		Page:          page,
		Search:        search,
		GenreFilter:   genreFilter,
		CreatorFilter: creatorFilter,
	}, nil
}

func (s *mediaService) Get(ctx context.Context, kind string, id int64) (*models.Media, error) {
	m, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if m.MediaKind != kind {
		return nil, ErrNotFound
	}
	return m, nil
}

func (s *mediaService) Create(ctx context.Context, kind string, in dto.MediaInput, userID, username string) (*models.Media, error) {
	m, verr := s.buildMedia(ctx, kind, in)
	if verr != nil {
		return nil, verr
	}
	m.MediaKind = kind
	m.CreatedBy = username

	if err := s.mediaRepo.Create(ctx, m, userID); err != nil {
		return nil, err
	}
	return s.Get(ctx, kind, m.ID)
}

// Update edits a media item and joins the editing user to its participating
// users, the same way creating does. The original creator stays recorded.
func (s *mediaService) Update(ctx context.Context, kind string, id int64, in dto.MediaInput, userID string) (*models.Media, error) {
	existing, err := s.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	m, verr := s.buildMedia(ctx, kind, in)
	if verr != nil {
		return nil, verr
	}
	m.MediaKind = existing.MediaKind
	m.CreatedBy = existing.CreatedBy

	if err := s.mediaRepo.Update(ctx, id, m); err != nil {
		return nil, err
	}
	if err := s.mediaRepo.AddParticipant(ctx, id, userID); err != nil {
		return nil, err
	}
	return s.Get(ctx, kind, id)
}

func (s *mediaService) Delete(ctx context.Context, kind string, id int64) error {
	if _, err := s.Get(ctx, kind, id); err != nil {
		return err
	}
	return s.mediaRepo.Delete(ctx, id)
}

// Prepopulate derives the initial create-form state from query-string
// hints. Names that resolve to nothing silently yield an empty selection;
// unrecognized type/status labels decode to nothing. Update pages never
// call this, so redisplayed edits are not overwritten.
func (s *mediaService) Prepopulate(ctx context.Context, kind string, params url.Values) (*dto.MediaInitial, error) {
	initial := &dto.MediaInitial{GenreIDs: []int64{}, CreatorIDs: []int64{}}

	if names := params["genres"]; len(names) > 0 {
		genres, err := s.genreRepo.FindByNames(ctx, names)
		if err != nil {
			return nil, err
		}
		for _, g := range genres {
			initial.GenreIDs = append(initial.GenreIDs, g.ID)
		}
	}
	if names := params["creators"]; len(names) > 0 {
		creators, err := s.creatorRepo.FindByFirstNames(ctx, names)
		if err != nil {
			return nil, err
		}
		for _, c := range creators {
			initial.CreatorIDs = append(initial.CreatorIDs, c.ID)
		}
	}

	switch kind {
	case models.KindBook:
		initial.Type = choices.BookTypes.Decode(params.Get("type"))
	case models.KindSeries:
		initial.Type = choices.SeriesTypes.Decode(params.Get("type"))
		initial.Status = choices.Statuses.Decode(params.Get("status"))
	}
	return initial, nil
}

// buildMedia validates the input against the kind's field rules and
// resolves associations. All failures collect into one ValidationError.
func (s *mediaService) buildMedia(ctx context.Context, kind string, in dto.MediaInput) (*models.Media, error) {
	verr := newValidationError()

	if in.Title == "" {
		verr.Fields.Add("title", "This field is required.")
	}
	if utf8.RuneCountInString(in.Description) < 50 {
		verr.Fields.Add("description", "Description must be at least 50 symbols")
	}
	if utf8.RuneCountInString(in.Description) > 4000 {
		verr.Fields.Add("description", "Description must be less than 4000 symbols")
	}
	if len(in.GenreIDs) == 0 {
		verr.Fields.Add("genres", "This field is required.")
	}

	var releasedOn *time.Time
	if in.ReleasedOn != nil && *in.ReleasedOn != "" {
		t, err := time.Parse("2006-01-02", *in.ReleasedOn)
		if err != nil {
			verr.Fields.Add("released_on", "Enter a valid date.")
		} else {
			releasedOn = &t
		}
	}

	m := &models.Media{
		Title:       in.Title,
		Description: in.Description,
		ReleasedOn:  releasedOn,
	}

	switch kind {
	case models.KindBook:
		if in.Chapters == nil {
			verr.Fields.Add("chapters", "This field is required.")
		} else if *in.Chapters < 0 {
			verr.Fields.Add("chapters", "Ensure this value is greater than or equal to 0.")
		}
		if in.Type == "" {
			verr.Fields.Add("type", "This field is required.")
		} else if !choices.BookTypes.Contains(in.Type) {
			verr.Fields.Add("type", fmt.Sprintf("Select a valid choice. %s is not one of the available choices.", in.Type))
		}
		m.Chapters = in.Chapters
		if in.Type != "" {
			m.BookType = &in.Type
		}
	case models.KindFilm:
		if in.Country == nil || *in.Country == "" {
			verr.Fields.Add("country", "This field is required.")
		}
		if in.DurationMin == nil {
			verr.Fields.Add("duration_min", "This field is required.")
		} else if *in.DurationMin <= 0 {
			verr.Fields.Add("duration_min", "Ensure this value is greater than 0.")
		}
		m.Country = in.Country
		m.DurationMin = in.DurationMin
	case models.KindSeries:
		if in.Country == nil || *in.Country == "" {
			verr.Fields.Add("country", "This field is required.")
		}
		if in.Status == "" {
			verr.Fields.Add("status", "This field is required.")
		} else if !choices.Statuses.Contains(in.Status) {
			verr.Fields.Add("status", fmt.Sprintf("Select a valid choice. %s is not one of the available choices.", in.Status))
		}
		if in.Seasons == nil {
			verr.Fields.Add("seasons", "This field is required.")
		} else if *in.Seasons < 0 {
			verr.Fields.Add("seasons", "Ensure this value is greater than or equal to 0.")
		}
		if in.SeriesNumber == nil {
			verr.Fields.Add("series_number", "This field is required.")
		}
		if in.Type == "" {
			verr.Fields.Add("type", "This field is required.")
		} else if !choices.SeriesTypes.Contains(in.Type) {
			verr.Fields.Add("type", fmt.Sprintf("Select a valid choice. %s is not one of the available choices.", in.Type))
		}
		m.Country = in.Country
		m.Seasons = in.Seasons
		m.SeriesNumber = in.SeriesNumber
		if in.Status != "" {
			m.Status = &in.Status
		}
		if in.Type != "" {
			m.SeriesType = &in.Type
		}
	default:
		return nil, fmt.Errorf("unknown media kind %q", kind)
	}

	genres, err := s.genreRepo.FindByIDs(ctx, in.GenreIDs)
	if err != nil {
		return nil, err
	}
	if len(genres) != len(in.GenreIDs) {
		verr.Fields.Add("genres", "Select a valid choice.")
	}
	creators, err := s.creatorRepo.FindByIDs(ctx, in.CreatorIDs)
	if err != nil {
		return nil, err
	}
	if len(creators) != len(in.CreatorIDs) {
		verr.Fields.Add("creators", "Select a valid choice.")
	}
	m.Genres = genres
	m.Creators = creators

	if verr.Fields.Has() {
		return nil, verr
	}
	return m, nil
}
