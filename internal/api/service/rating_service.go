package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"

	"gorm.io/gorm"

	"mediavault/internal/api/choices"
	"mediavault/internal/api/dto"
	"mediavault/internal/api/forms"
	"mediavault/internal/api/models"
	"mediavault/internal/api/query"
	"mediavault/internal/api/repository"
	"mediavault/internal/api/session"
)

// RatingListResult is a page of visible ratings narrowed to the active
// media kind.
type RatingListResult struct {
	Items []models.Rating
	Total int64
	Page  int

	Search      *forms.SearchForm
	Media       string
	RedirectURL string
}

type RatingService interface {
	List(ctx context.Context, userID string, params url.Values, page int) (*RatingListResult, error)
	Get(ctx context.Context, viewerID string, id int64) (*models.Rating, error)
	Create(ctx context.Context, userID string, in dto.RatingInput) (*models.Rating, error)
	Update(ctx context.Context, userID string, id int64, in dto.RatingInput) (*models.Rating, error)
	Delete(ctx context.Context, userID string, id int64) error
	RedirectURL(ratingID int64, params url.Values) string
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	mediaRepo  *repository.MediaRepo
	tracker    *session.Tracker
}

func NewRatingService(
	ratingRepo repository.RatingRepository,
	mediaRepo *repository.MediaRepo,
	tracker *session.Tracker,
) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		mediaRepo:  mediaRepo,
		tracker:    tracker,
	}
}

// List shows non-hidden ratings for media of the session's active kind,
// searchable by the rated title.
func (s *ratingService) List(ctx context.Context, userID string, params url.Values, page int) (*RatingListResult, error) {
	kind, redirect, err := s.tracker.Resolve(ctx, userID, params.Get("media"))
	if err != nil {
		return nil, err
	}

	search := forms.NewSearchForm("title", params)
	filters := query.Pipeline{
		query.VisibleRatings(),
		query.RatingTitleSearch(search),
		query.RatingKind(kind),
	}

	items, total, err := s.ratingRepo.List(ctx, filters, page)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	return &RatingListResult{
		Items:       items,
		Total:       total,
		Page:        page,
		Search:      search,
		Media:       kind,
		RedirectURL: redirect,
	}, nil
}

// Get returns a rating; hidden ratings are visible only to their author.
func (s *ratingService) Get(ctx context.Context, viewerID string, id int64) (*models.Rating, error) {
	rating, err := s.ratingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if rating.IsHidden && rating.UserID != viewerID {
		return nil, ErrNotFound
	}
	return rating, nil
}

// Create adds the authenticated user's rating for a media item. The
// uniqueness invariant is pre-checked here and backed by the unique_reviews
// constraint: an insert racing past the pre-check surfaces as the same
// field error, never as an unhandled fault.
func (s *ratingService) Create(ctx context.Context, userID string, in dto.RatingInput) (*models.Rating, error) {
	verr := validateRatingInput(in, true)

	if in.MediaID != 0 {
		if _, err := s.mediaRepo.GetByID(ctx, in.MediaID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				verr.Fields.Add("media", "Select a valid choice.")
			} else {
				return nil, err
			}
		} else if _, err := s.ratingRepo.GetByUserAndMedia(ctx, userID, in.MediaID); err == nil {
			verr.Fields.Add("media", "Rating for this media already exists.")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	if verr.Fields.Has() {
		return nil, verr
	}

	rating := &models.Rating{
		UserID:   userID,
		MediaID:  in.MediaID,
		Score:    in.Score,
		Review:   in.Review,
		IsHidden: true,
	}
	if in.Status != "" {
		rating.Status = &in.Status
	}
	if in.IsHidden != nil {
		rating.IsHidden = *in.IsHidden
	}

	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		if repository.IsUniqueViolation(err, "unique_reviews") {
			dup := newValidationError()
			dup.Fields.Add("media", "Rating for this media already exists.")
			return nil, dup
		}
		return nil, fmt.Errorf("create rating: %w", err)
	}
	return s.ratingRepo.GetByID(ctx, rating.ID)
}

// Update edits an existing rating. The uniqueness invariant is not
// re-validated: the pair is already this rating's own.
func (s *ratingService) Update(ctx context.Context, userID string, id int64, in dto.RatingInput) (*models.Rating, error) {
	rating, err := s.ratingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if rating.UserID != userID {
		return nil, ErrForbidden
	}

	verr := validateRatingInput(in, false)
	if verr.Fields.Has() {
		return nil, verr
	}

	rating.Score = in.Score
	rating.Review = in.Review
	rating.Status = nil
	if in.Status != "" {
		rating.Status = &in.Status
	}
	if in.IsHidden != nil {
		rating.IsHidden = *in.IsHidden
	}

	if err := s.ratingRepo.Update(ctx, rating); err != nil {
		return nil, fmt.Errorf("update rating: %w", err)
	}
	return s.ratingRepo.GetByID(ctx, id)
}

func (s *ratingService) Delete(ctx context.Context, userID string, id int64) error {
	rating, err := s.ratingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if rating.UserID != userID {
		return ErrForbidden
	}
	return s.ratingRepo.Delete(ctx, id)
}

// RedirectURL honors the optional next/user_id pair: an update launched
// from a user's detail page navigates back there instead of to the rating.
func (s *ratingService) RedirectURL(ratingID int64, params url.Values) string {
	if params.Has("next") {
		userID := params.Get("user_id")
		if userID == "" {
			return "/api/users"
		}
		return "/api/users/" + userID
	}
	return fmt.Sprintf("/api/ratings/%d", ratingID)
}

// validateRatingInput checks the score bound (0.0-10.0, one decimal place)
// and the status code. requireMedia distinguishes create from update.
func validateRatingInput(in dto.RatingInput, requireMedia bool) *ValidationError {
	verr := newValidationError()

	if requireMedia && in.MediaID == 0 {
		verr.Fields.Add("media", "This field is required.")
	}
	if in.Score != nil {
		score := *in.Score
		if score < 0.0 {
			verr.Fields.Add("score", "Ensure this value is greater than or equal to 0.0.")
		}
		if score > 10.0 {
			verr.Fields.Add("score", "Ensure this value is less than or equal to 10.0.")
		}
		if scaled := score * 10; math.Abs(scaled-math.Round(scaled)) > 1e-9 {
			verr.Fields.Add("score", "Ensure that there are no more than 1 decimal places.")
		}
	}
	if in.Status != "" && !choices.Statuses.Contains(in.Status) {
		verr.Fields.Add("status", fmt.Sprintf("Select a valid choice. %s is not one of the available choices.", in.Status))
	}
	return verr
}
