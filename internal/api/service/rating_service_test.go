package service

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mediavault/internal/api/dto"
	"mediavault/internal/api/models"
	"mediavault/internal/api/query"
)

// MockRatingRepository mocks the RatingRepository interface
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepository) Update(ctx context.Context, rating *models.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRatingRepository) GetByID(ctx context.Context, id int64) (*models.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) GetByUserAndMedia(ctx context.Context, userID string, mediaID int64) (*models.Rating, error) {
	args := m.Called(ctx, userID, mediaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) List(ctx context.Context, filters query.Pipeline, page int) ([]models.Rating, int64, error) {
	args := m.Called(ctx, filters, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Rating), args.Get(1).(int64), args.Error(2)
}

func (m *MockRatingRepository) ListByUser(ctx context.Context, userID string, includeHidden bool) ([]models.Rating, error) {
	args := m.Called(ctx, userID, includeHidden)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func floatPtr(v float64) *float64 { return &v }

func TestValidateRatingInput_MediaRequiredOnCreate(t *testing.T) {
	verr := validateRatingInput(dto.RatingInput{}, true)
	assert.Equal(t, []string{"This field is required."}, verr.Fields["media"])

	verr = validateRatingInput(dto.RatingInput{}, false)
	assert.False(t, verr.Fields.Has())
}

func TestValidateRatingInput_ScoreBounds(t *testing.T) {
	verr := validateRatingInput(dto.RatingInput{MediaID: 1, Score: floatPtr(-0.5)}, true)
	assert.Equal(t, []string{"Ensure this value is greater than or equal to 0.0."}, verr.Fields["score"])

	verr = validateRatingInput(dto.RatingInput{MediaID: 1, Score: floatPtr(10.5)}, true)
	assert.Equal(t, []string{"Ensure this value is less than or equal to 10.0."}, verr.Fields["score"])

	verr = validateRatingInput(dto.RatingInput{MediaID: 1, Score: floatPtr(0.0)}, true)
	assert.False(t, verr.Fields.Has())

	verr = validateRatingInput(dto.RatingInput{MediaID: 1, Score: floatPtr(10.0)}, true)
	assert.False(t, verr.Fields.Has())
}

func TestValidateRatingInput_ScorePrecision(t *testing.T) {
	verr := validateRatingInput(dto.RatingInput{MediaID: 1, Score: floatPtr(7.5)}, true)
	assert.False(t, verr.Fields.Has())

	verr = validateRatingInput(dto.RatingInput{MediaID: 1, Score: floatPtr(7.55)}, true)
	assert.Equal(t, []string{"Ensure that there are no more than 1 decimal places."}, verr.Fields["score"])
}

func TestValidateRatingInput_Status(t *testing.T) {
	verr := validateRatingInput(dto.RatingInput{MediaID: 1, Status: "IP"}, true)
	assert.False(t, verr.Fields.Has())

	verr = validateRatingInput(dto.RatingInput{MediaID: 1, Status: "XX"}, true)
	assert.Equal(t, []string{"Select a valid choice. XX is not one of the available choices."}, verr.Fields["status"])

	verr = validateRatingInput(dto.RatingInput{MediaID: 1}, true)
	assert.False(t, verr.Fields.Has())
}

func TestRatingGet_HiddenVisibleOnlyToAuthor(t *testing.T) {
	repo := new(MockRatingRepository)
	svc := &ratingService{ratingRepo: repo}

	hidden := &models.Rating{ID: 5, UserID: "author", IsHidden: true}
	repo.On("GetByID", mock.Anything, int64(5)).Return(hidden, nil)

	got, err := svc.Get(context.Background(), "author", 5)
	require.NoError(t, err)
	assert.Equal(t, hidden, got)

	_, err = svc.Get(context.Background(), "someone-else", 5)
	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertExpectations(t)
}

func TestRatingUpdate_OwnershipEnforced(t *testing.T) {
	repo := new(MockRatingRepository)
	svc := &ratingService{ratingRepo: repo}

	existing := &models.Rating{ID: 7, UserID: "author"}
	repo.On("GetByID", mock.Anything, int64(7)).Return(existing, nil)

	_, err := svc.Update(context.Background(), "intruder", 7, dto.RatingInput{})
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(context.Background(), "intruder", 7)
	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertExpectations(t)
}

func TestRatingRedirectURL(t *testing.T) {
	s := &ratingService{}

	assert.Equal(t, "/api/ratings/42", s.RedirectURL(42, url.Values{}))

	params := url.Values{"next": {"1"}, "user_id": {"abc"}}
	assert.Equal(t, "/api/users/abc", s.RedirectURL(42, params))

	params = url.Values{"next": {"1"}}
	assert.Equal(t, "/api/users", s.RedirectURL(42, params))
}
