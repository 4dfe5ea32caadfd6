package service

import (
	"context"
	"errors"
	"net/url"

	"gorm.io/gorm"

	"mediavault/internal/api/dto"
	"mediavault/internal/api/forms"
	"mediavault/internal/api/models"
	"mediavault/internal/api/query"
	"mediavault/internal/api/repository"
	"mediavault/internal/middleware/auth"
)

// UserListResult is a searchable page of users in username order.
type UserListResult struct {
	Items []models.User
	Total int64
	Page  int

	Search *forms.SearchForm
}

type UserService interface {
	List(ctx context.Context, params url.Values, page int) (*UserListResult, error)
	Get(ctx context.Context, viewerID, id string) (*models.User, error)
	Update(ctx context.Context, id string, in dto.UserUpdateInput) (*models.User, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type userService struct {
	userRepo   repository.UserRepository
	ratingRepo repository.RatingRepository
}

func NewUserService(userRepo repository.UserRepository, ratingRepo repository.RatingRepository) UserService {
	return &userService{userRepo: userRepo, ratingRepo: ratingRepo}
}

func (s *userService) List(ctx context.Context, params url.Values, page int) (*UserListResult, error) {
	search := forms.NewSearchForm("username", params)
	filters := query.Pipeline{
		query.Search("users.username", search),
	}

	items, total, err := s.userRepo.List(ctx, filters, page)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	return &UserListResult{Items: items, Total: total, Page: page, Search: search}, nil
}

// Get loads a user with their ratings. Hidden ratings are included only
// when users view themselves.
func (s *userService) Get(ctx context.Context, viewerID, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ratings, err := s.ratingRepo.ListByUser(ctx, id, viewerID == id)
	if err != nil {
		return nil, err
	}
	user.Ratings = ratings
	return user, nil
}

// Update changes the account's own username and password. Both password
// fields must match.
func (s *userService) Update(ctx context.Context, id string, in dto.UserUpdateInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	verr := newValidationError()
	if in.Username == "" {
		verr.Fields.Add("username", "This field is required.")
	}
	if in.NewPassword1 == "" {
		verr.Fields.Add("new_password1", "This field is required.")
	}
	if len(in.NewPassword1) > 0 && len(in.NewPassword1) < 8 {
		verr.Fields.Add("new_password1", "This password is too short. It must contain at least 8 characters.")
	}
	if in.NewPassword1 != in.NewPassword2 {
		verr.Fields.Add("new_password2", "The two password fields didn't match.")
	}
	if in.Username != "" && in.Username != user.Username {
		if _, err := s.userRepo.FindByUsername(ctx, in.Username); err == nil {
			verr.Fields.Add("username", "A user with that username already exists.")
		}
	}
	if verr.Fields.Has() {
		return nil, verr
	}

	hashed, err := auth.HashPassword(in.NewPassword1)
	if err != nil {
		return nil, err
	}
	user.Username = in.Username
	user.Password = hashed
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

func (s *userService) Count(ctx context.Context) (int64, error) {
	return s.userRepo.Count(ctx)
}
