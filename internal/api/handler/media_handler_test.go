package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mediavault/internal/api/dto"
	"mediavault/internal/api/models"
	"mediavault/internal/api/service"
)

// MockMediaService mocks the MediaService interface
type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) List(ctx context.Context, kind string, params url.Values, page int) (*service.MediaListResult, error) {
	args := m.Called(ctx, kind, params, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MediaListResult), args.Error(1)
}

func (m *MockMediaService) Get(ctx context.Context, kind string, id int64) (*models.Media, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Media), args.Error(1)
}

func (m *MockMediaService) Create(ctx context.Context, kind string, in dto.MediaInput, userID, username string) (*models.Media, error) {
	args := m.Called(ctx, kind, in, userID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Media), args.Error(1)
}

func (m *MockMediaService) Update(ctx context.Context, kind string, id int64, in dto.MediaInput, userID string) (*models.Media, error) {
	args := m.Called(ctx, kind, id, in, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Media), args.Error(1)
}

func (m *MockMediaService) Delete(ctx context.Context, kind string, id int64) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func (m *MockMediaService) Prepopulate(ctx context.Context, kind string, params url.Values) (*dto.MediaInitial, error) {
	args := m.Called(ctx, kind, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MediaInitial), args.Error(1)
}

func setupMediaRouter(svc service.MediaService) *gin.Engine {
	router := setupRouter()
	router.Use(func(c *gin.Context) {
		c.Set("userID", "user-1")
		c.Set("username", "frank")
	})
	NewMediaHandler(svc).RegisterRoutes(router.Group("/api"))
	return router
}

func TestMediaUpdate_PassesEditingUser(t *testing.T) {
	mockSvc := new(MockMediaService)
	router := setupMediaRouter(mockSvc)

	updated := &models.Media{ID: 7, Title: "Dune", MediaKind: models.KindBook}
	mockSvc.On("Update", mock.Anything, models.KindBook, int64(7), mock.Anything, "user-1").
		Return(updated, nil)

	body, _ := json.Marshal(dto.MediaInput{Title: "Dune"})
	req, _ := http.NewRequest("PUT", "/api/books/7", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestMediaCreate_PassesCreatingUser(t *testing.T) {
	mockSvc := new(MockMediaService)
	router := setupMediaRouter(mockSvc)

	created := &models.Media{ID: 1, Title: "Dune", MediaKind: models.KindBook}
	mockSvc.On("Create", mock.Anything, models.KindBook, mock.Anything, "user-1", "frank").
		Return(created, nil)

	body, _ := json.Marshal(dto.MediaInput{Title: "Dune"})
	req, _ := http.NewRequest("POST", "/api/books", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}
